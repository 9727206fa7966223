// file: internals/features/internships/internships/service/documents_gate.go
package service

import (
	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
)

/* =========================================================
   Conjunto de documentos obrigatórios (mapeamento único,
   consultado pelo gate do Start e pelo relatório de pendências)
========================================================= */

// RequiredForStart devolve os tipos de documento que precisam estar
// APPROVED antes do estágio iniciar. O conjunto final é o mesmo para
// DIRECT e INTEGRATOR: os dois caminhos convergem no contrato assinado
// + seguro de vida.
func RequiredForStart(_ InternshipType) []docModel.DocumentType {
	return []docModel.DocumentType{
		docModel.DocTypeSignedContract,
		docModel.DocTypeLifeInsurance,
	}
}

// RequiredAtSubmission devolve os tipos exigidos junto com a submissão.
// Só o caminho INTEGRATOR (via agente de integração) exige TCE + PAE
// antecipados.
func RequiredAtSubmission(t InternshipType) []docModel.DocumentType {
	if t == TypeIntegrator {
		return []docModel.DocumentType{docModel.DocTypeTCE, docModel.DocTypePAE}
	}
	return nil
}

/* =========================================================
   Gate de aprovação / início
========================================================= */

// MissingForStart devolve os tipos obrigatórios que estão ausentes ou não
// aprovados — vazio significa que o Start está liberado. A mesma lista
// alimenta o feedback pro aluno ("pendências").
func MissingForStart(t InternshipType, docs []docModel.DocumentModel) []docModel.DocumentType {
	byType := make(map[docModel.DocumentType]docModel.DocumentStatus, len(docs))
	for _, d := range docs {
		byType[d.DocumentType] = d.DocumentStatus
	}

	var missing []docModel.DocumentType
	for _, required := range RequiredForStart(t) {
		if st, ok := byType[required]; !ok || st != docModel.DocStatusApproved {
			missing = append(missing, required)
		}
	}
	return missing
}

// HasBlockingSignedContract bloqueia a decisão de aprovação do admin
// enquanto existir um SIGNED_CONTRACT com arquivo aguardando análise.
func HasBlockingSignedContract(docs []docModel.DocumentModel) bool {
	for _, d := range docs {
		if d.DocumentType == docModel.DocTypeSignedContract &&
			d.DocumentStatus == docModel.DocStatusPendingAnalysis &&
			d.DocumentFileURL != nil {
			return true
		}
	}
	return false
}

// HasInsuranceMetadata confere se os dados da apólice já estão no
// snapshot do estágio — pré-condição para aceitar upload de LIFE_INSURANCE.
func HasInsuranceMetadata(i *internshipModel.InternshipModel) bool {
	return i.InternshipInsuranceCompany != nil &&
		i.InternshipInsurancePolicyNumber != nil &&
		i.InternshipInsuranceCNPJ != nil &&
		i.InternshipInsuranceValidFrom != nil &&
		i.InternshipInsuranceValidUntil != nil
}
