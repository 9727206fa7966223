// file: internals/features/internships/documents/model/document_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Enums (fechados — sempre validar com Parse*)
========================================================= */

type DocumentType string

const (
	DocTypeTCE            DocumentType = "TCE"             // Termo de Compromisso de Estágio
	DocTypePAE            DocumentType = "PAE"             // Plano de Atividades do Estagiário
	DocTypePeriodicReport DocumentType = "PERIODIC_REPORT" // Relatório periódico
	DocTypeTRE            DocumentType = "TRE"             // Termo de Rescisão de Estágio
	DocTypeRFE            DocumentType = "RFE"             // Relatório Final de Estágio
	DocTypeSignedContract DocumentType = "SIGNED_CONTRACT" // TCE+PAE assinados em arquivo único
	DocTypeLifeInsurance  DocumentType = "LIFE_INSURANCE"  // Apólice de seguro de vida
)

type DocumentStatus string

const (
	DocStatusPendingAnalysis DocumentStatus = "PENDING_ANALYSIS"
	DocStatusApproved        DocumentStatus = "APPROVED"
	DocStatusRejected        DocumentStatus = "REJECTED"
	DocStatusSignedValidated DocumentStatus = "SIGNED_VALIDATED"
)

func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(s)
	switch t {
	case DocTypeTCE, DocTypePAE, DocTypePeriodicReport, DocTypeTRE, DocTypeRFE,
		DocTypeSignedContract, DocTypeLifeInsurance:
		return t, nil
	}
	return "", fmt.Errorf("tipo de documento desconhecido %q", s)
}

func ParseDocumentStatus(s string) (DocumentStatus, error) {
	st := DocumentStatus(s)
	switch st {
	case DocStatusPendingAnalysis, DocStatusApproved, DocStatusRejected, DocStatusSignedValidated:
		return st, nil
	}
	return "", fmt.Errorf("status de documento desconhecido %q", s)
}

/* =========================================================
   Model
========================================================= */

// DocumentModel guarda no máximo um registro ativo por (estágio, tipo):
// re-upload sobrescreve o registro em vez de versionar.
// Invariante: rejection_comments não-nulo ⟺ status REJECTED.
type DocumentModel struct {
	DocumentID           uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:document_id" json:"document_id"`
	DocumentInternshipID uuid.UUID    `gorm:"type:uuid;not null;column:document_internship_id;uniqueIndex:uq_documents_internship_type" json:"document_internship_id"`
	DocumentType         DocumentType `gorm:"type:varchar(32);not null;column:document_type;uniqueIndex:uq_documents_internship_type" json:"document_type"`

	DocumentStatus DocumentStatus `gorm:"type:varchar(32);not null;default:'PENDING_ANALYSIS';column:document_status" json:"document_status"`

	// FileURL nulo = slot criado sem arquivo (ex: LIFE_INSURANCE placeholder)
	DocumentFileURL           *string `gorm:"type:text;column:document_file_url" json:"document_file_url,omitempty"`
	DocumentFileName          *string `gorm:"type:varchar(255);column:document_file_name" json:"document_file_name,omitempty"`
	DocumentRejectionComments *string `gorm:"type:text;column:document_rejection_comments" json:"document_rejection_comments,omitempty"`

	DocumentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:document_created_at" json:"document_created_at"`
	DocumentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:document_updated_at" json:"document_updated_at"`
}

func (DocumentModel) TableName() string { return "internship_documents" }
