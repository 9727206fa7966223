package service

import (
	"testing"
	"time"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
)

func timeMustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("data inválida no teste: %v", err)
	}
	return parsed
}

func doc(t docModel.DocumentType, st docModel.DocumentStatus, withFile bool) docModel.DocumentModel {
	d := docModel.DocumentModel{DocumentType: t, DocumentStatus: st}
	if withFile {
		url := "https://bucket.example.com/uploads/" + string(t) + ".pdf"
		d.DocumentFileURL = &url
	}
	return d
}

func TestRequiredForStartIsSameForBothPaths(t *testing.T) {
	want := []docModel.DocumentType{docModel.DocTypeSignedContract, docModel.DocTypeLifeInsurance}
	for _, it := range []InternshipType{TypeDirect, TypeIntegrator} {
		got := RequiredForStart(it)
		if len(got) != len(want) {
			t.Fatalf("RequiredForStart(%s): %v, esperado %v", it, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("RequiredForStart(%s): %v, esperado %v", it, got, want)
			}
		}
	}
}

func TestRequiredAtSubmission(t *testing.T) {
	if got := RequiredAtSubmission(TypeDirect); len(got) != 0 {
		t.Fatalf("DIRECT não deveria exigir documentos na submissão, veio %v", got)
	}
	got := RequiredAtSubmission(TypeIntegrator)
	if len(got) != 2 || got[0] != docModel.DocTypeTCE || got[1] != docModel.DocTypePAE {
		t.Fatalf("INTEGRATOR deveria exigir TCE+PAE, veio %v", got)
	}
}

func TestMissingForStart(t *testing.T) {
	cases := []struct {
		name    string
		docs    []docModel.DocumentModel
		missing int
	}{
		{
			"tudo aprovado libera o início",
			[]docModel.DocumentModel{
				doc(docModel.DocTypeSignedContract, docModel.DocStatusApproved, true),
				doc(docModel.DocTypeLifeInsurance, docModel.DocStatusApproved, true),
			},
			0,
		},
		{
			"seguro pendente bloqueia",
			[]docModel.DocumentModel{
				doc(docModel.DocTypeSignedContract, docModel.DocStatusApproved, true),
				doc(docModel.DocTypeLifeInsurance, docModel.DocStatusPendingAnalysis, true),
			},
			1,
		},
		{
			"documento recusado conta como pendência",
			[]docModel.DocumentModel{
				doc(docModel.DocTypeSignedContract, docModel.DocStatusRejected, true),
				doc(docModel.DocTypeLifeInsurance, docModel.DocStatusApproved, true),
			},
			1,
		},
		{
			"sem documentos faltam os dois",
			nil,
			2,
		},
		{
			"documentos extras não interferem",
			[]docModel.DocumentModel{
				doc(docModel.DocTypeTCE, docModel.DocStatusApproved, true),
				doc(docModel.DocTypePAE, docModel.DocStatusApproved, true),
			},
			2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MissingForStart(TypeDirect, tc.docs)
			if len(got) != tc.missing {
				t.Errorf("MissingForStart: %v (%d pendências), esperado %d", got, len(got), tc.missing)
			}
		})
	}
}

func TestHasBlockingSignedContract(t *testing.T) {
	pendingWithFile := []docModel.DocumentModel{
		doc(docModel.DocTypeSignedContract, docModel.DocStatusPendingAnalysis, true),
	}
	if !HasBlockingSignedContract(pendingWithFile) {
		t.Fatal("contrato pendente com arquivo deveria bloquear a aprovação")
	}

	pendingNoFile := []docModel.DocumentModel{
		doc(docModel.DocTypeSignedContract, docModel.DocStatusPendingAnalysis, false),
	}
	if HasBlockingSignedContract(pendingNoFile) {
		t.Fatal("slot sem arquivo não deveria bloquear")
	}

	approved := []docModel.DocumentModel{
		doc(docModel.DocTypeSignedContract, docModel.DocStatusApproved, true),
	}
	if HasBlockingSignedContract(approved) {
		t.Fatal("contrato aprovado não deveria bloquear")
	}
}

func TestHasInsuranceMetadata(t *testing.T) {
	company := "Seguradora X"
	policy := "AP-123"
	cnpj := "11.222.333/0001-44"
	from := timeMustParse(t, "2026-01-01")
	until := timeMustParse(t, "2026-12-31")

	full := &internshipModel.InternshipModel{
		InternshipInsuranceCompany:      &company,
		InternshipInsurancePolicyNumber: &policy,
		InternshipInsuranceCNPJ:         &cnpj,
		InternshipInsuranceValidFrom:    &from,
		InternshipInsuranceValidUntil:   &until,
	}
	if !HasInsuranceMetadata(full) {
		t.Fatal("metadados completos deveriam liberar o upload do seguro")
	}

	partial := &internshipModel.InternshipModel{
		InternshipInsuranceCompany:      &company,
		InternshipInsurancePolicyNumber: &policy,
	}
	if HasInsuranceMetadata(partial) {
		t.Fatal("metadados incompletos não deveriam liberar o upload")
	}
}
