package dto

import (
	"testing"

	"github.com/google/uuid"

	"estagios_backend/internals/features/internships/internships/model"
)

func strPtr(s string) *string { return &s }

func TestCreateRequestNormalizeAndToModel(t *testing.T) {
	req := CreateInternshipRequest{
		InternshipType:         "DIRECT",
		InternshipStudentName:  "  Maria da Silva  ",
		InternshipStudentCPF:   " 123.456.789-00 ",
		InternshipCompanyName:  " Acme LTDA ",
		InternshipCompanyCNPJ:  " 11.222.333/0001-44 ",
		InternshipStudentPhone: strPtr("   "),
	}
	req.Normalize()

	if req.InternshipStudentName != "Maria da Silva" {
		t.Errorf("nome não normalizado: %q", req.InternshipStudentName)
	}
	if req.InternshipStudentPhone != nil {
		t.Error("telefone em branco deveria virar nil")
	}

	studentID := uuid.New()
	m := req.ToModel(studentID)
	if m.InternshipStudentID != studentID {
		t.Errorf("student_id = %s, esperado %s", m.InternshipStudentID, studentID)
	}
	if m.InternshipType != "DIRECT" {
		t.Errorf("tipo = %q, esperado DIRECT", m.InternshipType)
	}
	if m.InternshipStatus != "" {
		t.Error("ToModel não deveria fixar status (responsabilidade do controller)")
	}
}

func TestUpdateRequestApplyToModelIsPartial(t *testing.T) {
	phone := "11 99999-0000"
	m := model.InternshipModel{
		InternshipStudentName:  "Maria da Silva",
		InternshipStudentCPF:   "123.456.789-00",
		InternshipCompanyName:  "Acme LTDA",
		InternshipStudentPhone: &phone,
	}

	req := UpdateInternshipRequest{
		InternshipStudentName: strPtr("  Maria S. Oliveira  "),
	}
	req.ApplyToModel(&m)

	if m.InternshipStudentName != "Maria S. Oliveira" {
		t.Errorf("nome = %q, esperado aplicado com trim", m.InternshipStudentName)
	}
	// campos ausentes no payload ficam intactos
	if m.InternshipStudentCPF != "123.456.789-00" {
		t.Errorf("CPF alterado sem estar no payload: %q", m.InternshipStudentCPF)
	}
	if m.InternshipStudentPhone == nil || *m.InternshipStudentPhone != phone {
		t.Error("telefone alterado sem estar no payload")
	}
	if m.InternshipCompanyName != "Acme LTDA" {
		t.Errorf("empresa alterada sem estar no payload: %q", m.InternshipCompanyName)
	}
}
