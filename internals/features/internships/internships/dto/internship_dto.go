// file: internals/features/internships/internships/dto/internship_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	docModel "estagios_backend/internals/features/internships/documents/model"
	"estagios_backend/internals/features/internships/internships/model"
)

/* =========================================================
   Helpers
========================================================= */

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

/* =========================================================
   1) REQUEST DTO
========================================================= */

// CreateInternshipRequest — submissão do aluno.
// INTEGRATOR exige os arquivos TCE e PAE no mesmo multipart da criação.
type CreateInternshipRequest struct {
	InternshipType string `json:"internship_type" validate:"required,oneof=DIRECT INTEGRATOR"`

	InternshipStudentName    string  `json:"internship_student_name" validate:"required,max=120"`
	InternshipStudentCPF     string  `json:"internship_student_cpf" validate:"required,max=14"`
	InternshipStudentPhone   *string `json:"internship_student_phone" validate:"omitempty,max=20"`
	InternshipStudentAddress *string `json:"internship_student_address" validate:"omitempty"`
	InternshipStudentCourse  *string `json:"internship_student_course" validate:"omitempty,max=120"`

	InternshipCompanyName    string  `json:"internship_company_name" validate:"required,max=160"`
	InternshipCompanyCNPJ    string  `json:"internship_company_cnpj" validate:"required,max=18"`
	InternshipCompanyAddress *string `json:"internship_company_address" validate:"omitempty"`

	InternshipSupervisorName    *string `json:"internship_supervisor_name" validate:"omitempty,max=120"`
	InternshipSupervisorContact *string `json:"internship_supervisor_contact" validate:"omitempty,max=160"`
	InternshipAdvisorName       *string `json:"internship_advisor_name" validate:"omitempty,max=120"`
	InternshipAdvisorContact    *string `json:"internship_advisor_contact" validate:"omitempty,max=160"`

	InternshipStartDate    *time.Time     `json:"internship_start_date" validate:"omitempty"`
	InternshipEndDate      *time.Time     `json:"internship_end_date" validate:"omitempty"`
	InternshipWeeklyHours  *int           `json:"internship_weekly_hours" validate:"omitempty,min=1,max=40"`
	InternshipWorkSchedule datatypes.JSON `json:"internship_work_schedule" validate:"omitempty"`

	InternshipMonthlyGrant       *float64 `json:"internship_monthly_grant" validate:"omitempty,min=0"`
	InternshipTransportAllowance *float64 `json:"internship_transport_allowance" validate:"omitempty,min=0"`

	InternshipInsuranceCompany      *string    `json:"internship_insurance_company" validate:"omitempty,max=160"`
	InternshipInsurancePolicyNumber *string    `json:"internship_insurance_policy_number" validate:"omitempty,max=60"`
	InternshipInsuranceCNPJ         *string    `json:"internship_insurance_cnpj" validate:"omitempty,max=18"`
	InternshipInsuranceValidFrom    *time.Time `json:"internship_insurance_valid_from" validate:"omitempty"`
	InternshipInsuranceValidUntil   *time.Time `json:"internship_insurance_valid_until" validate:"omitempty"`
}

// Normalize — trim básico nos campos texto
func (r *CreateInternshipRequest) Normalize() {
	r.InternshipStudentName = strings.TrimSpace(r.InternshipStudentName)
	r.InternshipStudentCPF = strings.TrimSpace(r.InternshipStudentCPF)
	r.InternshipCompanyName = strings.TrimSpace(r.InternshipCompanyName)
	r.InternshipCompanyCNPJ = strings.TrimSpace(r.InternshipCompanyCNPJ)
	r.InternshipStudentPhone = trimPtr(r.InternshipStudentPhone)
	r.InternshipStudentAddress = trimPtr(r.InternshipStudentAddress)
	r.InternshipStudentCourse = trimPtr(r.InternshipStudentCourse)
	r.InternshipCompanyAddress = trimPtr(r.InternshipCompanyAddress)
	r.InternshipSupervisorName = trimPtr(r.InternshipSupervisorName)
	r.InternshipSupervisorContact = trimPtr(r.InternshipSupervisorContact)
	r.InternshipAdvisorName = trimPtr(r.InternshipAdvisorName)
	r.InternshipAdvisorContact = trimPtr(r.InternshipAdvisorContact)
	r.InternshipInsuranceCompany = trimPtr(r.InternshipInsuranceCompany)
	r.InternshipInsurancePolicyNumber = trimPtr(r.InternshipInsurancePolicyNumber)
	r.InternshipInsuranceCNPJ = trimPtr(r.InternshipInsuranceCNPJ)
}

// ToModel — converte pra model (status inicial é responsabilidade do controller)
func (r CreateInternshipRequest) ToModel(studentID uuid.UUID) model.InternshipModel {
	return model.InternshipModel{
		InternshipStudentID: studentID,
		InternshipType:      r.InternshipType,

		InternshipStudentName:    r.InternshipStudentName,
		InternshipStudentCPF:     r.InternshipStudentCPF,
		InternshipStudentPhone:   r.InternshipStudentPhone,
		InternshipStudentAddress: r.InternshipStudentAddress,
		InternshipStudentCourse:  r.InternshipStudentCourse,

		InternshipCompanyName:    r.InternshipCompanyName,
		InternshipCompanyCNPJ:    r.InternshipCompanyCNPJ,
		InternshipCompanyAddress: r.InternshipCompanyAddress,

		InternshipSupervisorName:    r.InternshipSupervisorName,
		InternshipSupervisorContact: r.InternshipSupervisorContact,
		InternshipAdvisorName:       r.InternshipAdvisorName,
		InternshipAdvisorContact:    r.InternshipAdvisorContact,

		InternshipStartDate:    r.InternshipStartDate,
		InternshipEndDate:      r.InternshipEndDate,
		InternshipWeeklyHours:  r.InternshipWeeklyHours,
		InternshipWorkSchedule: r.InternshipWorkSchedule,

		InternshipMonthlyGrant:       r.InternshipMonthlyGrant,
		InternshipTransportAllowance: r.InternshipTransportAllowance,

		InternshipInsuranceCompany:      r.InternshipInsuranceCompany,
		InternshipInsurancePolicyNumber: r.InternshipInsurancePolicyNumber,
		InternshipInsuranceCNPJ:         r.InternshipInsuranceCNPJ,
		InternshipInsuranceValidFrom:    r.InternshipInsuranceValidFrom,
		InternshipInsuranceValidUntil:   r.InternshipInsuranceValidUntil,
	}
}

// UpdateInternshipRequest — reenvio/edição parcial do aluno
// (ponteiros para diferenciar omit de null).
type UpdateInternshipRequest struct {
	InternshipStudentName    *string `json:"internship_student_name" validate:"omitempty,max=120"`
	InternshipStudentCPF     *string `json:"internship_student_cpf" validate:"omitempty,max=14"`
	InternshipStudentPhone   *string `json:"internship_student_phone" validate:"omitempty,max=20"`
	InternshipStudentAddress *string `json:"internship_student_address" validate:"omitempty"`
	InternshipStudentCourse  *string `json:"internship_student_course" validate:"omitempty,max=120"`

	InternshipCompanyName    *string `json:"internship_company_name" validate:"omitempty,max=160"`
	InternshipCompanyCNPJ    *string `json:"internship_company_cnpj" validate:"omitempty,max=18"`
	InternshipCompanyAddress *string `json:"internship_company_address" validate:"omitempty"`

	InternshipSupervisorName    *string `json:"internship_supervisor_name" validate:"omitempty,max=120"`
	InternshipSupervisorContact *string `json:"internship_supervisor_contact" validate:"omitempty,max=160"`
	InternshipAdvisorName       *string `json:"internship_advisor_name" validate:"omitempty,max=120"`
	InternshipAdvisorContact    *string `json:"internship_advisor_contact" validate:"omitempty,max=160"`

	InternshipStartDate    *time.Time     `json:"internship_start_date" validate:"omitempty"`
	InternshipEndDate      *time.Time     `json:"internship_end_date" validate:"omitempty"`
	InternshipWeeklyHours  *int           `json:"internship_weekly_hours" validate:"omitempty,min=1,max=40"`
	InternshipWorkSchedule datatypes.JSON `json:"internship_work_schedule" validate:"omitempty"`

	InternshipMonthlyGrant       *float64 `json:"internship_monthly_grant" validate:"omitempty,min=0"`
	InternshipTransportAllowance *float64 `json:"internship_transport_allowance" validate:"omitempty,min=0"`

	InternshipInsuranceCompany      *string    `json:"internship_insurance_company" validate:"omitempty,max=160"`
	InternshipInsurancePolicyNumber *string    `json:"internship_insurance_policy_number" validate:"omitempty,max=60"`
	InternshipInsuranceCNPJ         *string    `json:"internship_insurance_cnpj" validate:"omitempty,max=18"`
	InternshipInsuranceValidFrom    *time.Time `json:"internship_insurance_valid_from" validate:"omitempty"`
	InternshipInsuranceValidUntil   *time.Time `json:"internship_insurance_valid_until" validate:"omitempty"`
}

// ApplyToModel — aplica as mudanças parciais no snapshot existente.
func (r UpdateInternshipRequest) ApplyToModel(m *model.InternshipModel) {
	if v := trimPtr(r.InternshipStudentName); v != nil {
		m.InternshipStudentName = *v
	}
	if v := trimPtr(r.InternshipStudentCPF); v != nil {
		m.InternshipStudentCPF = *v
	}
	if r.InternshipStudentPhone != nil {
		m.InternshipStudentPhone = trimPtr(r.InternshipStudentPhone)
	}
	if r.InternshipStudentAddress != nil {
		m.InternshipStudentAddress = trimPtr(r.InternshipStudentAddress)
	}
	if r.InternshipStudentCourse != nil {
		m.InternshipStudentCourse = trimPtr(r.InternshipStudentCourse)
	}
	if v := trimPtr(r.InternshipCompanyName); v != nil {
		m.InternshipCompanyName = *v
	}
	if v := trimPtr(r.InternshipCompanyCNPJ); v != nil {
		m.InternshipCompanyCNPJ = *v
	}
	if r.InternshipCompanyAddress != nil {
		m.InternshipCompanyAddress = trimPtr(r.InternshipCompanyAddress)
	}
	if r.InternshipSupervisorName != nil {
		m.InternshipSupervisorName = trimPtr(r.InternshipSupervisorName)
	}
	if r.InternshipSupervisorContact != nil {
		m.InternshipSupervisorContact = trimPtr(r.InternshipSupervisorContact)
	}
	if r.InternshipAdvisorName != nil {
		m.InternshipAdvisorName = trimPtr(r.InternshipAdvisorName)
	}
	if r.InternshipAdvisorContact != nil {
		m.InternshipAdvisorContact = trimPtr(r.InternshipAdvisorContact)
	}
	if r.InternshipStartDate != nil {
		m.InternshipStartDate = r.InternshipStartDate
	}
	if r.InternshipEndDate != nil {
		m.InternshipEndDate = r.InternshipEndDate
	}
	if r.InternshipWeeklyHours != nil {
		m.InternshipWeeklyHours = r.InternshipWeeklyHours
	}
	if len(r.InternshipWorkSchedule) > 0 {
		m.InternshipWorkSchedule = r.InternshipWorkSchedule
	}
	if r.InternshipMonthlyGrant != nil {
		m.InternshipMonthlyGrant = r.InternshipMonthlyGrant
	}
	if r.InternshipTransportAllowance != nil {
		m.InternshipTransportAllowance = r.InternshipTransportAllowance
	}
	if r.InternshipInsuranceCompany != nil {
		m.InternshipInsuranceCompany = trimPtr(r.InternshipInsuranceCompany)
	}
	if r.InternshipInsurancePolicyNumber != nil {
		m.InternshipInsurancePolicyNumber = trimPtr(r.InternshipInsurancePolicyNumber)
	}
	if r.InternshipInsuranceCNPJ != nil {
		m.InternshipInsuranceCNPJ = trimPtr(r.InternshipInsuranceCNPJ)
	}
	if r.InternshipInsuranceValidFrom != nil {
		m.InternshipInsuranceValidFrom = r.InternshipInsuranceValidFrom
	}
	if r.InternshipInsuranceValidUntil != nil {
		m.InternshipInsuranceValidUntil = r.InternshipInsuranceValidUntil
	}
}

// DecisionRequest — decisão do admin sobre a submissão.
type DecisionRequest struct {
	Action string  `json:"action" validate:"required,oneof=APPROVE REJECT"`
	Reason *string `json:"reason" validate:"omitempty"`
}

// EarlyTerminationRequestDTO — pedido de rescisão do aluno.
type EarlyTerminationRequestDTO struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

// EarlyTerminationDecisionRequest — decisão do admin sobre a rescisão.
type EarlyTerminationDecisionRequest struct {
	Action          string  `json:"action" validate:"required,oneof=APPROVE REJECT"`
	RejectionReason *string `json:"rejection_reason" validate:"omitempty"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type InternshipResponse struct {
	model.InternshipModel
	MissingDocuments []docModel.DocumentType  `json:"missing_documents,omitempty"`
	Documents        []docModel.DocumentModel `json:"documents,omitempty"`
}
