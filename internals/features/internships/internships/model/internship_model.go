// file: internals/features/internships/internships/model/internship_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InternshipModel é o registro de formalização de estágio. Os campos de
// aluno/empresa/termo são snapshot capturado na submissão — só mudam em
// reenvio do aluno (status IN_ANALYSIS) ou por edição aprovada do admin.
//
// Índice parcial garante no máximo um estágio IN_PROGRESS por aluno:
// uq_internships_one_in_progress_per_student.
type InternshipModel struct {
	InternshipID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:internship_id" json:"internship_id"`
	InternshipStudentID uuid.UUID `gorm:"type:uuid;not null;column:internship_student_id;index:uq_internships_one_in_progress_per_student,unique,where:internship_status = 'IN_PROGRESS'" json:"internship_student_id"`

	InternshipStatus string `gorm:"type:varchar(16);not null;default:'IN_ANALYSIS';column:internship_status" json:"internship_status"`
	InternshipType   string `gorm:"type:varchar(16);not null;column:internship_type" json:"internship_type"`

	// Snapshot — aluno
	InternshipStudentName    string  `gorm:"type:varchar(120);not null;column:internship_student_name" json:"internship_student_name"`
	InternshipStudentCPF     string  `gorm:"type:varchar(14);not null;column:internship_student_cpf" json:"internship_student_cpf"`
	InternshipStudentPhone   *string `gorm:"type:varchar(20);column:internship_student_phone" json:"internship_student_phone,omitempty"`
	InternshipStudentAddress *string `gorm:"type:text;column:internship_student_address" json:"internship_student_address,omitempty"`
	InternshipStudentCourse  *string `gorm:"type:varchar(120);column:internship_student_course" json:"internship_student_course,omitempty"`

	// Snapshot — empresa
	InternshipCompanyName    string  `gorm:"type:varchar(160);not null;column:internship_company_name" json:"internship_company_name"`
	InternshipCompanyCNPJ    string  `gorm:"type:varchar(18);not null;column:internship_company_cnpj" json:"internship_company_cnpj"`
	InternshipCompanyAddress *string `gorm:"type:text;column:internship_company_address" json:"internship_company_address,omitempty"`

	// Snapshot — supervisão
	InternshipSupervisorName    *string `gorm:"type:varchar(120);column:internship_supervisor_name" json:"internship_supervisor_name,omitempty"`
	InternshipSupervisorContact *string `gorm:"type:varchar(160);column:internship_supervisor_contact" json:"internship_supervisor_contact,omitempty"`
	InternshipAdvisorName       *string `gorm:"type:varchar(120);column:internship_advisor_name" json:"internship_advisor_name,omitempty"`
	InternshipAdvisorContact    *string `gorm:"type:varchar(160);column:internship_advisor_contact" json:"internship_advisor_contact,omitempty"`

	// Snapshot — vigência e jornada
	InternshipStartDate    *time.Time     `gorm:"type:date;column:internship_start_date" json:"internship_start_date,omitempty"`
	InternshipEndDate      *time.Time     `gorm:"type:date;column:internship_end_date" json:"internship_end_date,omitempty"`
	InternshipWeeklyHours  *int           `gorm:"column:internship_weekly_hours" json:"internship_weekly_hours,omitempty"`
	InternshipWorkSchedule datatypes.JSON `gorm:"type:jsonb;column:internship_work_schedule" json:"internship_work_schedule,omitempty"`

	// Snapshot — bolsa
	InternshipMonthlyGrant       *float64 `gorm:"type:numeric(10,2);column:internship_monthly_grant" json:"internship_monthly_grant,omitempty"`
	InternshipTransportAllowance *float64 `gorm:"type:numeric(10,2);column:internship_transport_allowance" json:"internship_transport_allowance,omitempty"`

	// Snapshot — seguro de vida (obrigatório antes de aceitar apólice)
	InternshipInsuranceCompany      *string    `gorm:"type:varchar(160);column:internship_insurance_company" json:"internship_insurance_company,omitempty"`
	InternshipInsurancePolicyNumber *string    `gorm:"type:varchar(60);column:internship_insurance_policy_number" json:"internship_insurance_policy_number,omitempty"`
	InternshipInsuranceCNPJ         *string    `gorm:"type:varchar(18);column:internship_insurance_cnpj" json:"internship_insurance_cnpj,omitempty"`
	InternshipInsuranceValidFrom    *time.Time `gorm:"type:date;column:internship_insurance_valid_from" json:"internship_insurance_valid_from,omitempty"`
	InternshipInsuranceValidUntil   *time.Time `gorm:"type:date;column:internship_insurance_valid_until" json:"internship_insurance_valid_until,omitempty"`

	// Recusa
	InternshipRejectionReason *string    `gorm:"type:text;column:internship_rejection_reason" json:"internship_rejection_reason,omitempty"`
	InternshipRejectedAt      *time.Time `gorm:"type:timestamptz;column:internship_rejected_at" json:"internship_rejected_at,omitempty"`

	// Rescisão antecipada.
	// Invariante: early_termination_approved não-nulo ⟺ early_termination_handled_at não-nulo.
	InternshipEarlyTerminationRequested       bool       `gorm:"not null;default:false;column:internship_early_termination_requested" json:"internship_early_termination_requested"`
	InternshipEarlyTerminationReason          *string    `gorm:"type:text;column:internship_early_termination_reason" json:"internship_early_termination_reason,omitempty"`
	InternshipEarlyTerminationApproved        *bool      `gorm:"column:internship_early_termination_approved" json:"internship_early_termination_approved,omitempty"`
	InternshipEarlyTerminationHandledAt       *time.Time `gorm:"type:timestamptz;column:internship_early_termination_handled_at" json:"internship_early_termination_handled_at,omitempty"`
	InternshipEarlyTerminationRejectionReason *string    `gorm:"type:text;column:internship_early_termination_rejection_reason" json:"internship_early_termination_rejection_reason,omitempty"`

	InternshipCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:internship_created_at" json:"internship_created_at"`
	InternshipUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:internship_updated_at" json:"internship_updated_at"`
}

func (InternshipModel) TableName() string { return "internships" }
