package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type VacancyType string

const (
	VacancyTypeInternship VacancyType = "INTERNSHIP"
	VacancyTypeJob        VacancyType = "JOB"
)

type JobVacancyModel struct {
	VacancyID        uuid.UUID   `gorm:"column:vacancy_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vacancy_id"`
	VacancyCompanyID uuid.UUID   `gorm:"column:vacancy_company_id;type:uuid;not null;index" json:"vacancy_company_id"`
	VacancyType      VacancyType `gorm:"column:vacancy_type;type:varchar(20);not null" json:"vacancy_type"`
	VacancyStatus    string      `gorm:"column:vacancy_status;type:varchar(30);not null;default:'PENDING_APPROVAL';index" json:"vacancy_status"`

	VacancyTitle       string `gorm:"column:vacancy_title;type:varchar(160);not null" json:"vacancy_title"`
	VacancyDescription string `gorm:"column:vacancy_description;type:text;not null" json:"vacancy_description"`

	// Snapshot da empresa anunciante
	VacancyCompanyName string `gorm:"column:vacancy_company_name;type:varchar(120);not null" json:"vacancy_company_name"`
	VacancyCompanyCNPJ string `gorm:"column:vacancy_company_cnpj;type:varchar(18);not null" json:"vacancy_company_cnpj"`

	VacancyWeeklyHours     int            `gorm:"column:vacancy_weekly_hours;not null" json:"vacancy_weekly_hours"`
	VacancyMonthlyStipend  *float64       `gorm:"column:vacancy_monthly_stipend" json:"vacancy_monthly_stipend,omitempty"`
	VacancyEligibleCourses pq.StringArray `gorm:"column:vacancy_eligible_courses;type:text[];not null" json:"vacancy_eligible_courses"`

	VacancyLocation    string     `gorm:"column:vacancy_location;type:varchar(160)" json:"vacancy_location,omitempty"`
	VacancyOpeningsQty int        `gorm:"column:vacancy_openings_qty;not null;default:1" json:"vacancy_openings_qty"`
	VacancyDeadline    *time.Time `gorm:"column:vacancy_deadline" json:"vacancy_deadline,omitempty"`

	VacancyRejectionReason *string    `gorm:"column:vacancy_rejection_reason;type:text" json:"vacancy_rejection_reason,omitempty"`
	VacancyRejectedAt      *time.Time `gorm:"column:vacancy_rejected_at" json:"vacancy_rejected_at,omitempty"`
	VacancyClosureReason   *string    `gorm:"column:vacancy_closure_reason;type:text" json:"vacancy_closure_reason,omitempty"`

	VacancyCreatedAt time.Time      `gorm:"column:vacancy_created_at;autoCreateTime" json:"vacancy_created_at"`
	VacancyUpdatedAt time.Time      `gorm:"column:vacancy_updated_at;autoUpdateTime" json:"vacancy_updated_at"`
	VacancyDeletedAt gorm.DeletedAt `gorm:"column:vacancy_deleted_at;index" json:"-"`
}

func (JobVacancyModel) TableName() string {
	return "job_vacancies"
}
