package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"estagios_backend/internals/features/vacancies/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateVacancyRequest struct {
	VacancyType       string     `json:"vacancy_type" validate:"required,oneof=INTERNSHIP JOB"`
	Title             string     `json:"title" validate:"required,min=5,max=160"`
	Description       string     `json:"description" validate:"required,min=10"`
	CompanyName       string     `json:"company_name" validate:"required,max=120"`
	CompanyCNPJ       string     `json:"company_cnpj" validate:"required,max=18"`
	WeeklyHours       int        `json:"weekly_hours" validate:"required,gt=0"`
	MonthlyStipend    *float64   `json:"monthly_stipend" validate:"omitempty,gte=0"`
	EligibleCourses   []string   `json:"eligible_courses" validate:"required,min=1,dive,required"`
	Location          *string    `json:"location" validate:"omitempty,max=160"`
	OpeningsQty       int        `json:"openings_qty" validate:"omitempty,gte=1"`
	ApplicationsUntil *time.Time `json:"applications_until"`
}

func (r *CreateVacancyRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.CompanyCNPJ = strings.TrimSpace(r.CompanyCNPJ)
	r.Location = trimPtr(r.Location)

	cleaned := make([]string, 0, len(r.EligibleCourses))
	for _, course := range r.EligibleCourses {
		if c := strings.TrimSpace(course); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	r.EligibleCourses = cleaned
}

func (r *CreateVacancyRequest) ToModel(companyID uuid.UUID) *model.JobVacancyModel {
	openings := r.OpeningsQty
	if openings < 1 {
		openings = 1
	}
	v := &model.JobVacancyModel{
		VacancyCompanyID:       companyID,
		VacancyType:            model.VacancyType(r.VacancyType),
		VacancyStatus:          "PENDING_APPROVAL",
		VacancyTitle:           r.Title,
		VacancyDescription:     r.Description,
		VacancyCompanyName:     r.CompanyName,
		VacancyCompanyCNPJ:     r.CompanyCNPJ,
		VacancyWeeklyHours:     r.WeeklyHours,
		VacancyMonthlyStipend:  r.MonthlyStipend,
		VacancyEligibleCourses: pq.StringArray(r.EligibleCourses),
		VacancyOpeningsQty:     openings,
		VacancyDeadline:        r.ApplicationsUntil,
	}
	if r.Location != nil {
		v.VacancyLocation = *r.Location
	}
	return v
}

// UpdateVacancyRequest é parcial: só os campos presentes são aplicados.
type UpdateVacancyRequest struct {
	Title             *string    `json:"title" validate:"omitempty,min=5,max=160"`
	Description       *string    `json:"description" validate:"omitempty,min=10"`
	WeeklyHours       *int       `json:"weekly_hours" validate:"omitempty,gt=0"`
	MonthlyStipend    *float64   `json:"monthly_stipend" validate:"omitempty,gte=0"`
	EligibleCourses   []string   `json:"eligible_courses" validate:"omitempty,min=1,dive,required"`
	Location          *string    `json:"location" validate:"omitempty,max=160"`
	OpeningsQty       *int       `json:"openings_qty" validate:"omitempty,gte=1"`
	ApplicationsUntil *time.Time `json:"applications_until"`
}

func (r *UpdateVacancyRequest) ApplyToModel(v *model.JobVacancyModel) {
	if t := trimPtr(r.Title); t != nil {
		v.VacancyTitle = *t
	}
	if d := trimPtr(r.Description); d != nil {
		v.VacancyDescription = *d
	}
	if r.WeeklyHours != nil {
		v.VacancyWeeklyHours = *r.WeeklyHours
	}
	if r.MonthlyStipend != nil {
		v.VacancyMonthlyStipend = r.MonthlyStipend
	}
	if len(r.EligibleCourses) > 0 {
		cleaned := make([]string, 0, len(r.EligibleCourses))
		for _, course := range r.EligibleCourses {
			if c := strings.TrimSpace(course); c != "" {
				cleaned = append(cleaned, c)
			}
		}
		v.VacancyEligibleCourses = pq.StringArray(cleaned)
	}
	if l := trimPtr(r.Location); l != nil {
		v.VacancyLocation = *l
	}
	if r.OpeningsQty != nil {
		v.VacancyOpeningsQty = *r.OpeningsQty
	}
	if r.ApplicationsUntil != nil {
		v.VacancyDeadline = r.ApplicationsUntil
	}
}

// DecisionRequest é a decisão do admin sobre uma vaga pendente.
type DecisionRequest struct {
	Action string  `json:"action" validate:"required,oneof=APPROVE REJECT"`
	Reason *string `json:"reason" validate:"omitempty"`
}

// CloseVacancyRequest fecha uma vaga; motivo obrigatório quando o
// fechamento é administrativo.
type CloseVacancyRequest struct {
	Reason *string `json:"reason" validate:"omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type VacancyResponse = model.JobVacancyModel
