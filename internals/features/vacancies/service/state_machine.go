// Package service concentra as regras de negócio das vagas.
//
// Grafo de transições:
//
//	PENDING_APPROVAL ──► APPROVED
//	       ▲   │             │
//	       │   └─► REJECTED ─┤ (edição da empresa reenvia pra análise,
//	       │        │   │    │  a partir de REJECTED ou APPROVED)
//	       └────────┘   ▼    ▼
//	  CLOSED_BY_COMPANY / CLOSED_BY_ADMIN  (terminais)
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"estagios_backend/internals/features/vacancies/model"
)

type VacancyStatus string

const (
	StatusPendingApproval VacancyStatus = "PENDING_APPROVAL"
	StatusApproved        VacancyStatus = "APPROVED"
	StatusRejected        VacancyStatus = "REJECTED"
	StatusClosedByCompany VacancyStatus = "CLOSED_BY_COMPANY"
	StatusClosedByAdmin   VacancyStatus = "CLOSED_BY_ADMIN"
)

// ClosureNote é a nota fixa anexada no fechamento automático de vagas
// recusadas que passaram do prazo de reedição.
const ClosureNote = "Fechada automaticamente após o prazo de reedição expirar"

// MaxInternshipWeeklyHours limita a carga horária de vagas de estágio.
const MaxInternshipWeeklyHours = 30

var validTransitions = map[VacancyStatus][]VacancyStatus{
	StatusPendingApproval: {StatusApproved, StatusRejected, StatusClosedByCompany, StatusClosedByAdmin},
	StatusApproved:        {StatusPendingApproval, StatusClosedByCompany, StatusClosedByAdmin},
	StatusRejected:        {StatusPendingApproval, StatusClosedByCompany, StatusClosedByAdmin},
	StatusClosedByCompany: {},
	StatusClosedByAdmin:   {},
}

func ParseVacancyStatus(s string) (VacancyStatus, error) {
	switch VacancyStatus(s) {
	case StatusPendingApproval, StatusApproved, StatusRejected,
		StatusClosedByCompany, StatusClosedByAdmin:
		return VacancyStatus(s), nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "Status de vaga inválido: "+s)
}

func CanTransition(from, to VacancyStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsClosed(s VacancyStatus) bool {
	return len(validTransitions[s]) == 0
}

// ValidateCreation aplica os invariantes de criação: pelo menos um curso
// elegível e, para vagas de estágio, no máximo 30h semanais.
func ValidateCreation(v *model.JobVacancyModel) error {
	if len(v.VacancyEligibleCourses) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Informe pelo menos um curso elegível")
	}
	if v.VacancyWeeklyHours <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Carga horária semanal deve ser positiva")
	}
	if v.VacancyType == model.VacancyTypeInternship && v.VacancyWeeklyHours > MaxInternshipWeeklyHours {
		return fiber.NewError(fiber.StatusBadRequest, "Vaga de estágio não pode exceder 30 horas semanais")
	}
	return nil
}

// EligibleForAutoClose diz se uma vaga recusada já passou do prazo.
// Versão em Go do WHERE usado por SweepExpiredRejected; mudou um,
// muda o outro.
func EligibleForAutoClose(v *model.JobVacancyModel, cutoff time.Time) bool {
	return VacancyStatus(v.VacancyStatus) == StatusRejected &&
		!v.VacancyUpdatedAt.After(cutoff)
}
