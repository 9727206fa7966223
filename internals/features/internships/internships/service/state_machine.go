// Package service concentra a máquina de estados do estágio.
//
// Grafo de transições válidas:
//
//	IN_ANALYSIS ──► APPROVED ──► IN_PROGRESS ──► FINISHED
//	     ▲   │           │
//	     │   └──► REJECTED ──► CANCELED (sweeper)
//	     └────────────┘  (reenvio do aluno)
//
// APPROVED ──► FINISHED também é aresta explícita: é o caminho da
// rescisão antecipada aprovada, que pode disparar antes do início.
// FINISHED e CANCELED são terminais.
package service

import (
	"fmt"
	"strings"
	"time"

	"estagios_backend/internals/features/internships/internships/model"
)

type Status string

const (
	StatusInAnalysis Status = "IN_ANALYSIS"
	StatusApproved   Status = "APPROVED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusRejected   Status = "REJECTED"
	StatusCanceled   Status = "CANCELED"
)

type InternshipType string

const (
	TypeDirect     InternshipType = "DIRECT"
	TypeIntegrator InternshipType = "INTEGRATOR"
)

// validTransitions lista todo par (from → to) permitido.
var validTransitions = map[Status][]Status{
	StatusInAnalysis: {StatusApproved, StatusRejected},
	StatusApproved:   {StatusInProgress, StatusFinished},
	StatusInProgress: {StatusFinished},
	StatusRejected:   {StatusInAnalysis, StatusCanceled},
	// FINISHED e CANCELED são terminais — sem transições de saída
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusInAnalysis, StatusApproved, StatusInProgress, StatusFinished, StatusRejected, StatusCanceled:
		return st, nil
	}
	return "", fmt.Errorf("status de estágio desconhecido %q", s)
}

func ParseInternshipType(s string) (InternshipType, error) {
	t := InternshipType(s)
	switch t {
	case TypeDirect, TypeIntegrator:
		return t, nil
	}
	return "", fmt.Errorf("tipo de estágio desconhecido %q", s)
}

// CanTransition informa se from → to é permitido pela máquina de estados.
func CanTransition(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // estado terminal
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal informa se o status não possui transições de saída.
func IsTerminal(s Status) bool {
	_, ok := validTransitions[s]
	return !ok
}

/* =========================================================
   Auto-cancelamento (sweeper)
========================================================= */

// CancellationNote é o sufixo fixo anexado ao motivo quando o sweeper
// cancela um estágio recusado após o prazo de carência.
const CancellationNote = " [Cancelado automaticamente após o prazo de reenvio expirar]"

// EligibleForAutoCancel decide se um estágio recusado já passou do corte.
// Versão em Go do WHERE usado por SweepExpiredRejected; mudou um,
// muda o outro.
func EligibleForAutoCancel(i *model.InternshipModel, cutoff time.Time) bool {
	if Status(i.InternshipStatus) != StatusRejected {
		return false
	}
	if i.InternshipRejectedAt == nil {
		return false
	}
	return !i.InternshipRejectedAt.After(cutoff)
}

// AppendCancellationNote anexa a nota fixa ao motivo da recusa, no máximo
// uma vez.
func AppendCancellationNote(reason *string) string {
	base := ""
	if reason != nil {
		base = *reason
	}
	if strings.HasSuffix(base, CancellationNote) {
		return base
	}
	return base + CancellationNote
}
