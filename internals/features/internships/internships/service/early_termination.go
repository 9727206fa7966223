// file: internals/features/internships/internships/service/early_termination.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"estagios_backend/internals/features/internships/internships/model"
)

/* =========================================================
   Sub-máquina de rescisão antecipada
   none (requested=false) → pending (requested, approved=null)
   → decided (requested, approved ∈ {true,false})
========================================================= */

type ETState string

const (
	ETStateNone    ETState = "none"
	ETStatePending ETState = "pending"
	ETStateDecided ETState = "decided"
)

// EarlyTerminationState deriva o estado da sub-máquina dos campos do registro.
func EarlyTerminationState(i *model.InternshipModel) ETState {
	if !i.InternshipEarlyTerminationRequested {
		return ETStateNone
	}
	if i.InternshipEarlyTerminationApproved == nil {
		return ETStatePending
	}
	return ETStateDecided
}

// ApplyEarlyTerminationRequest valida e aplica o pedido do aluno.
// Pré-condições: estado none e estágio fora de {CANCELED, FINISHED}.
func ApplyEarlyTerminationRequest(i *model.InternshipModel, reason string) error {
	status := Status(i.InternshipStatus)
	if status == StatusCanceled || status == StatusFinished {
		return fiber.NewError(fiber.StatusConflict, "Estágio encerrado não aceita pedido de rescisão")
	}
	if EarlyTerminationState(i) != ETStateNone {
		return fiber.NewError(fiber.StatusConflict, "Já existe um pedido de rescisão em aberto")
	}

	i.InternshipEarlyTerminationRequested = true
	i.InternshipEarlyTerminationReason = &reason
	// limpa decisão anterior (approved e handled_at andam juntos)
	i.InternshipEarlyTerminationApproved = nil
	i.InternshipEarlyTerminationHandledAt = nil
	i.InternshipEarlyTerminationRejectionReason = nil
	return nil
}

// ApplyEarlyTerminationApproval aprova o pedido pendente: move o status
// principal direto para FINISHED (aresta explícita da máquina primária,
// válida a partir de APPROVED ou IN_PROGRESS) e grava a decisão.
func ApplyEarlyTerminationApproval(i *model.InternshipModel, now time.Time) error {
	if EarlyTerminationState(i) != ETStatePending {
		return fiber.NewError(fiber.StatusConflict, "Não há pedido de rescisão pendente")
	}
	from := Status(i.InternshipStatus)
	if !CanTransition(from, StatusFinished) {
		return fiber.NewError(fiber.StatusConflict, "Status atual não permite encerrar o estágio")
	}

	approved := true
	i.InternshipStatus = string(StatusFinished)
	i.InternshipEarlyTerminationApproved = &approved
	i.InternshipEarlyTerminationHandledAt = &now
	return nil
}

// ApplyEarlyTerminationRejection recusa o pedido pendente: o status
// principal fica intacto e requested volta pra false, liberando um novo
// pedido no futuro.
func ApplyEarlyTerminationRejection(i *model.InternshipModel, rejectionReason string, now time.Time) error {
	if EarlyTerminationState(i) != ETStatePending {
		return fiber.NewError(fiber.StatusConflict, "Não há pedido de rescisão pendente")
	}

	approved := false
	i.InternshipEarlyTerminationRequested = false
	i.InternshipEarlyTerminationApproved = &approved
	i.InternshipEarlyTerminationHandledAt = &now
	i.InternshipEarlyTerminationRejectionReason = &rejectionReason
	return nil
}
