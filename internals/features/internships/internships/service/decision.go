// file: internals/features/internships/internships/service/decision.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
)

// ApplyDecision aplica em memória a decisão do admin sobre um pedido em
// análise. APPROVE fica bloqueado enquanto houver SIGNED_CONTRACT com
// arquivo aguardando análise; REJECT exige motivo e grava o timestamp que
// o sweeper usa como referência. O chamador persiste o modelo na mesma
// transação em que carregou estágio e documentos.
func ApplyDecision(i *internshipModel.InternshipModel, docs []docModel.DocumentModel,
	action string, reason *string, now time.Time) error {

	from := Status(i.InternshipStatus)

	switch action {
	case "APPROVE":
		if !CanTransition(from, StatusApproved) {
			return fiber.NewError(fiber.StatusConflict, "Apenas pedidos em análise podem ser decididos")
		}
		if HasBlockingSignedContract(docs) {
			return fiber.NewError(fiber.StatusConflict,
				"Há um contrato assinado aguardando análise; decida o documento primeiro")
		}
		i.InternshipStatus = string(StatusApproved)

	case "REJECT":
		if !CanTransition(from, StatusRejected) {
			return fiber.NewError(fiber.StatusConflict, "Apenas pedidos em análise podem ser decididos")
		}
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Motivo da recusa é obrigatório")
		}
		trimmed := strings.TrimSpace(*reason)
		i.InternshipStatus = string(StatusRejected)
		i.InternshipRejectionReason = &trimmed
		i.InternshipRejectedAt = &now

	default:
		return fiber.NewError(fiber.StatusBadRequest, "Ação de decisão inválida")
	}

	i.InternshipUpdatedAt = now
	return nil
}
