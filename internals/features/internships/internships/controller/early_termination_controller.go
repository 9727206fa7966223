// 📁 controller/early_termination_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	internshipDTO "estagios_backend/internals/features/internships/internships/dto"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
	internshipService "estagios_backend/internals/features/internships/internships/service"
	notifService "estagios_backend/internals/features/notifications/service"
	helper "estagios_backend/internals/helpers"
)

// 🟢 REQUEST EARLY TERMINATION: aluno dono abre pedido de rescisão.
func (ctrl *InternshipController) RequestEarlyTermination(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req internshipDTO.EarlyTerminationRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m internshipModel.InternshipModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("internship_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Estágio não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar estágio")
		}
		if m.InternshipStudentID != studentID {
			return fiber.NewError(fiber.StatusForbidden, "Você não é o dono deste estágio")
		}

		if err := internshipService.ApplyEarlyTerminationRequest(&m, req.Reason); err != nil {
			return err
		}

		m.InternshipUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar pedido")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pedido de rescisão registrado", m)
}

// 🟢 DECIDE EARLY TERMINATION: admin aprova (status vira FINISHED) ou
// recusa (status intacto; um novo pedido fica liberado).
func (ctrl *InternshipController) DecideEarlyTermination(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req internshipDTO.EarlyTerminationDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m internshipModel.InternshipModel
	now := time.Now()

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("internship_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Estágio não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar estágio")
		}

		switch req.Action {
		case "APPROVE":
			if err := internshipService.ApplyEarlyTerminationApproval(&m, now); err != nil {
				return err
			}
		case "REJECT":
			if req.RejectionReason == nil || strings.TrimSpace(*req.RejectionReason) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Motivo da recusa é obrigatório")
			}
			if err := internshipService.ApplyEarlyTerminationRejection(&m, strings.TrimSpace(*req.RejectionReason), now); err != nil {
				return err
			}
		}

		m.InternshipUpdatedAt = now
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar decisão")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	ctrl.Notifier.Notify(m.InternshipStudentID, notifService.EventEarlyTerminationDecided,
		"Seu pedido de rescisão antecipada foi decidido")

	return helper.Success(c, "Decisão de rescisão registrada", m)
}

// 🟢 SWEEP: dispara sob demanda o cancelamento em lote dos estágios
// recusados há mais que o prazo de carência (mesma rotina do scheduler).
func (ctrl *InternshipController) RunSweep(c *fiber.Ctx) error {
	report, err := internshipService.SweepExpiredRejected(ctrl.DB, time.Now(), internshipService.GracePeriodFromEnv())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao executar varredura")
	}
	return helper.Success(c, "Varredura executada", report)
}
