// 📁 controller/vacancy_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifService "estagios_backend/internals/features/notifications/service"
	vacancyDTO "estagios_backend/internals/features/vacancies/dto"
	vacancyModel "estagios_backend/internals/features/vacancies/model"
	vacancyService "estagios_backend/internals/features/vacancies/service"
	helper "estagios_backend/internals/helpers"
)

type VacancyController struct {
	DB       *gorm.DB
	Notifier notifService.Notifier
}

func NewVacancyController(db *gorm.DB, notifier notifService.Notifier) *VacancyController {
	if notifier == nil {
		notifier = notifService.LogNotifier{}
	}
	return &VacancyController{DB: db, Notifier: notifier}
}

var validate = validator.New()

// 🟢 CREATE: empresa cria anúncio de vaga (entra em PENDING_APPROVAL).
func (ctrl *VacancyController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req vacancyDTO.CreateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := req.ToModel(companyID)
	if err := vacancyService.ValidateCreation(v); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Create(v).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar vaga")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Vaga enviada para aprovação", v)
}

// 🟢 LIST: admin vê tudo (filtro opcional por status); empresa vê as
// suas; aluno vê apenas as aprovadas.
func (ctrl *VacancyController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&vacancyModel.JobVacancyModel{})

	switch role {
	case "ADMIN":
		if st := strings.TrimSpace(c.Query("status")); st != "" {
			parsed, err := vacancyService.ParseVacancyStatus(st)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Status de filtro inválido")
			}
			q = q.Where("vacancy_status = ?", string(parsed))
		}
	case "COMPANY":
		q = q.Where("vacancy_company_id = ?", userID)
	default:
		q = q.Where("vacancy_status = ?", string(vacancyService.StatusApproved))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao contar vagas")
	}

	var items []vacancyModel.JobVacancyModel
	if err := q.
		Order("vacancy_created_at desc").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar vagas")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(items)
	return helper.JsonList(c, "Vagas listadas", items, p)
}

// 🟢 GET BY ID: mesma visibilidade do LIST.
func (ctrl *VacancyController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var v vacancyModel.JobVacancyModel
	if err := ctrl.DB.Where("vacancy_id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vaga não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar vaga")
	}

	role, _ := helper.GetRoleFromToken(c)
	isOwner := v.VacancyCompanyID == userID
	isApproved := vacancyService.VacancyStatus(v.VacancyStatus) == vacancyService.StatusApproved
	if role != "ADMIN" && !isOwner && !isApproved {
		return helper.Error(c, fiber.StatusForbidden, "Vaga não disponível para consulta")
	}

	return helper.Success(c, "Vaga encontrada", v)
}

// 🟢 EDIT: empresa dona edita a vaga. Fora de PENDING_APPROVAL a edição
// reenvia a vaga pra análise e limpa a recusa anterior.
func (ctrl *VacancyController) Update(c *fiber.Ctx) error {
	companyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req vacancyDTO.UpdateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var v vacancyModel.JobVacancyModel

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vacancy_id = ?", id).First(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Vaga não encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar vaga")
		}
		if v.VacancyCompanyID != companyID {
			return fiber.NewError(fiber.StatusForbidden, "Você não é a empresa dona desta vaga")
		}

		from := vacancyService.VacancyStatus(v.VacancyStatus)
		if from != vacancyService.StatusPendingApproval &&
			!vacancyService.CanTransition(from, vacancyService.StatusPendingApproval) {
			return fiber.NewError(fiber.StatusConflict, "Vaga neste status não pode ser editada")
		}

		req.ApplyToModel(&v)
		if err := vacancyService.ValidateCreation(&v); err != nil {
			return err
		}

		v.VacancyStatus = string(vacancyService.StatusPendingApproval)
		v.VacancyRejectionReason = nil
		v.VacancyRejectedAt = nil
		v.VacancyUpdatedAt = time.Now()
		if err := tx.Save(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar vaga")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Vaga reenviada para aprovação", v)
}

// 🟢 DECIDE: admin aprova ou recusa uma vaga pendente.
func (ctrl *VacancyController) Decide(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req vacancyDTO.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var v vacancyModel.JobVacancyModel
	now := time.Now()

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vacancy_id = ?", id).First(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Vaga não encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar vaga")
		}

		from := vacancyService.VacancyStatus(v.VacancyStatus)

		switch req.Action {
		case "APPROVE":
			if !vacancyService.CanTransition(from, vacancyService.StatusApproved) {
				return fiber.NewError(fiber.StatusConflict, "Apenas vagas pendentes podem ser decididas")
			}
			v.VacancyStatus = string(vacancyService.StatusApproved)

		case "REJECT":
			if !vacancyService.CanTransition(from, vacancyService.StatusRejected) {
				return fiber.NewError(fiber.StatusConflict, "Apenas vagas pendentes podem ser decididas")
			}
			if req.Reason == nil || strings.TrimSpace(*req.Reason) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Motivo da recusa é obrigatório")
			}
			reason := strings.TrimSpace(*req.Reason)
			v.VacancyStatus = string(vacancyService.StatusRejected)
			v.VacancyRejectionReason = &reason
			v.VacancyRejectedAt = &now
		}

		v.VacancyUpdatedAt = now
		if err := tx.Save(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar decisão")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	if v.VacancyStatus == string(vacancyService.StatusApproved) {
		ctrl.Notifier.Notify(v.VacancyCompanyID, notifService.EventVacancyDecided,
			"Sua vaga foi aprovada e está publicada")
	} else {
		ctrl.Notifier.Notify(v.VacancyCompanyID, notifService.EventVacancyDecided,
			"Sua vaga foi recusada")
	}

	return helper.Success(c, "Decisão registrada", v)
}

// 🟢 CLOSE: empresa dona fecha (CLOSED_BY_COMPANY) ou admin fecha com
// motivo obrigatório (CLOSED_BY_ADMIN). Estados fechados são terminais.
func (ctrl *VacancyController) Close(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req vacancyDTO.CloseVacancyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
		}
	}

	var v vacancyModel.JobVacancyModel

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vacancy_id = ?", id).First(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Vaga não encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar vaga")
		}

		from := vacancyService.VacancyStatus(v.VacancyStatus)
		target := vacancyService.StatusClosedByCompany
		if helper.IsAdmin(c) {
			target = vacancyService.StatusClosedByAdmin
			if req.Reason == nil || strings.TrimSpace(*req.Reason) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Motivo do fechamento é obrigatório")
			}
		} else if v.VacancyCompanyID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Você não é a empresa dona desta vaga")
		}

		if !vacancyService.CanTransition(from, target) {
			return fiber.NewError(fiber.StatusConflict, "Vaga já está fechada")
		}

		v.VacancyStatus = string(target)
		if req.Reason != nil {
			reason := strings.TrimSpace(*req.Reason)
			if reason != "" {
				v.VacancyClosureReason = &reason
			}
		}
		v.VacancyUpdatedAt = time.Now()
		if err := tx.Save(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao fechar vaga")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Vaga fechada", v)
}

// 🟢 SWEEP: gatilho manual do fechamento automático de vagas recusadas.
func (ctrl *VacancyController) RunSweep(c *fiber.Ctx) error {
	report, err := vacancyService.SweepExpiredRejected(ctrl.DB, time.Now(), vacancyService.GracePeriodFromEnv())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha na varredura de vagas")
	}
	return helper.Success(c, "Varredura de vagas concluída", report)
}
