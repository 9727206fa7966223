// 📁 controller/internship_controller.go
package controller

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipDTO "estagios_backend/internals/features/internships/internships/dto"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
	internshipService "estagios_backend/internals/features/internships/internships/service"
	notifService "estagios_backend/internals/features/notifications/service"
	helper "estagios_backend/internals/helpers"
	ossHelper "estagios_backend/internals/helpers/oss"
)

type InternshipController struct {
	DB       *gorm.DB
	Blob     ossHelper.BlobService
	Notifier notifService.Notifier
}

func NewInternshipController(db *gorm.DB, blob ossHelper.BlobService, notifier notifService.Notifier) *InternshipController {
	if notifier == nil {
		notifier = notifService.LogNotifier{}
	}
	return &InternshipController{DB: db, Blob: blob, Notifier: notifier}
}

var validate = validator.New()

// gormDocumentWriter adapta o tx do GORM pra escrita de documentos da
// submissão.
type gormDocumentWriter struct{ tx *gorm.DB }

func (w gormDocumentWriter) CreateDocument(d *docModel.DocumentModel) error {
	return w.tx.Create(d).Error
}

// parseJSONPayload aceita JSON puro ou multipart com o campo "data"
// (usado quando a submissão carrega arquivos junto).
func parseJSONPayload(c *fiber.Ctx, dst interface{}) error {
	ct := c.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		raw := c.FormValue("data")
		if strings.TrimSpace(raw) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Campo 'data' ausente no multipart")
		}
		if err := sonic.Unmarshal([]byte(raw), dst); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
		}
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	return nil
}

// 🟢 SUBMIT: aluno cria o pedido de formalização (status IN_ANALYSIS).
// INTEGRATOR exige TCE + PAE no mesmo multipart; o slot de LIFE_INSURANCE
// é sempre garantido (placeholder sem arquivo quando não enviado).
// Criação do estágio + documentos é uma unidade atômica.
func (ctrl *InternshipController) Submit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req internshipDTO.CreateInternshipRequest
	if err := parseJSONPayload(c, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := internshipService.ParseInternshipType(req.InternshipType); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Tipo de estágio inválido")
	}

	m := req.ToModel(studentID)
	m.InternshipStatus = string(internshipService.StatusInAnalysis)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// invariante: no máximo um estágio IN_PROGRESS por aluno
		var cnt int64
		if err := tx.Model(&internshipModel.InternshipModel{}).
			Where("internship_student_id = ? AND internship_status = ?",
				studentID, string(internshipService.StatusInProgress)).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao checar estágio ativo")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Você já possui um estágio em andamento")
		}

		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar estágio")
		}

		// documentos na mesma transação: falha de upload desfaz tudo
		return internshipService.CreateSubmissionDocuments(
			c.UserContext(), gormDocumentWriter{tx}, ctrl.Blob, &m,
			func(field string) *multipart.FileHeader {
				return ossHelper.GetDocumentFile(c, field)
			})
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pedido de estágio enviado para análise", m)
}

// 🟢 DECIDE: admin aprova ou recusa um pedido IN_ANALYSIS.
// Aprovação fica bloqueada enquanto houver SIGNED_CONTRACT com arquivo
// aguardando análise.
func (ctrl *InternshipController) Decide(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req internshipDTO.DecisionRequest
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

		var docs []docModel.DocumentModel
		if err := tx.Where("document_internship_id = ?", m.InternshipID).Find(&docs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar documentos")
		}

		if err := internshipService.ApplyDecision(&m, docs, req.Action, req.Reason, now); err != nil {
			return err
		}

		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar decisão")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	if m.InternshipStatus == string(internshipService.StatusApproved) {
		ctrl.Notifier.Notify(m.InternshipStudentID, notifService.EventInternshipApproved,
			"Seu pedido de estágio foi aprovado")
	} else {
		ctrl.Notifier.Notify(m.InternshipStudentID, notifService.EventInternshipRejected,
			"Seu pedido de estágio foi recusado")
	}

	return helper.Success(c, "Decisão registrada", m)
}

// 🟢 RESUBMIT/EDIT: aluno dono atualiza o snapshot e/ou substitui o
// seguro de vida; status volta pra IN_ANALYSIS e a recusa é limpa.
func (ctrl *InternshipController) Update(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req internshipDTO.UpdateInternshipRequest
	if err := parseJSONPayload(c, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var replacedFileURL string
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

		from := internshipService.Status(m.InternshipStatus)
		if from != internshipService.StatusInAnalysis &&
			!internshipService.CanTransition(from, internshipService.StatusInAnalysis) {
			return fiber.NewError(fiber.StatusConflict, "Estágio neste status não pode ser reenviado")
		}

		req.ApplyToModel(&m)

		// substituição do seguro de vida (opcional)
		if fh := ossHelper.GetDocumentFile(c, "life_insurance"); fh != nil {
			if !internshipService.HasInsuranceMetadata(&m) {
				return fiber.NewError(fiber.StatusBadRequest,
					"Preencha os dados da apólice antes de enviar o arquivo do seguro")
			}
			url, _, err := ctrl.Blob.UploadDocument(c.UserContext(), "internships/"+m.InternshipID.String(), fh)
			if err != nil {
				return err
			}

			var doc docModel.DocumentModel
			err = tx.Where("document_internship_id = ? AND document_type = ?",
				m.InternshipID, docModel.DocTypeLifeInsurance).First(&doc).Error
			switch {
			case err == nil:
				if doc.DocumentFileURL != nil {
					replacedFileURL = *doc.DocumentFileURL
				}
				doc.DocumentFileURL = &url
				doc.DocumentFileName = &fh.Filename
				doc.DocumentStatus = docModel.DocStatusPendingAnalysis
				doc.DocumentRejectionComments = nil
				doc.DocumentUpdatedAt = time.Now()
				if err := tx.Save(&doc).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar documento")
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				doc = docModel.DocumentModel{
					DocumentInternshipID: m.InternshipID,
					DocumentType:         docModel.DocTypeLifeInsurance,
					DocumentStatus:       docModel.DocStatusPendingAnalysis,
					DocumentFileURL:      &url,
					DocumentFileName:     &fh.Filename,
				}
				if err := tx.Create(&doc).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar documento")
				}
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar documento")
			}
		}

		m.InternshipStatus = string(internshipService.StatusInAnalysis)
		m.InternshipRejectionReason = nil
		m.InternshipRejectedAt = nil
		m.InternshipUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar estágio")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	// remoção do arquivo antigo só depois do commit (best-effort, logado)
	if replacedFileURL != "" {
		ossHelper.DeleteOrLogOrphan(c.UserContext(), ctrl.Blob, replacedFileURL)
	}

	return helper.Success(c, "Estágio reenviado para análise", m)
}

// 🟢 START: admin inicia um estágio APPROVED quando o gate de documentos
// obrigatórios (contrato assinado + seguro) está todo APPROVED.
func (ctrl *InternshipController) Start(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m internshipModel.InternshipModel

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("internship_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Estágio não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar estágio")
		}

		from := internshipService.Status(m.InternshipStatus)
		if !internshipService.CanTransition(from, internshipService.StatusInProgress) {
			return fiber.NewError(fiber.StatusConflict, "Apenas estágios aprovados podem ser iniciados")
		}

		var docs []docModel.DocumentModel
		if err := tx.Where("document_internship_id = ?", m.InternshipID).Find(&docs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar documentos")
		}
		iType, _ := internshipService.ParseInternshipType(m.InternshipType)
		if missing := internshipService.MissingForStart(iType, docs); len(missing) > 0 {
			names := make([]string, len(missing))
			for i, t := range missing {
				names[i] = string(t)
			}
			return fiber.NewError(fiber.StatusConflict,
				"Documentos obrigatórios pendentes: "+strings.Join(names, ", "))
		}

		m.InternshipStatus = string(internshipService.StatusInProgress)
		m.InternshipUpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "uq_internships_one_in_progress_per_student") ||
				strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Aluno já possui um estágio em andamento")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao iniciar estágio")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	ctrl.Notifier.Notify(m.InternshipStudentID, notifService.EventInternshipStarted,
		"Seu estágio foi iniciado")

	return helper.Success(c, "Estágio iniciado", m)
}

// 🟢 GET BY ID: dono ou admin; inclui documentos + pendências.
func (ctrl *InternshipController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m internshipModel.InternshipModel
	if err := ctrl.DB.Where("internship_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Estágio não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar estágio")
	}

	if !helper.IsAdmin(c) && m.InternshipStudentID != userID {
		return helper.Error(c, fiber.StatusForbidden, "Você não é o dono deste estágio")
	}

	var docs []docModel.DocumentModel
	if err := ctrl.DB.
		Where("document_internship_id = ?", m.InternshipID).
		Order("document_updated_at desc").
		Find(&docs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar documentos")
	}

	iType, _ := internshipService.ParseInternshipType(m.InternshipType)
	resp := internshipDTO.InternshipResponse{
		InternshipModel:  m,
		Documents:        docs,
		MissingDocuments: internshipService.MissingForStart(iType, docs),
	}
	return helper.Success(c, "Estágio encontrado", resp)
}

// 🟢 LIST: admin vê tudo (filtro opcional por status); aluno vê os seus.
func (ctrl *InternshipController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&internshipModel.InternshipModel{})

	if helper.IsAdmin(c) {
		if st := strings.TrimSpace(c.Query("status")); st != "" {
			parsed, err := internshipService.ParseStatus(st)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Status de filtro inválido")
			}
			q = q.Where("internship_status = ?", string(parsed))
		}
	} else {
		q = q.Where("internship_student_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao contar estágios")
	}

	var items []internshipModel.InternshipModel
	if err := q.
		Order("internship_created_at desc").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar estágios")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(items)
	return helper.JsonList(c, "Estágios listados", items, p)
}
