// 📁 controller/document_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	docDTO "estagios_backend/internals/features/internships/documents/dto"
	docModel "estagios_backend/internals/features/internships/documents/model"
	docService "estagios_backend/internals/features/internships/documents/service"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
	internshipService "estagios_backend/internals/features/internships/internships/service"
	notifService "estagios_backend/internals/features/notifications/service"
	helper "estagios_backend/internals/helpers"
	ossHelper "estagios_backend/internals/helpers/oss"
)

type DocumentController struct {
	DB       *gorm.DB
	Blob     ossHelper.BlobService
	Notifier notifService.Notifier
}

func NewDocumentController(db *gorm.DB, blob ossHelper.BlobService, notifier notifService.Notifier) *DocumentController {
	if notifier == nil {
		notifier = notifService.LogNotifier{}
	}
	return &DocumentController{DB: db, Blob: blob, Notifier: notifier}
}

var validate = validator.New()

// 🟢 UPLOAD/REPLACE: aluno dono ou admin sobe um documento. Se já existir
// registro ativo do tipo, o arquivo antigo é substituído e o status volta
// pra PENDING_ANALYSIS com comentários limpos.
func (ctrl *DocumentController) Upload(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	internshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req docDTO.UploadDocumentRequest
	req.DocumentType = strings.TrimSpace(c.FormValue("document_type"))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	docType, err := docModel.ParseDocumentType(req.DocumentType)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Tipo de documento inválido")
	}

	fh := ossHelper.GetDocumentFile(c)
	if fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Arquivo não encontrado no multipart")
	}

	var replacedFileURL string
	var doc docModel.DocumentModel

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var internship internshipModel.InternshipModel
		if err := tx.Where("internship_id = ?", internshipID).First(&internship).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Estágio não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar estágio")
		}
		if !helper.IsAdmin(c) && internship.InternshipStudentID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Você não é o dono deste estágio")
		}

		// seguro de vida só aceita arquivo com os metadados da apólice no snapshot
		if docType == docModel.DocTypeLifeInsurance && !internshipService.HasInsuranceMetadata(&internship) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Preencha os dados da apólice antes de enviar o arquivo do seguro")
		}

		url, _, err := ctrl.Blob.UploadDocument(c.UserContext(), "internships/"+internshipID.String(), fh)
		if err != nil {
			return err
		}
		now := time.Now()

		err = tx.Where("document_internship_id = ? AND document_type = ?", internshipID, docType).
			First(&doc).Error
		switch {
		case err == nil:
			if doc.DocumentFileURL != nil {
				replacedFileURL = *doc.DocumentFileURL
			}
			docService.ResetForReupload(&doc, url, fh.Filename, now)
			if err := tx.Save(&doc).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar documento")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			doc = docModel.DocumentModel{
				DocumentInternshipID: internshipID,
				DocumentType:         docType,
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
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	// limpeza do arquivo substituído: best-effort com log de órfão
	if replacedFileURL != "" {
		ossHelper.DeleteOrLogOrphan(c.UserContext(), ctrl.Blob, replacedFileURL)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Documento enviado para análise", doc)
}

// 🟢 MODERATE: admin aprova/recusa um documento pendente.
func (ctrl *DocumentController) Moderate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req docDTO.ModerateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var doc docModel.DocumentModel
	var ownerID uuid.UUID

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).First(&doc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Documento não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar documento")
		}

		if err := docService.ApplyModeration(&doc, req.Action, req.Comments, time.Now()); err != nil {
			return err
		}

		if err := tx.Save(&doc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar moderação")
		}

		var internship internshipModel.InternshipModel
		if err := tx.Select("internship_student_id").
			Where("internship_id = ?", doc.DocumentInternshipID).
			First(&internship).Error; err == nil {
			ownerID = internship.InternshipStudentID
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	if ownerID != uuid.Nil {
		if doc.DocumentStatus == docModel.DocStatusApproved {
			ctrl.Notifier.Notify(ownerID, notifService.EventDocumentApproved,
				"Documento "+string(doc.DocumentType)+" aprovado")
		} else {
			ctrl.Notifier.Notify(ownerID, notifService.EventDocumentRejected,
				"Documento "+string(doc.DocumentType)+" recusado")
		}
	}

	return helper.Success(c, "Moderação registrada", doc)
}

// 🟢 LIST: documentos de um estágio, mais recentes primeiro
// (filtro opcional por tipo via ?type=).
func (ctrl *DocumentController) ListByInternship(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	internshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var internship internshipModel.InternshipModel
	if err := ctrl.DB.Where("internship_id = ?", internshipID).First(&internship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Estágio não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar estágio")
	}
	if !helper.IsAdmin(c) && internship.InternshipStudentID != userID {
		return helper.Error(c, fiber.StatusForbidden, "Você não é o dono deste estágio")
	}

	q := ctrl.DB.Where("document_internship_id = ?", internshipID)
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		docType, err := docModel.ParseDocumentType(t)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Tipo de filtro inválido")
		}
		q = q.Where("document_type = ?", docType)
	}

	var docs []docModel.DocumentModel
	if err := q.Order("document_updated_at desc").Find(&docs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar documentos")
	}

	return helper.Success(c, "Documentos listados", docs)
}
