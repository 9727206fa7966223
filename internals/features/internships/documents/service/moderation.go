// file: internals/features/internships/documents/service/moderation.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"estagios_backend/internals/features/internships/documents/model"
)

// ApplyModeration aplica a decisão do admin mantendo o invariante
// comments não-nulo ⟺ status REJECTED.
func ApplyModeration(d *model.DocumentModel, action string, comments *string, now time.Time) error {
	if d.DocumentStatus != model.DocStatusPendingAnalysis {
		return fiber.NewError(fiber.StatusConflict, "Documento já foi analisado")
	}

	switch action {
	case string(model.DocStatusApproved):
		d.DocumentStatus = model.DocStatusApproved
		d.DocumentRejectionComments = nil
	case string(model.DocStatusRejected):
		if comments == nil || strings.TrimSpace(*comments) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Comentários são obrigatórios na recusa")
		}
		trimmed := strings.TrimSpace(*comments)
		d.DocumentStatus = model.DocStatusRejected
		d.DocumentRejectionComments = &trimmed
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Ação de moderação inválida")
	}

	d.DocumentUpdatedAt = now
	return nil
}

// ResetForReupload prepara o registro pra substituição de arquivo:
// status volta pra análise e os comentários são limpos.
func ResetForReupload(d *model.DocumentModel, fileURL, fileName string, now time.Time) {
	d.DocumentFileURL = &fileURL
	d.DocumentFileName = &fileName
	d.DocumentStatus = model.DocStatusPendingAnalysis
	d.DocumentRejectionComments = nil
	d.DocumentUpdatedAt = now
}
