package dto

import (
	"estagios_backend/internals/features/internships/documents/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// UploadDocumentRequest — o arquivo vai no multipart (campo "file");
// o tipo vem como campo de formulário.
type UploadDocumentRequest struct {
	DocumentType string `json:"document_type" form:"document_type" validate:"required"`
}

// ModerateDocumentRequest — decisão do admin sobre um documento.
// REJECTED exige comentários não-vazios.
type ModerateDocumentRequest struct {
	Action   string  `json:"action" validate:"required,oneof=APPROVED REJECTED"`
	Comments *string `json:"comments" validate:"omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type DocumentResponse = model.DocumentModel
