// file: internals/features/internships/internships/service/submission.go
package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
	ossHelper "estagios_backend/internals/helpers/oss"
)

// DocumentWriter abstrai a escrita de documentos dentro da transação de
// submissão. Em produção é o tx do GORM.
type DocumentWriter interface {
	CreateDocument(d *docModel.DocumentModel) error
}

// FileLookup localiza o arquivo multipart enviado num campo do form.
type FileLookup func(field string) *multipart.FileHeader

// CreateSubmissionDocuments cria os documentos que acompanham a submissão:
// TCE + PAE obrigatórios no caminho INTEGRATOR e o slot de LIFE_INSURANCE
// sempre garantido (placeholder sem arquivo quando não enviado).
//
// Qualquer erro de upload ou escrita volta pro chamador — rodando dentro
// de DB.Transaction, isso desfaz a criação do estágio inteiro.
func CreateSubmissionDocuments(ctx context.Context, store DocumentWriter, blob ossHelper.BlobService,
	i *internshipModel.InternshipModel, file FileLookup) error {

	iType, err := ParseInternshipType(i.InternshipType)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tipo de estágio inválido")
	}
	dir := "internships/" + i.InternshipID.String()

	for _, dt := range RequiredAtSubmission(iType) {
		fh := file(strings.ToLower(string(dt)))
		if fh == nil {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Documento %s é obrigatório na submissão via agente de integração", dt))
		}
		url, _, err := blob.UploadDocument(ctx, dir, fh)
		if err != nil {
			return err
		}
		doc := docModel.DocumentModel{
			DocumentInternshipID: i.InternshipID,
			DocumentType:         dt,
			DocumentStatus:       docModel.DocStatusPendingAnalysis,
			DocumentFileURL:      &url,
			DocumentFileName:     &fh.Filename,
		}
		if err := store.CreateDocument(&doc); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar documento")
		}
	}

	// Seguro de vida: com arquivo (exige metadados no snapshot) ou placeholder
	insurance := docModel.DocumentModel{
		DocumentInternshipID: i.InternshipID,
		DocumentType:         docModel.DocTypeLifeInsurance,
		DocumentStatus:       docModel.DocStatusPendingAnalysis,
	}
	if fh := file("life_insurance"); fh != nil {
		if !HasInsuranceMetadata(i) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Preencha os dados da apólice antes de enviar o arquivo do seguro")
		}
		url, _, err := blob.UploadDocument(ctx, dir, fh)
		if err != nil {
			return err
		}
		insurance.DocumentFileURL = &url
		insurance.DocumentFileName = &fh.Filename
	}
	if err := store.CreateDocument(&insurance); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar slot do seguro de vida")
	}
	return nil
}
