package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
)

type memoryDocumentWriter struct {
	docs []docModel.DocumentModel
}

func (w *memoryDocumentWriter) CreateDocument(d *docModel.DocumentModel) error {
	w.docs = append(w.docs, *d)
	return nil
}

// flakyBlob falha o upload de um arquivo específico e registra os demais.
type flakyBlob struct {
	failOn  string
	uploads []string
}

func (b *flakyBlob) UploadDocument(_ context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh.Filename == b.failOn {
		return "", "", errors.New("falha no storage")
	}
	b.uploads = append(b.uploads, fh.Filename)
	return "https://bucket.example.com/" + dir + "/" + fh.Filename, "application/pdf", nil
}

func (b *flakyBlob) DeleteByPublicURL(context.Context, string) error { return nil }

func fileMap(names ...string) FileLookup {
	files := make(map[string]*multipart.FileHeader, len(names))
	for _, n := range names {
		files[n] = &multipart.FileHeader{Filename: n + ".pdf"}
	}
	return func(field string) *multipart.FileHeader { return files[field] }
}

func submission(iType InternshipType) *internshipModel.InternshipModel {
	return &internshipModel.InternshipModel{
		InternshipID:     uuid.New(),
		InternshipType:   string(iType),
		InternshipStatus: string(StatusInAnalysis),
	}
}

func TestCreateSubmissionDocumentsIntegratorPath(t *testing.T) {
	writer := &memoryDocumentWriter{}
	blob := &flakyBlob{}
	i := submission(TypeIntegrator)

	err := CreateSubmissionDocuments(context.Background(), writer, blob, i, fileMap("tce", "pae"))
	if err != nil {
		t.Fatalf("submissão válida falhou: %v", err)
	}

	if len(writer.docs) != 3 {
		t.Fatalf("documentos criados = %d, esperado 3 (TCE, PAE, seguro)", len(writer.docs))
	}
	wantTypes := []docModel.DocumentType{docModel.DocTypeTCE, docModel.DocTypePAE, docModel.DocTypeLifeInsurance}
	for idx, want := range wantTypes {
		if writer.docs[idx].DocumentType != want {
			t.Errorf("doc[%d].tipo = %s, esperado %s", idx, writer.docs[idx].DocumentType, want)
		}
		if writer.docs[idx].DocumentStatus != docModel.DocStatusPendingAnalysis {
			t.Errorf("doc[%d].status = %s, esperado PENDING_ANALYSIS", idx, writer.docs[idx].DocumentStatus)
		}
	}
	if writer.docs[0].DocumentFileURL == nil || writer.docs[1].DocumentFileURL == nil {
		t.Error("TCE e PAE deveriam ter URL de arquivo")
	}
	// seguro sem arquivo enviado vira placeholder
	if writer.docs[2].DocumentFileURL != nil {
		t.Error("slot do seguro deveria ficar sem arquivo (placeholder)")
	}
}

func TestCreateSubmissionDocumentsDirectPathOnlyInsuranceSlot(t *testing.T) {
	writer := &memoryDocumentWriter{}
	i := submission(TypeDirect)

	err := CreateSubmissionDocuments(context.Background(), writer, &flakyBlob{}, i, fileMap())
	if err != nil {
		t.Fatalf("submissão direta falhou: %v", err)
	}
	if len(writer.docs) != 1 || writer.docs[0].DocumentType != docModel.DocTypeLifeInsurance {
		t.Fatalf("esperado só o placeholder do seguro, veio %d documentos", len(writer.docs))
	}
}

func TestCreateSubmissionDocumentsIntegratorMissingFile(t *testing.T) {
	writer := &memoryDocumentWriter{}
	i := submission(TypeIntegrator)

	err := CreateSubmissionDocuments(context.Background(), writer, &flakyBlob{}, i, fileMap("tce"))
	if err == nil {
		t.Fatal("PAE ausente deveria falhar a submissão")
	}
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("código = %d, esperado 400", code)
	}
}

// Falha de upload no meio da criação devolve erro ao chamador; dentro da
// transação do controller isso desfaz o estágio e os documentos já criados.
func TestCreateSubmissionDocumentsUploadFailureAbortsRemainder(t *testing.T) {
	writer := &memoryDocumentWriter{}
	blob := &flakyBlob{failOn: "pae.pdf"}
	i := submission(TypeIntegrator)

	err := CreateSubmissionDocuments(context.Background(), writer, blob, i, fileMap("tce", "pae"))
	if err == nil {
		t.Fatal("falha de upload deveria abortar a submissão")
	}
	if len(writer.docs) != 1 {
		t.Fatalf("escritas após a falha = %d documentos, esperado parar no TCE", len(writer.docs))
	}
	if writer.docs[0].DocumentType != docModel.DocTypeTCE {
		t.Fatalf("doc criado antes da falha = %s, esperado TCE", writer.docs[0].DocumentType)
	}
}

func TestCreateSubmissionDocumentsInsuranceFileRequiresMetadata(t *testing.T) {
	writer := &memoryDocumentWriter{}
	i := submission(TypeDirect)

	err := CreateSubmissionDocuments(context.Background(), writer, &flakyBlob{}, i, fileMap("life_insurance"))
	if err == nil {
		t.Fatal("arquivo do seguro sem metadados deveria falhar")
	}
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("código = %d, esperado 400", code)
	}
	if len(writer.docs) != 0 {
		t.Fatalf("nenhum documento deveria ter sido criado, veio %d", len(writer.docs))
	}
}

func TestCreateSubmissionDocumentsInsuranceFileWithMetadata(t *testing.T) {
	writer := &memoryDocumentWriter{}
	i := submission(TypeDirect)
	company := "Seguradora XYZ"
	policy := "AP-123"
	cnpj := "11.222.333/0001-44"
	from := timeMustParse(t, "2026-01-01")
	until := timeMustParse(t, "2026-12-31")
	i.InternshipInsuranceCompany = &company
	i.InternshipInsurancePolicyNumber = &policy
	i.InternshipInsuranceCNPJ = &cnpj
	i.InternshipInsuranceValidFrom = &from
	i.InternshipInsuranceValidUntil = &until

	err := CreateSubmissionDocuments(context.Background(), writer, &flakyBlob{}, i, fileMap("life_insurance"))
	if err != nil {
		t.Fatalf("seguro com metadados falhou: %v", err)
	}
	if len(writer.docs) != 1 || writer.docs[0].DocumentFileURL == nil {
		t.Fatal("slot do seguro deveria ter sido criado com arquivo")
	}
}
