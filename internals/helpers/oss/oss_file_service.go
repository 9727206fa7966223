// internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService é a fachada de upload/remoção usada pelos controllers.

A remoção é best-effort com canal de erro explícito: uma falha de delete
não bloqueia a atualização no banco, mas é registrada como órfão para
limpeza posterior.
*/

type BlobService interface {
	UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, contentType string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Implementação baseada em Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv cria a instância a partir das ENV. prefix opcional (ex: "uploads/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Arquivo não encontrado")
	}
	return b.svc.UploadFromFormFile(ctx, dir, fh)
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := b.svc.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return b.svc.DeleteObject(ctx, key)
}

// DisabledBlobService responde 503 em toda operação. Usado quando as
// ENV do OSS não estão presentes, para o servidor subir mesmo assim.
type DisabledBlobService struct{}

func (DisabledBlobService) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	return "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Armazenamento de arquivos não configurado")
}

func (DisabledBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return fiber.NewError(fiber.StatusServiceUnavailable, "Armazenamento de arquivos não configurado")
}

// DeleteOrLogOrphan tenta remover o arquivo antigo; em falha registra como
// órfão e segue em frente (a atualização no banco nunca é bloqueada).
func DeleteOrLogOrphan(ctx context.Context, blob BlobService, publicURL string) {
	if blob == nil || publicURL == "" {
		return
	}
	if err := blob.DeleteByPublicURL(ctx, publicURL); err != nil {
		log.Printf("[ORPHAN-CLEANUP] falha ao remover arquivo substituído url=%s err=%v", publicURL, err)
	}
}

// GetDocumentFile procura o arquivo multipart em nomes de campo conhecidos.
func GetDocumentFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	if len(names) == 0 {
		names = []string{"file", "document", "arquivo"}
	}
	for _, n := range names {
		if fh, err := c.FormFile(n); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}
