package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"estagios_backend/internals/features/internships/documents/model"
)

func pendingDoc() *model.DocumentModel {
	return &model.DocumentModel{DocumentStatus: model.DocStatusPendingAnalysis}
}

func strPtr(s string) *string { return &s }

func assertFiberCode(t *testing.T, err error, want int) {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperado *fiber.Error, veio %T: %v", err, err)
	}
	if fe.Code != want {
		t.Fatalf("código = %d, esperado %d", fe.Code, want)
	}
}

func TestApplyModerationApprove(t *testing.T) {
	d := pendingDoc()
	d.DocumentRejectionComments = strPtr("sobra de análise anterior")

	if err := ApplyModeration(d, string(model.DocStatusApproved), nil, time.Now()); err != nil {
		t.Fatalf("aprovação falhou: %v", err)
	}
	if d.DocumentStatus != model.DocStatusApproved {
		t.Fatalf("status = %s, esperado APPROVED", d.DocumentStatus)
	}
	// invariante: comments non-null ⟺ REJECTED
	if d.DocumentRejectionComments != nil {
		t.Fatal("comentários deveriam ser limpos na aprovação")
	}
}

func TestApplyModerationReject(t *testing.T) {
	t.Run("recusa com comentários", func(t *testing.T) {
		d := pendingDoc()
		if err := ApplyModeration(d, string(model.DocStatusRejected), strPtr("  arquivo ilegível  "), time.Now()); err != nil {
			t.Fatalf("recusa falhou: %v", err)
		}
		if d.DocumentStatus != model.DocStatusRejected {
			t.Fatalf("status = %s, esperado REJECTED", d.DocumentStatus)
		}
		if d.DocumentRejectionComments == nil || *d.DocumentRejectionComments != "arquivo ilegível" {
			t.Fatalf("comentários = %v, esperado trim aplicado", d.DocumentRejectionComments)
		}
	})

	t.Run("recusa sem comentários é 400", func(t *testing.T) {
		d := pendingDoc()
		err := ApplyModeration(d, string(model.DocStatusRejected), nil, time.Now())
		if err == nil {
			t.Fatal("recusa sem comentários aceita")
		}
		assertFiberCode(t, err, fiber.StatusBadRequest)
	})

	t.Run("recusa com comentários em branco é 400", func(t *testing.T) {
		d := pendingDoc()
		err := ApplyModeration(d, string(model.DocStatusRejected), strPtr("   "), time.Now())
		if err == nil {
			t.Fatal("comentários em branco aceitos")
		}
		assertFiberCode(t, err, fiber.StatusBadRequest)
	})
}

func TestApplyModerationGuards(t *testing.T) {
	t.Run("documento já decidido é 409", func(t *testing.T) {
		d := &model.DocumentModel{DocumentStatus: model.DocStatusApproved}
		err := ApplyModeration(d, string(model.DocStatusApproved), nil, time.Now())
		if err == nil {
			t.Fatal("moderação dupla aceita")
		}
		assertFiberCode(t, err, fiber.StatusConflict)
	})

	t.Run("ação desconhecida é 400", func(t *testing.T) {
		d := pendingDoc()
		err := ApplyModeration(d, "MAYBE", nil, time.Now())
		if err == nil {
			t.Fatal("ação desconhecida aceita")
		}
		assertFiberCode(t, err, fiber.StatusBadRequest)
	})
}

func TestResetForReupload(t *testing.T) {
	d := &model.DocumentModel{
		DocumentStatus:            model.DocStatusRejected,
		DocumentRejectionComments: strPtr("versão anterior recusada"),
	}
	now := time.Now()
	ResetForReupload(d, "https://bucket.example.com/uploads/novo.pdf", "novo.pdf", now)

	if d.DocumentStatus != model.DocStatusPendingAnalysis {
		t.Fatalf("status = %s, esperado PENDING_ANALYSIS", d.DocumentStatus)
	}
	if d.DocumentRejectionComments != nil {
		t.Fatal("comentários deveriam ser limpos no reenvio")
	}
	if d.DocumentFileURL == nil || d.DocumentFileName == nil {
		t.Fatal("arquivo novo deveria estar gravado")
	}
	if !d.DocumentUpdatedAt.Equal(now) {
		t.Fatal("updated_at deveria acompanhar o reenvio")
	}
}
