package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
)

func TestApplyDecisionApprove(t *testing.T) {
	now := time.Now()
	i := &internshipModel.InternshipModel{InternshipStatus: string(StatusInAnalysis)}

	if err := ApplyDecision(i, nil, "APPROVE", nil, now); err != nil {
		t.Fatalf("aprovação falhou: %v", err)
	}
	if i.InternshipStatus != string(StatusApproved) {
		t.Fatalf("status = %s, esperado APPROVED", i.InternshipStatus)
	}
	if !i.InternshipUpdatedAt.Equal(now) {
		t.Error("updated_at não foi carimbado")
	}
}

func TestApplyDecisionApproveBlockedBySignedContract(t *testing.T) {
	i := &internshipModel.InternshipModel{InternshipStatus: string(StatusInAnalysis)}
	docs := []docModel.DocumentModel{
		doc(docModel.DocTypeSignedContract, docModel.DocStatusPendingAnalysis, true),
	}

	err := ApplyDecision(i, docs, "APPROVE", nil, time.Now())
	if err == nil {
		t.Fatal("contrato pendente com arquivo deveria bloquear a aprovação")
	}
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Fatalf("código = %d, esperado 409", code)
	}
	if i.InternshipStatus != string(StatusInAnalysis) {
		t.Error("status não deveria mudar quando a decisão é bloqueada")
	}
}

func TestApplyDecisionReject(t *testing.T) {
	now := time.Now()
	i := &internshipModel.InternshipModel{InternshipStatus: string(StatusInAnalysis)}
	reason := "  documentação incompleta  "

	if err := ApplyDecision(i, nil, "REJECT", &reason, now); err != nil {
		t.Fatalf("recusa falhou: %v", err)
	}
	if i.InternshipStatus != string(StatusRejected) {
		t.Fatalf("status = %s, esperado REJECTED", i.InternshipStatus)
	}
	if i.InternshipRejectionReason == nil || *i.InternshipRejectionReason != "documentação incompleta" {
		t.Error("motivo deveria ser gravado com trim")
	}
	if i.InternshipRejectedAt == nil || !i.InternshipRejectedAt.Equal(now) {
		t.Error("rejected_at deveria apontar o momento da decisão")
	}
}

func TestApplyDecisionRejectRequiresReason(t *testing.T) {
	for _, reason := range []*string{nil, strPtr("   ")} {
		i := &internshipModel.InternshipModel{InternshipStatus: string(StatusInAnalysis)}
		err := ApplyDecision(i, nil, "REJECT", reason, time.Now())
		if err == nil {
			t.Fatal("recusa sem motivo deveria falhar")
		}
		if code := fiberCode(t, err); code != fiber.StatusBadRequest {
			t.Fatalf("código = %d, esperado 400", code)
		}
	}
}

func TestApplyDecisionOutsideAnalysis(t *testing.T) {
	for _, st := range []Status{StatusApproved, StatusInProgress, StatusFinished, StatusCanceled} {
		i := &internshipModel.InternshipModel{InternshipStatus: string(st)}
		err := ApplyDecision(i, nil, "APPROVE", nil, time.Now())
		if err == nil {
			t.Fatalf("decisão sobre %s deveria falhar", st)
		}
		if code := fiberCode(t, err); code != fiber.StatusConflict {
			t.Fatalf("código = %d, esperado 409", code)
		}
	}
}

func TestApplyDecisionUnknownAction(t *testing.T) {
	i := &internshipModel.InternshipModel{InternshipStatus: string(StatusInAnalysis)}
	err := ApplyDecision(i, nil, "ARCHIVE", nil, time.Now())
	if err == nil {
		t.Fatal("ação desconhecida deveria falhar")
	}
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("código = %d, esperado 400", code)
	}
}

func strPtr(s string) *string { return &s }
