package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"estagios_backend/internals/features/internships/internships/model"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperado *fiber.Error, veio %T: %v", err, err)
	}
	return fe.Code
}

func TestEarlyTerminationStateDerivation(t *testing.T) {
	i := &model.InternshipModel{}
	if got := EarlyTerminationState(i); got != ETStateNone {
		t.Fatalf("estado inicial = %s, esperado none", got)
	}

	i.InternshipEarlyTerminationRequested = true
	if got := EarlyTerminationState(i); got != ETStatePending {
		t.Fatalf("pedido aberto = %s, esperado pending", got)
	}

	approved := true
	i.InternshipEarlyTerminationApproved = &approved
	if got := EarlyTerminationState(i); got != ETStateDecided {
		t.Fatalf("pedido decidido = %s, esperado decided", got)
	}
}

func TestApplyEarlyTerminationRequest(t *testing.T) {
	t.Run("pedido válido limpa decisão anterior", func(t *testing.T) {
		oldApproved := false
		handled := time.Now()
		oldReason := "motivo antigo"
		i := &model.InternshipModel{
			InternshipStatus:                          string(StatusInProgress),
			InternshipEarlyTerminationApproved:        &oldApproved,
			InternshipEarlyTerminationHandledAt:       &handled,
			InternshipEarlyTerminationRejectionReason: &oldReason,
		}
		if err := ApplyEarlyTerminationRequest(i, "mudança de cidade"); err != nil {
			t.Fatalf("pedido válido falhou: %v", err)
		}
		if !i.InternshipEarlyTerminationRequested {
			t.Fatal("requested deveria ser true")
		}
		if i.InternshipEarlyTerminationApproved != nil ||
			i.InternshipEarlyTerminationHandledAt != nil ||
			i.InternshipEarlyTerminationRejectionReason != nil {
			t.Fatal("decisão anterior não foi limpa")
		}
	})

	t.Run("estágio encerrado recusa o pedido", func(t *testing.T) {
		for _, st := range []Status{StatusCanceled, StatusFinished} {
			i := &model.InternshipModel{InternshipStatus: string(st)}
			err := ApplyEarlyTerminationRequest(i, "qualquer")
			if err == nil {
				t.Fatalf("pedido aceito com status %s", st)
			}
			if code := fiberCode(t, err); code != fiber.StatusConflict {
				t.Fatalf("código = %d, esperado 409", code)
			}
		}
	})

	t.Run("pedido duplicado é conflito", func(t *testing.T) {
		i := &model.InternshipModel{
			InternshipStatus:                    string(StatusInProgress),
			InternshipEarlyTerminationRequested: true,
		}
		err := ApplyEarlyTerminationRequest(i, "de novo")
		if err == nil {
			t.Fatal("pedido duplicado aceito")
		}
		if code := fiberCode(t, err); code != fiber.StatusConflict {
			t.Fatalf("código = %d, esperado 409", code)
		}
	})
}

func TestApplyEarlyTerminationApproval(t *testing.T) {
	now := time.Now()

	t.Run("aprova a partir de IN_PROGRESS", func(t *testing.T) {
		i := &model.InternshipModel{
			InternshipStatus:                    string(StatusInProgress),
			InternshipEarlyTerminationRequested: true,
		}
		if err := ApplyEarlyTerminationApproval(i, now); err != nil {
			t.Fatalf("aprovação falhou: %v", err)
		}
		if i.InternshipStatus != string(StatusFinished) {
			t.Fatalf("status = %s, esperado FINISHED", i.InternshipStatus)
		}
		if i.InternshipEarlyTerminationApproved == nil || !*i.InternshipEarlyTerminationApproved {
			t.Fatal("approved deveria ser true")
		}
		if i.InternshipEarlyTerminationHandledAt == nil {
			t.Fatal("handled_at deveria estar gravado")
		}
	})

	t.Run("aprova a partir de APPROVED antes do início", func(t *testing.T) {
		i := &model.InternshipModel{
			InternshipStatus:                    string(StatusApproved),
			InternshipEarlyTerminationRequested: true,
		}
		if err := ApplyEarlyTerminationApproval(i, now); err != nil {
			t.Fatalf("aprovação a partir de APPROVED falhou: %v", err)
		}
		if i.InternshipStatus != string(StatusFinished) {
			t.Fatalf("status = %s, esperado FINISHED", i.InternshipStatus)
		}
	})

	t.Run("sem pedido pendente é conflito", func(t *testing.T) {
		i := &model.InternshipModel{InternshipStatus: string(StatusInProgress)}
		if err := ApplyEarlyTerminationApproval(i, now); err == nil {
			t.Fatal("aprovação sem pedido pendente aceita")
		}
	})

	t.Run("status que não transiciona pra FINISHED é conflito", func(t *testing.T) {
		i := &model.InternshipModel{
			InternshipStatus:                    string(StatusInAnalysis),
			InternshipEarlyTerminationRequested: true,
		}
		err := ApplyEarlyTerminationApproval(i, now)
		if err == nil {
			t.Fatal("aprovação a partir de IN_ANALYSIS aceita")
		}
		if code := fiberCode(t, err); code != fiber.StatusConflict {
			t.Fatalf("código = %d, esperado 409", code)
		}
	})
}

func TestApplyEarlyTerminationRejection(t *testing.T) {
	now := time.Now()
	i := &model.InternshipModel{
		InternshipStatus:                    string(StatusInProgress),
		InternshipEarlyTerminationRequested: true,
	}
	if err := ApplyEarlyTerminationRejection(i, "documentos insuficientes", now); err != nil {
		t.Fatalf("recusa falhou: %v", err)
	}

	if i.InternshipStatus != string(StatusInProgress) {
		t.Fatalf("status principal deveria ficar intacto, veio %s", i.InternshipStatus)
	}
	if i.InternshipEarlyTerminationRequested {
		t.Fatal("requested deveria voltar pra false")
	}
	if i.InternshipEarlyTerminationApproved == nil || *i.InternshipEarlyTerminationApproved {
		t.Fatal("approved deveria ser false")
	}
	if i.InternshipEarlyTerminationRejectionReason == nil {
		t.Fatal("motivo da recusa deveria estar gravado")
	}

	// requested=false libera um novo pedido
	if err := ApplyEarlyTerminationRequest(i, "novo motivo"); err != nil {
		t.Fatalf("novo pedido após recusa falhou: %v", err)
	}
}
