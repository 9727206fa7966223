package service

import (
	"strings"
	"testing"
	"time"

	"estagios_backend/internals/features/internships/internships/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"analise para aprovado", StatusInAnalysis, StatusApproved, true},
		{"analise para recusado", StatusInAnalysis, StatusRejected, true},
		{"analise direto para andamento", StatusInAnalysis, StatusInProgress, false},
		{"aprovado para andamento", StatusApproved, StatusInProgress, true},
		{"aprovado para finalizado (rescisão antecipada)", StatusApproved, StatusFinished, true},
		{"andamento para finalizado", StatusInProgress, StatusFinished, true},
		{"andamento de volta pra analise", StatusInProgress, StatusInAnalysis, false},
		{"recusado para reenvio", StatusRejected, StatusInAnalysis, true},
		{"recusado para cancelado", StatusRejected, StatusCanceled, true},
		{"recusado direto para aprovado", StatusRejected, StatusApproved, false},
		{"finalizado é terminal", StatusFinished, StatusInAnalysis, false},
		{"cancelado é terminal", StatusCanceled, StatusInAnalysis, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, esperado %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusFinished, StatusCanceled} {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = false, esperado terminal", s)
		}
	}
	for _, s := range []Status{StatusInAnalysis, StatusApproved, StatusInProgress, StatusRejected} {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = true, esperado não-terminal", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("IN_ANALYSIS"); err != nil {
		t.Fatalf("ParseStatus válido falhou: %v", err)
	}
	if _, err := ParseStatus("WHATEVER"); err == nil {
		t.Fatal("ParseStatus aceitou status desconhecido")
	}
}

func TestParseInternshipType(t *testing.T) {
	for _, s := range []string{"DIRECT", "INTEGRATOR"} {
		if _, err := ParseInternshipType(s); err != nil {
			t.Errorf("ParseInternshipType(%s) falhou: %v", s, err)
		}
	}
	if _, err := ParseInternshipType("AGENCY"); err == nil {
		t.Fatal("ParseInternshipType aceitou tipo desconhecido")
	}
}

func TestEligibleForAutoCancel(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	before := cutoff.Add(-time.Hour)
	after := cutoff.Add(time.Hour)

	cases := []struct {
		name       string
		status     Status
		rejectedAt *time.Time
		want       bool
	}{
		{"recusado antes do corte", StatusRejected, &before, true},
		{"recusado exatamente no corte", StatusRejected, &cutoff, true},
		{"recusado depois do corte", StatusRejected, &after, false},
		{"recusado sem timestamp", StatusRejected, nil, false},
		{"em analise não é elegível", StatusInAnalysis, &before, false},
		{"cancelado não é re-elegível", StatusCanceled, &before, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i := &model.InternshipModel{
				InternshipStatus:     string(tc.status),
				InternshipRejectedAt: tc.rejectedAt,
			}
			if got := EligibleForAutoCancel(i, cutoff); got != tc.want {
				t.Errorf("EligibleForAutoCancel = %v, esperado %v", got, tc.want)
			}
		})
	}
}

func TestAppendCancellationNote(t *testing.T) {
	reason := "Documentação incompleta"
	got := AppendCancellationNote(&reason)
	if !strings.HasPrefix(got, reason) || !strings.HasSuffix(got, CancellationNote) {
		t.Fatalf("nota não anexada corretamente: %q", got)
	}

	// idempotente: segunda aplicação não duplica a nota
	twice := AppendCancellationNote(&got)
	if twice != got {
		t.Fatalf("nota anexada duas vezes: %q", twice)
	}

	// motivo nulo vira só a nota
	if got := AppendCancellationNote(nil); got != CancellationNote {
		t.Fatalf("motivo nulo: esperado só a nota, veio %q", got)
	}
}
