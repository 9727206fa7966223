package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"estagios_backend/internals/features/vacancies/model"
)

func TestVacancyCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from VacancyStatus
		to   VacancyStatus
		want bool
	}{
		{"pendente para aprovada", StatusPendingApproval, StatusApproved, true},
		{"pendente para recusada", StatusPendingApproval, StatusRejected, true},
		{"pendente fechada pela empresa", StatusPendingApproval, StatusClosedByCompany, true},
		{"pendente fechada pelo admin", StatusPendingApproval, StatusClosedByAdmin, true},
		{"aprovada fechada pela empresa", StatusApproved, StatusClosedByCompany, true},
		{"aprovada reenviada (edição)", StatusApproved, StatusPendingApproval, true},
		{"aprovada direto pra recusada", StatusApproved, StatusRejected, false},
		{"recusada reenviada (edição)", StatusRejected, StatusPendingApproval, true},
		{"recusada fechada pelo admin", StatusRejected, StatusClosedByAdmin, true},
		{"fechada pela empresa é terminal", StatusClosedByCompany, StatusPendingApproval, false},
		{"fechada pelo admin é terminal", StatusClosedByAdmin, StatusApproved, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, esperado %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsClosed(t *testing.T) {
	for _, s := range []VacancyStatus{StatusClosedByCompany, StatusClosedByAdmin} {
		if !IsClosed(s) {
			t.Errorf("IsClosed(%s) = false, esperado fechada", s)
		}
	}
	for _, s := range []VacancyStatus{StatusPendingApproval, StatusApproved, StatusRejected} {
		if IsClosed(s) {
			t.Errorf("IsClosed(%s) = true, esperado aberta", s)
		}
	}
}

func TestParseVacancyStatus(t *testing.T) {
	if _, err := ParseVacancyStatus("PENDING_APPROVAL"); err != nil {
		t.Fatalf("status válido falhou: %v", err)
	}
	_, err := ParseVacancyStatus("OPEN")
	if err == nil {
		t.Fatal("status desconhecido aceito")
	}
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("esperado fiber 400, veio %v", err)
	}
}

func vacancy(vt model.VacancyType, hours int, courses []string) *model.JobVacancyModel {
	return &model.JobVacancyModel{
		VacancyType:            vt,
		VacancyWeeklyHours:     hours,
		VacancyEligibleCourses: pq.StringArray(courses),
	}
}

func TestValidateCreation(t *testing.T) {
	cases := []struct {
		name    string
		v       *model.JobVacancyModel
		wantErr bool
	}{
		{"estágio dentro do limite", vacancy(model.VacancyTypeInternship, 30, []string{"ADS"}), false},
		{"estágio acima de 30h", vacancy(model.VacancyTypeInternship, 31, []string{"ADS"}), true},
		{"emprego pode passar de 30h", vacancy(model.VacancyTypeJob, 44, []string{"ADS"}), false},
		{"sem cursos elegíveis", vacancy(model.VacancyTypeJob, 40, nil), true},
		{"carga horária zero", vacancy(model.VacancyTypeJob, 0, []string{"ADS"}), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreation(tc.v)
			if tc.wantErr && err == nil {
				t.Error("esperado erro de validação, veio nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("validação falhou: %v", err)
			}
		})
	}
}

func TestEligibleForAutoClose(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	rejectedOld := &model.JobVacancyModel{
		VacancyStatus:    string(StatusRejected),
		VacancyUpdatedAt: cutoff.Add(-time.Hour),
	}
	if !EligibleForAutoClose(rejectedOld, cutoff) {
		t.Fatal("vaga recusada antiga deveria ser elegível")
	}

	rejectedRecent := &model.JobVacancyModel{
		VacancyStatus:    string(StatusRejected),
		VacancyUpdatedAt: cutoff.Add(time.Hour),
	}
	if EligibleForAutoClose(rejectedRecent, cutoff) {
		t.Fatal("vaga recusada recente não deveria ser elegível")
	}

	approvedOld := &model.JobVacancyModel{
		VacancyStatus:    string(StatusApproved),
		VacancyUpdatedAt: cutoff.Add(-time.Hour),
	}
	if EligibleForAutoClose(approvedOld, cutoff) {
		t.Fatal("vaga aprovada não deveria ser elegível")
	}
}
