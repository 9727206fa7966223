// file: internals/features/vacancies/service/sweep.go
package service

import (
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"estagios_backend/internals/features/vacancies/model"
)

// GracePeriodFromEnv lê SWEEP_GRACE_DAYS (default: 7 dias). A mesma
// variável alimenta a varredura de estágios.
func GracePeriodFromEnv() time.Duration {
	days := 7
	if val := os.Getenv("SWEEP_GRACE_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

type SweepReport struct {
	Updated int64     `json:"updated"`
	Cutoff  time.Time `json:"cutoff"`
}

// SweepExpiredRejected fecha em lote as vagas REJECTED sem atualização
// desde o cutoff, marcando CLOSED_BY_ADMIN com a nota fixa.
//
// Um único UPDATE dentro de transação. Idempotente: a linha sai de
// REJECTED e não é selecionada de novo.
func SweepExpiredRejected(db *gorm.DB, now time.Time, grace time.Duration) (SweepReport, error) {
	cutoff := now.Add(-grace)
	report := SweepReport{Cutoff: cutoff}

	err := db.Transaction(func(tx *gorm.DB) error {
		// WHERE espelha EligibleForAutoClose; mudou um, muda o outro
		res := tx.Model(&model.JobVacancyModel{}).
			Where("vacancy_status = ? AND vacancy_updated_at <= ?", string(StatusRejected), cutoff).
			Updates(map[string]interface{}{
				"vacancy_status":         string(StatusClosedByAdmin),
				"vacancy_closure_reason": ClosureNote,
				"vacancy_updated_at":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		report.Updated = res.RowsAffected
		return nil
	})
	return report, err
}
