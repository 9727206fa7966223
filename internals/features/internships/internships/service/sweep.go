// file: internals/features/internships/internships/service/sweep.go
package service

import (
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"estagios_backend/internals/features/internships/internships/model"
)

// GracePeriodFromEnv lê SWEEP_GRACE_DAYS (default: 7 dias).
func GracePeriodFromEnv() time.Duration {
	days := 7
	if val := os.Getenv("SWEEP_GRACE_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

// SweepReport é o resultado observável de uma varredura.
type SweepReport struct {
	Updated int64     `json:"updated"`
	Cutoff  time.Time `json:"cutoff"`
}

// SweepExpiredRejected cancela em lote todos os estágios REJECTED cujo
// rejected_at passou do prazo de carência, anexando a nota fixa ao motivo.
//
// Um único UPDATE dentro de transação: ou todos os registros mudam ou
// nenhum. Idempotente — a linha sai de REJECTED, então rodadas seguintes
// não re-anexam a nota.
func SweepExpiredRejected(db *gorm.DB, now time.Time, grace time.Duration) (SweepReport, error) {
	cutoff := now.Add(-grace)
	report := SweepReport{Cutoff: cutoff}

	err := db.Transaction(func(tx *gorm.DB) error {
		// WHERE espelha EligibleForAutoCancel; mudou um, muda o outro
		res := tx.Model(&model.InternshipModel{}).
			Where("internship_status = ? AND internship_rejected_at IS NOT NULL AND internship_rejected_at <= ?",
				string(StatusRejected), cutoff).
			Updates(map[string]interface{}{
				"internship_status": string(StatusCanceled),
				"internship_rejection_reason": gorm.Expr(
					"concat(coalesce(internship_rejection_reason, ''), ?::text)", CancellationNote),
				"internship_updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		report.Updated = res.RowsAffected
		return nil
	})
	return report, err
}
