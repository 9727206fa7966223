package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"estagios_backend/internals/features/vacancies/service"
)

// StartVacancySweepScheduler fecha periodicamente as vagas recusadas
// que passaram do prazo de reedição.
func StartVacancySweepScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("SWEEP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[SWEEP] Varredura de vagas recusadas...")

			report, err := service.SweepExpiredRejected(db, time.Now(), service.GracePeriodFromEnv())
			if err != nil {
				log.Printf("[SWEEP ERROR] Falha na varredura de vagas: %v", err)
			} else if report.Updated > 0 {
				log.Printf("[SWEEP] %d vagas fechadas (cutoff=%s)", report.Updated, report.Cutoff.Format(time.RFC3339))
			} else {
				log.Println("[SWEEP] Nenhuma vaga elegível para fechamento")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
