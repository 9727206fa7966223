package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"estagios_backend/internals/features/internships/internships/service"
)

// StartInternshipSweepScheduler roda periodicamente o auto-cancelamento
// de estágios recusados além do prazo de carência. A mesma rotina fica
// disponível sob demanda no endpoint de sweep do admin.
func StartInternshipSweepScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("SWEEP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[SWEEP] Varredura de estágios recusados...")

			report, err := service.SweepExpiredRejected(db, time.Now(), service.GracePeriodFromEnv())
			if err != nil {
				log.Printf("[SWEEP ERROR] Falha na varredura de estágios: %v", err)
			} else if report.Updated > 0 {
				log.Printf("[SWEEP] %d estágios cancelados (cutoff=%s)", report.Updated, report.Cutoff.Format(time.RFC3339))
			} else {
				log.Println("[SWEEP] Nenhum estágio elegível para cancelamento")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
