package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"estagios_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL do env (default: 7 dias)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Limpando token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Falha ao buscar tokens expirados: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] Falha ao remover tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d tokens expirados removidos", len(expiredTokens))
				}
			} else {
				log.Println("[CLEANUP] Nenhum token elegível para remoção")
			}

			// Roda a cada 24h
			time.Sleep(24 * time.Hour)
		}
	}()
}
