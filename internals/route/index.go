// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ossHelper "estagios_backend/internals/helpers/oss"
	authMiddleware "estagios_backend/internals/middlewares/auth"
	routeDetails "estagios_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (público) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// Armazenamento de arquivos (contratos, apólices, relatórios).
	// Sem as ENV do OSS o servidor sobe mesmo assim; uploads falham
	// com erro explícito.
	var blob ossHelper.BlobService
	if b, err := ossHelper.NewOSSBlobServiceFromEnv("uploads/"); err != nil {
		log.Printf("[WARN] OSS não configurado, uploads indisponíveis: %v", err)
		blob = ossHelper.DisabledBlobService{}
	} else {
		blob = b
	}

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Internship routes...")
	routeDetails.InternshipRoutes(private, db, blob)

	log.Println("[INFO] Mounting Vacancy routes...")
	routeDetails.VacancyRoutes(private, db)
}
