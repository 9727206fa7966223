package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vacancyRoute "estagios_backend/internals/features/vacancies/route"
)

func VacancyRoutes(api fiber.Router, db *gorm.DB) {
	vacancyRoute.VacancyUserRoutes(api, db)
}
