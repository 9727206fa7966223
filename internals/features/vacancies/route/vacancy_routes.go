// file: internals/features/vacancies/route/vacancy_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estagios_backend/internals/constants"
	controller "estagios_backend/internals/features/vacancies/controller"
	authMiddleware "estagios_backend/internals/middlewares/auth"
)

// VacancyUserRoutes monta o fluxo de vagas sob /api/u.
func VacancyUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVacancyController(db, nil)

	vacancies := api.Group("/vacancies")

	vacancies.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorCompany("criação de vagas"), constants.CompanyOnly...),
		ctrl.Create)
	vacancies.Get("/", ctrl.List)
	vacancies.Get("/:id", ctrl.GetByID)
	vacancies.Put("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorCompany("edição de vagas"), constants.CompanyOnly...),
		ctrl.Update)

	vacancies.Patch("/:id/decision",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("decisão de vagas"), constants.AdminOnly...),
		ctrl.Decide)
	vacancies.Patch("/:id/close",
		authMiddleware.OnlyRoles("❌ Apenas a empresa dona ou administradores podem fechar vagas.",
			constants.CompanyOrAdmin...),
		ctrl.Close)

	vacancies.Post("/sweep",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("varredura de vagas"), constants.AdminOnly...),
		ctrl.RunSweep)
}
