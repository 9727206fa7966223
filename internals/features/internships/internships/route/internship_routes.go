// file: internals/features/internships/internships/route/internship_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estagios_backend/internals/constants"
	controller "estagios_backend/internals/features/internships/internships/controller"
	ossHelper "estagios_backend/internals/helpers/oss"
	authMiddleware "estagios_backend/internals/middlewares/auth"
)

// InternshipUserRoutes monta o ciclo de vida do estágio sob o grupo
// autenticado (/api/u). O guard de role fica por rota: submissão e
// reenvio são do aluno; decisão, início e varredura são do admin.
func InternshipUserRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	ctrl := controller.NewInternshipController(db, blob, nil)

	internships := api.Group("/internships")

	internships.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("submissão de estágio"), constants.StudentOnly...),
		ctrl.Submit)
	internships.Get("/", ctrl.List)
	internships.Get("/:id", ctrl.GetByID)
	internships.Put("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("reenvio de estágio"), constants.StudentOnly...),
		ctrl.Update)

	internships.Patch("/:id/decision",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("decisão de estágio"), constants.AdminOnly...),
		ctrl.Decide)
	internships.Patch("/:id/start",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("início de estágio"), constants.AdminOnly...),
		ctrl.Start)

	// Sub-fluxo de rescisão antecipada: POST abre o pedido, PATCH decide
	internships.Post("/:id/early-termination",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("rescisão antecipada"), constants.StudentOnly...),
		ctrl.RequestEarlyTermination)
	internships.Patch("/:id/early-termination",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("decisão de rescisão"), constants.AdminOnly...),
		ctrl.DecideEarlyTermination)

	// Gatilho manual da varredura (a mesma rotina roda no scheduler)
	internships.Post("/sweep",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("varredura de estágios"), constants.AdminOnly...),
		ctrl.RunSweep)
}
