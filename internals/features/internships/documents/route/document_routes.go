// file: internals/features/internships/documents/route/document_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estagios_backend/internals/constants"
	controller "estagios_backend/internals/features/internships/documents/controller"
	ossHelper "estagios_backend/internals/helpers/oss"
	authMiddleware "estagios_backend/internals/middlewares/auth"
)

// DocumentUserRoutes monta o subsistema de documentos sob /api/u.
// Upload e listagem ficam aninhados no estágio; moderação é por
// documento e exclusiva do admin.
func DocumentUserRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	ctrl := controller.NewDocumentController(db, blob, nil)

	internships := api.Group("/internships")
	internships.Post("/:id/documents", ctrl.Upload)
	internships.Get("/:id/documents", ctrl.ListByInternship)

	documents := api.Group("/documents")
	documents.Patch("/:id/moderation",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("moderação de documentos"), constants.AdminOnly...),
		ctrl.Moderate)
}
