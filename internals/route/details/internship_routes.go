package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentRoute "estagios_backend/internals/features/internships/documents/route"
	internshipRoute "estagios_backend/internals/features/internships/internships/route"
	ossHelper "estagios_backend/internals/helpers/oss"
)

func InternshipRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	internshipRoute.InternshipUserRoutes(api, db, blob)
	documentRoute.DocumentUserRoutes(api, db, blob)
}
