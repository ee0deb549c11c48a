// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "sitani_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Mounting Petani routes...")
	routeDetails.PetaniRoutes(api, db)

	log.Println("[INFO] Mounting KelompokTani routes...")
	routeDetails.KelompokTaniRoutes(api, db)
}
