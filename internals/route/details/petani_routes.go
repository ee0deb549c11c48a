package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	petaniController "sitani_backend/internals/features/petani/controller"
)

func PetaniRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := petaniController.NewPetaniController(db)

	r := api.Group("/petani")
	r.Get("/", ctrl.List)
	r.Get("/stats", ctrl.Stats) // harus sebelum /:id
	r.Get("/:id", ctrl.Detail)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
