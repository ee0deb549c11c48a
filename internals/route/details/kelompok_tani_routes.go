package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ktController "sitani_backend/internals/features/kelompok_tani/controller"
)

func KelompokTaniRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ktController.NewKelompokTaniController(db)

	r := api.Group("/kelompok-tani")
	r.Get("/", ctrl.List)
	r.Get("/stats", ctrl.Stats) // harus sebelum /:id
	r.Get("/:id", ctrl.Detail)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
