// internals/features/petani/controller/petani_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sitani_backend/internals/apperr"
	pDTO "sitani_backend/internals/features/petani/dto"
	pService "sitani_backend/internals/features/petani/service"
	helper "sitani_backend/internals/helpers"
)

type PetaniController struct {
	Service *pService.PetaniService
}

func NewPetaniController(db *gorm.DB) *PetaniController {
	return &PetaniController{Service: pService.NewPetaniService(db)}
}

/* ===================== HANDLERS ===================== */

// GET /api/petani
func (h *PetaniController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, "created_at", "DESC")

	q := pDTO.ListPetaniQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Status: strings.TrimSpace(c.Query("status")),
		Paging: p,
	}

	rows, total, err := h.Service.List(q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	meta := helper.BuildPagination(total, p).WithRange(p, len(rows))
	return helper.JsonOK(c, "Data petani berhasil diambil", fiber.Map{
		"petani":     pDTO.NewPetaniResponses(rows),
		"pagination": meta,
	})
}

// GET /api/petani/stats
func (h *PetaniController) Stats(c *fiber.Ctx) error {
	stats, err := h.Service.Stats()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Statistik petani berhasil diambil", stats)
}

// GET /api/petani/:id
func (h *PetaniController) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := h.Service.GetByID(id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Data petani berhasil diambil", pDTO.NewPetaniResponse(m))
}

// POST /api/petani
func (h *PetaniController) Create(c *fiber.Ctx) error {
	var req pDTO.CreatePetaniRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if fields := helper.ValidateStruct(&req); fields != nil {
		return helper.JsonValidationError(c, "Validasi gagal", fields)
	}

	m, err := h.Service.Create(&req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Petani berhasil ditambahkan", pDTO.NewPetaniResponse(m))
}

// PUT /api/petani/:id
func (h *PetaniController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req pDTO.UpdatePetaniRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if fields := helper.ValidateStruct(&req); fields != nil {
		return helper.JsonValidationError(c, "Validasi gagal", fields)
	}

	m, err := h.Service.Update(id, &req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Petani berhasil diperbarui", pDTO.NewPetaniResponse(m))
}

// DELETE /api/petani/:id
func (h *PetaniController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := h.Service.Delete(id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Petani berhasil dihapus", fiber.Map{"id": id})
}

/* ===================== HELPERS ===================== */

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.Atoi(c.Params("id"))
	if err != nil || n <= 0 {
		return 0, apperr.Validation("ID tidak valid", []apperr.FieldError{
			{Field: "id", Message: "id harus bilangan bulat positif"},
		})
	}
	return uint(n), nil
}
