// internals/features/kelompok_tani/controller/kelompok_tani_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sitani_backend/internals/apperr"
	ktDTO "sitani_backend/internals/features/kelompok_tani/dto"
	ktService "sitani_backend/internals/features/kelompok_tani/service"
	helper "sitani_backend/internals/helpers"
)

type KelompokTaniController struct {
	Service *ktService.KelompokTaniService
}

func NewKelompokTaniController(db *gorm.DB) *KelompokTaniController {
	return &KelompokTaniController{Service: ktService.NewKelompokTaniService(db)}
}

/* ===================== HANDLERS ===================== */

// GET /api/kelompok-tani
func (h *KelompokTaniController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, "created_at", "DESC")

	q := ktDTO.ListKelompokTaniQuery{
		Search:          strings.TrimSpace(c.Query("search")),
		StatusLegalitas: strings.TrimSpace(c.Query("statusLegalitas")),
		StatusAktif:     strings.TrimSpace(c.Query("statusAktif")),
		Kecamatan:       strings.TrimSpace(c.Query("kecamatan")),
		Kabupaten:       strings.TrimSpace(c.Query("kabupaten")),
		KomoditasUtama:  strings.TrimSpace(c.Query("komoditasUtama")),
		Paging:          p,
	}

	items, total, err := h.Service.List(q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	meta := helper.BuildPagination(total, p)
	return helper.JsonOK(c, "Data kelompok tani berhasil diambil", fiber.Map{
		"kelompok_tani": items,
		"pagination":    meta,
	})
}

// GET /api/kelompok-tani/stats
func (h *KelompokTaniController) Stats(c *fiber.Ctx) error {
	stats, err := h.Service.Stats()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Statistik kelompok tani berhasil diambil", stats)
}

// GET /api/kelompok-tani/:id
func (h *KelompokTaniController) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	item, err := h.Service.GetByID(id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Data kelompok tani berhasil diambil", item)
}

// POST /api/kelompok-tani
func (h *KelompokTaniController) Create(c *fiber.Ctx) error {
	var req ktDTO.CreateKelompokTaniRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if fields := helper.ValidateStruct(&req); fields != nil {
		return helper.JsonValidationError(c, "Validasi gagal", fields)
	}

	item, err := h.Service.Create(&req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Kelompok tani berhasil ditambahkan", item)
}

// PUT /api/kelompok-tani/:id
func (h *KelompokTaniController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req ktDTO.UpdateKelompokTaniRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if fields := helper.ValidateStruct(&req); fields != nil {
		return helper.JsonValidationError(c, "Validasi gagal", fields)
	}

	item, err := h.Service.Update(id, &req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Kelompok tani berhasil diperbarui", item)
}

// DELETE /api/kelompok-tani/:id
func (h *KelompokTaniController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := h.Service.Delete(id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Kelompok tani berhasil dihapus", fiber.Map{"id": id})
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
