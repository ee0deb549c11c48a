// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sitani_backend/internals/apperr"
)

/* ===============================
   Envelope standar:
   { success, message?, data?, errors?: [{field,message}] }
=================================*/

func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonValidationError: semua error field dikirim sekaligus (bukan fail-fast).
func JsonValidationError(c *fiber.Ctx, message string, fields []apperr.FieldError) error {
	if strings.TrimSpace(message) == "" {
		message = "Validasi gagal"
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"errors":  fields,
	})
}

// JsonAppError memetakan error-kind dari service ke status HTTP.
// Satu-satunya tempat pemetaan kind → status; tidak pernah melihat isi pesan.
func JsonAppError(c *fiber.Ctx, err error) error {
	ae, ok := apperr.From(err)
	if !ok {
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	switch ae.Kind {
	case apperr.KindValidation:
		return JsonValidationError(c, ae.Message, ae.Fields)
	case apperr.KindNotFound:
		return JsonError(c, fiber.StatusNotFound, ae.Message)
	case apperr.KindConflict:
		return JsonError(c, fiber.StatusConflict, ae.Message)
	case apperr.KindDependency:
		return JsonError(c, fiber.StatusBadRequest, ae.Message)
	case apperr.KindStore:
		return JsonError(c, fiber.StatusInternalServerError, ae.Message)
	default:
		return JsonError(c, fiber.StatusInternalServerError, ae.Message)
	}
}
