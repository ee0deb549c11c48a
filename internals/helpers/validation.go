// file: internals/helpers/validation.go
package helper

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"sitani_backend/internals/apperr"
	"sitani_backend/internals/helpers/dbtime"
)

var validate = newValidator()

// no_telepon: angka plus tanda baca umum (+, -, spasi, kurung)
var phoneRx = regexp.MustCompile(`^[0-9+\-() ]+$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// nama field di pesan error mengikuti json tag, bukan nama struct
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("telepon", func(fl validator.FieldLevel) bool {
		return phoneRx.MatchString(fl.Field().String())
	})

	// dbtime.Date divalidasi sebagai time.Time (required gagal pada tanggal kosong)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(dbtime.Date); ok {
			return d.Time
		}
		return nil
	}, dbtime.Date{})

	return v
}

// ValidateStruct menjalankan seluruh rule dan mengumpulkan SEMUA error field
// (urut sesuai deklarasi struct), supaya klien bisa memperbaiki sekali jalan.
func ValidateStruct(s any) []apperr.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperr.FieldError{{Field: "", Message: "Payload tidak valid"}}
	}
	out := make([]apperr.FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, apperr.FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s minimal %s karakter", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s minimal %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s maksimal %s karakter", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s harus tepat %s karakter", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s harus berupa angka", fe.Field())
	case "email":
		return fmt.Sprintf("%s bukan alamat email yang valid", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", fe.Field(), strings.ReplaceAll(fe.Param(), "' '", "', '"))
	case "gte":
		return fmt.Sprintf("%s tidak boleh kurang dari %s", fe.Field(), fe.Param())
	case "telepon":
		return fmt.Sprintf("%s hanya boleh berisi angka dan tanda baca telepon", fe.Field())
	default:
		return fmt.Sprintf("%s tidak valid (%s)", fe.Field(), fe.Tag())
	}
}

/* ===============================
   Normalisasi string DTO
=================================*/

// TrimPtr: trim; string kosong dianggap absen (nil).
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
