package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationErrorMap mengubah validator.ValidationErrors menjadi map
// field → daftar pesan, untuk dikirim via JsonValidationError.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Invalid input"}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], messageForTag(fe))
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "min":
		return fe.Field() + " harus minimal " + fe.Param() + " karakter."
	case "max":
		return fe.Field() + " harus kurang dari " + fe.Param() + " karakter."
	case "oneof":
		return fe.Field() + " harus salah satu dari " + fe.Param() + "."
	case "uuid":
		return fe.Field() + " harus berupa UUID yang valid."
	case "gtefield":
		return fe.Field() + " tidak boleh sebelum " + fe.Param() + "."
	default:
		return fe.Field() + " tidak valid."
	}
}

// ValidationError: shortcut validasi gagal → 422 dengan map field error.
func ValidationError(c *fiber.Ctx, err error) error {
	return JsonValidationError(c, ValidationErrorMap(err))
}
