package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct memvalidasi DTO request; hasil error dibentuk map per field.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string][]string, len(ve))
			for _, fe := range ve {
				out[fe.Field()] = append(out[fe.Field()], fe.Tag())
			}
			return out
		}
		return map[string][]string{"_": {"invalid input"}}
	}
	return nil
}

// ValidateRequest: parse body + validasi sekaligus, balikan error response siap pakai.
func ValidateRequest(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := ValidateStruct(dst); fieldErrors != nil {
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
