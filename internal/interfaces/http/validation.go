package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/internal/domain"
)

var validate = newValidator()

// newValidator usa el nombre JSON de cada campo en los errores.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON decodifica el cuerpo y valida los tags. Un cuerpo vacío deja out en cero,
// así los campos requeridos fallan con su propio mensaje.
func bindJSON(c *fiber.Ctx, out any) error {
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, out); err != nil {
			return errInvalidBody
		}
	}
	return validateStruct(out)
}

// validateStruct devuelve el primer error de validación como domain.Invalid.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Invalid(err.Error())
	}
	return domain.Invalid(fieldMessage(verrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "Missing required field: " + field
	case "email":
		return "Invalid email address: " + field
	case "oneof":
		if field == "role" {
			return "Invalid role"
		}
		return fmt.Sprintf("Field %s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("Field %s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", field, fe.Param())
	default:
		return "Invalid value for field: " + field
	}
}
