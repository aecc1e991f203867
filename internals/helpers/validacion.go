// file: internals/helpers/validacion.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidarEstructura aplica las etiquetas `validate` de un DTO y responde 422
// con el detalle por campo. Devuelve nil si la estructura es válida.
// Ojo: esto valida la FORMA del request; las reglas de negocio del registro
// (orden fijo de errores) viven en registro/service/validacion.go.
func ValidarEstructura(c *fiber.Ctx, s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}
	errorsMap := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = append(errorsMap[fieldErr.Field()], fieldErr.Tag())
	}
	return JsonValidationError(c, errorsMap)
}
