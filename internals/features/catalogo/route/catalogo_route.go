package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sigc_backend/internals/features/catalogo/controller"
)

func CatalogoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUniversidadController(db)

	api.Get("/universidades", ctrl.Listar)
	api.Post("/universidades", ctrl.Crear)
}
