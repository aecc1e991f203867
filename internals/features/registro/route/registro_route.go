package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sigc_backend/internals/features/registro/controller"
	middlewares "sigc_backend/internals/middlewares"
)

func RegistroRoutes(api fiber.Router, db *gorm.DB) {
	registroCtrl := controller.NewRegistroController(db)
	borradorCtrl := controller.NewBorradorController(db)

	api.Post("/registro", middlewares.RegistroRateLimiter(), registroCtrl.Crear)
	api.Get("/registros", registroCtrl.Listar)
	api.Get("/registro/:id", registroCtrl.Detalle)

	// Borradores: la plantilla va antes de :clave para que no colisione
	api.Get("/borrador/plantilla", borradorCtrl.Plantilla)
	api.Get("/borrador/:clave", borradorCtrl.Obtener)
	api.Put("/borrador/:clave", borradorCtrl.Guardar)
	api.Delete("/borrador/:clave", borradorCtrl.Eliminar)
}
