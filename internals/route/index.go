package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogoRoute "sigc_backend/internals/features/catalogo/route"
	dashboardRoute "sigc_backend/internals/features/dashboard/route"
	registroRoute "sigc_backend/internals/features/registro/route"
)

// SetupRoutes monta todas las features bajo /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	catalogoRoute.CatalogoRoutes(api, db)
	registroRoute.RegistroRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
