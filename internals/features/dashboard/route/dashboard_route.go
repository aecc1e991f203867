package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sigc_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	api.Get("/dashboard", ctrl.Ver)
}
