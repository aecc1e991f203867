package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sigc_backend/internals/features/catalogo/dto"
	model "sigc_backend/internals/features/catalogo/model"
	helper "sigc_backend/internals/helpers"
)

type UniversidadController struct {
	DB *gorm.DB
}

func NewUniversidadController(db *gorm.DB) *UniversidadController {
	return &UniversidadController{DB: db}
}

// Listar devuelve el catálogo completo ordenado por siglas (para el dropdown).
func (ctrl *UniversidadController) Listar(c *fiber.Ctx) error {
	var universidades []model.Universidad
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("cat_siglas ASC").
		Find(&universidades).Error; err != nil {
		log.Println("[ERROR] No se pudo listar universidades:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar universidades")
	}
	return helper.JsonList(c, "Universidades", universidades)
}

// Crear da de alta una universidad en el catálogo.
func (ctrl *UniversidadController) Crear(c *fiber.Ctx) error {
	var req dto.CrearUniversidadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}
	if err := helper.ValidarEstructura(c, req); err != nil {
		return err
	}

	uni := req.AModelo()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&uni).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una universidad con esas siglas")
		}
		log.Println("[ERROR] No se pudo crear universidad:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear universidad")
	}
	return helper.JsonCreated(c, "Universidad creada", uni)
}
