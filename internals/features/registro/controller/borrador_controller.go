package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "sigc_backend/internals/features/registro/model"
	service "sigc_backend/internals/features/registro/service"
	helper "sigc_backend/internals/helpers"
)

// BorradorController: el almacén de borradores. Una fila por clave de sesión;
// las escrituras reemplazan el blob completo, nunca campos sueltos.
type BorradorController struct {
	DB *gorm.DB
}

func NewBorradorController(db *gorm.DB) *BorradorController {
	return &BorradorController{DB: db}
}

// Plantilla entrega el formulario con valores por defecto para iniciar el flujo.
func (ctrl *BorradorController) Plantilla(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Formulario por defecto", service.FormularioPorDefecto())
}

// Guardar reemplaza el borrador guardado bajo la clave (upsert atómico).
func (ctrl *BorradorController) Guardar(c *fiber.Ctx) error {
	clave := strings.TrimSpace(c.Params("clave"))
	if clave == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Clave de borrador requerida")
	}

	// El cuerpo debe ser un formulario deserializable; lo que se guarda es el
	// blob tal cual (el borrador viaja y se almacena entero).
	cuerpo := c.Body()
	if _, err := service.DecodificarBorrador(cuerpo); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "El borrador no es un formulario válido")
	}

	borrador := model.BorradorRegistro{
		BorClave: clave,
		BorDatos: append([]byte(nil), cuerpo...),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bor_clave"}},
			DoUpdates: clause.AssignmentColumns([]string{"bor_datos", "updated_at"}),
		}).
		Create(&borrador).Error; err != nil {
		log.Println("[ERROR] No se pudo guardar el borrador:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el borrador")
	}

	return helper.JsonUpdated(c, "Borrador guardado", fiber.Map{"clave": clave})
}

// Obtener devuelve el borrador guardado. Un blob que no parsea se reporta como
// corrupción; la fila queda intacta para no destruir evidencia con una lectura.
func (ctrl *BorradorController) Obtener(c *fiber.Ctx) error {
	clave := strings.TrimSpace(c.Params("clave"))
	if clave == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Clave de borrador requerida")
	}

	var borrador model.BorradorRegistro
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&borrador, "bor_clave = ?", clave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "No hay borrador guardado")
	}
	if err != nil {
		log.Println("[ERROR] No se pudo leer el borrador:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el borrador")
	}

	form, err := service.DecodificarBorrador(borrador.BorDatos)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Borrador corrupto. El formulario en edición no fue modificado; elimina el borrador y vuelve a guardar.")
	}

	return helper.JsonOK(c, "Borrador cargado", form)
}

// Eliminar descarta el borrador guardado (reset del flujo).
func (ctrl *BorradorController) Eliminar(c *fiber.Ctx) error {
	clave := strings.TrimSpace(c.Params("clave"))
	if clave == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Clave de borrador requerida")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.BorradorRegistro{}, "bor_clave = ?", clave).Error; err != nil {
		log.Println("[ERROR] No se pudo eliminar el borrador:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el borrador")
	}
	return helper.JsonDeleted(c, "Borrador eliminado", fiber.Map{"clave": clave})
}
