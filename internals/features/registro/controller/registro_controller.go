package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogoModel "sigc_backend/internals/features/catalogo/model"
	dto "sigc_backend/internals/features/registro/dto"
	model "sigc_backend/internals/features/registro/model"
	service "sigc_backend/internals/features/registro/service"
	helper "sigc_backend/internals/helpers"
)

type RegistroController struct {
	DB *gorm.DB
}

func NewRegistroController(db *gorm.DB) *RegistroController {
	return &RegistroController{DB: db}
}

// Crear recibe el formulario completo y lo persiste.
// ?modo=final (default) corre el motor de validación y bloquea con 422 si hay
// errores duros; ?modo=borrador es el modo relajado: guarda aunque haya errores.
func (ctrl *RegistroController) Crear(c *fiber.Ctx) error {
	var form dto.FormularioRegistro
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}

	modo := c.Query("modo", "final")
	errores, avisos := service.ValidarRegistro(form)

	if modo == "final" && len(errores) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":       false,
			"message":       "Corrige errores antes de Finalizar: " + errores[0],
			"error_code":    "VALIDATION_ERROR",
			"primer_error":  errores[0],
			"total_errores": len(errores),
			"errores":       errores,
		})
	}

	payload := service.NormalizarRegistro(form)

	var uni catalogoModel.Universidad
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&uni, "cat_siglas = ?", payload.UniversidadSiglas).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Universidad no encontrada por siglas")
		}
		log.Println("[ERROR] Buscando universidad:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando el catálogo")
	}

	fechaCorte, err := service.ParsearFecha(payload.FechaCorte)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fecha_corte inválida (se espera YYYY-MM-DD)")
	}

	rei := model.RegistroInstitucional{
		ReiCatID:      uni.CatID,
		ReiAnio:       payload.Anio,
		ReiFechaCorte: fechaCorte,

		ReiTotalEstudiantes:           payload.Rei.TotalEstudiantes,
		ReiTotalPersonalAcademico:     payload.Rei.TotalPersonalAcademico,
		ReiTotalPersonalPhd:           payload.Rei.TotalPersonalPhd,
		ReiTotalPersonalContratadoInv: payload.Rei.TotalPersonalContratadoInv,
		ReiTotalPersonalApoyo:         payload.Rei.TotalPersonalApoyo,

		ReiPctPresupuestoInv:  payload.Rei.PctPresupuestoInv,
		ReiPresupuestoExterno: payload.Rei.PresupuestoExterno,
		ReiPresupuestoInterno: payload.Rei.PresupuestoInterno,

		ReiNumEstPregradoProy:    payload.Rei.NumEstPregradoProy,
		ReiNumAlumniPregradoProy: payload.Rei.NumAlumniPregradoProy,
		ReiNumEstPosgradoProy:    payload.Rei.NumEstPosgradoProy,
		ReiNumAlumniPosgradoProy: payload.Rei.NumAlumniPosgradoProy,
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rei).Error; err != nil {
			return err
		}
		if err := crearProyectos(tx, rei.ReiID, model.ProyectoExterno, payload.Proyectos.Externos); err != nil {
			return err
		}
		if err := crearProyectos(tx, rei.ReiID, model.ProyectoInterno, payload.Proyectos.Internos); err != nil {
			return err
		}
		for _, u := range payload.Unidades {
			unidad := model.UnidadInvestigacion{
				UniReiID:                rei.ReiID,
				UniNombre:               u.Nombre,
				UniCamposConocimiento:   u.CamposConocimiento,
				UniAreaCobertura:        u.AreaCobertura,
				UniNumPersonalAcademico: u.NumPersonalAcademico,
				UniNumPersonalApoyo:     u.NumPersonalApoyo,
				UniPresupuestoAnual:     u.PresupuestoAnual,
			}
			if err := tx.Create(&unidad).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] No se pudo crear el registro:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el registro")
	}

	return helper.JsonCreated(c, "Registro creado", fiber.Map{
		"rei_id": rei.ReiID,
		"modo":   modo,
		"avisos": avisos,
	})
}

func crearProyectos(tx *gorm.DB, reiID int, tipo string, lista []dto.ProyectoPayload) error {
	for _, p := range lista {
		inicio, err := service.ParsearFecha(p.FechaInicio)
		if err != nil {
			return err
		}
		fin, err := service.ParsearFecha(p.FechaFin)
		if err != nil {
			return err
		}
		proy := model.ProyectoInvestigacion{
			PryReiID: reiID,
			PryTipo:  tipo,

			PryCodigo: p.Codigo,
			PryTitulo: p.Titulo,

			PryNumParticipantesInternos: p.NumParticipantesInternos,
			PryNumParticipantesExtNac:   p.NumParticipantesExtNac,
			PryNumParticipantesExtInt:   p.NumParticipantesExtInt,

			PryNumEstudiantesPregrado: p.NumEstudiantesPregrado,
			PryNumEstudiantesPosgrado: p.NumEstudiantesPosgrado,

			PryFuenteFinanciamiento: p.FuenteFinanciamiento,
			PryMontoFinanciamiento:  p.MontoFinanciamiento,

			PryFechaInicio: inicio,
			PryFechaFin:    fin,
			PryEstado:      p.Estado,
		}
		if err := tx.Create(&proy).Error; err != nil {
			return err
		}
	}
	return nil
}

// Listar devuelve los registros con filtros opcionales, descendente por rei_id.
func (ctrl *RegistroController) Listar(c *fiber.Ctx) error {
	siglas := c.Query("universidad_siglas")

	var anio *int
	if s := c.Query("anio"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "anio inválido")
		}
		anio = &n
	}

	items, err := service.ListarRegistros(ctrl.DB.WithContext(c.UserContext()), siglas, anio)
	if err != nil {
		log.Println("[ERROR] No se pudo listar registros:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar registros")
	}
	return helper.JsonList(c, "Registros", items)
}

// Detalle devuelve el bundle completo de un registro por rei_id.
func (ctrl *RegistroController) Detalle(c *fiber.Ctx) error {
	reiID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "rei_id inválido")
	}

	detalle, err := service.ObtenerDetalle(ctrl.DB.WithContext(c.UserContext()), reiID)
	if err != nil {
		log.Println("[ERROR] No se pudo obtener el detalle:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el registro")
	}
	if detalle == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registro no encontrado")
	}
	return helper.JsonOK(c, "Detalle de registro", detalle)
}
