package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "sigc_backend/internals/features/dashboard/service"
	helper "sigc_backend/internals/helpers"
)

type DashboardController struct {
	Consultor *service.Consultor
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		Consultor: service.NewConsultor(service.LectorRegistrosDB{DB: db}),
	}
}

// Ver arma la vista comparativa completa en una sola respuesta:
// GET /api/dashboard?filtro=UC|ESPOL|AMBAS&anio=2025&q=&orden=&dir=
// La tabla de unidades respeta q/orden/dir; el top 5 y los KPIs no.
func (ctrl *DashboardController) Ver(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Query("anio", "2025"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "anio inválido")
	}

	filtro := service.Filtro{
		Universidad: c.Query("filtro", service.FiltroAmbas),
		Anio:        anio,
	}
	if err := helper.ValidarEstructura(c, filtro); err != nil {
		return err
	}

	res, err := ctrl.Consultor.Refrescar(c.UserContext(), filtro)
	if errors.Is(err, service.ErrConsultaObsoleta) {
		return helper.JsonError(c, fiber.StatusConflict, "La consulta fue reemplazada por un filtro más reciente")
	}
	if err != nil {
		log.Println("[ERROR] Consulta del dashboard:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el dashboard")
	}

	vista := service.Agregar(res.Conjuntos)

	unidades := service.FilasUnidades(res.Conjuntos)
	unidades = service.FiltrarUnidades(unidades, c.Query("q"))
	unidades = service.OrdenarUnidades(unidades, c.Query("orden"), c.Query("dir", service.DirAsc))

	top5 := service.Top5Proyectos(service.FilasProyectos(res.Conjuntos))

	return helper.JsonOK(c, "Dashboard comparativo", fiber.Map{
		"filtro":    res.Filtro,
		"sin_datos": vista.SinDatos,
		"etiquetas": vista.Etiquetas,
		"kpis": fiber.Map{
			"total_estudiantes":   vista.KPIs.TotalEstudiantes,
			"total_academico":     vista.KPIs.TotalAcademico,
			"total_phd":           vista.KPIs.TotalPhd,
			"contratado_inv":      vista.KPIs.ContratadoInv,
			"apoyo":               vista.KPIs.Apoyo,
			"presupuesto_interno": vista.KPIs.PresupuestoInterno,
			"presupuesto_externo": vista.KPIs.PresupuestoExterno,
			"presupuesto_total":   vista.KPIs.PresupuestoTotal(),
			"total_unidades":      vista.KPIs.TotalUnidades,
			"proyectos_externos":  vista.KPIs.ProyectosExternos,
			"proyectos_internos":  vista.KPIs.ProyectosInternos,
		},
		"donut": fiber.Map{
			"total":    vista.Donut.Total,
			"cubetas":  vista.Donut.Cubetas,
			"visibles": vista.Donut.Visibles(),
		},
		"unidades":       unidades,
		"top5_proyectos": top5,
		"avisos_red":     res.AvisosRed,
	})
}
