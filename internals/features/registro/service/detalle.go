package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogoModel "sigc_backend/internals/features/catalogo/model"
	dto "sigc_backend/internals/features/registro/dto"
	model "sigc_backend/internals/features/registro/model"
)

// Lecturas del registro hacia DTOs. Las usa tanto el endpoint de detalle como
// el dashboard (que arma su vista agregada a partir de estos bundles).

// UltimoReiID devuelve el rei_id más reciente para unas siglas y un año.
// ok=false significa "sin datos para ese filtro" (resultado normal, no error).
func UltimoReiID(db *gorm.DB, siglas string, anio int) (reiID int, ok bool, err error) {
	var rei model.RegistroInstitucional
	err = db.
		Joins("JOIN cat_catalogo_universidad ON cat_catalogo_universidad.cat_id = rei_registro_institucional.rei_cat_id").
		Where("cat_catalogo_universidad.cat_siglas = ? AND rei_registro_institucional.rei_anio = ?", siglas, anio).
		Order("rei_registro_institucional.rei_id DESC").
		First(&rei).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rei.ReiID, true, nil
}

// ListarRegistros: listado con filtros opcionales, SIEMPRE en orden
// descendente por rei_id (el índice 0 es el más reciente; el dashboard
// depende de ese contrato).
func ListarRegistros(db *gorm.DB, siglas string, anio *int) ([]dto.RegistroListItem, error) {
	type fila struct {
		model.RegistroInstitucional
		CatSiglas        string
		CatNombreOficial string
	}

	q := db.Model(&model.RegistroInstitucional{}).
		Select("rei_registro_institucional.*, cat_catalogo_universidad.cat_siglas, cat_catalogo_universidad.cat_nombre_oficial").
		Joins("JOIN cat_catalogo_universidad ON cat_catalogo_universidad.cat_id = rei_registro_institucional.rei_cat_id").
		Order("rei_registro_institucional.rei_id DESC")

	if siglas != "" {
		q = q.Where("cat_catalogo_universidad.cat_siglas = ?", siglas)
	}
	if anio != nil {
		q = q.Where("rei_registro_institucional.rei_anio = ?", *anio)
	}

	var filas []fila
	if err := q.Scan(&filas).Error; err != nil {
		return nil, err
	}

	items := make([]dto.RegistroListItem, 0, len(filas))
	for _, f := range filas {
		items = append(items, dto.RegistroListItem{
			ReiID:             f.ReiID,
			UniversidadSiglas: f.CatSiglas,
			UniversidadNombre: f.CatNombreOficial,
			Anio:              f.ReiAnio,
			FechaCorte:        fechaTexto(f.ReiFechaCorte),
		})
	}
	return items, nil
}

// ObtenerDetalle arma el bundle completo de un registro.
// Devuelve (nil, nil) si el registro no existe.
func ObtenerDetalle(db *gorm.DB, reiID int) (*dto.RegistroDetalle, error) {
	var rei model.RegistroInstitucional
	if err := db.First(&rei, "rei_id = ?", reiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var uni catalogoModel.Universidad
	if err := db.First(&uni, "cat_id = ?", rei.ReiCatID).Error; err != nil {
		return nil, err
	}

	var unidades []model.UnidadInvestigacion
	if err := db.Where("uni_rei_id = ?", reiID).Order("uni_id ASC").Find(&unidades).Error; err != nil {
		return nil, err
	}

	var proyectos []model.ProyectoInvestigacion
	if err := db.Where("pry_rei_id = ?", reiID).Order("pry_id ASC").Find(&proyectos).Error; err != nil {
		return nil, err
	}

	detalle := dto.RegistroDetalle{
		Universidad: uni,
		Rei: dto.ReiDetalle{
			ReiID:      rei.ReiID,
			ReiCatID:   rei.ReiCatID,
			Anio:       rei.ReiAnio,
			FechaCorte: fechaTexto(rei.ReiFechaCorte),

			TotalEstudiantes:           rei.ReiTotalEstudiantes,
			TotalPersonalAcademico:     rei.ReiTotalPersonalAcademico,
			TotalPersonalPhd:           rei.ReiTotalPersonalPhd,
			TotalPersonalContratadoInv: rei.ReiTotalPersonalContratadoInv,
			TotalPersonalApoyo:         rei.ReiTotalPersonalApoyo,

			// Montos como string con dos decimales, igual que el API original
			// serializaba sus columnas numeric(_,2)
			PctPresupuestoInv:  montoTexto(rei.ReiPctPresupuestoInv),
			PresupuestoExterno: montoTexto(rei.ReiPresupuestoExterno),
			PresupuestoInterno: montoTexto(rei.ReiPresupuestoInterno),

			NumEstPregradoProy:    rei.ReiNumEstPregradoProy,
			NumAlumniPregradoProy: rei.ReiNumAlumniPregradoProy,
			NumEstPosgradoProy:    rei.ReiNumEstPosgradoProy,
			NumAlumniPosgradoProy: rei.ReiNumAlumniPosgradoProy,
		},
		Unidades:  make([]dto.UnidadDetalle, 0, len(unidades)),
		Proyectos: dto.ProyectosDetalle{Externos: []dto.ProyectoDetalle{}, Internos: []dto.ProyectoDetalle{}},
	}

	for _, u := range unidades {
		detalle.Unidades = append(detalle.Unidades, dto.UnidadDetalle{
			UniID:              u.UniID,
			Nombre:             u.UniNombre,
			CamposConocimiento: u.UniCamposConocimiento,
			AreaCobertura:      u.UniAreaCobertura,

			NumPersonalAcademico: u.UniNumPersonalAcademico,
			NumPersonalApoyo:     u.UniNumPersonalApoyo,
			PresupuestoAnual:     montoTexto(u.UniPresupuestoAnual),
		})
	}

	for _, p := range proyectos {
		item := dto.ProyectoDetalle{
			PryID:                p.PryID,
			Tipo:                 p.PryTipo,
			Codigo:               p.PryCodigo,
			Titulo:               p.PryTitulo,
			FuenteFinanciamiento: p.PryFuenteFinanciamiento,
			MontoFinanciamiento:  montoTexto(p.PryMontoFinanciamiento),

			NumParticipantesInternos: p.PryNumParticipantesInternos,
			NumParticipantesExtNac:   p.PryNumParticipantesExtNac,
			NumParticipantesExtInt:   p.PryNumParticipantesExtInt,

			NumEstudiantesPregrado: p.PryNumEstudiantesPregrado,
			NumEstudiantesPosgrado: p.PryNumEstudiantesPosgrado,

			FechaInicio: fechaTexto(p.PryFechaInicio),
			FechaFin:    fechaTexto(p.PryFechaFin),
			Estado:      p.PryEstado,
		}
		if p.PryTipo == model.ProyectoExterno {
			detalle.Proyectos.Externos = append(detalle.Proyectos.Externos, item)
		} else {
			detalle.Proyectos.Internos = append(detalle.Proyectos.Internos, item)
		}
	}

	return &detalle, nil
}

// montoTexto serializa un monto con escala fija de dos decimales; la
// representación recortada de String perdería el "…0" final.
func montoTexto(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func fechaTexto(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// ParsearFecha interpreta "YYYY-MM-DD"; nil si el puntero viene nulo.
func ParsearFecha(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
