package dto

import (
	"github.com/shopspring/decimal"

	catalogoModel "sigc_backend/internals/features/catalogo/model"
)

/* ===============================
   Formulario (estado del editor)
=================================*/

// MetricasRei: métricas de personal, presupuesto y participación del paso 2, 3 y 6.
type MetricasRei struct {
	TotalEstudiantes           int `json:"total_estudiantes"`
	TotalPersonalAcademico     int `json:"total_personal_academico"`
	TotalPersonalPhd           int `json:"total_personal_phd"`
	TotalPersonalContratadoInv int `json:"total_personal_contratado_inv"`
	TotalPersonalApoyo         int `json:"total_personal_apoyo"`

	PctPresupuestoInv  float64 `json:"pct_presupuesto_inv"`
	PresupuestoExterno float64 `json:"presupuesto_externo"`
	PresupuestoInterno float64 `json:"presupuesto_interno"`

	NumEstPregradoProy    int `json:"num_est_pregrado_proy"`
	NumAlumniPregradoProy int `json:"num_alumni_pregrado_proy"`
	NumEstPosgradoProy    int `json:"num_est_posgrado_proy"`
	NumAlumniPosgradoProy int `json:"num_alumni_posgrado_proy"`
}

// UnidadForm: fila de unidad tal como vive en el editor.
// Tipo (CENTRO/INSTITUTO) es solo del editor; no llega al almacenamiento.
type UnidadForm struct {
	Nombre               string  `json:"nombre"`
	Tipo                 string  `json:"tipo"`
	CamposConocimiento   string  `json:"campos_conocimiento"`
	AreaCobertura        string  `json:"area_cobertura"`
	NumPersonalAcademico int     `json:"num_personal_academico"`
	NumPersonalApoyo     int     `json:"num_personal_apoyo"`
	PresupuestoAnual     float64 `json:"presupuesto_anual"`
}

// ProyectoForm: fila de proyecto en el editor; las fechas son "YYYY-MM-DD" o "".
type ProyectoForm struct {
	Codigo               string  `json:"codigo"`
	Titulo               string  `json:"titulo"`
	FuenteFinanciamiento string  `json:"fuente_financiamiento"`
	MontoFinanciamiento  float64 `json:"monto_financiamiento"`

	NumParticipantesInternos int `json:"num_participantes_internos"`
	NumParticipantesExtNac   int `json:"num_participantes_ext_nac"`
	NumParticipantesExtInt   int `json:"num_participantes_ext_int"`

	NumEstudiantesPregrado int `json:"num_estudiantes_pregrado"`
	NumEstudiantesPosgrado int `json:"num_estudiantes_posgrado"`

	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Estado      string `json:"estado"`
}

type ProyectosForm struct {
	Externos []ProyectoForm `json:"externos"`
	Internos []ProyectoForm `json:"internos"`
}

// FormularioRegistro: el registro en edición, completo. Es lo que se guarda
// como borrador (serializado entero) y lo que valida el motor de reglas.
type FormularioRegistro struct {
	UniversidadSiglas string `json:"universidad_siglas"`
	Anio              int    `json:"anio"`
	FechaCorte        string `json:"fecha_corte"`

	Rei       MetricasRei   `json:"rei"`
	Unidades  []UnidadForm  `json:"unidades"`
	Proyectos ProyectosForm `json:"proyectos"`
}

/* ===============================
   Payload normalizado (hacia la BD)
=================================*/

type ReiPayload struct {
	TotalEstudiantes           int `json:"total_estudiantes"`
	TotalPersonalAcademico     int `json:"total_personal_academico"`
	TotalPersonalPhd           int `json:"total_personal_phd"`
	TotalPersonalContratadoInv int `json:"total_personal_contratado_inv"`
	TotalPersonalApoyo         int `json:"total_personal_apoyo"`

	PctPresupuestoInv  decimal.Decimal `json:"pct_presupuesto_inv"`
	PresupuestoExterno decimal.Decimal `json:"presupuesto_externo"`
	PresupuestoInterno decimal.Decimal `json:"presupuesto_interno"`

	NumEstPregradoProy    int `json:"num_est_pregrado_proy"`
	NumAlumniPregradoProy int `json:"num_alumni_pregrado_proy"`
	NumEstPosgradoProy    int `json:"num_est_posgrado_proy"`
	NumAlumniPosgradoProy int `json:"num_alumni_posgrado_proy"`
}

// UnidadPayload: unidad lista para almacenar; sin el tipo del editor.
type UnidadPayload struct {
	Nombre               string          `json:"nombre"`
	CamposConocimiento   string          `json:"campos_conocimiento"`
	AreaCobertura        string          `json:"area_cobertura"`
	NumPersonalAcademico int             `json:"num_personal_academico"`
	NumPersonalApoyo     int             `json:"num_personal_apoyo"`
	PresupuestoAnual     decimal.Decimal `json:"presupuesto_anual"`
}

// ProyectoPayload: proyecto listo para almacenar; fechas vacías pasan a null.
type ProyectoPayload struct {
	Codigo               string          `json:"codigo"`
	Titulo               string          `json:"titulo"`
	FuenteFinanciamiento string          `json:"fuente_financiamiento"`
	MontoFinanciamiento  decimal.Decimal `json:"monto_financiamiento"`

	NumParticipantesInternos int `json:"num_participantes_internos"`
	NumParticipantesExtNac   int `json:"num_participantes_ext_nac"`
	NumParticipantesExtInt   int `json:"num_participantes_ext_int"`

	NumEstudiantesPregrado int `json:"num_estudiantes_pregrado"`
	NumEstudiantesPosgrado int `json:"num_estudiantes_posgrado"`

	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Estado      string  `json:"estado"`
}

type ProyectosPayload struct {
	Externos []ProyectoPayload `json:"externos"`
	Internos []ProyectoPayload `json:"internos"`
}

// RegistroPayload: la forma exacta que espera el endpoint de creación.
type RegistroPayload struct {
	UniversidadSiglas string  `json:"universidad_siglas"`
	Anio              int     `json:"anio"`
	FechaCorte        *string `json:"fecha_corte"`

	Rei       ReiPayload       `json:"rei"`
	Unidades  []UnidadPayload  `json:"unidades"`
	Proyectos ProyectosPayload `json:"proyectos"`
}

/* ===============================
   Respuestas de lectura
=================================*/

// RegistroListItem: fila del listado de registros (con datos del catálogo).
type RegistroListItem struct {
	ReiID             int     `json:"rei_id"`
	UniversidadSiglas string  `json:"universidad_siglas"`
	UniversidadNombre string  `json:"universidad_nombre"`
	Anio              int     `json:"anio"`
	FechaCorte        *string `json:"fecha_corte"`
}

// ReiDetalle: métricas del registro en el detalle. Los montos van como string,
// igual que los serializaba el backend original.
type ReiDetalle struct {
	ReiID      int     `json:"rei_id"`
	ReiCatID   int     `json:"rei_cat_id"`
	Anio       int     `json:"anio"`
	FechaCorte *string `json:"fecha_corte"`

	TotalEstudiantes           int `json:"total_estudiantes"`
	TotalPersonalAcademico     int `json:"total_personal_academico"`
	TotalPersonalPhd           int `json:"total_personal_phd"`
	TotalPersonalContratadoInv int `json:"total_personal_contratado_inv"`
	TotalPersonalApoyo         int `json:"total_personal_apoyo"`

	PctPresupuestoInv  string `json:"pct_presupuesto_inv"`
	PresupuestoExterno string `json:"presupuesto_externo"`
	PresupuestoInterno string `json:"presupuesto_interno"`

	NumEstPregradoProy    int `json:"num_est_pregrado_proy"`
	NumAlumniPregradoProy int `json:"num_alumni_pregrado_proy"`
	NumEstPosgradoProy    int `json:"num_est_posgrado_proy"`
	NumAlumniPosgradoProy int `json:"num_alumni_posgrado_proy"`
}

type UnidadDetalle struct {
	UniID              int    `json:"uni_id"`
	Nombre             string `json:"nombre"`
	CamposConocimiento string `json:"campos_conocimiento"`
	AreaCobertura      string `json:"area_cobertura"`

	NumPersonalAcademico int    `json:"num_personal_academico"`
	NumPersonalApoyo     int    `json:"num_personal_apoyo"`
	PresupuestoAnual     string `json:"presupuesto_anual"`
}

type ProyectoDetalle struct {
	PryID                int    `json:"pry_id"`
	Tipo                 string `json:"tipo"`
	Codigo               string `json:"codigo"`
	Titulo               string `json:"titulo"`
	FuenteFinanciamiento string `json:"fuente_financiamiento"`
	MontoFinanciamiento  string `json:"monto_financiamiento"`

	NumParticipantesInternos int `json:"num_participantes_internos"`
	NumParticipantesExtNac   int `json:"num_participantes_ext_nac"`
	NumParticipantesExtInt   int `json:"num_participantes_ext_int"`

	NumEstudiantesPregrado int `json:"num_estudiantes_pregrado"`
	NumEstudiantesPosgrado int `json:"num_estudiantes_posgrado"`

	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Estado      string  `json:"estado"`
}

type ProyectosDetalle struct {
	Externos []ProyectoDetalle `json:"externos"`
	Internos []ProyectoDetalle `json:"internos"`
}

// RegistroDetalle: el bundle completo que consume el dashboard.
type RegistroDetalle struct {
	Universidad catalogoModel.Universidad `json:"universidad"`
	Rei         ReiDetalle                `json:"rei"`
	Unidades    []UnidadDetalle           `json:"unidades"`
	Proyectos   ProyectosDetalle          `json:"proyectos"`
}
