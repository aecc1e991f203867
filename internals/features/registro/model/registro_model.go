package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Tipos de proyecto (enum typ_pry_tipo en Postgres)
const (
	ProyectoExterno = "externo"
	ProyectoInterno = "interno"
)

// RegistroInstitucional: un registro anual de métricas de investigación (REI).
type RegistroInstitucional struct {
	ReiID         int        `gorm:"column:rei_id;primaryKey" json:"rei_id"`
	ReiCatID      int        `gorm:"column:rei_cat_id;not null;index" json:"rei_cat_id"`
	ReiAnio       int        `gorm:"column:rei_anio;not null" json:"anio"`
	ReiFechaCorte *time.Time `gorm:"column:rei_fecha_corte;type:date" json:"fecha_corte"`

	ReiTotalEstudiantes           int `gorm:"column:rei_total_estudiantes;not null;default:0" json:"total_estudiantes"`
	ReiTotalPersonalAcademico     int `gorm:"column:rei_total_personal_academico;not null;default:0" json:"total_personal_academico"`
	ReiTotalPersonalPhd           int `gorm:"column:rei_total_personal_phd;not null;default:0" json:"total_personal_phd"`
	ReiTotalPersonalContratadoInv int `gorm:"column:rei_total_personal_contratado_inv;not null;default:0" json:"total_personal_contratado_inv"`
	ReiTotalPersonalApoyo         int `gorm:"column:rei_total_personal_apoyo;not null;default:0" json:"total_personal_apoyo"`

	ReiPctPresupuestoInv  decimal.Decimal `gorm:"column:rei_pct_presupuesto_inv;type:numeric(5,2);not null;default:0" json:"pct_presupuesto_inv"`
	ReiPresupuestoExterno decimal.Decimal `gorm:"column:rei_presupuesto_externo;type:numeric(14,2);not null;default:0" json:"presupuesto_externo"`
	ReiPresupuestoInterno decimal.Decimal `gorm:"column:rei_presupuesto_interno;type:numeric(14,2);not null;default:0" json:"presupuesto_interno"`

	ReiNumEstPregradoProy    int `gorm:"column:rei_num_est_pregrado_proy;not null;default:0" json:"num_est_pregrado_proy"`
	ReiNumAlumniPregradoProy int `gorm:"column:rei_num_alumni_pregrado_proy;not null;default:0" json:"num_alumni_pregrado_proy"`
	ReiNumEstPosgradoProy    int `gorm:"column:rei_num_est_posgrado_proy;not null;default:0" json:"num_est_posgrado_proy"`
	ReiNumAlumniPosgradoProy int `gorm:"column:rei_num_alumni_posgrado_proy;not null;default:0" json:"num_alumni_posgrado_proy"`
}

func (RegistroInstitucional) TableName() string {
	return "rei_registro_institucional"
}

// UnidadInvestigacion: centro o instituto asociado a un registro.
// La BD no guarda el tipo (CENTRO/INSTITUTO); ese campo es solo del editor.
type UnidadInvestigacion struct {
	UniID    int `gorm:"column:uni_id;primaryKey" json:"uni_id"`
	UniReiID int `gorm:"column:uni_rei_id;not null;index" json:"uni_rei_id"`

	UniNombre             string `gorm:"column:uni_nombre;type:text;not null" json:"nombre"`
	UniCamposConocimiento string `gorm:"column:uni_campos_conocimiento;type:text" json:"campos_conocimiento"`
	UniAreaCobertura      string `gorm:"column:uni_area_cobertura;type:text" json:"area_cobertura"`

	UniNumPersonalAcademico int             `gorm:"column:uni_num_personal_academico;not null;default:0" json:"num_personal_academico"`
	UniNumPersonalApoyo     int             `gorm:"column:uni_num_personal_apoyo;not null;default:0" json:"num_personal_apoyo"`
	UniPresupuestoAnual     decimal.Decimal `gorm:"column:uni_presupuesto_anual;type:numeric(14,2);not null;default:0" json:"presupuesto_anual"`
}

func (UnidadInvestigacion) TableName() string {
	return "uni_unidad_investigacion"
}

// ProyectoInvestigacion: proyecto financiado, externo o interno.
type ProyectoInvestigacion struct {
	PryID    int    `gorm:"column:pry_id;primaryKey" json:"pry_id"`
	PryReiID int    `gorm:"column:pry_rei_id;not null;index" json:"pry_rei_id"`
	PryTipo  string `gorm:"column:pry_tipo;type:typ_pry_tipo;not null" json:"tipo"`

	PryCodigo string `gorm:"column:pry_codigo;type:text" json:"codigo"`
	PryTitulo string `gorm:"column:pry_titulo;type:text" json:"titulo"`

	PryNumParticipantesInternos int `gorm:"column:pry_num_participantes_internos;not null;default:0" json:"num_participantes_internos"`
	PryNumParticipantesExtNac   int `gorm:"column:pry_num_participantes_ext_nac;not null;default:0" json:"num_participantes_ext_nac"`
	PryNumParticipantesExtInt   int `gorm:"column:pry_num_participantes_ext_int;not null;default:0" json:"num_participantes_ext_int"`

	PryNumEstudiantesPregrado int `gorm:"column:pry_num_estudiantes_pregrado;not null;default:0" json:"num_estudiantes_pregrado"`
	PryNumEstudiantesPosgrado int `gorm:"column:pry_num_estudiantes_posgrado;not null;default:0" json:"num_estudiantes_posgrado"`

	PryFuenteFinanciamiento string          `gorm:"column:pry_fuente_financiamiento;type:text" json:"fuente_financiamiento"`
	PryMontoFinanciamiento  decimal.Decimal `gorm:"column:pry_monto_financiamiento;type:numeric(14,2);not null;default:0" json:"monto_financiamiento"`

	PryFechaInicio *time.Time `gorm:"column:pry_fecha_inicio;type:date" json:"fecha_inicio"`
	PryFechaFin    *time.Time `gorm:"column:pry_fecha_fin;type:date" json:"fecha_fin"`

	PryEstado string `gorm:"column:pry_estado;type:text;not null;default:'Activo'" json:"estado"`
}

func (ProyectoInvestigacion) TableName() string {
	return "pry_proyecto_investigacion"
}

// BorradorRegistro: borrador en curso, serializado completo como blob opaco.
// Una fila por clave de sesión; cada escritura reemplaza el blob entero.
type BorradorRegistro struct {
	BorClave string         `gorm:"column:bor_clave;primaryKey;type:text" json:"bor_clave"`
	BorDatos datatypes.JSON `gorm:"column:bor_datos;type:jsonb;not null" json:"bor_datos"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BorradorRegistro) TableName() string {
	return "bor_borrador_registro"
}
