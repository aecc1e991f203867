package service

import (
	"github.com/shopspring/decimal"

	dto "sigc_backend/internals/features/registro/dto"
	helper "sigc_backend/internals/helpers"
)

// Motor de agregación: combina 0, 1 o 2 detalles de registro (uno por
// universidad) en KPIs sumados y la distribución de personal del donut.
// Las sumas son asociativas y conmutativas: el resultado no depende del
// orden de los conjuntos de entrada.

// ConjuntoInstitucion: un detalle de registro etiquetado con su origen.
type ConjuntoInstitucion struct {
	Etiqueta string
	Detalle  dto.RegistroDetalle
}

type KPIs struct {
	TotalEstudiantes int `json:"total_estudiantes"`
	TotalAcademico   int `json:"total_academico"`
	TotalPhd         int `json:"total_phd"`
	ContratadoInv    int `json:"contratado_inv"`
	Apoyo            int `json:"apoyo"`

	PresupuestoInterno decimal.Decimal `json:"presupuesto_interno"`
	PresupuestoExterno decimal.Decimal `json:"presupuesto_externo"`

	TotalUnidades     int `json:"total_unidades"`
	ProyectosExternos int `json:"proyectos_externos"`
	ProyectosInternos int `json:"proyectos_internos"`
}

// PresupuestoTotal: interno + externo, para la tarjeta de presupuesto.
func (k KPIs) PresupuestoTotal() decimal.Decimal {
	return k.PresupuestoInterno.Add(k.PresupuestoExterno)
}

// Cubeta: un segmento de la distribución de personal.
type Cubeta struct {
	Etiqueta   string  `json:"etiqueta"`
	Valor      int     `json:"valor"`
	Porcentaje float64 `json:"porcentaje"`
}

type Donut struct {
	Total   int      `json:"total"`
	Cubetas []Cubeta `json:"cubetas"`
}

// Visibles: cubetas con valor positivo; las no positivas se omiten del
// desglose visual pero siguen contadas en el total.
func (d Donut) Visibles() []Cubeta {
	out := make([]Cubeta, 0, len(d.Cubetas))
	for _, c := range d.Cubetas {
		if c.Valor > 0 {
			out = append(out, c)
		}
	}
	return out
}

// VistaAgregada: el resultado derivado y transitorio; se recalcula en cada
// cambio de filtro, nunca se persiste.
type VistaAgregada struct {
	SinDatos  bool     `json:"sin_datos"`
	Etiquetas []string `json:"etiquetas"`
	KPIs      KPIs     `json:"kpis"`
	Donut     Donut    `json:"donut"`
}

// Agregar suma los KPIs de los conjuntos y arma la distribución de personal.
// Cero conjuntos es el resultado explícito "sin datos", no un gráfico en cero.
func Agregar(conjuntos []ConjuntoInstitucion) VistaAgregada {
	vista := VistaAgregada{
		Etiquetas: make([]string, 0, len(conjuntos)),
		KPIs: KPIs{
			PresupuestoInterno: decimal.Zero,
			PresupuestoExterno: decimal.Zero,
		},
	}

	if len(conjuntos) == 0 {
		vista.SinDatos = true
		vista.Donut = armarDonut(vista.KPIs)
		return vista
	}

	k := &vista.KPIs
	for _, cj := range conjuntos {
		vista.Etiquetas = append(vista.Etiquetas, cj.Etiqueta)
		rei := cj.Detalle.Rei

		k.TotalEstudiantes += rei.TotalEstudiantes
		k.TotalAcademico += rei.TotalPersonalAcademico
		k.TotalPhd += rei.TotalPersonalPhd
		k.ContratadoInv += rei.TotalPersonalContratadoInv
		k.Apoyo += rei.TotalPersonalApoyo

		k.PresupuestoInterno = k.PresupuestoInterno.Add(helper.ADecimal(rei.PresupuestoInterno))
		k.PresupuestoExterno = k.PresupuestoExterno.Add(helper.ADecimal(rei.PresupuestoExterno))

		k.TotalUnidades += len(cj.Detalle.Unidades)
		k.ProyectosExternos += len(cj.Detalle.Proyectos.Externos)
		k.ProyectosInternos += len(cj.Detalle.Proyectos.Internos)
	}

	vista.Donut = armarDonut(vista.KPIs)
	return vista
}

func armarDonut(k KPIs) Donut {
	// Académico sin PhD nunca queda negativo, aunque los datos de origen
	// vengan inconsistentes (phd > académico).
	acadSinPhd := k.TotalAcademico - k.TotalPhd
	if acadSinPhd < 0 {
		acadSinPhd = 0
	}

	valores := []struct {
		etiqueta string
		valor    int
	}{
		{"PhD", k.TotalPhd},
		{"Académico (sin PhD)", acadSinPhd},
		{"Contratado (Inv.)", k.ContratadoInv},
		{"Apoyo", k.Apoyo},
	}

	total := 0
	for _, v := range valores {
		if v.valor > 0 {
			total += v.valor
		}
	}

	cubetas := make([]Cubeta, 0, len(valores))
	for _, v := range valores {
		cubetas = append(cubetas, Cubeta{
			Etiqueta:   v.etiqueta,
			Valor:      v.valor,
			Porcentaje: Porcion(float64(v.valor), float64(total)) * 100,
		})
	}

	return Donut{Total: total, Cubetas: cubetas}
}

// Porcion: parte/total con la convención de que total cero da 0, no NaN.
func Porcion(parte, total float64) float64 {
	if total == 0 {
		return 0
	}
	return parte / total
}
