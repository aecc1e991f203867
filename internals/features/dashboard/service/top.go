package service

import (
	"sort"

	helper "sigc_backend/internals/helpers"
)

// FilaProyecto: un proyecto aplanado para el ranking de financiamiento.
// Monto es el valor crudo del detalle; MontoNum es la coacción usada para
// rankear (lo no numérico vale 0 y compite al fondo, no se descarta).
type FilaProyecto struct {
	Origen               string  `json:"origen"`
	Tipo                 string  `json:"tipo"`
	Codigo               string  `json:"codigo"`
	Titulo               string  `json:"titulo"`
	FuenteFinanciamiento string  `json:"fuente_financiamiento"`
	Monto                string  `json:"monto"`
	MontoNum             float64 `json:"monto_num"`
	Estado               string  `json:"estado"`
}

// FilasProyectos aplana los proyectos conjunto por conjunto, externos antes
// que internos. Ese orden de llegada es el desempate del ranking.
func FilasProyectos(conjuntos []ConjuntoInstitucion) []FilaProyecto {
	filas := make([]FilaProyecto, 0)
	for _, cj := range conjuntos {
		for _, p := range cj.Detalle.Proyectos.Externos {
			filas = append(filas, filaProyecto(cj.Etiqueta, "Externo", p.Codigo, p.Titulo, p.FuenteFinanciamiento, p.MontoFinanciamiento, p.Estado))
		}
		for _, p := range cj.Detalle.Proyectos.Internos {
			filas = append(filas, filaProyecto(cj.Etiqueta, "Interno", p.Codigo, p.Titulo, p.FuenteFinanciamiento, p.MontoFinanciamiento, p.Estado))
		}
	}
	return filas
}

func filaProyecto(origen, tipo, codigo, titulo, fuente, monto, estado string) FilaProyecto {
	return FilaProyecto{
		Origen:               origen,
		Tipo:                 tipo,
		Codigo:               codigo,
		Titulo:               titulo,
		FuenteFinanciamiento: fuente,
		Monto:                monto,
		MontoNum:             helper.NumeroODefecto(monto),
		Estado:               estado,
	}
}

// Top5Proyectos devuelve los 5 proyectos con mayor monto, descendente. El
// orden es estable, así que los empates respetan el orden de llegada. No muta
// la entrada.
func Top5Proyectos(filas []FilaProyecto) []FilaProyecto {
	out := append([]FilaProyecto(nil), filas...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MontoNum > out[j].MontoNum
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
