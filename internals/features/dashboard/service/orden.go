package service

import (
	"sort"
	"strings"

	helper "sigc_backend/internals/helpers"
)

// Ordenamiento y filtro de la tabla de unidades del dashboard. El filtro y el
// orden nunca mutan la entrada: siempre devuelven una copia.

// Claves de orden aceptadas por la tabla de unidades.
const (
	ClaveOrigen    = "origen"
	ClaveNombre    = "nombre"
	ClaveCampos    = "campos_conocimiento"
	ClaveArea      = "area_cobertura"
	ClaveAcademico = "personal_academico"
	ClaveApoyo     = "personal_apoyo"
	ClavePresup    = "presupuesto_anual"
)

const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

// FilaUnidad: una unidad aplanada para la tabla comparativa. El presupuesto
// viaja crudo (string) y se coacciona a número recién al comparar.
type FilaUnidad struct {
	Origen             string `json:"origen"`
	Nombre             string `json:"nombre"`
	CamposConocimiento string `json:"campos_conocimiento"`
	AreaCobertura      string `json:"area_cobertura"`
	PersonalAcademico  int    `json:"personal_academico"`
	PersonalApoyo      int    `json:"personal_apoyo"`
	PresupuestoAnual   string `json:"presupuesto_anual"`
}

// FilasUnidades aplana las unidades de los conjuntos en orden de llegada.
func FilasUnidades(conjuntos []ConjuntoInstitucion) []FilaUnidad {
	filas := make([]FilaUnidad, 0)
	for _, cj := range conjuntos {
		for _, u := range cj.Detalle.Unidades {
			filas = append(filas, FilaUnidad{
				Origen:             cj.Etiqueta,
				Nombre:             u.Nombre,
				CamposConocimiento: u.CamposConocimiento,
				AreaCobertura:      u.AreaCobertura,
				PersonalAcademico:  u.NumPersonalAcademico,
				PersonalApoyo:      u.NumPersonalApoyo,
				PresupuestoAnual:   u.PresupuestoAnual,
			})
		}
	}
	return filas
}

// FiltrarUnidades: substring sin distinguir mayúsculas sobre la concatenación
// de origen, nombre, campos de conocimiento y área de cobertura. Búsqueda
// vacía devuelve todo.
func FiltrarUnidades(filas []FilaUnidad, busqueda string) []FilaUnidad {
	q := strings.ToLower(strings.TrimSpace(busqueda))
	if q == "" {
		return append([]FilaUnidad(nil), filas...)
	}

	out := make([]FilaUnidad, 0, len(filas))
	for _, f := range filas {
		if strings.Contains(textoBusqueda(f), q) {
			out = append(out, f)
		}
	}
	return out
}

// textoBusqueda une los campos buscables con un espacio; así un término puede
// cruzar el borde entre campos contiguos (p. ej. "uc centro").
func textoBusqueda(f FilaUnidad) string {
	return strings.ToLower(strings.Join([]string{
		f.Origen, f.Nombre, f.CamposConocimiento, f.AreaCobertura,
	}, " "))
}

// OrdenarUnidades ordena una copia de las filas por la clave dada. El orden es
// estable: filas equivalentes conservan su posición relativa. Una clave
// desconocida deja el orden de llegada.
func OrdenarUnidades(filas []FilaUnidad, clave, dir string) []FilaUnidad {
	out := append([]FilaUnidad(nil), filas...)
	if valorClave(FilaUnidad{}, clave) == nil {
		return out
	}

	mult := 1
	if dir == DirDesc {
		mult = -1
	}

	sort.SliceStable(out, func(i, j int) bool {
		return comparar(valorClave(out[i], clave), valorClave(out[j], clave))*mult < 0
	})
	return out
}

func valorClave(f FilaUnidad, clave string) any {
	switch clave {
	case ClaveOrigen:
		return f.Origen
	case ClaveNombre:
		return f.Nombre
	case ClaveCampos:
		return f.CamposConocimiento
	case ClaveArea:
		return f.AreaCobertura
	case ClaveAcademico:
		return f.PersonalAcademico
	case ClaveApoyo:
		return f.PersonalApoyo
	case ClavePresup:
		return f.PresupuestoAnual
	default:
		return nil
	}
}

// comparar aplica la regla numérica-primero: si ambos valores coaccionan a
// número se comparan como números; si no, como texto en minúsculas.
func comparar(a, b any) int {
	na, okA := helper.ANumero(a)
	nb, okB := helper.ANumero(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	ta := strings.ToLower(helper.ATexto(a))
	tb := strings.ToLower(helper.ATexto(b))
	return strings.Compare(ta, tb)
}
