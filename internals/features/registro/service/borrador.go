package service

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"

	dto "sigc_backend/internals/features/registro/dto"
)

// ErrBorradorCorrupto: el blob guardado no se pudo deserializar. Quien lee
// debe reportarlo y dejar intacto tanto el borrador en memoria como la fila.
var ErrBorradorCorrupto = errors.New("borrador corrupto")

// FormularioPorDefecto arma el registro inicial del asistente: una unidad
// vacía y un proyecto externo vacío para que el editor tenga filas visibles.
func FormularioPorDefecto() dto.FormularioRegistro {
	return dto.FormularioRegistro{
		UniversidadSiglas: "ESPOL",
		Anio:              2025,
		FechaCorte:        "2025-12-31",

		Rei:      dto.MetricasRei{},
		Unidades: []dto.UnidadForm{UnidadVaciaPorDefecto()},
		Proyectos: dto.ProyectosForm{
			Externos: []dto.ProyectoForm{ProyectoVacioPorDefecto()},
			Internos: []dto.ProyectoForm{},
		},
	}
}

func UnidadVaciaPorDefecto() dto.UnidadForm {
	return dto.UnidadForm{Tipo: TipoUnidadCentro}
}

func ProyectoVacioPorDefecto() dto.ProyectoForm {
	return dto.ProyectoForm{Estado: "Activo"}
}

// EsUnidadVacia: el criterio único de "fila vacía" que comparten el cálculo
// de avisos y el normalizador.
func EsUnidadVacia(u dto.UnidadForm) bool {
	return strings.TrimSpace(u.Nombre) == ""
}

// EsProyectoVacio: ídem para proyectos.
func EsProyectoVacio(p dto.ProyectoForm) bool {
	return strings.TrimSpace(p.Titulo) == ""
}

// CodificarBorrador serializa el borrador completo como un solo blob opaco.
func CodificarBorrador(f dto.FormularioRegistro) ([]byte, error) {
	return sonic.Marshal(f)
}

// DecodificarBorrador reconstruye el borrador desde el blob. Un blob que no
// parsea es corrupción, no un borrador parcial.
func DecodificarBorrador(datos []byte) (dto.FormularioRegistro, error) {
	var f dto.FormularioRegistro
	if len(datos) == 0 {
		return f, ErrBorradorCorrupto
	}
	if err := sonic.Unmarshal(datos, &f); err != nil {
		return dto.FormularioRegistro{}, ErrBorradorCorrupto
	}
	return f, nil
}
