package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "sigc_backend/internals/features/registro/dto"
)

func TestFilasProyectosExternosAntesQueInternos(t *testing.T) {
	conjuntos := []ConjuntoInstitucion{
		{Etiqueta: "UC", Detalle: dto.RegistroDetalle{Proyectos: dto.ProyectosDetalle{
			Externos: []dto.ProyectoDetalle{{Titulo: "UC-ext", MontoFinanciamiento: "100"}},
			Internos: []dto.ProyectoDetalle{{Titulo: "UC-int", MontoFinanciamiento: "100"}},
		}}},
		{Etiqueta: "ESPOL", Detalle: dto.RegistroDetalle{Proyectos: dto.ProyectosDetalle{
			Externos: []dto.ProyectoDetalle{{Titulo: "ESPOL-ext", MontoFinanciamiento: "100"}},
		}}},
	}

	filas := FilasProyectos(conjuntos)
	require.Len(t, filas, 3)
	assert.Equal(t, "UC-ext", filas[0].Titulo)
	assert.Equal(t, "Externo", filas[0].Tipo)
	assert.Equal(t, "UC-int", filas[1].Titulo)
	assert.Equal(t, "Interno", filas[1].Tipo)
	assert.Equal(t, "ESPOL-ext", filas[2].Titulo)
}

func TestTop5ProyectosOrdenaPorMontoDescendente(t *testing.T) {
	montos := []string{"500", "sin dato", "1500", "1000", "2000", "700"}
	filas := make([]FilaProyecto, 0, len(montos))
	for _, m := range montos {
		filas = append(filas, filaProyecto("UC", "Externo", "", "P-"+m, "", m, "Activo"))
	}

	top := Top5Proyectos(filas)
	require.Len(t, top, 5)

	esperados := []float64{2000, 1500, 1000, 700, 500}
	for i, e := range esperados {
		assert.Equal(t, e, top[i].MontoNum, "posición %d", i)
	}
	// El monto no numérico vale 0 y queda fuera del top 5 (pero no se descarta
	// antes de rankear: con menos de 5 filas sí aparecería).
	for _, f := range top {
		assert.NotEqual(t, "sin dato", f.Monto)
	}
}

func TestTop5ProyectosMenosDeCinco(t *testing.T) {
	filas := []FilaProyecto{
		filaProyecto("UC", "Externo", "", "A", "", "10", "Activo"),
		filaProyecto("UC", "Interno", "", "B", "", "no numérico", "Activo"),
	}

	top := Top5Proyectos(filas)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Titulo)
	assert.Equal(t, "B", top[1].Titulo)
	assert.Zero(t, top[1].MontoNum)
}

func TestTop5ProyectosEmpatesConservanLlegada(t *testing.T) {
	filas := []FilaProyecto{
		filaProyecto("UC", "Externo", "", "primero", "", "100", "Activo"),
		filaProyecto("ESPOL", "Externo", "", "segundo", "", "100", "Activo"),
		filaProyecto("UC", "Interno", "", "tercero", "", "100", "Activo"),
	}

	top := Top5Proyectos(filas)
	require.Len(t, top, 3)
	assert.Equal(t, "primero", top[0].Titulo)
	assert.Equal(t, "segundo", top[1].Titulo)
	assert.Equal(t, "tercero", top[2].Titulo)
}

func TestTop5ProyectosNoMutaLaEntrada(t *testing.T) {
	filas := []FilaProyecto{
		filaProyecto("UC", "Externo", "", "A", "", "1", "Activo"),
		filaProyecto("UC", "Externo", "", "B", "", "2", "Activo"),
	}
	original := append([]FilaProyecto(nil), filas...)

	_ = Top5Proyectos(filas)
	assert.Equal(t, original, filas)
}
