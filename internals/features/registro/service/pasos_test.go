package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasoSiguienteYAnteriorSeAcotan(t *testing.T) {
	assert.Equal(t, PasoPersonal, PasoInstitucion.Siguiente())
	assert.Equal(t, PasoInstitucion, PasoInstitucion.Anterior())

	// En la última sección, Siguiente se queda ahí.
	assert.Equal(t, PasoParticipacion, PasoParticipacion.Siguiente())
	assert.Equal(t, PasoProyectos, PasoParticipacion.Anterior())
}

func TestIrAAcotaDestinosFueraDeRango(t *testing.T) {
	assert.Equal(t, PasoUnidades, IrA(PasoUnidades))
	assert.Equal(t, PasoInstitucion, IrA(Paso(-5)))
	assert.Equal(t, PasoParticipacion, IrA(Paso(99)))
}

func TestPasoEtiquetas(t *testing.T) {
	assert.Equal(t, "1. Institución", PasoInstitucion.String())
	assert.Equal(t, "6. Participación", PasoParticipacion.String())
	assert.Equal(t, "desconocido", Paso(42).String())
}
