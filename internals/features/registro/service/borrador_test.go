package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorradorIdaYVuelta(t *testing.T) {
	f := formularioValido()

	datos, err := CodificarBorrador(f)
	require.NoError(t, err)

	recuperado, err := DecodificarBorrador(datos)
	require.NoError(t, err)
	assert.Equal(t, f, recuperado)
}

func TestDecodificarBorradorCorrupto(t *testing.T) {
	_, err := DecodificarBorrador([]byte("{esto no es json"))
	assert.ErrorIs(t, err, ErrBorradorCorrupto)

	_, err = DecodificarBorrador(nil)
	assert.ErrorIs(t, err, ErrBorradorCorrupto)
}

func TestFormularioPorDefecto(t *testing.T) {
	f := FormularioPorDefecto()

	assert.Equal(t, "ESPOL", f.UniversidadSiglas)
	assert.Equal(t, 2025, f.Anio)
	assert.Equal(t, "2025-12-31", f.FechaCorte)

	// Una unidad y un proyecto externo vacíos para que el editor arranque con filas.
	require.Len(t, f.Unidades, 1)
	assert.True(t, EsUnidadVacia(f.Unidades[0]))
	assert.Equal(t, TipoUnidadCentro, f.Unidades[0].Tipo)

	require.Len(t, f.Proyectos.Externos, 1)
	assert.True(t, EsProyectoVacio(f.Proyectos.Externos[0]))
	assert.Equal(t, "Activo", f.Proyectos.Externos[0].Estado)

	require.NotNil(t, f.Proyectos.Internos)
	assert.Empty(t, f.Proyectos.Internos)
}

func TestFormularioPorDefectoNoPasaValidacionFinal(t *testing.T) {
	// La plantilla trae filas vacías a propósito; finalizarla sin llenar debe fallar.
	errores, _ := ValidarRegistro(FormularioPorDefecto())
	assert.NotEmpty(t, errores)
}
