package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "sigc_backend/internals/features/registro/dto"
)

func filasDePrueba() []FilaUnidad {
	return []FilaUnidad{
		{Origen: "UC", Nombre: "Centro de Biotecnología", CamposConocimiento: "Biología", AreaCobertura: "Nacional", PersonalAcademico: 15, PresupuestoAnual: "1500.00"},
		{Origen: "ESPOL", Nombre: "Instituto de Energías", CamposConocimiento: "Energía", AreaCobertura: "Regional Costa", PersonalAcademico: 8, PresupuestoAnual: "200"},
		{Origen: "UC", Nombre: "centro de agua", CamposConocimiento: "Hidrología", AreaCobertura: "Cuenca del Paute", PersonalAcademico: 15, PresupuestoAnual: "90000.50"},
	}
}

func TestFilasUnidadesAplanaEnOrdenDeLlegada(t *testing.T) {
	conjuntos := []ConjuntoInstitucion{
		{Etiqueta: "UC", Detalle: dto.RegistroDetalle{Unidades: []dto.UnidadDetalle{
			{Nombre: "A", NumPersonalAcademico: 3, PresupuestoAnual: "10"},
		}}},
		{Etiqueta: "ESPOL", Detalle: dto.RegistroDetalle{Unidades: []dto.UnidadDetalle{
			{Nombre: "B", NumPersonalAcademico: 7, PresupuestoAnual: "20"},
		}}},
	}

	filas := FilasUnidades(conjuntos)
	require.Len(t, filas, 2)
	assert.Equal(t, "UC", filas[0].Origen)
	assert.Equal(t, "A", filas[0].Nombre)
	assert.Equal(t, "ESPOL", filas[1].Origen)
}

func TestFiltrarUnidadesSinDistinguirMayusculas(t *testing.T) {
	filas := filasDePrueba()

	assert.Len(t, FiltrarUnidades(filas, ""), 3)
	assert.Len(t, FiltrarUnidades(filas, "  "), 3)

	// "centro" matchea "Centro de Biotecnología" y "centro de agua".
	centros := FiltrarUnidades(filas, "CENTRO")
	require.Len(t, centros, 2)
	assert.Equal(t, "Centro de Biotecnología", centros[0].Nombre)
	assert.Equal(t, "centro de agua", centros[1].Nombre)

	// También busca en campos de conocimiento y en el origen.
	assert.Len(t, FiltrarUnidades(filas, "hidro"), 1)
	assert.Len(t, FiltrarUnidades(filas, "espol"), 1)
	assert.Empty(t, FiltrarUnidades(filas, "no existe"))
}

func TestFiltrarUnidadesPorAreaCobertura(t *testing.T) {
	filas := filasDePrueba()

	// "paute" solo aparece en el área de cobertura de una fila.
	porArea := FiltrarUnidades(filas, "PAUTE")
	require.Len(t, porArea, 1)
	assert.Equal(t, "centro de agua", porArea[0].Nombre)

	assert.Len(t, FiltrarUnidades([]FilaUnidad{{AreaCobertura: "Amazonía"}}, "amazon"), 1)
}

func TestFiltrarUnidadesCruzaCampos(t *testing.T) {
	// Los campos se unen con un espacio, así que el término puede abarcar el
	// borde origen+nombre, como "uc centro".
	cruzado := FiltrarUnidades(filasDePrueba(), "uc centro")
	require.Len(t, cruzado, 2)
	assert.Equal(t, "Centro de Biotecnología", cruzado[0].Nombre)
	assert.Equal(t, "centro de agua", cruzado[1].Nombre)
}

func TestOrdenarUnidadesNumerico(t *testing.T) {
	filas := filasDePrueba()

	asc := OrdenarUnidades(filas, ClaveAcademico, DirAsc)
	require.Len(t, asc, 3)
	assert.Equal(t, 8, asc[0].PersonalAcademico)
	// Empate en 15: se conserva el orden de llegada (orden estable).
	assert.Equal(t, "Centro de Biotecnología", asc[1].Nombre)
	assert.Equal(t, "centro de agua", asc[2].Nombre)

	desc := OrdenarUnidades(filas, ClaveAcademico, DirDesc)
	assert.Equal(t, 8, desc[2].PersonalAcademico)
	assert.Equal(t, "Centro de Biotecnología", desc[0].Nombre)
}

func TestOrdenarUnidadesPresupuestoComoNumero(t *testing.T) {
	// "200" < "1500.00" < "90000.50" numéricamente; lexicográficamente el
	// orden sería otro. La regla es numérico-primero.
	asc := OrdenarUnidades(filasDePrueba(), ClavePresup, DirAsc)
	require.Len(t, asc, 3)
	assert.Equal(t, "200", asc[0].PresupuestoAnual)
	assert.Equal(t, "1500.00", asc[1].PresupuestoAnual)
	assert.Equal(t, "90000.50", asc[2].PresupuestoAnual)
}

func TestOrdenarUnidadesTextoSinDistinguirMayusculas(t *testing.T) {
	asc := OrdenarUnidades(filasDePrueba(), ClaveNombre, DirAsc)
	require.Len(t, asc, 3)
	// "centro de agua" ordena junto a "Centro de Biotecnología", no al final.
	assert.Equal(t, "centro de agua", asc[0].Nombre)
	assert.Equal(t, "Centro de Biotecnología", asc[1].Nombre)
	assert.Equal(t, "Instituto de Energías", asc[2].Nombre)
}

func TestOrdenarUnidadesPorCamposYArea(t *testing.T) {
	porCampos := OrdenarUnidades(filasDePrueba(), ClaveCampos, DirAsc)
	require.Len(t, porCampos, 3)
	assert.Equal(t, "Biología", porCampos[0].CamposConocimiento)
	assert.Equal(t, "Energía", porCampos[1].CamposConocimiento)
	assert.Equal(t, "Hidrología", porCampos[2].CamposConocimiento)

	porArea := OrdenarUnidades(filasDePrueba(), ClaveArea, DirAsc)
	require.Len(t, porArea, 3)
	assert.Equal(t, "Cuenca del Paute", porArea[0].AreaCobertura)
	assert.Equal(t, "Nacional", porArea[1].AreaCobertura)
	assert.Equal(t, "Regional Costa", porArea[2].AreaCobertura)
}

func TestOrdenarUnidadesClaveDesconocida(t *testing.T) {
	filas := filasDePrueba()
	out := OrdenarUnidades(filas, "no_existe", DirAsc)
	assert.Equal(t, filas, out)
}

func TestOrdenarYFiltrarNoMutanLaEntrada(t *testing.T) {
	filas := filasDePrueba()
	original := append([]FilaUnidad(nil), filas...)

	_ = OrdenarUnidades(filas, ClaveAcademico, DirDesc)
	_ = FiltrarUnidades(filas, "centro")

	assert.Equal(t, original, filas)
}
