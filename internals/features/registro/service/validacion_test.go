package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "sigc_backend/internals/features/registro/dto"
)

func formularioValido() dto.FormularioRegistro {
	return dto.FormularioRegistro{
		UniversidadSiglas: "UC",
		Anio:              2025,
		FechaCorte:        "2025-12-31",
		Rei: dto.MetricasRei{
			TotalEstudiantes:           12000,
			TotalPersonalAcademico:     800,
			TotalPersonalPhd:           300,
			TotalPersonalContratadoInv: 50,
			TotalPersonalApoyo:         120,
			PctPresupuestoInv:          12.5,
			PresupuestoExterno:         500000,
			PresupuestoInterno:         900000,
		},
		Unidades: []dto.UnidadForm{
			{Nombre: "Centro de Investigación en Agua", Tipo: TipoUnidadCentro, NumPersonalAcademico: 20, NumPersonalApoyo: 5, PresupuestoAnual: 80000},
		},
		Proyectos: dto.ProyectosForm{
			Externos: []dto.ProyectoForm{
				{Codigo: "EXT-001", Titulo: "Monitoreo de cuencas", MontoFinanciamiento: 150000, FechaInicio: "2025-01-15", FechaFin: "2026-01-15", Estado: "Activo"},
			},
			Internos: []dto.ProyectoForm{
				{Codigo: "INT-001", Titulo: "Semillero de datos", MontoFinanciamiento: 20000, Estado: "Activo"},
			},
		},
	}
}

func TestValidarRegistroFormularioValido(t *testing.T) {
	errores, avisos := ValidarRegistro(formularioValido())
	assert.Empty(t, errores)
	assert.Empty(t, avisos)
}

func TestValidarRegistroOrdenDeReglas(t *testing.T) {
	f := formularioValido()
	f.UniversidadSiglas = "   "
	f.Anio = 2014
	f.Rei.TotalEstudiantes = -1
	f.Rei.TotalPersonalPhd = 2000 // además dispara phd > académico

	errores, _ := ValidarRegistro(f)
	require.GreaterOrEqual(t, len(errores), 4)

	// La institución siempre es el primer mensaje, luego el año, luego los
	// conteos, luego la regla de PhD.
	assert.Equal(t, "Selecciona una universidad.", errores[0])
	assert.Equal(t, "Año de registro solo puede ser entre 2015 y 2026", errores[1])
	assert.Equal(t, "Total estudiantes: no puede ser negativo.", errores[2])
	assert.Contains(t, errores, "Personal con PhD no puede ser mayor que el total del personal académico.")
}

func TestValidarRegistroAnioEnBordes(t *testing.T) {
	for _, anio := range []int{2015, 2026} {
		f := formularioValido()
		f.Anio = anio
		errores, _ := ValidarRegistro(f)
		assert.Empty(t, errores, "año %d debe ser válido", anio)
	}
	for _, anio := range []int{2014, 2027, 0} {
		f := formularioValido()
		f.Anio = anio
		errores, _ := ValidarRegistro(f)
		require.NotEmpty(t, errores, "año %d debe fallar", anio)
		assert.Equal(t, "Año de registro solo puede ser entre 2015 y 2026", errores[0])
	}
}

func TestValidarRegistroConteosNegativosUnoPorCampo(t *testing.T) {
	f := formularioValido()
	f.Rei.TotalPersonalApoyo = -3
	f.Rei.NumAlumniPosgradoProy = -1

	errores, _ := ValidarRegistro(f)
	require.Len(t, errores, 2)
	assert.Equal(t, "Personal de apoyo: no puede ser negativo.", errores[0])
	assert.Equal(t, "Alumni posgrado en proyectos: no puede ser negativo.", errores[1])
}

func TestValidarRegistroPresupuesto(t *testing.T) {
	f := formularioValido()
	f.Rei.PctPresupuestoInv = 100.1
	f.Rei.PresupuestoExterno = -1

	errores, _ := ValidarRegistro(f)
	require.Len(t, errores, 2)
	assert.Equal(t, "% presupuesto investigación debe estar entre 0 y 100.", errores[0])
	assert.Equal(t, "Presupuesto externo no puede ser negativo.", errores[1])
}

func TestValidarRegistroUnidades(t *testing.T) {
	f := formularioValido()
	f.Unidades = append(f.Unidades, dto.UnidadForm{
		Nombre: "  ",
		Tipo:   "LABORATORIO",
	})

	errores, _ := ValidarRegistro(f)
	require.Len(t, errores, 2)
	assert.Equal(t, "Unidad #2: nombre requerido.", errores[0])
	assert.Equal(t, "Unidad #2: tipo inválido.", errores[1])
}

func TestValidarProyectoConteosUnSoloMensaje(t *testing.T) {
	f := formularioValido()
	f.Proyectos.Internos[0].NumParticipantesInternos = -1
	f.Proyectos.Internos[0].NumEstudiantesPosgrado = -9

	errores, _ := ValidarRegistro(f)
	// Varios conteos negativos en el mismo proyecto producen UN mensaje.
	require.Len(t, errores, 1)
	assert.Equal(t, "Proyecto Interno #1: valores numéricos no negativos.", errores[0])
}

func TestValidarProyectoFechas(t *testing.T) {
	casos := []struct {
		nombre   string
		inicio   string
		fin      string
		esperado int
	}{
		{"fin antes de inicio", "2025-06-01", "2025-01-01", 1},
		{"fin igual a inicio", "2025-06-01", "2025-06-01", 1},
		{"rango correcto", "2025-01-01", "2025-06-01", 0},
		{"solo inicio", "2025-01-01", "", 0},
		{"solo fin", "", "2025-06-01", 0},
		{"ambas vacías", "", "", 0},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			f := formularioValido()
			f.Proyectos.Externos[0].FechaInicio = caso.inicio
			f.Proyectos.Externos[0].FechaFin = caso.fin

			errores, _ := ValidarRegistro(f)
			require.Len(t, errores, caso.esperado)
			if caso.esperado == 1 {
				assert.Equal(t, "Proyecto Externo #1: fecha_fin debe ser mayor a fecha_inicio.", errores[0])
			}
		})
	}
}

func TestValidarRegistroExternosAntesQueInternos(t *testing.T) {
	f := formularioValido()
	f.Proyectos.Externos[0].Titulo = ""
	f.Proyectos.Internos[0].Titulo = ""

	errores, _ := ValidarRegistro(f)
	require.Len(t, errores, 2)
	assert.Equal(t, "Proyecto Externo #1: título requerido.", errores[0])
	assert.Equal(t, "Proyecto Interno #1: título requerido.", errores[1])
}

func TestCalcularAvisosNoBloquean(t *testing.T) {
	f := formularioValido()
	f.Unidades[0].NumPersonalAcademico = 900 // supera los 800 declarados
	f.Unidades[0].NumPersonalApoyo = 200     // supera los 120 declarados

	errores, avisos := ValidarRegistro(f)
	assert.Empty(t, errores)
	require.Len(t, avisos, 2)
	assert.Equal(t, "⚠️ La suma de personal académico en unidades (900) supera el total declarado (800).", avisos[0])
	assert.Equal(t, "⚠️ La suma de personal de apoyo en unidades (200) supera el total declarado (120).", avisos[1])
}

func TestCalcularAvisosSumaExacta(t *testing.T) {
	f := formularioValido()
	f.Unidades[0].NumPersonalAcademico = f.Rei.TotalPersonalAcademico

	// Igualdad no genera aviso; solo el exceso estricto.
	_, avisos := ValidarRegistro(f)
	assert.Empty(t, avisos)
}
