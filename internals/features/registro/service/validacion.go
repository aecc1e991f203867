package service

import (
	"fmt"
	"strings"

	dto "sigc_backend/internals/features/registro/dto"
)

// Motor de validación del registro. Función pura sobre el formulario completo:
// devuelve la lista ORDENADA de errores duros y aparte los avisos blandos.
// El orden de las reglas es parte del contrato: el primer mensaje de la lista
// es el que se muestra al usuario al intentar finalizar.

const (
	AnioMinimo = 2015
	AnioMaximo = 2026
)

const (
	TipoUnidadCentro    = "CENTRO"
	TipoUnidadInstituto = "INSTITUTO"
)

// ValidarRegistro evalúa las reglas duras en orden fijo (1..7) y calcula los
// avisos blandos. Los avisos nunca bloquean el envío.
func ValidarRegistro(f dto.FormularioRegistro) (errores []string, avisos []string) {
	errores = validarDuro(f)
	avisos = CalcularAvisos(f)
	return errores, avisos
}

func validarDuro(f dto.FormularioRegistro) []string {
	var errores []string

	// Regla 1: institución
	if strings.TrimSpace(f.UniversidadSiglas) == "" {
		errores = append(errores, "Selecciona una universidad.")
	}

	// Regla 2: año en rango
	if !(f.Anio >= AnioMinimo && f.Anio <= AnioMaximo) {
		errores = append(errores, fmt.Sprintf("Año de registro solo puede ser entre %d y %d", AnioMinimo, AnioMaximo))
	}

	// Regla 3: los nueve conteos no negativos, un mensaje por campo
	rei := f.Rei
	camposNoNegativos := []struct {
		nombre string
		valor  int
	}{
		{"Total estudiantes", rei.TotalEstudiantes},
		{"Total personal académico", rei.TotalPersonalAcademico},
		{"Personal con PhD", rei.TotalPersonalPhd},
		{"Personal contratado investigación", rei.TotalPersonalContratadoInv},
		{"Personal de apoyo", rei.TotalPersonalApoyo},
		{"Estudiantes pregrado en proyectos", rei.NumEstPregradoProy},
		{"Alumni pregrado en proyectos", rei.NumAlumniPregradoProy},
		{"Estudiantes posgrado en proyectos", rei.NumEstPosgradoProy},
		{"Alumni posgrado en proyectos", rei.NumAlumniPosgradoProy},
	}
	for _, campo := range camposNoNegativos {
		if campo.valor < 0 {
			errores = append(errores, campo.nombre+": no puede ser negativo.")
		}
	}

	// Regla 4: PhD <= total académico
	if rei.TotalPersonalPhd > rei.TotalPersonalAcademico {
		errores = append(errores, "Personal con PhD no puede ser mayor que el total del personal académico.")
	}

	// Regla 5: presupuesto
	if rei.PctPresupuestoInv < 0 || rei.PctPresupuestoInv > 100 {
		errores = append(errores, "% presupuesto investigación debe estar entre 0 y 100.")
	}
	if rei.PresupuestoExterno < 0 {
		errores = append(errores, "Presupuesto externo no puede ser negativo.")
	}
	if rei.PresupuestoInterno < 0 {
		errores = append(errores, "Presupuesto interno no puede ser negativo.")
	}

	// Regla 6: unidades
	for i, u := range f.Unidades {
		if strings.TrimSpace(u.Nombre) == "" {
			errores = append(errores, fmt.Sprintf("Unidad #%d: nombre requerido.", i+1))
		}
		if u.Tipo != TipoUnidadCentro && u.Tipo != TipoUnidadInstituto {
			errores = append(errores, fmt.Sprintf("Unidad #%d: tipo inválido.", i+1))
		}
		if u.NumPersonalAcademico < 0 {
			errores = append(errores, fmt.Sprintf("Unidad #%d: personal académico no negativo.", i+1))
		}
		if u.NumPersonalApoyo < 0 {
			errores = append(errores, fmt.Sprintf("Unidad #%d: personal apoyo no negativo.", i+1))
		}
		if u.PresupuestoAnual < 0 {
			errores = append(errores, fmt.Sprintf("Unidad #%d: presupuesto anual no negativo.", i+1))
		}
	}

	// Regla 7: proyectos, externos primero
	for i, p := range f.Proyectos.Externos {
		errores = append(errores, validarProyecto(p, "Proyecto Externo", i)...)
	}
	for i, p := range f.Proyectos.Internos {
		errores = append(errores, validarProyecto(p, "Proyecto Interno", i)...)
	}

	return errores
}

func validarProyecto(p dto.ProyectoForm, etiqueta string, idx int) []string {
	var errores []string

	if strings.TrimSpace(p.Titulo) == "" {
		errores = append(errores, fmt.Sprintf("%s #%d: título requerido.", etiqueta, idx+1))
	}
	if p.MontoFinanciamiento < 0 {
		errores = append(errores, fmt.Sprintf("%s #%d: monto no puede ser negativo.", etiqueta, idx+1))
	}

	conteos := []int{
		p.NumParticipantesInternos,
		p.NumParticipantesExtNac,
		p.NumParticipantesExtInt,
		p.NumEstudiantesPregrado,
		p.NumEstudiantesPosgrado,
	}
	for _, n := range conteos {
		if n < 0 {
			errores = append(errores, fmt.Sprintf("%s #%d: valores numéricos no negativos.", etiqueta, idx+1))
			break
		}
	}

	// fecha_fin > fecha_inicio, solo si ambas existen. Las fechas son
	// "YYYY-MM-DD", así que la comparación lexicográfica es correcta.
	if p.FechaInicio != "" && p.FechaFin != "" {
		if p.FechaFin <= p.FechaInicio {
			errores = append(errores, fmt.Sprintf("%s #%d: fecha_fin debe ser mayor a fecha_inicio.", etiqueta, idx+1))
		}
	}

	return errores
}

// CalcularAvisos compara la suma de personal declarado por unidad contra los
// totales institucionales. Es una proyección derivada del formulario actual:
// se recalcula en cada edición y nunca bloquea.
func CalcularAvisos(f dto.FormularioRegistro) []string {
	var avisos []string

	sumaAcademico := 0
	sumaApoyo := 0
	for _, u := range f.Unidades {
		sumaAcademico += u.NumPersonalAcademico
		sumaApoyo += u.NumPersonalApoyo
	}

	if sumaAcademico > f.Rei.TotalPersonalAcademico {
		avisos = append(avisos, fmt.Sprintf(
			"⚠️ La suma de personal académico en unidades (%d) supera el total declarado (%d).",
			sumaAcademico, f.Rei.TotalPersonalAcademico))
	}
	if sumaApoyo > f.Rei.TotalPersonalApoyo {
		avisos = append(avisos, fmt.Sprintf(
			"⚠️ La suma de personal de apoyo en unidades (%d) supera el total declarado (%d).",
			sumaApoyo, f.Rei.TotalPersonalApoyo))
	}

	return avisos
}
