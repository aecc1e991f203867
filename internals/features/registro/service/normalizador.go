package service

import (
	"strings"

	"github.com/shopspring/decimal"

	dto "sigc_backend/internals/features/registro/dto"
)

// Normalizador de payload: convierte el formulario del editor en el payload
// exacto que espera el endpoint de creación. Descarta filas vacías, quita los
// campos que solo existen para el editor (tipo de unidad) y convierte fechas
// vacías en null explícito.

// NormalizarRegistro produce el payload listo para enviar.
func NormalizarRegistro(f dto.FormularioRegistro) dto.RegistroPayload {
	return NormalizarPayload(dto.RegistroPayload{
		UniversidadSiglas: f.UniversidadSiglas,
		Anio:              f.Anio,
		FechaCorte:        fechaONulo(f.FechaCorte),
		Rei:               normalizarRei(f.Rei),
		Unidades:          normalizarUnidades(f.Unidades),
		Proyectos: dto.ProyectosPayload{
			Externos: normalizarProyectos(f.Proyectos.Externos),
			Internos: normalizarProyectos(f.Proyectos.Internos),
		},
	})
}

// NormalizarPayload reaplica las reglas de limpieza sobre un payload ya
// construido. Es idempotente: sobre su propia salida no descarta ni reforma nada.
func NormalizarPayload(p dto.RegistroPayload) dto.RegistroPayload {
	unidades := make([]dto.UnidadPayload, 0, len(p.Unidades))
	for _, u := range p.Unidades {
		if strings.TrimSpace(u.Nombre) == "" {
			continue
		}
		unidades = append(unidades, u)
	}

	depurar := func(lista []dto.ProyectoPayload) []dto.ProyectoPayload {
		out := make([]dto.ProyectoPayload, 0, len(lista))
		for _, pr := range lista {
			if strings.TrimSpace(pr.Titulo) == "" {
				continue
			}
			pr.FechaInicio = normalizarFecha(pr.FechaInicio)
			pr.FechaFin = normalizarFecha(pr.FechaFin)
			if pr.Estado == "" {
				pr.Estado = "Activo"
			}
			out = append(out, pr)
		}
		return out
	}

	p.Unidades = unidades
	p.Proyectos.Externos = depurar(p.Proyectos.Externos)
	p.Proyectos.Internos = depurar(p.Proyectos.Internos)
	p.FechaCorte = normalizarFecha(p.FechaCorte)
	return p
}

func normalizarRei(m dto.MetricasRei) dto.ReiPayload {
	return dto.ReiPayload{
		TotalEstudiantes:           m.TotalEstudiantes,
		TotalPersonalAcademico:     m.TotalPersonalAcademico,
		TotalPersonalPhd:           m.TotalPersonalPhd,
		TotalPersonalContratadoInv: m.TotalPersonalContratadoInv,
		TotalPersonalApoyo:         m.TotalPersonalApoyo,

		PctPresupuestoInv:  decimal.NewFromFloat(m.PctPresupuestoInv),
		PresupuestoExterno: decimal.NewFromFloat(m.PresupuestoExterno),
		PresupuestoInterno: decimal.NewFromFloat(m.PresupuestoInterno),

		NumEstPregradoProy:    m.NumEstPregradoProy,
		NumAlumniPregradoProy: m.NumAlumniPregradoProy,
		NumEstPosgradoProy:    m.NumEstPosgradoProy,
		NumAlumniPosgradoProy: m.NumAlumniPosgradoProy,
	}
}

func normalizarUnidades(unidades []dto.UnidadForm) []dto.UnidadPayload {
	out := make([]dto.UnidadPayload, 0, len(unidades))
	for _, u := range unidades {
		// Aquí se pierde u.Tipo: el esquema de almacenamiento no lo tiene.
		out = append(out, dto.UnidadPayload{
			Nombre:               u.Nombre,
			CamposConocimiento:   u.CamposConocimiento,
			AreaCobertura:        u.AreaCobertura,
			NumPersonalAcademico: u.NumPersonalAcademico,
			NumPersonalApoyo:     u.NumPersonalApoyo,
			PresupuestoAnual:     decimal.NewFromFloat(u.PresupuestoAnual),
		})
	}
	return out
}

func normalizarProyectos(proyectos []dto.ProyectoForm) []dto.ProyectoPayload {
	out := make([]dto.ProyectoPayload, 0, len(proyectos))
	for _, p := range proyectos {
		out = append(out, dto.ProyectoPayload{
			Codigo:               p.Codigo,
			Titulo:               p.Titulo,
			FuenteFinanciamiento: p.FuenteFinanciamiento,
			MontoFinanciamiento:  decimal.NewFromFloat(p.MontoFinanciamiento),

			NumParticipantesInternos: p.NumParticipantesInternos,
			NumParticipantesExtNac:   p.NumParticipantesExtNac,
			NumParticipantesExtInt:   p.NumParticipantesExtInt,

			NumEstudiantesPregrado: p.NumEstudiantesPregrado,
			NumEstudiantesPosgrado: p.NumEstudiantesPosgrado,

			FechaInicio: fechaONulo(p.FechaInicio),
			FechaFin:    fechaONulo(p.FechaFin),
			Estado:      p.Estado,
		})
	}
	return out
}

// fechaONulo: "" (o solo espacios) pasa a null explícito.
func fechaONulo(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func normalizarFecha(s *string) *string {
	if s == nil {
		return nil
	}
	return fechaONulo(*s)
}
