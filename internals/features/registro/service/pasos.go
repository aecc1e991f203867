package service

// Paso: las seis secciones ordenadas del asistente de registro.
type Paso int

const (
	PasoInstitucion Paso = iota
	PasoPersonal
	PasoPresupuesto
	PasoUnidades
	PasoProyectos
	PasoParticipacion

	numPasos = int(PasoParticipacion) + 1
)

var etiquetasPaso = [...]string{
	"1. Institución",
	"2. Personal",
	"3. Presupuesto",
	"4. Unidades",
	"5. Proyectos",
	"6. Participación",
}

func (p Paso) String() string {
	if p < 0 || int(p) >= numPasos {
		return "desconocido"
	}
	return etiquetasPaso[p]
}

// acotar mantiene el índice siempre dentro de rango.
func acotar(i int) Paso {
	if i < 0 {
		return PasoInstitucion
	}
	if i >= numPasos {
		return PasoParticipacion
	}
	return Paso(i)
}

// Siguiente avanza una sección; en la última se queda ahí.
func (p Paso) Siguiente() Paso {
	return acotar(int(p) + 1)
}

// Anterior retrocede una sección; en la primera se queda ahí.
func (p Paso) Anterior() Paso {
	return acotar(int(p) - 1)
}

// IrA salta a cualquier sección, en cualquier momento. La navegación nunca
// se bloquea por validez; los errores se reportan solo al enviar.
func IrA(destino Paso) Paso {
	return acotar(int(destino))
}

func (p Paso) Indice() int {
	return int(acotar(int(p)))
}
