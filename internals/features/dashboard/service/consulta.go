package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	dto "sigc_backend/internals/features/registro/dto"
	registroService "sigc_backend/internals/features/registro/service"
)

// Orquestador de consulta del dashboard: dispara una lectura por universidad
// en paralelo, espera a que TODAS terminen (barrera de join) y recién ahí
// publica el resultado. Cada cambio de filtro toma un token monotónico; si al
// terminar el token ya no es el vigente, el resultado se descarta entero.

// ErrConsultaObsoleta: llegó un filtro más nuevo mientras esta consulta corría.
var ErrConsultaObsoleta = errors.New("consulta reemplazada por un filtro más reciente")

const (
	FiltroUC    = "UC"
	FiltroESPOL = "ESPOL"
	FiltroAmbas = "AMBAS"
)

// Filtro del dashboard. oneof acota las siglas al catálogo comparable.
type Filtro struct {
	Universidad string `json:"universidad" validate:"required,oneof=UC ESPOL AMBAS"`
	Anio        int    `json:"anio" validate:"required,min=2015,max=2026"`
}

// Siglas expande el filtro a la lista de universidades a consultar.
func (f Filtro) Siglas() []string {
	if f.Universidad == FiltroAmbas {
		return []string{FiltroUC, FiltroESPOL}
	}
	return []string{f.Universidad}
}

// LectorDetalles abstrae la fuente de datos para poder probar el orquestador
// sin base.
type LectorDetalles interface {
	// UltimoDetalle devuelve el último registro de unas siglas en un año, o
	// (nil, nil) si no hay datos para ese filtro.
	UltimoDetalle(ctx context.Context, siglas string, anio int) (*dto.RegistroDetalle, error)
}

// ResultadoConsulta: lo que las dos lecturas dejaron. Una universidad caída no
// tumba a la otra; queda anotada en AvisosRed y sus datos simplemente faltan.
type ResultadoConsulta struct {
	Filtro    Filtro
	Conjuntos []ConjuntoInstitucion
	AvisosRed []string
}

type Consultor struct {
	lector LectorDetalles

	mu     sync.Mutex
	token  uint64
	ultimo *ResultadoConsulta
}

func NewConsultor(lector LectorDetalles) *Consultor {
	return &Consultor{lector: lector}
}

// Refrescar ejecuta la consulta para el filtro dado. Si otro Refrescar empezó
// después de este, el resultado viejo se descarta con ErrConsultaObsoleta y el
// último publicado no se toca.
func (c *Consultor) Refrescar(ctx context.Context, filtro Filtro) (*ResultadoConsulta, error) {
	c.mu.Lock()
	c.token++
	token := c.token
	c.mu.Unlock()

	siglas := filtro.Siglas()

	type lectura struct {
		detalle *dto.RegistroDetalle
		err     error
	}
	lecturas := make([]lectura, len(siglas))

	// errgroup sin contexto derivado: una lectura fallida no debe cancelar a
	// la otra, solo anotarse como aviso.
	var g errgroup.Group
	for i, s := range siglas {
		i, s := i, s
		g.Go(func() error {
			detalle, err := c.lector.UltimoDetalle(ctx, s, filtro.Anio)
			lecturas[i] = lectura{detalle: detalle, err: err}
			return nil
		})
	}
	// La barrera: nada se publica hasta que TODAS las lecturas terminan.
	_ = g.Wait()

	res := &ResultadoConsulta{
		Filtro:    filtro,
		Conjuntos: make([]ConjuntoInstitucion, 0, len(siglas)),
		AvisosRed: make([]string, 0),
	}
	for i, l := range lecturas {
		if l.err != nil {
			res.AvisosRed = append(res.AvisosRed, fmt.Sprintf("No se pudo consultar %s: error de red o de base", siglas[i]))
			continue
		}
		if l.detalle == nil {
			continue
		}
		res.Conjuntos = append(res.Conjuntos, ConjuntoInstitucion{Etiqueta: siglas[i], Detalle: *l.detalle})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		return nil, ErrConsultaObsoleta
	}
	c.ultimo = res
	return res, nil
}

// Ultimo devuelve el último resultado publicado (nil si nunca hubo uno).
func (c *Consultor) Ultimo() *ResultadoConsulta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ultimo
}

// LectorRegistrosDB: el lector real sobre GORM.
type LectorRegistrosDB struct {
	DB *gorm.DB
}

func (l LectorRegistrosDB) UltimoDetalle(ctx context.Context, siglas string, anio int) (*dto.RegistroDetalle, error) {
	db := l.DB.WithContext(ctx)
	reiID, ok, err := registroService.UltimoReiID(db, siglas, anio)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return registroService.ObtenerDetalle(db, reiID)
}
