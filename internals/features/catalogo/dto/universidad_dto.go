package dto

import model "sigc_backend/internals/features/catalogo/model"

// CrearUniversidadRequest: alta de universidad en el catálogo (uso administrativo).
type CrearUniversidadRequest struct {
	NombreOficial string `json:"nombre_oficial" validate:"required,min=3"`
	Siglas        string `json:"siglas" validate:"required,min=2,max=12,uppercase"`
	Ciudad        string `json:"ciudad" validate:"required"`
	Activa        *bool  `json:"activa"`
}

func (r CrearUniversidadRequest) AModelo() model.Universidad {
	activa := true
	if r.Activa != nil {
		activa = *r.Activa
	}
	return model.Universidad{
		CatNombreOficial: r.NombreOficial,
		CatSiglas:        r.Siglas,
		CatCiudad:        r.Ciudad,
		CatActiva:        activa,
	}
}
