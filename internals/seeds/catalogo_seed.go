package seeds

import (
	"log"

	"gorm.io/gorm"

	model "sigc_backend/internals/features/catalogo/model"
)

// SembrarCatalogo carga las universidades participantes si el catálogo está vacío.
func SembrarCatalogo(db *gorm.DB) {
	var total int64
	if err := db.Model(&model.Universidad{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] No se pudo contar el catálogo: %v", err)
		return
	}
	if total > 0 {
		return
	}

	universidades := []model.Universidad{
		{CatNombreOficial: "Universidad de Cuenca", CatSiglas: "UC", CatCiudad: "Cuenca", CatActiva: true},
		{CatNombreOficial: "Escuela Superior Politécnica del Litoral", CatSiglas: "ESPOL", CatCiudad: "Guayaquil", CatActiva: true},
	}
	if err := db.Create(&universidades).Error; err != nil {
		log.Printf("[ERROR] No se pudo sembrar el catálogo: %v", err)
		return
	}
	log.Printf("✅ Catálogo sembrado (%d universidades).", len(universidades))
}
