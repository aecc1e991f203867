package database

import (
	"log"

	catalogoModel "sigc_backend/internals/features/catalogo/model"
	registroModel "sigc_backend/internals/features/registro/model"
)

// Migrate crea el enum de tipo de proyecto y las tablas del sistema.
// Idempotente: se ejecuta en cada arranque.
func Migrate() {
	if err := DB.Exec(`DO $$ BEGIN
		CREATE TYPE typ_pry_tipo AS ENUM ('externo', 'interno');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;`).Error; err != nil {
		log.Fatalf("❌ No se pudo crear el tipo typ_pry_tipo: %v", err)
	}

	if err := DB.AutoMigrate(
		&catalogoModel.Universidad{},
		&registroModel.RegistroInstitucional{},
		&registroModel.UnidadInvestigacion{},
		&registroModel.ProyectoInvestigacion{},
		&registroModel.BorradorRegistro{},
	); err != nil {
		log.Fatalf("❌ Migración fallida: %v", err)
	}
	log.Println("✅ Migración completada.")
}
