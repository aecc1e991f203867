package model

type Universidad struct {
	CatID            int    `gorm:"column:cat_id;primaryKey" json:"cat_id"`
	CatNombreOficial string `gorm:"column:cat_nombre_oficial;type:text;not null" json:"cat_nombre_oficial"`
	CatSiglas        string `gorm:"column:cat_siglas;type:text;not null;uniqueIndex" json:"cat_siglas"`
	CatCiudad        string `gorm:"column:cat_ciudad;type:text;not null" json:"cat_ciudad"`
	CatActiva        bool   `gorm:"column:cat_activa;not null;default:true" json:"cat_activa"`
}

func (Universidad) TableName() string {
	return "cat_catalogo_universidad"
}
