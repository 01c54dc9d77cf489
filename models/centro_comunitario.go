package models

// CentroComunitario is a community center located in a macrosector and
// neighborhood unit. It has no direct relation to persons; it exists for the
// territorial catalogs.
type CentroComunitario struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	CentCentcom   *string `gorm:"size:255" json:"cent_centcom,omitempty"`
	CentDireccion *string `gorm:"size:255" json:"cent_direccion,omitempty"`
	CentMacid     *uint   `gorm:"index" json:"cent_macid,omitempty"`
	CentUniid     *uint   `gorm:"index" json:"cent_uniid,omitempty"`

	Macrosector   *Macrosector   `gorm:"foreignKey:CentMacid;constraint:OnDelete:SET NULL" json:"macrosector,omitempty"`
	UnidadVecinal *UnidadVecinal `gorm:"foreignKey:CentUniid;constraint:OnDelete:SET NULL" json:"unidad_vecinal,omitempty"`
}

// TableName specifies the table name for CentroComunitario model
func (CentroComunitario) TableName() string {
	return "cent_com"
}
