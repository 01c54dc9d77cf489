package models

// Taller is a recurring workshop (gimnasia, manualidades, etc.) persons can
// be enrolled in.
type Taller struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	TalTaller string `gorm:"size:255;not null" json:"tal_taller"`

	Personas []PersonaMayor `gorm:"many2many:talleres_asist;joinForeignKey:TalasistTalid;joinReferences:TalasistPerid" json:"personas,omitempty"`
}

// TableName specifies the table name for Taller model
func (Taller) TableName() string {
	return "tal_talleres"
}

// TallerAsistencia is the enrollment join row between a person and a workshop
type TallerAsistencia struct {
	TalasistPerid uint `gorm:"primaryKey" json:"talasist_perid"`
	TalasistTalid uint `gorm:"primaryKey" json:"talasist_talid"`
}

// TableName specifies the table name for TallerAsistencia model
func (TallerAsistencia) TableName() string {
	return "talleres_asist"
}
