package models

import "time"

// Viaje is an organized trip with a destination and date.
type Viaje struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ViaViaje   string    `gorm:"size:255;not null" json:"via_viaje"`
	ViaDestino string    `gorm:"size:255;not null" json:"via_destino"`
	ViaFecha   time.Time `gorm:"type:date;index;not null" json:"via_fecha"`

	Personas []PersonaMayor `gorm:"many2many:viajes_asist;joinForeignKey:ViaasistViaid;joinReferences:ViaasistPerid" json:"personas,omitempty"`
}

// TableName specifies the table name for Viaje model
func (Viaje) TableName() string {
	return "via_viajes"
}

// ViajeAsistencia is the join row between a person and a trip
type ViajeAsistencia struct {
	ViaasistPerid uint `gorm:"primaryKey" json:"viaasist_perid"`
	ViaasistViaid uint `gorm:"primaryKey" json:"viaasist_viaid"`
}

// TableName specifies the table name for ViajeAsistencia model
func (ViajeAsistencia) TableName() string {
	return "viajes_asist"
}
