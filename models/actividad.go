package models

import "time"

// Actividad is a dated community activity persons can attend.
type Actividad struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ActActividad string    `gorm:"size:255;not null" json:"act_actividad"`
	ActFecha     time.Time `gorm:"type:date;index;not null" json:"act_fecha"`

	Personas []PersonaMayor `gorm:"many2many:actividades_asist;joinForeignKey:ActasistActid;joinReferences:ActasistPerid" json:"personas,omitempty"`
}

// TableName specifies the table name for Actividad model
func (Actividad) TableName() string {
	return "act_actividades"
}

// ActividadAsistencia is the attendance join row between a person and an
// activity. Both sides cascade.
type ActividadAsistencia struct {
	ActasistPerid uint `gorm:"primaryKey" json:"actasist_perid"`
	ActasistActid uint `gorm:"primaryKey" json:"actasist_actid"`
}

// TableName specifies the table name for ActividadAsistencia model
func (ActividadAsistencia) TableName() string {
	return "actividades_asist"
}
