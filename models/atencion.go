package models

import "time"

// Atencion is one care visit: a person seen on a date, optionally by a
// specialist. Visits disappear with their person (CASCADE) but outlive the
// specialist reference (SET NULL).
type Atencion struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AtPerid uint      `gorm:"index;not null" json:"at_perid"`
	AtEspid *uint     `gorm:"index" json:"at_espid,omitempty"`
	AtFecha time.Time `gorm:"type:date;index;not null" json:"at_fecha"`

	// Relationships
	Persona      *PersonaMayor `gorm:"foreignKey:AtPerid" json:"persona,omitempty"`
	Especialista *Especialista `gorm:"foreignKey:AtEspid;constraint:OnDelete:SET NULL" json:"especialista,omitempty"`
}

// TableName specifies the table name for Atencion model
func (Atencion) TableName() string {
	return "at_atenciones"
}
