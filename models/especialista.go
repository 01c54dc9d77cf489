package models

import "time"

// Especialista is a care professional (podólogo, kinesiólogo, etc.) who
// performs atenciones. Each belongs to at most one Especialidad.
type Especialista struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EspRut      string `gorm:"size:255;uniqueIndex;not null" json:"esp_rut"`
	EspNombre   string `gorm:"size:255;not null" json:"esp_nombre"`
	EspApellido string `gorm:"size:255;not null" json:"esp_apellido"`
	EspEspeid   *uint  `gorm:"index" json:"esp_espeid,omitempty"`

	// Relationships
	Especialidad *Especialidad `gorm:"foreignKey:EspEspeid;constraint:OnDelete:SET NULL" json:"especialidad,omitempty"`
	Atenciones   []Atencion    `gorm:"foreignKey:AtEspid" json:"atenciones,omitempty"`
}

// TableName specifies the table name for Especialista model
func (Especialista) TableName() string {
	return "esp_especialistas"
}

// NombreCompleto returns the display name used on lists and reports
func (e *Especialista) NombreCompleto() string {
	return e.EspNombre + " " + e.EspApellido
}
