package models

// Especialidad classifies especialistas (podología, kinesiología, etc.)
type Especialidad struct {
	ID                uint   `gorm:"primarykey" json:"id"`
	EspeEspecialidad  string `gorm:"size:255;not null" json:"espe_especialidad"`

	Especialistas []Especialista `gorm:"foreignKey:EspEspeid" json:"especialistas,omitempty"`
}

// TableName specifies the table name for Especialidad model
func (Especialidad) TableName() string {
	return "espe_especialidades"
}
