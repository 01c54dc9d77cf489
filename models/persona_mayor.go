package models

import "time"

// PersonaMayor is the core registry entity: an elderly resident of the
// municipality. The RUT is the national ID and is unique across the registry.
// Lookup references are nullable and survive catalog row removal via SET NULL;
// dependent atenciones and association rows go away with the person (CASCADE).
type PersonaMayor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PerRut       string    `gorm:"size:255;uniqueIndex;not null" json:"per_rut"`
	PerNombre    string    `gorm:"size:255;not null" json:"per_nombre"`
	PerApellido  string    `gorm:"size:255;not null" json:"per_apellido"`
	PerBirthdate time.Time `gorm:"type:date;not null" json:"per_birthdate"`
	PerDireccion *string   `gorm:"size:255" json:"per_direccion,omitempty"`

	PerGenid *uint `gorm:"index" json:"per_genid,omitempty"`
	PerNacid *uint `gorm:"index" json:"per_nacid,omitempty"`
	PerMacid *uint `gorm:"index" json:"per_macid,omitempty"`
	PerUniid *uint `gorm:"index" json:"per_uniid,omitempty"`

	// Benefit flags
	PerBenefvinculos        *uint `json:"per_benefvinculos,omitempty"`
	PerBeneflimpieza        *uint `json:"per_beneflimpieza,omitempty"`
	PerBenefprogcuidadores  *uint `json:"per_benefprogcuidadores,omitempty"`

	// Relationships
	Genero                  *Genero              `gorm:"foreignKey:PerGenid;constraint:OnDelete:SET NULL" json:"genero,omitempty"`
	Nacionalidad            *Nacionalidad        `gorm:"foreignKey:PerNacid;constraint:OnDelete:SET NULL" json:"nacionalidad,omitempty"`
	Macrosector             *Macrosector         `gorm:"foreignKey:PerMacid;constraint:OnDelete:SET NULL" json:"macrosector,omitempty"`
	UnidadVecinal           *UnidadVecinal       `gorm:"foreignKey:PerUniid;constraint:OnDelete:SET NULL" json:"unidad_vecinal,omitempty"`
	BeneficioVinculos       *Vinculo             `gorm:"foreignKey:PerBenefvinculos;constraint:OnDelete:SET NULL" json:"beneficio_vinculos,omitempty"`
	BeneficioLimpieza       *LimpiezaCalefaccion `gorm:"foreignKey:PerBeneflimpieza;constraint:OnDelete:SET NULL" json:"beneficio_limpieza,omitempty"`
	BeneficioProgCuidadores *ProgramaCuidadores  `gorm:"foreignKey:PerBenefprogcuidadores;constraint:OnDelete:SET NULL" json:"beneficio_prog_cuidadores,omitempty"`

	Atenciones []Atencion `gorm:"foreignKey:AtPerid;constraint:OnDelete:CASCADE" json:"atenciones,omitempty"`

	Actividades    []Actividad              `gorm:"many2many:actividades_asist;joinForeignKey:ActasistPerid;joinReferences:ActasistActid;constraint:OnDelete:CASCADE" json:"actividades,omitempty"`
	Talleres       []Taller                 `gorm:"many2many:talleres_asist;joinForeignKey:TalasistPerid;joinReferences:TalasistTalid;constraint:OnDelete:CASCADE" json:"talleres,omitempty"`
	Viajes         []Viaje                  `gorm:"many2many:viajes_asist;joinForeignKey:ViaasistPerid;joinReferences:ViaasistViaid;constraint:OnDelete:CASCADE" json:"viajes,omitempty"`
	Organizaciones []OrganizacionComunitaria `gorm:"many2many:membresias_org;joinForeignKey:MemorgPerid;joinReferences:MemorgOrgid;constraint:OnDelete:CASCADE" json:"organizaciones,omitempty"`
}

// TableName specifies the table name for PersonaMayor model
func (PersonaMayor) TableName() string {
	return "per_mayores"
}

// NombreCompleto returns the display name used on lists and reports
func (p *PersonaMayor) NombreCompleto() string {
	return p.PerNombre + " " + p.PerApellido
}
