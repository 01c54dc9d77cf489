package models

// OrganizacionComunitaria is a community organization (club de adulto mayor,
// junta de vecinos, etc.) persons can be members of.
type OrganizacionComunitaria struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	OrgComunitaria string `gorm:"size:255" json:"org_comunitaria"`

	Personas []PersonaMayor `gorm:"many2many:membresias_org;joinForeignKey:MemorgOrgid;joinReferences:MemorgPerid" json:"personas,omitempty"`
}

// TableName specifies the table name for OrganizacionComunitaria model
func (OrganizacionComunitaria) TableName() string {
	return "org_com"
}

// MembresiaOrganizacion is the membership join row between a person and an
// organization
type MembresiaOrganizacion struct {
	MemorgPerid uint `gorm:"primaryKey" json:"memorg_perid"`
	MemorgOrgid uint `gorm:"primaryKey" json:"memorg_orgid"`
}

// TableName specifies the table name for MembresiaOrganizacion model
func (MembresiaOrganizacion) TableName() string {
	return "membresias_org"
}
