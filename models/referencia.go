package models

// Reference catalogs. These are seeded once at startup and have no CRUD
// surface of their own; every table keeps the naming of the municipal
// database it was migrated from.

type Genero struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Genero string `gorm:"size:255;not null" json:"genero"`
}

func (Genero) TableName() string {
	return "gen_genero"
}

type Nacionalidad struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Nacionalidad string `gorm:"size:255;not null" json:"nacionalidad"`
}

func (Nacionalidad) TableName() string {
	return "nac_nacionalidad"
}

type Macrosector struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Macrosector string `gorm:"size:255;not null" json:"macrosector"`
}

func (Macrosector) TableName() string {
	return "mac_macrosector"
}

type UnidadVecinal struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	Unidadvecinal string `gorm:"size:255;not null" json:"unidadvecinal"`
}

func (UnidadVecinal) TableName() string {
	return "uni_unidadvecinal"
}

// Vinculo, ProgramaCuidadores and LimpiezaCalefaccion are SI/NO benefit flags
// kept as two-letter catalogs for parity with the municipal schema.

type Vinculo struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	VinVinculo string `gorm:"size:2" json:"vin_vinculo"`
}

func (Vinculo) TableName() string {
	return "vin_vinculos"
}

type ProgramaCuidadores struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProProcui string `gorm:"size:2" json:"pro_procui"`
}

func (ProgramaCuidadores) TableName() string {
	return "pro_progcuidadores"
}

type LimpiezaCalefaccion struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	LimLimpieza string `gorm:"size:2" json:"lim_limpieza"`
}

func (LimpiezaCalefaccion) TableName() string {
	return "lim_limpiezacalef"
}
