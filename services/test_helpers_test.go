package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryoumen0412/sistema-dpm/models"
)

// setupTestDB opens a private in-memory database with foreign keys enforced,
// registers the join tables and migrates the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := models.SetupJoinTables(db); err != nil {
		t.Fatalf("failed to register join tables: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func fechaDe(anio, mes, dia int) time.Time {
	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

// birthdateConEdad builds a birthdate whose age is exactly edad today
func birthdateConEdad(edad int) time.Time {
	return time.Now().AddDate(-edad, 0, 0)
}

func crearPersonaTest(t *testing.T, db *gorm.DB, rut, nombre, apellido string, edad int) *models.PersonaMayor {
	t.Helper()
	persona, err := CreatePersonaMayor(db, PersonaMayorInput{
		PerRut:       rut,
		PerNombre:    nombre,
		PerApellido:  apellido,
		PerBirthdate: birthdateConEdad(edad),
	})
	if err != nil {
		t.Fatalf("failed to create persona: %v", err)
	}
	return persona
}
