package jobs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func setupJobsTestDB(t *testing.T) *gorm.DB {
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

func TestReporteSeguimiento(t *testing.T) {
	db := setupJobsTestDB(t)

	persona, err := services.CreatePersonaMayor(db, services.PersonaMayorInput{
		PerRut: "12345678-9", PerNombre: "María", PerApellido: "González",
		PerBirthdate: time.Now().AddDate(-70, 0, 0),
	})
	assert.NoError(t, err)
	_, err = services.CreateAtencion(db, services.AtencionInput{
		AtPerid: persona.ID, AtFecha: time.Now().AddDate(0, 0, -120),
	})
	assert.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	ReporteSeguimiento(db, zap.New(core))

	entries := logs.FilterMessage("follow-up report").All()
	assert.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].ContextMap()["personas_sin_atencion"])
}

func TestStartScheduler(t *testing.T) {
	db := setupJobsTestDB(t)

	scheduler := StartScheduler(db, zap.NewNop())
	defer scheduler.Stop()

	assert.Len(t, scheduler.Entries(), 1)
	// Scheduled for the next midnight
	next := scheduler.Entries()[0].Next
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 0, next.Minute())
}
