package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ryoumen0412/sistema-dpm/services"
)

const diasSinAtencion = 90

// StartScheduler schedules the nightly follow-up report: at midnight it logs
// how many persons have gone diasSinAtencion days without a care visit, so
// staff see the backlog first thing in the morning.
func StartScheduler(database *gorm.DB, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 0 * * *", func() {
		ReporteSeguimiento(database, logger)
	})
	if err != nil {
		logger.Fatal("failed to schedule follow-up job", zap.Error(err))
	}

	c.Start()
	logger.Info("follow-up scheduler started")
	return c
}

// ReporteSeguimiento logs the persons currently overdue for a care visit
func ReporteSeguimiento(database *gorm.DB, logger *zap.Logger) {
	personas, err := services.GetPersonasSinAtencionReciente(database, diasSinAtencion)
	if err != nil {
		logger.Error("follow-up report failed", zap.Error(err))
		return
	}
	logger.Info("follow-up report",
		zap.Int("dias", diasSinAtencion),
		zap.Int("personas_sin_atencion", len(personas)),
	)
}
