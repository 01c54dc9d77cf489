package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/templates"
)

const diasSinAtencionPanel = 30

// DashboardHandler renders the landing panel with totals and recent activity
func DashboardHandler(c echo.Context) error {
	stats, err := services.GetEstadisticasGenerales(db.DB)
	if err != nil {
		return err
	}

	var recientes []models.PersonaMayor
	if err := db.DB.Order("id DESC").Limit(5).Find(&recientes).Error; err != nil {
		return err
	}

	atenciones, err := services.GetAtenciones(db.DB, services.AtencionFilters{}, 0, 5)
	if err != nil {
		return err
	}

	sinAtencion, err := services.GetPersonasSinAtencionReciente(db.DB, diasSinAtencionPanel)
	if err != nil {
		return err
	}

	return render(c, templates.Dashboard(middleware.GetCurrentUser(c), stats, recientes, atenciones, len(sinAtencion)))
}
