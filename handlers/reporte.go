package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/middleware"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
	"github.com/ryoumen0412/sistema-dpm/templates"
)

const (
	diasSinAtencionDefault = 90
	resumenMaxFilas        = 500
	busquedaMaxFilas       = 200
)

// ReportesMenuHandler lists the available reports
func ReportesMenuHandler(c echo.Context) error {
	return render(c, templates.ReportesMenu(middleware.GetCurrentUser(c)))
}

// EstadisticasHandler renders the global totals and the per-person summary
func EstadisticasHandler(c echo.Context) error {
	stats, err := services.GetEstadisticasGenerales(db.DB)
	if err != nil {
		return err
	}
	resumen, err := services.GetPersonasConResumen(db.DB, 0, resumenMaxFilas)
	if err != nil {
		return err
	}
	return render(c, templates.Estadisticas(middleware.GetCurrentUser(c), stats, resumen))
}

// PersonasSinAtencionHandler lists persons whose last visit is older than
// ?dias= (default 90)
func PersonasSinAtencionHandler(c echo.Context) error {
	dias, err := strconv.Atoi(c.QueryParam("dias"))
	if err != nil || dias < 1 {
		dias = diasSinAtencionDefault
	}
	personas, err := services.GetPersonasSinAtencionReciente(db.DB, dias)
	if err != nil {
		return err
	}
	return render(c, templates.PersonasSinAtencion(middleware.GetCurrentUser(c), personas, dias))
}

func intPtrFromQuery(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// BusquedaAvanzadaHandler runs the combined registry search
func BusquedaAvanzadaHandler(c echo.Context) error {
	params := services.BusquedaAvanzadaParams{
		Nombre:        c.QueryParam("nombre"),
		Apellido:      c.QueryParam("apellido"),
		Rut:           c.QueryParam("rut"),
		EdadMin:       intPtrFromQuery(c, "edad_min"),
		EdadMax:       intPtrFromQuery(c, "edad_max"),
		GeneroID:      queryUint(c, "genero_id"),
		MacrosectorID: queryUint(c, "macrosector_id"),
		Limit:         busquedaMaxFilas,
	}
	switch c.QueryParam("con_atenciones") {
	case "si":
		v := true
		params.ConAtenciones = &v
	case "no":
		v := false
		params.ConAtenciones = &v
	}

	buscado := c.QueryParam("buscar") != ""
	var personas []models.PersonaMayor
	if buscado {
		var err error
		personas, err = services.BuscarPersonasAvanzado(db.DB, params)
		if err != nil {
			return err
		}
	}

	generos, err := services.GetGeneros(db.DB)
	if err != nil {
		return err
	}
	macrosectores, err := services.GetMacrosectores(db.DB)
	if err != nil {
		return err
	}
	return render(c, templates.BusquedaAvanzada(middleware.GetCurrentUser(c), params, personas, generos, macrosectores, buscado))
}

// AtencionesMensualHandler lists the visits of one calendar month
func AtencionesMensualHandler(c echo.Context) error {
	ahora := time.Now()
	anio, err := strconv.Atoi(c.QueryParam("anio"))
	if err != nil || anio < 1900 {
		anio = ahora.Year()
	}
	mes, err := strconv.Atoi(c.QueryParam("mes"))
	if err != nil || mes < 1 || mes > 12 {
		mes = int(ahora.Month())
	}

	atenciones, err := services.GetReporteAtencionesMensual(db.DB, anio, mes)
	if err != nil {
		return err
	}
	return render(c, templates.AtencionesMensual(middleware.GetCurrentUser(c), atenciones, anio, mes))
}

// ExportarHandler streams the registry as an Excel workbook
func ExportarHandler(c echo.Context) error {
	archivo, err := services.ExportPersonasExcel(db.DB)
	if err != nil {
		return err
	}

	nombre := fmt.Sprintf("registro_personas_%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	c.Response().WriteHeader(http.StatusOK)
	return archivo.Write(c.Response().Writer)
}
