package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/middleware"
)

// RegisterRoutes wires every screen of the application onto the echo
// instance. Everything outside /auth/ requires a valid session.
func RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	// Make the configuration reachable from every handler
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyConfig, cfg)
			return next(c)
		}
	})

	auth := e.Group("/auth")
	auth.GET("/login", LoginFormHandler)
	auth.POST("/login", LoginHandler)
	auth.POST("/logout", LogoutHandler)

	app := e.Group("", middleware.RequireAuth(cfg))
	app.GET("/", DashboardHandler)

	personas := app.Group("/personas")
	personas.GET("/", ListPersonasHandler)
	personas.GET("/crear", NewPersonaFormHandler)
	personas.POST("/crear", CreatePersonaHandler)
	personas.GET("/:id", PersonaDetailHandler)
	personas.GET("/:id/editar", EditPersonaFormHandler)
	personas.POST("/:id/editar", UpdatePersonaHandler)
	personas.POST("/:id/eliminar", DeletePersonaHandler)
	personas.POST("/:id/actividades", InscribirActividadHandler)
	personas.POST("/:id/actividades/:actividad_id/quitar", QuitarActividadHandler)
	personas.POST("/:id/talleres", InscribirTallerHandler)
	personas.POST("/:id/talleres/:taller_id/quitar", QuitarTallerHandler)
	personas.POST("/:id/viajes", InscribirViajeHandler)
	personas.POST("/:id/viajes/:viaje_id/quitar", QuitarViajeHandler)
	personas.POST("/:id/organizaciones", InscribirOrganizacionHandler)
	personas.POST("/:id/organizaciones/:organizacion_id/quitar", QuitarOrganizacionHandler)

	atenciones := app.Group("/atenciones")
	atenciones.GET("/", ListAtencionesHandler)
	atenciones.GET("/crear", NewAtencionFormHandler)
	atenciones.POST("/crear", CreateAtencionHandler)
	atenciones.GET("/:id/editar", EditAtencionFormHandler)
	atenciones.POST("/:id/editar", UpdateAtencionHandler)
	atenciones.POST("/:id/eliminar", DeleteAtencionHandler)

	especialistas := app.Group("/especialistas")
	especialistas.GET("/", ListEspecialistasHandler)
	especialistas.GET("/crear", NewEspecialistaFormHandler)
	especialistas.POST("/crear", CreateEspecialistaHandler)
	especialistas.GET("/:id/editar", EditEspecialistaFormHandler)
	especialistas.POST("/:id/editar", UpdateEspecialistaHandler)
	especialistas.POST("/:id/eliminar", DeleteEspecialistaHandler)

	especialidades := app.Group("/especialidades")
	especialidades.GET("/", ListEspecialidadesHandler)
	especialidades.GET("/crear", NewEspecialidadFormHandler)
	especialidades.POST("/crear", CreateEspecialidadHandler)
	especialidades.GET("/:id/editar", EditEspecialidadFormHandler)
	especialidades.POST("/:id/editar", UpdateEspecialidadHandler)
	especialidades.POST("/:id/eliminar", DeleteEspecialidadHandler)

	actividades := app.Group("/actividades")
	actividades.GET("/", ListActividadesHandler)
	actividades.GET("/crear", NewActividadFormHandler)
	actividades.POST("/crear", CreateActividadHandler)
	actividades.GET("/:id/editar", EditActividadFormHandler)
	actividades.POST("/:id/editar", UpdateActividadHandler)
	actividades.POST("/:id/eliminar", DeleteActividadHandler)

	talleres := app.Group("/talleres")
	talleres.GET("/", ListTalleresHandler)
	talleres.GET("/crear", NewTallerFormHandler)
	talleres.POST("/crear", CreateTallerHandler)
	talleres.GET("/:id/editar", EditTallerFormHandler)
	talleres.POST("/:id/editar", UpdateTallerHandler)
	talleres.POST("/:id/eliminar", DeleteTallerHandler)

	viajes := app.Group("/viajes")
	viajes.GET("/", ListViajesHandler)
	viajes.GET("/crear", NewViajeFormHandler)
	viajes.POST("/crear", CreateViajeHandler)
	viajes.GET("/:id/editar", EditViajeFormHandler)
	viajes.POST("/:id/editar", UpdateViajeHandler)
	viajes.POST("/:id/eliminar", DeleteViajeHandler)

	organizaciones := app.Group("/organizaciones")
	organizaciones.GET("/", ListOrganizacionesHandler)
	organizaciones.GET("/crear", NewOrganizacionFormHandler)
	organizaciones.POST("/crear", CreateOrganizacionHandler)
	organizaciones.GET("/:id/editar", EditOrganizacionFormHandler)
	organizaciones.POST("/:id/editar", UpdateOrganizacionHandler)
	organizaciones.POST("/:id/eliminar", DeleteOrganizacionHandler)

	reportes := app.Group("/reportes")
	reportes.GET("/", ReportesMenuHandler)
	reportes.GET("/estadisticas", EstadisticasHandler)
	reportes.GET("/personas-sin-atencion", PersonasSinAtencionHandler)
	reportes.GET("/busqueda-avanzada", BusquedaAvanzadaHandler)
	reportes.GET("/atenciones-mensual", AtencionesMensualHandler)
	reportes.GET("/exportar", ExportarHandler)
}
