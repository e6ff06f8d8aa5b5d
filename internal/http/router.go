package api

import (
	"log"
	stdhttp "net/http"

	intconfig "viajes/internal/config"
	h "viajes/internal/http/handlers"
	"viajes/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("advertencia: no se pudieron fijar los proxies confiables: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "Ruta no encontrada",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Las rutas que escriben pueden exigir token Bearer.
		escritura := api.Group("")
		if env.AuthObligatoria {
			escritura.Use(middleware.RequireAuth())
		}

		// Editor de viajes
		api.GET("/buscar-centros-costo/:numero", h.BuscarCentrosCosto)
		api.POST("/buscar-viaje", h.BuscarViaje)
		api.GET("/buscar-viaje-numero/:numero", h.BuscarViajePorNumero)
		escritura.POST("/actualizar-viaje", h.ActualizarViaje)
		escritura.POST("/eliminar-viaje", h.EliminarViaje)

		// Maestras
		api.GET("/listar-administrativos", h.ListarAdministrativos)
		api.GET("/obtener-centros-costo", h.ObtenerCentrosCosto)
		api.GET("/centro-costo-detalles/:codigo", h.CentroCostoDetalles)
		api.GET("/obtener-choferes-completo", h.ObtenerChoferes)
		api.GET("/buscar-choferes", h.BuscarChoferes)
		escritura.POST("/crear-centro-costo", h.CrearCentroCosto)
		escritura.POST("/crear-chofer", h.CrearChofer)
		escritura.POST("/crear-administrativo", h.CrearAdministrativo)

		// Planilla PDF
		api.GET("/generar-pdf/:numero", h.GenerarPDF)
	}

	h.SetRouter(r)
	return r
}
