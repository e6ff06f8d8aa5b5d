package handlers

import (
	"net/http"
	"sync"

	intconfig "viajes/internal/config"
	intdb "viajes/internal/db"
	"viajes/internal/repositories"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter guarda el engine activo para inspeccion (/api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "servicio de viajes en linea"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Base de datos no disponible", "error": err.Error()})
		return
	}
	if !intdb.HasTable(intconfig.DB, "viajes") {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "La tabla viajes no existe"})
		return
	}
	// La migracion que amplio las guias a 21 debe estar aplicada.
	if !intdb.HasColumn(intconfig.DB, "viajes", "guia_21") {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "La tabla viajes no tiene la columna guia_21"})
		return
	}
	total, err := repositories.ViajesRepository{}.ContarViajes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Fallo la consulta a la base de datos", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Conexion OK", "viajes_en_db": total})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Router no inicializado"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
