package handlers

import (
	"net/http"
	"strings"

	"viajes/internal/domain"
	"viajes/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/listar-administrativos
func ListarAdministrativos(c *gin.Context) {
	nombres, err := repositories.MaestrasRepository{}.NombresAdministrativos()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"administrativos": nombres,
	})
}

// GET /api/obtener-centros-costo
func ObtenerCentrosCosto(c *gin.Context) {
	centros, err := repositories.MaestrasRepository{}.TodosCentros()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"centros": centros,
	})
}

// GET /api/centro-costo-detalles/:codigo
func CentroCostoDetalles(c *gin.Context) {
	cc, err := repositories.MaestrasRepository{}.CasinoPorCodigo(c.Param("codigo"))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "Centro de costo no encontrado", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"centro":  cc,
	})
}

// GET /api/obtener-choferes-completo
func ObtenerChoferes(c *gin.Context) {
	choferes, err := repositories.MaestrasRepository{}.TodosChoferes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"choferes": choferes,
	})
}

// GET /api/buscar-choferes?nombre=
func BuscarChoferes(c *gin.Context) {
	choferes, err := repositories.MaestrasRepository{}.BuscarChoferes(c.Query("nombre"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"choferes": choferes,
	})
}

type crearCentroRequest struct {
	Codigo string `json:"codigo_costo"`
	Casino string `json:"casino"`
	Ruta   string `json:"ruta"`
}

// POST /api/crear-centro-costo
func CrearCentroCosto(c *gin.Context) {
	var req crearCentroRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Codigo) == "" || strings.TrimSpace(req.Casino) == "" {
		RespondError(c, http.StatusBadRequest, "codigo_costo y casino son obligatorios", nil)
		return
	}
	if err := (repositories.MaestrasRepository{}).CrearCentroCosto(req.Codigo, req.Casino, req.Ruta); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Centro de costo creado"})
}

type crearChoferRequest struct {
	Nombre  string `json:"nombre"`
	RUT     string `json:"rut"`
	Celular string `json:"celular"`
}

// POST /api/crear-chofer
func CrearChofer(c *gin.Context) {
	var req crearChoferRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.RUT) == "" {
		RespondError(c, http.StatusBadRequest, "nombre y rut son obligatorios", nil)
		return
	}
	if err := (repositories.MaestrasRepository{}).CrearChofer(req.Nombre, req.RUT, req.Celular); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Chofer creado"})
}

type crearAdministrativoRequest struct {
	Nombre string `json:"nombre"`
}

// POST /api/crear-administrativo
func CrearAdministrativo(c *gin.Context) {
	var req crearAdministrativoRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Nombre) == "" {
		RespondError(c, http.StatusBadRequest, "nombre es obligatorio", nil)
		return
	}
	if err := (repositories.MaestrasRepository{}).CrearAdministrativo(req.Nombre); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Administrativo creado"})
}
