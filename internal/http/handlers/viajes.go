package handlers

import (
	"net/http"

	"viajes/internal/domain"
	"viajes/internal/http/middleware"
	"viajes/internal/models"
	"viajes/internal/services"

	"github.com/gin-gonic/gin"
)

func viajeService(c *gin.Context) services.ViajeService {
	return services.ViajeService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/buscar-centros-costo/:numero
// Devuelve el arreglo plano de centros de costo donde existe el viaje,
// cada uno con su casino y ruta. Un viaje inexistente devuelve [].
func BuscarCentrosCosto(c *gin.Context) {
	centros, err := viajeService(c).BuscarCentros(c.Param("numero"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, centros)
}

type buscarViajeRequest struct {
	NumeroViaje string `json:"numero_viaje"`
	CentroCosto string `json:"centro_costo"`
}

// POST /api/buscar-viaje
// Carga el registro completo de un viaje en un centro de costo junto a
// sus comidas.
func BuscarViaje(c *gin.Context) {
	var req buscarViajeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	viaje, comidas, err := viajeService(c).BuscarViaje(req.NumeroViaje, req.CentroCosto)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "Viaje no encontrado", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"viaje":   viaje,
		"comidas": comidas,
	})
}

// GET /api/buscar-viaje-numero/:numero
// Carga el registro mas reciente de un numero de viaje sin exigir
// centro de costo.
func BuscarViajePorNumero(c *gin.Context) {
	viaje, comidas, err := viajeService(c).BuscarUltimoPorNumero(c.Param("numero"))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "Viaje no encontrado", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"viaje":   viaje,
		"comidas": comidas,
	})
}

// POST /api/actualizar-viaje
// Guarda el formulario completo: viaje mas comidas en una transaccion.
func ActualizarViaje(c *gin.Context) {
	var req models.ActualizarViajeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := viajeService(c).Actualizar(req); err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "Viaje no encontrado", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Viaje actualizado correctamente",
	})
}

type eliminarViajeRequest struct {
	NumeroViaje string `json:"numero_viaje"`
	CentroCosto string `json:"centro_costo"`
}

// POST /api/eliminar-viaje
// Borra el viaje del centro de costo y todas sus comidas.
func EliminarViaje(c *gin.Context) {
	var req eliminarViajeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := viajeService(c).Eliminar(req.NumeroViaje, req.CentroCosto); err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "Viaje no encontrado", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Viaje eliminado correctamente",
	})
}
