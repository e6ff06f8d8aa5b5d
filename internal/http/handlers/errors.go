package handlers

import (
	"net/http"

	"viajes/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError traduce errores de dominio al payload legado.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "Registro no encontrado", nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "Error interno del servidor", err)
	}
}
