package handlers

import (
	"net/http"

	"viajes/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError envia el payload de error legado: success=false y un
// message legible, mas el request_id para trazas.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"success":    false,
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError valida que el body exista y sea JSON parseable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Body vacio", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Payload invalido", err)
		return false
	}
	return true
}
