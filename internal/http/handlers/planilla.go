package handlers

import (
	"net/http"
	"strings"

	"viajes/internal/http/middleware"
	"viajes/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/generar-pdf/:numero
// Descarga la planilla de control de despacho, una pagina por centro de
// costo. Con ?centro= genera solo la pagina de ese centro.
func GenerarPDF(c *gin.Context) {
	svc := services.PlanillaService{RequestID: middleware.GetRequestID(c)}

	var (
		pdf      []byte
		filename string
		err      error
	)
	if centro := strings.TrimSpace(c.Query("centro")); centro != "" {
		pdf, filename, err = svc.GenerarPorViajeCentro(c.Param("numero"), centro)
	} else {
		pdf, filename, err = svc.GenerarPorViaje(c.Param("numero"))
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
