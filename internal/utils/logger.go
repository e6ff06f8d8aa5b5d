package utils

import (
	"log"
	"strings"
)

// LogEvent escribe la linea estandar modulo/accion/request_id. El
// mensaje va resumido, sin payload sensible.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
