package config

import (
	"os"
	"strings"
)

// JWTSecret firma los tokens de sesión. LoadEnv lo reemplaza si
// JWT_SECRET está definido.
var JWTSecret = []byte("super-secret-key-change-me")

type Env struct {
	AppAddr   string
	GinMode   string
	DBDSN     string
	JWTSecret string
	PDFDir    string

	// AuthObligatoria exige token Bearer en las rutas que escriben.
	AuthObligatoria bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}
	JWTSecret = []byte(secret)

	pdfDir := strings.TrimSpace(os.Getenv("PDF_DIR"))
	if pdfDir == "" {
		pdfDir = "pdfs"
	}

	auth := strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_OBLIGATORIA")))

	return Env{
		AppAddr:   appAddr,
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:     strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret: secret,
		PDFDir:    pdfDir,

		AuthObligatoria: auth == "1" || auth == "true",
	}
}
