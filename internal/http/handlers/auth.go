package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	intconfig "viajes/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser replica el payload de usuario de la app legada.
type AuthUser struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)
	err := intconfig.DB.QueryRow(`
		SELECT id, username, COALESCE(nombre_completo, ''), COALESCE(email, ''), password_hash
		FROM usuarios
		WHERE username = ? AND activo = 1
	`, strings.TrimSpace(req.Username)).Scan(
		&user.ID, &user.Username, &user.NombreCompleto, &user.Email, &passwordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusUnauthorized, "Usuario o contraseña incorrectos", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "Fallo la consulta de usuario", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "Usuario o contraseña incorrectos", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(intconfig.JWTSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "No se pudo generar el token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    user,
	})
}

type registerRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "username y password son obligatorios", nil)
		return
	}

	var existe int
	err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM usuarios WHERE username = ?`, username).Scan(&existe)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Fallo la verificacion de usuario", err)
		return
	}
	if existe > 0 {
		RespondError(c, http.StatusBadRequest, "El usuario ya existe", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "No se pudo cifrar la contraseña", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO usuarios (username, password_hash, nombre_completo, email, activo, fecha_creacion)
		VALUES (?, ?, ?, ?, 1, NOW())
	`, username, string(hash), req.NombreCompleto, req.Email)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "No se pudo guardar el usuario", err)
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": AuthUser{
			ID:             id,
			Username:       username,
			NombreCompleto: req.NombreCompleto,
			Email:          req.Email,
		},
	})
}
