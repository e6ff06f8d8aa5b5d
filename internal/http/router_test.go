package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "viajes/internal/config"
	"viajes/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func routerConMock(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	return routerConMockEnv(t, intconfig.Env{})
}

func routerConMockEnv(t *testing.T, env intconfig.Env) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		intconfig.DB = nil
	})
	intconfig.DB = db

	return NewRouter(env), mock
}

func TestBuscarCentrosCostoDevuelveArreglo(t *testing.T) {
	r, mock := routerConMock(t)

	mock.ExpectQuery("SELECT DISTINCT costo_codigo").
		WithArgs("V-1").
		WillReturnRows(sqlmock.NewRows([]string{"costo_codigo"}).AddRow("5001"))
	mock.ExpectQuery("FROM maestras_casinos").
		WithArgs("5001").
		WillReturnRows(sqlmock.NewRows([]string{"codigo_costo", "casino", "ruta"}).
			AddRow("5001", "Casino Norte", "R1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/buscar-centros-costo/V-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200: %s", w.Code, w.Body.String())
	}

	var centros []models.CentroCosto
	if err := json.Unmarshal(w.Body.Bytes(), &centros); err != nil {
		t.Fatalf("la respuesta debe ser un arreglo plano: %v", err)
	}
	if len(centros) != 1 || centros[0].Codigo != "5001" || centros[0].Casino != "Casino Norte" {
		t.Fatalf("centros inesperados: %+v", centros)
	}
}

func TestActualizarViajeInexistenteResponde404(t *testing.T) {
	r, mock := routerConMock(t)

	mock.ExpectQuery("SELECT 1 FROM viajes").
		WithArgs("V-404", "5001").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	body := `{"numero_viaje":"V-404","centro_costo":"5001"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/actualizar-viaje", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperaba 404: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta ilegible: %v", err)
	}
	if resp.Success || resp.Message != "Viaje no encontrado" {
		t.Fatalf("respuesta inesperada: %+v", resp)
	}
}

func TestEliminarViajeFlujoCompleto(t *testing.T) {
	r, mock := routerConMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comidas_preparadas").
		WithArgs("V-1", "5001").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM viajes").
		WithArgs("V-1", "5001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"numero_viaje":"V-1","centro_costo":"5001"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/eliminar-viaje", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas incumplidas: %v", err)
	}
}

func TestListarAdministrativos(t *testing.T) {
	r, mock := routerConMock(t)

	mock.ExpectQuery("SELECT nombre FROM maestras_administrativos").
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Ana Rojas").AddRow("Luis Diaz"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listar-administrativos", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200", w.Code)
	}

	var resp struct {
		Success         bool     `json:"success"`
		Administrativos []string `json:"administrativos"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta ilegible: %v", err)
	}
	if !resp.Success || len(resp.Administrativos) != 2 {
		t.Fatalf("respuesta inesperada: %+v", resp)
	}
}

func TestActualizarViajeConAuthObligatoria(t *testing.T) {
	r, mock := routerConMockEnv(t, intconfig.Env{AuthObligatoria: true})

	body := `{"numero_viaje":"V-1","centro_costo":"5001"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/actualizar-viaje", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("sin token debe responder 401, respondio %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Token requerido") {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}

	// Con token firmado la peticion atraviesa el middleware y llega a
	// la base.
	mock.ExpectQuery("SELECT 1 FROM viajes").
		WithArgs("V-1", "5001").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(1),
		"username": "ana",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	firmado, err := token.SignedString(intconfig.JWTSecret)
	if err != nil {
		t.Fatalf("no se pudo firmar el token: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/actualizar-viaje", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+firmado)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("con token valido la peticion debe llegar a la base: %d %s", w.Code, w.Body.String())
	}
}

func TestLecturasSiguenAbiertasConAuthObligatoria(t *testing.T) {
	r, mock := routerConMockEnv(t, intconfig.Env{AuthObligatoria: true})

	mock.ExpectQuery("SELECT nombre FROM maestras_administrativos").
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Ana Rojas"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listar-administrativos", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("las lecturas no exigen token: %d %s", w.Code, w.Body.String())
	}
}

func TestDBCheckVerificaEsquema(t *testing.T) {
	r, mock := routerConMock(t)

	mock.ExpectQuery("information_schema.tables").
		WithArgs("viajes").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("viajes"))
	mock.ExpectQuery("information_schema.columns").
		WithArgs("viajes", "guia_21").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("guia_21"))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/db-check", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"viajes_en_db":7`) {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}
}

func TestDBCheckSinColumnaGuia21(t *testing.T) {
	r, mock := routerConMock(t)

	mock.ExpectQuery("information_schema.tables").
		WithArgs("viajes").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("viajes"))
	mock.ExpectQuery("information_schema.columns").
		WithArgs("viajes", "guia_21").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/db-check", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("sin la columna el chequeo debe fallar: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "La tabla viajes no tiene la columna guia_21") {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}
}

func TestRutaDesconocidaResponde404(t *testing.T) {
	r, _ := routerConMock(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/no-existe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperaba 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ruta no encontrada") {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}
}
