package services

import (
	"testing"

	"viajes/internal/domain"
	"viajes/internal/models"
	"viajes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func servicioConMock(t *testing.T) (ViajeService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return ViajeService{
		Viajes:   repositories.ViajesRepository{DB: db},
		Comidas:  repositories.ComidasRepository{DB: db},
		Maestras: repositories.MaestrasRepository{DB: db},
	}, mock
}

func TestActualizarEnUnaSolaTransaccion(t *testing.T) {
	svc, mock := servicioConMock(t)

	mock.ExpectQuery("SELECT 1 FROM viajes").
		WithArgs("V-1", "5001").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE viajes SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM comidas_preparadas").
		WithArgs("V-1", "5001").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO comidas_preparadas").
		WithArgs("V-1", "5001", "G-9", "Proveedor Sur", "cazuela", 2.5, 3).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := models.ActualizarViajeRequest{
		NumeroViaje: "V-1",
		CentroCosto: "5001",
		Comidas: []models.Comida{
			{GuiaComida: "G-9", Proveedor: "Proveedor Sur", Descripcion: "cazuela", Kilo: 2.5, Bultos: 3},
		},
	}

	if err := svc.Actualizar(req); err != nil {
		t.Fatalf("actualizar fallo: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas incumplidas: %v", err)
	}
}

func TestActualizarViajeInexistente(t *testing.T) {
	svc, mock := servicioConMock(t)

	mock.ExpectQuery("SELECT 1 FROM viajes").
		WithArgs("V-404", "5001").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := svc.Actualizar(models.ActualizarViajeRequest{NumeroViaje: "V-404", CentroCosto: "5001"})
	if !domain.IsNotFound(err) {
		t.Fatalf("esperaba NotFound, llego %v", err)
	}
}

func TestActualizarSinIdentificadores(t *testing.T) {
	svc, _ := servicioConMock(t)

	err := svc.Actualizar(models.ActualizarViajeRequest{NumeroViaje: " ", CentroCosto: ""})
	if !domain.IsValidation(err) {
		t.Fatalf("esperaba error de validacion, llego %v", err)
	}
}

func TestEliminarBorraComidasYViaje(t *testing.T) {
	svc, mock := servicioConMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comidas_preparadas").
		WithArgs("V-1", "5001").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM viajes").
		WithArgs("V-1", "5001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Eliminar("V-1", "5001"); err != nil {
		t.Fatalf("eliminar fallo: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectativas incumplidas: %v", err)
	}
}

func TestEliminarViajeInexistente(t *testing.T) {
	svc, mock := servicioConMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comidas_preparadas").
		WithArgs("V-404", "5001").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM viajes").
		WithArgs("V-404", "5001").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Eliminar("V-404", "5001")
	if !domain.IsNotFound(err) {
		t.Fatalf("esperaba NotFound, llego %v", err)
	}
}

func TestBuscarCentrosConCasinoDeMaestras(t *testing.T) {
	svc, mock := servicioConMock(t)

	mock.ExpectQuery("SELECT DISTINCT costo_codigo").
		WithArgs("V-1").
		WillReturnRows(sqlmock.NewRows([]string{"costo_codigo"}).AddRow("5001").AddRow("9999"))
	mock.ExpectQuery("FROM maestras_casinos").
		WithArgs("5001").
		WillReturnRows(sqlmock.NewRows([]string{"codigo_costo", "casino", "ruta"}).
			AddRow("5001", "Casino Norte", "R1"))
	mock.ExpectQuery("FROM maestras_casinos").
		WithArgs("9999").
		WillReturnRows(sqlmock.NewRows([]string{"codigo_costo", "casino", "ruta"}))

	centros, err := svc.BuscarCentros("V-1")
	if err != nil {
		t.Fatalf("buscar centros fallo: %v", err)
	}
	if len(centros) != 2 {
		t.Fatalf("esperaba 2 centros, llegaron %d", len(centros))
	}
	if centros[0].Casino != "Casino Norte" || centros[0].Ruta != "R1" {
		t.Fatalf("centro con maestras mal armado: %+v", centros[0])
	}
	if centros[1].Casino != "Sin casino" || centros[1].Codigo != "9999" {
		t.Fatalf("centro sin maestras debe salir como Sin casino: %+v", centros[1])
	}
}

func TestBuscarCentrosNumeroVacio(t *testing.T) {
	svc, _ := servicioConMock(t)

	if _, err := svc.BuscarCentros("  "); !domain.IsValidation(err) {
		t.Fatalf("esperaba error de validacion, llego %v", err)
	}
}
