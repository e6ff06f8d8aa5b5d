package services

import (
	"fmt"
	"strings"

	intconfig "viajes/internal/config"
	"viajes/internal/domain"
	"viajes/internal/models"
	"viajes/internal/repositories"
	"viajes/internal/utils"
)

// ViajeService orquesta las operaciones del editor de viajes: busqueda
// por numero, carga por centro de costo, actualizacion completa y
// eliminacion.
type ViajeService struct {
	Viajes    repositories.ViajesRepository
	Comidas   repositories.ComidasRepository
	Maestras  repositories.MaestrasRepository
	RequestID string
}

// BuscarCentros devuelve los centros de costo donde existe el numero de
// viaje, cada uno con su casino y ruta de maestras. Un centro sin
// registro en maestras sale con casino "Sin casino".
func (s ViajeService) BuscarCentros(numero string) ([]models.CentroCosto, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return nil, domain.ValidationError{Field: "numero_viaje", Msg: "es obligatorio"}
	}

	codigos, err := s.Viajes.CentrosPorViaje(numero)
	if err != nil {
		return nil, err
	}

	centros := make([]models.CentroCosto, 0, len(codigos))
	for _, codigo := range codigos {
		cc, err := s.Maestras.CasinoPorCodigo(codigo)
		if err != nil {
			if !domain.IsNotFound(err) {
				return nil, err
			}
			cc = models.CentroCosto{Codigo: codigo, Casino: "Sin casino"}
		}
		cc.Codigo = codigo
		centros = append(centros, cc)
	}

	utils.LogEvent(s.RequestID, "viajes", "buscar_centros",
		fmt.Sprintf("numero=%s centros=%d", numero, len(centros)))
	return centros, nil
}

// BuscarViaje carga el registro completo de un viaje en un centro de
// costo, junto con sus comidas.
func (s ViajeService) BuscarViaje(numero, centro string) (models.Viaje, []models.Comida, error) {
	numero = strings.TrimSpace(numero)
	centro = strings.TrimSpace(centro)
	if numero == "" || centro == "" {
		return models.Viaje{}, nil, domain.ValidationError{Msg: "numero_viaje y centro_costo son obligatorios"}
	}

	viaje, err := s.Viajes.PorNumeroYCentro(numero, centro)
	if err != nil {
		return models.Viaje{}, nil, err
	}

	comidas, err := s.Comidas.ListarPorViajeCentro(numero, centro)
	if err != nil {
		return models.Viaje{}, nil, err
	}

	utils.LogEvent(s.RequestID, "viajes", "buscar_viaje",
		fmt.Sprintf("numero=%s centro=%s comidas=%d", numero, centro, len(comidas)))
	return viaje, comidas, nil
}

// BuscarUltimoPorNumero carga el registro mas reciente de un numero de
// viaje sin exigir centro de costo, con las comidas de ese centro.
func (s ViajeService) BuscarUltimoPorNumero(numero string) (models.Viaje, []models.Comida, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return models.Viaje{}, nil, domain.ValidationError{Field: "numero_viaje", Msg: "es obligatorio"}
	}

	viaje, err := s.Viajes.UltimoPorNumero(numero)
	if err != nil {
		return models.Viaje{}, nil, err
	}

	comidas, err := s.Comidas.ListarPorViajeCentro(numero, viaje.CostoCodigo)
	if err != nil {
		return models.Viaje{}, nil, err
	}
	return viaje, comidas, nil
}

// Actualizar guarda el formulario completo en una sola transaccion:
// actualiza el viaje, borra las comidas del centro y reinserta las que
// llegaron en el payload.
func (s ViajeService) Actualizar(req models.ActualizarViajeRequest) error {
	numero := strings.TrimSpace(req.NumeroViaje)
	centro := strings.TrimSpace(req.CentroCosto)
	if numero == "" || centro == "" {
		return domain.ValidationError{Msg: "numero_viaje y centro_costo son obligatorios"}
	}
	req.NumeroViaje = numero
	req.CentroCosto = centro

	existe, err := s.Viajes.Existe(numero, centro)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NotFoundError{Resource: "viaje"}
	}

	db := s.Viajes.DB
	if db == nil {
		db = intconfig.DB
	}
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "no se pudo abrir la transaccion", Err: err}
	}
	defer tx.Rollback()

	if _, err := s.Viajes.ActualizarTx(tx, req.AViaje()); err != nil {
		return err
	}
	if err := s.Comidas.EliminarPorViajeCentroTx(tx, numero, centro); err != nil {
		return err
	}
	for _, comida := range req.Comidas {
		comida.NumeroViaje = numero
		comida.NumeroCentroCosto = centro
		if err := s.Comidas.InsertarTx(tx, comida); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "no se pudo confirmar la transaccion", Err: err}
	}

	utils.LogEvent(s.RequestID, "viajes", "actualizar",
		fmt.Sprintf("numero=%s centro=%s comidas=%d", numero, centro, len(req.Comidas)))
	return nil
}

// Eliminar borra el viaje de un centro de costo y todas sus comidas en
// una transaccion.
func (s ViajeService) Eliminar(numero, centro string) error {
	numero = strings.TrimSpace(numero)
	centro = strings.TrimSpace(centro)
	if numero == "" || centro == "" {
		return domain.ValidationError{Msg: "numero_viaje y centro_costo son obligatorios"}
	}

	db := s.Viajes.DB
	if db == nil {
		db = intconfig.DB
	}
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "no se pudo abrir la transaccion", Err: err}
	}
	defer tx.Rollback()

	if err := s.Comidas.EliminarPorViajeCentroTx(tx, numero, centro); err != nil {
		return err
	}
	filas, err := s.Viajes.EliminarTx(tx, numero, centro)
	if err != nil {
		return err
	}
	if filas == 0 {
		return domain.NotFoundError{Resource: "viaje"}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "no se pudo confirmar la transaccion", Err: err}
	}

	utils.LogEvent(s.RequestID, "viajes", "eliminar",
		fmt.Sprintf("numero=%s centro=%s", numero, centro))
	return nil
}
