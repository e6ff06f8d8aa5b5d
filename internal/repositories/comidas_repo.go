package repositories

import (
	"database/sql"
	"fmt"

	intconfig "viajes/internal/config"
	"viajes/internal/models"
)

type ComidasRepository struct {
	DB *sql.DB
}

func (r ComidasRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const columnasComida = `id, COALESCE(numero_viaje, ''), COALESCE(numero_centro_costo, ''),
	COALESCE(guia_comida, ''), COALESCE(proveedor, ''), COALESCE(descripcion, ''),
	COALESCE(kilo, 0), COALESCE(bultos, 0)`

func escanearComidas(rows *sql.Rows) ([]models.Comida, error) {
	comidas := []models.Comida{}
	for rows.Next() {
		var c models.Comida
		if err := rows.Scan(
			&c.ID, &c.NumeroViaje, &c.NumeroCentroCosto,
			&c.GuiaComida, &c.Proveedor, &c.Descripcion,
			&c.Kilo, &c.Bultos,
		); err != nil {
			return nil, err
		}
		comidas = append(comidas, c)
	}
	return comidas, rows.Err()
}

// ListarPorViajeCentro devuelve las comidas de un viaje para un centro
// de costo especifico, en orden de insercion.
func (r ComidasRepository) ListarPorViajeCentro(numero, centro string) ([]models.Comida, error) {
	rows, err := r.db().Query(`
		SELECT `+columnasComida+`
		FROM comidas_preparadas
		WHERE numero_viaje = ? AND numero_centro_costo = ?
		ORDER BY id
	`, numero, centro)
	if err != nil {
		return nil, fmt.Errorf("listando comidas del viaje %s centro %s: %w", numero, centro, err)
	}
	defer rows.Close()
	return escanearComidas(rows)
}

// ListarPorViaje devuelve todas las comidas de un numero de viaje en
// todos sus centros de costo.
func (r ComidasRepository) ListarPorViaje(numero string) ([]models.Comida, error) {
	rows, err := r.db().Query(`
		SELECT `+columnasComida+`
		FROM comidas_preparadas
		WHERE numero_viaje = ?
		ORDER BY numero_centro_costo, id
	`, numero)
	if err != nil {
		return nil, fmt.Errorf("listando comidas del viaje %s: %w", numero, err)
	}
	defer rows.Close()
	return escanearComidas(rows)
}

// EliminarPorViajeCentroTx borra todas las comidas de un viaje en un
// centro de costo dentro de una transaccion.
func (r ComidasRepository) EliminarPorViajeCentroTx(tx *sql.Tx, numero, centro string) error {
	_, err := tx.Exec(`
		DELETE FROM comidas_preparadas
		WHERE numero_viaje = ? AND numero_centro_costo = ?
	`, numero, centro)
	if err != nil {
		return fmt.Errorf("eliminando comidas del viaje %s centro %s: %w", numero, centro, err)
	}
	return nil
}

// InsertarTx inserta una comida dentro de una transaccion.
func (r ComidasRepository) InsertarTx(tx *sql.Tx, c models.Comida) error {
	_, err := tx.Exec(`
		INSERT INTO comidas_preparadas
			(numero_viaje, numero_centro_costo, guia_comida, proveedor, descripcion, kilo, bultos)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.NumeroViaje, c.NumeroCentroCosto, c.GuiaComida, c.Proveedor, c.Descripcion, c.Kilo, c.Bultos)
	if err != nil {
		return fmt.Errorf("insertando comida del viaje %s: %w", c.NumeroViaje, err)
	}
	return nil
}
