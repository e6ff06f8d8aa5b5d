package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "viajes/internal/config"
	intdb "viajes/internal/db"
	"viajes/internal/domain"
	"viajes/internal/models"
)

// MaestrasRepository accede a las tablas maestras: casinos (centros de
// costo), choferes y administrativos.
type MaestrasRepository struct {
	DB *sql.DB
}

func (r MaestrasRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CasinoPorCodigo devuelve el casino y la ruta asociados a un codigo de
// centro de costo.
func (r MaestrasRepository) CasinoPorCodigo(codigo string) (models.CentroCosto, error) {
	var cc models.CentroCosto
	err := r.db().QueryRow(`
		SELECT codigo_costo, COALESCE(casino, ''), COALESCE(ruta, '')
		FROM maestras_casinos
		WHERE codigo_costo = ?
		LIMIT 1
	`, codigo).Scan(&cc.Codigo, &cc.Casino, &cc.Ruta)
	if err == sql.ErrNoRows {
		return models.CentroCosto{}, domain.NotFoundError{Resource: "centro de costo", Err: err}
	}
	if err != nil {
		return models.CentroCosto{}, fmt.Errorf("buscando casino del centro %s: %w", codigo, err)
	}
	return cc, nil
}

// TodosCentros devuelve todos los centros de costo ordenados por casino.
func (r MaestrasRepository) TodosCentros() ([]models.CentroCosto, error) {
	rows, err := r.db().Query(`
		SELECT codigo_costo, COALESCE(casino, ''), COALESCE(ruta, '')
		FROM maestras_casinos
		ORDER BY casino ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listando centros de costo: %w", err)
	}
	defer rows.Close()

	centros := []models.CentroCosto{}
	for rows.Next() {
		var cc models.CentroCosto
		if err := rows.Scan(&cc.Codigo, &cc.Casino, &cc.Ruta); err != nil {
			return nil, err
		}
		centros = append(centros, cc)
	}
	return centros, rows.Err()
}

// CrearCentroCosto inserta un centro de costo nuevo. Devuelve
// ConflictError si el codigo ya existe.
func (r MaestrasRepository) CrearCentroCosto(codigo, casino, ruta string) error {
	var existente int64
	err := r.db().QueryRow(`SELECT id FROM maestras_casinos WHERE codigo_costo = ?`, codigo).Scan(&existente)
	if err == nil {
		return domain.ConflictError{Resource: "centro de costo", Msg: "el codigo ya existe"}
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("verificando centro %s: %w", codigo, err)
	}

	_, err = r.db().Exec(`
		INSERT INTO maestras_casinos (codigo_costo, casino, ruta)
		VALUES (?, ?, ?)
	`, codigo, casino, intdb.NullIfEmpty(ruta))
	if err != nil {
		return fmt.Errorf("creando centro %s: %w", codigo, err)
	}
	return nil
}

// TodosChoferes devuelve todos los choferes ordenados por nombre.
func (r MaestrasRepository) TodosChoferes() ([]models.Chofer, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(nombre, ''), COALESCE(celular, ''), COALESCE(rut, '')
		FROM maestras_choferes
		ORDER BY nombre
	`)
	if err != nil {
		return nil, fmt.Errorf("listando choferes: %w", err)
	}
	defer rows.Close()

	choferes := []models.Chofer{}
	for rows.Next() {
		var c models.Chofer
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.RUT); err != nil {
			return nil, err
		}
		choferes = append(choferes, c)
	}
	return choferes, rows.Err()
}

// BuscarChoferes busca choferes por coincidencia parcial de nombre.
func (r MaestrasRepository) BuscarChoferes(nombre string) ([]models.Chofer, error) {
	patron := "%" + strings.TrimSpace(nombre) + "%"
	rows, err := r.db().Query(`
		SELECT id, COALESCE(nombre, ''), COALESCE(celular, ''), COALESCE(rut, '')
		FROM maestras_choferes
		WHERE UPPER(nombre) LIKE UPPER(?)
		ORDER BY nombre
		LIMIT 10
	`, patron)
	if err != nil {
		return nil, fmt.Errorf("buscando choferes: %w", err)
	}
	defer rows.Close()

	choferes := []models.Chofer{}
	for rows.Next() {
		var c models.Chofer
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.RUT); err != nil {
			return nil, err
		}
		choferes = append(choferes, c)
	}
	return choferes, rows.Err()
}

// CrearChofer inserta un chofer nuevo. El RUT es la llave natural.
func (r MaestrasRepository) CrearChofer(nombre, rut, celular string) error {
	var existente int64
	err := r.db().QueryRow(`SELECT id FROM maestras_choferes WHERE rut = ?`, rut).Scan(&existente)
	if err == nil {
		return domain.ConflictError{Resource: "chofer", Msg: "el rut ya existe"}
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("verificando chofer %s: %w", rut, err)
	}

	_, err = r.db().Exec(`
		INSERT INTO maestras_choferes (nombre, celular, rut)
		VALUES (?, ?, ?)
	`, nombre, intdb.NullIfEmpty(celular), rut)
	if err != nil {
		return fmt.Errorf("creando chofer %s: %w", rut, err)
	}
	return nil
}

// NombresAdministrativos devuelve solo los nombres, ordenados.
func (r MaestrasRepository) NombresAdministrativos() ([]string, error) {
	rows, err := r.db().Query(`SELECT nombre FROM maestras_administrativos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("listando administrativos: %w", err)
	}
	defer rows.Close()

	nombres := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		nombres = append(nombres, n)
	}
	return nombres, rows.Err()
}

// CrearAdministrativo inserta un administrativo nuevo por nombre.
func (r MaestrasRepository) CrearAdministrativo(nombre string) error {
	var existente int64
	err := r.db().QueryRow(`SELECT id FROM maestras_administrativos WHERE nombre = ?`, nombre).Scan(&existente)
	if err == nil {
		return domain.ConflictError{Resource: "administrativo", Msg: "el nombre ya existe"}
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("verificando administrativo %s: %w", nombre, err)
	}

	if _, err := r.db().Exec(`INSERT INTO maestras_administrativos (nombre) VALUES (?)`, nombre); err != nil {
		return fmt.Errorf("creando administrativo %s: %w", nombre, err)
	}
	return nil
}
