package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "viajes/internal/config"
	"viajes/internal/domain"
	"viajes/internal/models"
)

type ViajesRepository struct {
	DB *sql.DB
}

func (r ViajesRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// viajeColumnas lista las columnas de la tabla viajes sin el id, en el
// mismo orden en que se escanean y se actualizan. Las dos primeras
// (numero_viaje, costo_codigo) identifican el registro y no se tocan en
// los UPDATE.
var viajeColumnas = func() []string {
	cols := []string{
		"numero_viaje", "costo_codigo",
		"fecha", "casino", "ruta",
		"tipo_camion", "patente_camion", "patente_semi", "numero_rampa",
		"peso_camion", "numero_camion", "termografos_gps",
		"conductor", "celular", "rut",
		"fecha_hora_llegada_dhl", "fecha_hora_salida_dhl",
		"num_wencos", "bin", "pallets", "pallets_chep",
		"pallets_pl_negro_grueso", "pallets_pl_negro_alternativo",
		"pallets_congelado", "wencos_congelado",
		"pallets_refrigerado", "wencos_refrigerado", "pallets_abarrote",
		"check_congelado", "check_refrigerado", "check_abarrote",
		"check_implementos", "check_aseo", "check_trazabilidad",
		"check_plataforma_wtck", "check_env_correo_wtck",
		"check_revision_planilla_despacho",
	}
	for i := 1; i <= models.NumeroGuias; i++ {
		cols = append(cols, fmt.Sprintf("guia_%d", i))
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		cols = append(cols, fmt.Sprintf("sello_salida_%dp", i))
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		cols = append(cols, fmt.Sprintf("sello_retorno_%dp", i))
	}
	return append(cols,
		"numero_certificado_fumigacion",
		"revision_limpieza_camion_acciones",
		"administrativo_responsable",
	)
}()

// Columnas que acepta el formulario de edición.
var viajeColumnasEditables = viajeColumnas[2:]

func columnasSelectViaje() string {
	parts := make([]string, 0, len(viajeColumnas)+1)
	parts = append(parts, "id")
	for _, c := range viajeColumnas {
		parts = append(parts, "COALESCE("+c+", '')")
	}
	return strings.Join(parts, ", ")
}

// destinosViaje devuelve los punteros de escaneo en el orden de
// columnasSelectViaje.
func destinosViaje(v *models.Viaje) []any {
	dest := []any{
		&v.ID,
		&v.NumeroViaje, &v.CostoCodigo,
		&v.Fecha, &v.Casino, &v.Ruta,
		&v.TipoCamion, &v.PatenteCamion, &v.PatenteSemi, &v.NumeroRampa,
		&v.PesoCamion, &v.NumeroCamion, &v.TermografosGPS,
		&v.Conductor, &v.Celular, &v.RUT,
		&v.FechaHoraLlegadaDHL, &v.FechaHoraSalidaDHL,
		&v.NumWencos, &v.Bin, &v.Pallets, &v.PalletsChep,
		&v.PalletsPlNegroGrueso, &v.PalletsPlNegroAlternativo,
		&v.PalletsCongelado, &v.WencosCongelado,
		&v.PalletsRefrigerado, &v.WencosRefrigerado, &v.PalletsAbarrote,
		&v.CheckCongelado, &v.CheckRefrigerado, &v.CheckAbarrote,
		&v.CheckImplementos, &v.CheckAseo, &v.CheckTrazabilidad,
		&v.CheckPlataformaWTCK, &v.CheckEnvCorreoWTCK,
		&v.CheckRevisionPlanillaDespacho,
	}
	dest = append(dest,
		&v.Guia1, &v.Guia2, &v.Guia3, &v.Guia4, &v.Guia5, &v.Guia6, &v.Guia7,
		&v.Guia8, &v.Guia9, &v.Guia10, &v.Guia11, &v.Guia12, &v.Guia13, &v.Guia14,
		&v.Guia15, &v.Guia16, &v.Guia17, &v.Guia18, &v.Guia19, &v.Guia20, &v.Guia21,
		&v.SelloSalida1P, &v.SelloSalida2P, &v.SelloSalida3P, &v.SelloSalida4P, &v.SelloSalida5P,
		&v.SelloRetorno1P, &v.SelloRetorno2P, &v.SelloRetorno3P, &v.SelloRetorno4P, &v.SelloRetorno5P,
	)
	return append(dest,
		&v.NumeroCertificadoFumigacion,
		&v.RevisionLimpiezaCamionAcciones,
		&v.AdministrativoResponsable,
	)
}

// valoresEditables devuelve los valores del viaje en el orden de
// viajeColumnasEditables.
func valoresEditables(v models.Viaje) []any {
	vals := []any{
		v.Fecha, v.Casino, v.Ruta,
		v.TipoCamion, v.PatenteCamion, v.PatenteSemi, v.NumeroRampa,
		v.PesoCamion, v.NumeroCamion, v.TermografosGPS,
		v.Conductor, v.Celular, v.RUT,
		v.FechaHoraLlegadaDHL, v.FechaHoraSalidaDHL,
		string(v.NumWencos), v.Bin, string(v.Pallets), string(v.PalletsChep),
		v.PalletsPlNegroGrueso, v.PalletsPlNegroAlternativo,
		string(v.PalletsCongelado), string(v.WencosCongelado),
		string(v.PalletsRefrigerado), string(v.WencosRefrigerado), string(v.PalletsAbarrote),
		string(v.CheckCongelado), string(v.CheckRefrigerado), string(v.CheckAbarrote),
		string(v.CheckImplementos), string(v.CheckAseo), string(v.CheckTrazabilidad),
		string(v.CheckPlataformaWTCK), string(v.CheckEnvCorreoWTCK),
		string(v.CheckRevisionPlanillaDespacho),
	}
	for i := 1; i <= models.NumeroGuias; i++ {
		vals = append(vals, v.Guia(i))
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		vals = append(vals, v.SelloSalida(i))
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		vals = append(vals, v.SelloRetorno(i))
	}
	return append(vals,
		v.NumeroCertificadoFumigacion,
		v.RevisionLimpiezaCamionAcciones,
		v.AdministrativoResponsable,
	)
}

// CentrosPorViaje devuelve los codigos de centro de costo donde aparece
// el numero de viaje, ordenados.
func (r ViajesRepository) CentrosPorViaje(numero string) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT DISTINCT costo_codigo
		FROM viajes
		WHERE numero_viaje = ?
		  AND costo_codigo IS NOT NULL
		  AND costo_codigo <> ''
		ORDER BY costo_codigo
	`, numero)
	if err != nil {
		return nil, fmt.Errorf("listando centros del viaje %s: %w", numero, err)
	}
	defer rows.Close()

	centros := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		centros = append(centros, c)
	}
	return centros, rows.Err()
}

// PorNumeroYCentro devuelve el registro de un viaje en un centro de
// costo especifico.
func (r ViajesRepository) PorNumeroYCentro(numero, centro string) (models.Viaje, error) {
	var v models.Viaje
	query := "SELECT " + columnasSelectViaje() + " FROM viajes WHERE numero_viaje = ? AND costo_codigo = ? LIMIT 1"
	err := r.db().QueryRow(query, numero, centro).Scan(destinosViaje(&v)...)
	if err == sql.ErrNoRows {
		return models.Viaje{}, domain.NotFoundError{Resource: "viaje", Err: err}
	}
	if err != nil {
		return models.Viaje{}, fmt.Errorf("buscando viaje %s centro %s: %w", numero, centro, err)
	}
	return v, nil
}

// UltimoPorNumero devuelve el registro mas reciente de un numero de
// viaje, sin importar el centro de costo.
func (r ViajesRepository) UltimoPorNumero(numero string) (models.Viaje, error) {
	var v models.Viaje
	query := "SELECT " + columnasSelectViaje() + " FROM viajes WHERE numero_viaje = ? ORDER BY id DESC LIMIT 1"
	err := r.db().QueryRow(query, numero).Scan(destinosViaje(&v)...)
	if err == sql.ErrNoRows {
		return models.Viaje{}, domain.NotFoundError{Resource: "viaje", Err: err}
	}
	if err != nil {
		return models.Viaje{}, fmt.Errorf("buscando viaje %s: %w", numero, err)
	}
	return v, nil
}

func (r ViajesRepository) Existe(numero, centro string) (bool, error) {
	var uno int
	err := r.db().QueryRow(`
		SELECT 1 FROM viajes WHERE numero_viaje = ? AND costo_codigo = ? LIMIT 1
	`, numero, centro).Scan(&uno)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ActualizarTx actualiza todas las columnas editables de un viaje dentro
// de una transaccion y devuelve las filas afectadas.
func (r ViajesRepository) ActualizarTx(tx *sql.Tx, v models.Viaje) (int64, error) {
	sets := make([]string, len(viajeColumnasEditables))
	for i, c := range viajeColumnasEditables {
		sets[i] = c + " = ?"
	}
	args := valoresEditables(v)
	args = append(args, v.NumeroViaje, v.CostoCodigo)

	query := "UPDATE viajes SET " + strings.Join(sets, ", ") + " WHERE numero_viaje = ? AND costo_codigo = ?"
	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("actualizando viaje %s centro %s: %w", v.NumeroViaje, v.CostoCodigo, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// EliminarTx borra el registro del viaje en un centro de costo y
// devuelve las filas afectadas.
func (r ViajesRepository) EliminarTx(tx *sql.Tx, numero, centro string) (int64, error) {
	res, err := tx.Exec(`
		DELETE FROM viajes WHERE numero_viaje = ? AND costo_codigo = ?
	`, numero, centro)
	if err != nil {
		return 0, fmt.Errorf("eliminando viaje %s centro %s: %w", numero, centro, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ContarViajes cuenta los registros de la tabla viajes.
func (r ViajesRepository) ContarViajes() (int64, error) {
	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM viajes").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
