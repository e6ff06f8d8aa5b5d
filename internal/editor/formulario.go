package editor

import (
	"viajes/internal/models"
)

// Formulario es el registro en memoria que respalda el paso de edicion.
// Cada campo refleja un input del formulario como texto; los checks son
// booleanos y se serializan como "X" o "". Solo hay un viaje cargado a
// la vez.
type Formulario struct {
	NumeroViaje string
	CentroCosto string

	Fecha  string
	Casino string
	Ruta   string

	TipoCamion     string
	PatenteCamion  string
	PatenteSemi    string
	NumeroRampa    string
	PesoCamion     string
	NumeroCamion   string
	TermografosGPS string

	Chofer      string
	Celular     string
	RUT         string
	HoraSalida  string
	HoraLlegada string

	NumWencos                 string
	Bin                       string
	Pallets                   string
	PalletsChep               string
	PalletsPlNegroGrueso      string
	PalletsPlNegroAlternativo string
	PalletsCongelado          string
	WencosCongelado           string
	PalletsRefrigerado        string
	WencosRefrigerado         string
	PalletsAbarrote           string

	CheckCongelado                bool
	CheckRefrigerado              bool
	CheckAbarrote                 bool
	CheckImplementos              bool
	CheckAseo                     bool
	CheckTrazabilidad             bool
	CheckPlataformaWTCK           bool
	CheckEnvCorreoWTCK            bool
	CheckRevisionPlanillaDespacho bool

	Guias         [models.NumeroGuias]string
	SellosSalida  [models.NumeroSellos]string
	SellosRetorno [models.NumeroSellos]string

	NumeroCertificadoFumigacion    string
	RevisionLimpiezaCamionAcciones string
	AdministrativoResponsable      string

	Comidas ListaComidas
}

// CargarDesde llena el formulario con el registro del servidor. Los
// campos vacios quedan como cadena vacia y los checks se encienden con
// cualquier marca activa.
func (f *Formulario) CargarDesde(v models.Viaje, comidas []models.Comida) {
	*f = Formulario{
		NumeroViaje: v.NumeroViaje,
		CentroCosto: v.CostoCodigo,

		Fecha:  v.Fecha,
		Casino: v.Casino,
		Ruta:   v.Ruta,

		TipoCamion:     v.TipoCamion,
		PatenteCamion:  v.PatenteCamion,
		PatenteSemi:    v.PatenteSemi,
		NumeroRampa:    v.NumeroRampa,
		PesoCamion:     v.PesoCamion,
		NumeroCamion:   v.NumeroCamion,
		TermografosGPS: v.TermografosGPS,

		Chofer:      v.Conductor,
		Celular:     v.Celular,
		RUT:         v.RUT,
		HoraSalida:  v.FechaHoraSalidaDHL,
		HoraLlegada: v.FechaHoraLlegadaDHL,

		NumWencos:                 oCero(v.NumWencos),
		Bin:                       v.Bin,
		Pallets:                   oCero(v.Pallets),
		PalletsChep:               oCero(v.PalletsChep),
		PalletsPlNegroGrueso:      v.PalletsPlNegroGrueso,
		PalletsPlNegroAlternativo: v.PalletsPlNegroAlternativo,
		PalletsCongelado:          oCero(v.PalletsCongelado),
		WencosCongelado:           oCero(v.WencosCongelado),
		PalletsRefrigerado:        oCero(v.PalletsRefrigerado),
		WencosRefrigerado:         oCero(v.WencosRefrigerado),
		PalletsAbarrote:           oCero(v.PalletsAbarrote),

		CheckCongelado:                v.CheckCongelado.Activa(),
		CheckRefrigerado:              v.CheckRefrigerado.Activa(),
		CheckAbarrote:                 v.CheckAbarrote.Activa(),
		CheckImplementos:              v.CheckImplementos.Activa(),
		CheckAseo:                     v.CheckAseo.Activa(),
		CheckTrazabilidad:             v.CheckTrazabilidad.Activa(),
		CheckPlataformaWTCK:           v.CheckPlataformaWTCK.Activa(),
		CheckEnvCorreoWTCK:            v.CheckEnvCorreoWTCK.Activa(),
		CheckRevisionPlanillaDespacho: v.CheckRevisionPlanillaDespacho.Activa(),

		NumeroCertificadoFumigacion:    v.NumeroCertificadoFumigacion,
		RevisionLimpiezaCamionAcciones: v.RevisionLimpiezaCamionAcciones,
		AdministrativoResponsable:      v.AdministrativoResponsable,
	}
	for i := 1; i <= models.NumeroGuias; i++ {
		f.Guias[i-1] = v.Guia(i)
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		f.SellosSalida[i-1] = v.SelloSalida(i)
		f.SellosRetorno[i-1] = v.SelloRetorno(i)
	}
	f.Comidas.CargarDesde(comidas)
}

// oCero proyecta un contador a texto; sin valor guardado el input
// numerico parte en 0.
func oCero(t models.Texto) string {
	if t == "" {
		return "0"
	}
	return string(t)
}

func marcar(activo bool) string {
	if activo {
		return "X"
	}
	return ""
}

// Serializar recorre todos los campos y arma el payload de
// actualizacion, con las comidas ya filtradas por descripcion.
func (f *Formulario) Serializar() models.ActualizarViajeRequest {
	req := models.ActualizarViajeRequest{
		NumeroViaje: f.NumeroViaje,
		CentroCosto: f.CentroCosto,

		Fecha:  f.Fecha,
		Casino: f.Casino,
		Ruta:   f.Ruta,

		TipoCamion:     f.TipoCamion,
		PatenteCamion:  f.PatenteCamion,
		PatenteSemi:    f.PatenteSemi,
		NumeroRampa:    f.NumeroRampa,
		PesoCamion:     f.PesoCamion,
		NumeroCamion:   f.NumeroCamion,
		TermografosGPS: f.TermografosGPS,

		Chofer:      f.Chofer,
		Celular:     f.Celular,
		RUT:         f.RUT,
		HoraSalida:  f.HoraSalida,
		HoraLlegada: f.HoraLlegada,

		NumWencos:                 f.NumWencos,
		Bin:                       f.Bin,
		Pallets:                   f.Pallets,
		PalletsChep:               f.PalletsChep,
		PalletsPlNegroGrueso:      f.PalletsPlNegroGrueso,
		PalletsPlNegroAlternativo: f.PalletsPlNegroAlternativo,
		PalletsCongelado:          f.PalletsCongelado,
		WencosCongelado:           f.WencosCongelado,
		PalletsRefrigerado:        f.PalletsRefrigerado,
		WencosRefrigerado:         f.WencosRefrigerado,
		PalletsAbarrote:           f.PalletsAbarrote,

		CheckCongelado:                marcar(f.CheckCongelado),
		CheckRefrigerado:              marcar(f.CheckRefrigerado),
		CheckAbarrote:                 marcar(f.CheckAbarrote),
		CheckImplementos:              marcar(f.CheckImplementos),
		CheckAseo:                     marcar(f.CheckAseo),
		CheckTrazabilidad:             marcar(f.CheckTrazabilidad),
		CheckPlataformaWTCK:           marcar(f.CheckPlataformaWTCK),
		CheckEnvCorreoWTCK:            marcar(f.CheckEnvCorreoWTCK),
		CheckRevisionPlanillaDespacho: marcar(f.CheckRevisionPlanillaDespacho),

		NumeroCertificadoFumigacion:    f.NumeroCertificadoFumigacion,
		RevisionLimpiezaCamionAcciones: f.RevisionLimpiezaCamionAcciones,
		AdministrativoResponsable:      f.AdministrativoResponsable,

		Comidas: f.Comidas.Serializar(),
	}
	for i := 1; i <= models.NumeroGuias; i++ {
		req.SetGuia(i, f.Guias[i-1])
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		req.SetSelloSalida(i, f.SellosSalida[i-1])
		req.SetSelloRetorno(i, f.SellosRetorno[i-1])
	}
	return req
}
