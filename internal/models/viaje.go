package models

// Viaje es el registro plano de un viaje tal como viaja por la API y se
// guarda en la tabla viajes. Un mismo numero_viaje puede existir una vez
// por centro de costo (costo_codigo).
type Viaje struct {
	ID          int64  `json:"id,omitempty"`
	NumeroViaje string `json:"numero_viaje"`
	CostoCodigo string `json:"costo_codigo"`
	Fecha       string `json:"fecha"`
	Casino      string `json:"casino"`
	Ruta        string `json:"ruta"`

	TipoCamion     string `json:"tipo_camion"`
	PatenteCamion  string `json:"patente_camion"`
	PatenteSemi    string `json:"patente_semi"`
	NumeroRampa    string `json:"numero_rampa"`
	PesoCamion     string `json:"peso_camion"`
	NumeroCamion   string `json:"numero_camion"`
	TermografosGPS string `json:"termografos_gps"`

	Conductor string `json:"conductor"`
	Celular   string `json:"celular"`
	RUT       string `json:"rut"`

	FechaHoraLlegadaDHL string `json:"fecha_hora_llegada_dhl"`
	FechaHoraSalidaDHL  string `json:"fecha_hora_salida_dhl"`

	NumWencos                 Texto  `json:"num_wencos"`
	Bin                       string `json:"bin"`
	Pallets                   Texto  `json:"pallets"`
	PalletsChep               Texto  `json:"pallets_chep"`
	PalletsPlNegroGrueso      string `json:"pallets_pl_negro_grueso"`
	PalletsPlNegroAlternativo string `json:"pallets_pl_negro_alternativo"`
	PalletsCongelado          Texto  `json:"pallets_congelado"`
	WencosCongelado           Texto  `json:"wencos_congelado"`
	PalletsRefrigerado        Texto  `json:"pallets_refrigerado"`
	WencosRefrigerado         Texto  `json:"wencos_refrigerado"`
	PalletsAbarrote           Texto  `json:"pallets_abarrote"`

	CheckCongelado                Marca `json:"check_congelado"`
	CheckRefrigerado              Marca `json:"check_refrigerado"`
	CheckAbarrote                 Marca `json:"check_abarrote"`
	CheckImplementos              Marca `json:"check_implementos"`
	CheckAseo                     Marca `json:"check_aseo"`
	CheckTrazabilidad             Marca `json:"check_trazabilidad"`
	CheckPlataformaWTCK           Marca `json:"check_plataforma_wtck"`
	CheckEnvCorreoWTCK            Marca `json:"check_env_correo_wtck"`
	CheckRevisionPlanillaDespacho Marca `json:"check_revision_planilla_despacho"`

	Guia1  string `json:"guia_1"`
	Guia2  string `json:"guia_2"`
	Guia3  string `json:"guia_3"`
	Guia4  string `json:"guia_4"`
	Guia5  string `json:"guia_5"`
	Guia6  string `json:"guia_6"`
	Guia7  string `json:"guia_7"`
	Guia8  string `json:"guia_8"`
	Guia9  string `json:"guia_9"`
	Guia10 string `json:"guia_10"`
	Guia11 string `json:"guia_11"`
	Guia12 string `json:"guia_12"`
	Guia13 string `json:"guia_13"`
	Guia14 string `json:"guia_14"`
	Guia15 string `json:"guia_15"`
	Guia16 string `json:"guia_16"`
	Guia17 string `json:"guia_17"`
	Guia18 string `json:"guia_18"`
	Guia19 string `json:"guia_19"`
	Guia20 string `json:"guia_20"`
	Guia21 string `json:"guia_21"`

	SelloSalida1P  string `json:"sello_salida_1p"`
	SelloSalida2P  string `json:"sello_salida_2p"`
	SelloSalida3P  string `json:"sello_salida_3p"`
	SelloSalida4P  string `json:"sello_salida_4p"`
	SelloSalida5P  string `json:"sello_salida_5p"`
	SelloRetorno1P string `json:"sello_retorno_1p"`
	SelloRetorno2P string `json:"sello_retorno_2p"`
	SelloRetorno3P string `json:"sello_retorno_3p"`
	SelloRetorno4P string `json:"sello_retorno_4p"`
	SelloRetorno5P string `json:"sello_retorno_5p"`

	NumeroCertificadoFumigacion    string `json:"numero_certificado_fumigacion"`
	RevisionLimpiezaCamionAcciones string `json:"revision_limpieza_camion_acciones"`
	AdministrativoResponsable      string `json:"administrativo_responsable"`
}

// Rangos fijos de casillas numeradas de la planilla
// (guia_1..guia_21, sello_salida_1p..5p, sello_retorno_1p..5p).
const (
	NumeroGuias  = 21
	NumeroSellos = 5
)

func (v *Viaje) guiaPtrs() []*string {
	return []*string{
		&v.Guia1, &v.Guia2, &v.Guia3, &v.Guia4, &v.Guia5, &v.Guia6, &v.Guia7,
		&v.Guia8, &v.Guia9, &v.Guia10, &v.Guia11, &v.Guia12, &v.Guia13, &v.Guia14,
		&v.Guia15, &v.Guia16, &v.Guia17, &v.Guia18, &v.Guia19, &v.Guia20, &v.Guia21,
	}
}

func (v *Viaje) selloSalidaPtrs() []*string {
	return []*string{&v.SelloSalida1P, &v.SelloSalida2P, &v.SelloSalida3P, &v.SelloSalida4P, &v.SelloSalida5P}
}

func (v *Viaje) selloRetornoPtrs() []*string {
	return []*string{&v.SelloRetorno1P, &v.SelloRetorno2P, &v.SelloRetorno3P, &v.SelloRetorno4P, &v.SelloRetorno5P}
}

// Guia devuelve la casilla i (1..21); fuera de rango devuelve "".
func (v *Viaje) Guia(i int) string {
	if i < 1 || i > NumeroGuias {
		return ""
	}
	return *v.guiaPtrs()[i-1]
}

func (v *Viaje) SetGuia(i int, valor string) {
	if i < 1 || i > NumeroGuias {
		return
	}
	*v.guiaPtrs()[i-1] = valor
}

// SelloSalida devuelve el sello de salida i (1..5).
func (v *Viaje) SelloSalida(i int) string {
	if i < 1 || i > NumeroSellos {
		return ""
	}
	return *v.selloSalidaPtrs()[i-1]
}

func (v *Viaje) SetSelloSalida(i int, valor string) {
	if i < 1 || i > NumeroSellos {
		return
	}
	*v.selloSalidaPtrs()[i-1] = valor
}

// SelloRetorno devuelve el sello de retorno i (1..5).
func (v *Viaje) SelloRetorno(i int) string {
	if i < 1 || i > NumeroSellos {
		return ""
	}
	return *v.selloRetornoPtrs()[i-1]
}

func (v *Viaje) SetSelloRetorno(i int, valor string) {
	if i < 1 || i > NumeroSellos {
		return
	}
	*v.selloRetornoPtrs()[i-1] = valor
}

// Comida es una línea de comidas preparadas / implementos asociada a un
// viaje y centro de costo.
type Comida struct {
	ID                int64   `json:"id,omitempty"`
	NumeroViaje       string  `json:"numero_viaje,omitempty"`
	NumeroCentroCosto string  `json:"numero_centro_costo,omitempty"`
	GuiaComida        string  `json:"guia_comida"`
	Proveedor         string  `json:"proveedor"`
	Descripcion       string  `json:"descripcion"`
	Kilo              float64 `json:"kilo"`
	Bultos            int     `json:"bultos"`
}

// CentroCosto es un candidato de desambiguación: un viaje puede existir en
// varios centros hasta que el operador elige uno.
type CentroCosto struct {
	Codigo string `json:"codigo"`
	Casino string `json:"casino"`
	Ruta   string `json:"ruta,omitempty"`
}

// Chofer y Administrativo son registros de maestras.
type Chofer struct {
	ID       int64  `json:"id,omitempty"`
	Nombre   string `json:"nombre"`
	RUT      string `json:"rut"`
	Telefono string `json:"telefono"`
}

type Administrativo struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}
