package models

// ActualizarViajeRequest es el payload de POST /api/actualizar-viaje.
// Replica el formulario del editor campo por campo: todos los valores van
// como texto (los checks como "X" o ""), y las claves de conductor y
// horarios difieren de las columnas (chofer, hora_salida, hora_llegada).
type ActualizarViajeRequest struct {
	NumeroViaje string `json:"numero_viaje"`
	CentroCosto string `json:"centro_costo"`

	Fecha  string `json:"fecha"`
	Casino string `json:"casino"`
	Ruta   string `json:"ruta"`

	TipoCamion     string `json:"tipo_camion"`
	PatenteCamion  string `json:"patente_camion"`
	PatenteSemi    string `json:"patente_semi"`
	NumeroRampa    string `json:"numero_rampa"`
	PesoCamion     string `json:"peso_camion"`
	NumeroCamion   string `json:"numero_camion"`
	TermografosGPS string `json:"termografos_gps"`

	Chofer  string `json:"chofer"`
	Celular string `json:"celular"`
	RUT     string `json:"rut"`

	HoraSalida  string `json:"hora_salida"`
	HoraLlegada string `json:"hora_llegada"`

	NumWencos                 string `json:"num_wencos"`
	Bin                       string `json:"bin"`
	Pallets                   string `json:"pallets"`
	PalletsChep               string `json:"pallets_chep"`
	PalletsPlNegroGrueso      string `json:"pallets_pl_negro_grueso"`
	PalletsPlNegroAlternativo string `json:"pallets_pl_negro_alternativo"`
	PalletsCongelado          string `json:"pallets_congelado"`
	WencosCongelado           string `json:"wencos_congelado"`
	PalletsRefrigerado        string `json:"pallets_refrigerado"`
	WencosRefrigerado         string `json:"wencos_refrigerado"`
	PalletsAbarrote           string `json:"pallets_abarrote"`

	CheckCongelado                string `json:"check_congelado"`
	CheckRefrigerado              string `json:"check_refrigerado"`
	CheckAbarrote                 string `json:"check_abarrote"`
	CheckImplementos              string `json:"check_implementos"`
	CheckAseo                     string `json:"check_aseo"`
	CheckTrazabilidad             string `json:"check_trazabilidad"`
	CheckPlataformaWTCK           string `json:"check_plataforma_wtck"`
	CheckEnvCorreoWTCK            string `json:"check_env_correo_wtck"`
	CheckRevisionPlanillaDespacho string `json:"check_revision_planilla_despacho"`

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

	Comidas []Comida `json:"comidas"`
}

func (r *ActualizarViajeRequest) guiaPtrs() []*string {
	return []*string{
		&r.Guia1, &r.Guia2, &r.Guia3, &r.Guia4, &r.Guia5, &r.Guia6, &r.Guia7,
		&r.Guia8, &r.Guia9, &r.Guia10, &r.Guia11, &r.Guia12, &r.Guia13, &r.Guia14,
		&r.Guia15, &r.Guia16, &r.Guia17, &r.Guia18, &r.Guia19, &r.Guia20, &r.Guia21,
	}
}

func (r *ActualizarViajeRequest) SetGuia(i int, valor string) {
	if i < 1 || i > NumeroGuias {
		return
	}
	*r.guiaPtrs()[i-1] = valor
}

func (r *ActualizarViajeRequest) Guia(i int) string {
	if i < 1 || i > NumeroGuias {
		return ""
	}
	return *r.guiaPtrs()[i-1]
}

func (r *ActualizarViajeRequest) SetSelloSalida(i int, valor string) {
	ptrs := []*string{&r.SelloSalida1P, &r.SelloSalida2P, &r.SelloSalida3P, &r.SelloSalida4P, &r.SelloSalida5P}
	if i >= 1 && i <= NumeroSellos {
		*ptrs[i-1] = valor
	}
}

func (r *ActualizarViajeRequest) SetSelloRetorno(i int, valor string) {
	ptrs := []*string{&r.SelloRetorno1P, &r.SelloRetorno2P, &r.SelloRetorno3P, &r.SelloRetorno4P, &r.SelloRetorno5P}
	if i >= 1 && i <= NumeroSellos {
		*ptrs[i-1] = valor
	}
}

// AViaje traduce el payload del formulario al registro de la tabla viajes.
func (r *ActualizarViajeRequest) AViaje() Viaje {
	v := Viaje{
		NumeroViaje:               r.NumeroViaje,
		CostoCodigo:               r.CentroCosto,
		Fecha:                     r.Fecha,
		Casino:                    r.Casino,
		Ruta:                      r.Ruta,
		TipoCamion:                r.TipoCamion,
		PatenteCamion:             r.PatenteCamion,
		PatenteSemi:               r.PatenteSemi,
		NumeroRampa:               r.NumeroRampa,
		PesoCamion:                r.PesoCamion,
		NumeroCamion:              r.NumeroCamion,
		TermografosGPS:            r.TermografosGPS,
		Conductor:                 r.Chofer,
		Celular:                   r.Celular,
		RUT:                       r.RUT,
		FechaHoraSalidaDHL:        r.HoraSalida,
		FechaHoraLlegadaDHL:       r.HoraLlegada,
		NumWencos:                 Texto(r.NumWencos),
		Bin:                       r.Bin,
		Pallets:                   Texto(r.Pallets),
		PalletsChep:               Texto(r.PalletsChep),
		PalletsPlNegroGrueso:      r.PalletsPlNegroGrueso,
		PalletsPlNegroAlternativo: r.PalletsPlNegroAlternativo,
		PalletsCongelado:          Texto(r.PalletsCongelado),
		WencosCongelado:           Texto(r.WencosCongelado),
		PalletsRefrigerado:        Texto(r.PalletsRefrigerado),
		WencosRefrigerado:         Texto(r.WencosRefrigerado),
		PalletsAbarrote:           Texto(r.PalletsAbarrote),

		CheckCongelado:                Marca(r.CheckCongelado),
		CheckRefrigerado:              Marca(r.CheckRefrigerado),
		CheckAbarrote:                 Marca(r.CheckAbarrote),
		CheckImplementos:              Marca(r.CheckImplementos),
		CheckAseo:                     Marca(r.CheckAseo),
		CheckTrazabilidad:             Marca(r.CheckTrazabilidad),
		CheckPlataformaWTCK:           Marca(r.CheckPlataformaWTCK),
		CheckEnvCorreoWTCK:            Marca(r.CheckEnvCorreoWTCK),
		CheckRevisionPlanillaDespacho: Marca(r.CheckRevisionPlanillaDespacho),

		NumeroCertificadoFumigacion:    r.NumeroCertificadoFumigacion,
		RevisionLimpiezaCamionAcciones: r.RevisionLimpiezaCamionAcciones,
		AdministrativoResponsable:      r.AdministrativoResponsable,
	}
	for i := 1; i <= NumeroGuias; i++ {
		v.SetGuia(i, r.Guia(i))
	}
	v.SelloSalida1P, v.SelloSalida2P, v.SelloSalida3P, v.SelloSalida4P, v.SelloSalida5P =
		r.SelloSalida1P, r.SelloSalida2P, r.SelloSalida3P, r.SelloSalida4P, r.SelloSalida5P
	v.SelloRetorno1P, v.SelloRetorno2P, v.SelloRetorno3P, v.SelloRetorno4P, v.SelloRetorno5P =
		r.SelloRetorno1P, r.SelloRetorno2P, r.SelloRetorno3P, r.SelloRetorno4P, r.SelloRetorno5P
	return v
}
