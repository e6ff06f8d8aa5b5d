package editor

import (
	"fmt"
	"html/template"
	"strings"

	"viajes/internal/models"
)

type campoRender struct {
	ID       string
	Etiqueta string
	Valor    string
}

type checkRender struct {
	ID       string
	Etiqueta string
	Activo   bool
}

type slotRender struct {
	N     int
	Valor string
}

type comidaRender struct {
	Slot    int
	Ordinal int
	Fila    ComidaFila
}

type formularioRender struct {
	NumeroViaje string
	CentroCosto string

	Generales       []campoRender
	Transporte      []campoRender
	Conductor       []campoRender
	Activos         []campoRender
	Checks          []checkRender
	Guias           []slotRender
	SellosSalida    []slotRender
	SellosRetorno   []slotRender
	Cierre          []campoRender
	Comidas         []comidaRender

	Administrativos           []string
	AdministrativoResponsable string
}

var plantillaFormulario = template.Must(template.New("formulario").Parse(`
<form id="formEditar">
  <input type="hidden" id="edit_numero_viaje" value="{{.NumeroViaje}}">
  <input type="hidden" id="edit_centro_costo" value="{{.CentroCosto}}">
  {{range .Generales}}<div class="campo"><label for="{{.ID}}">{{.Etiqueta}}</label><input type="text" id="{{.ID}}" value="{{.Valor}}"></div>
  {{end}}{{range .Transporte}}<div class="campo"><label for="{{.ID}}">{{.Etiqueta}}</label><input type="text" id="{{.ID}}" value="{{.Valor}}"></div>
  {{end}}{{range .Conductor}}<div class="campo"><label for="{{.ID}}">{{.Etiqueta}}</label><input type="text" id="{{.ID}}" value="{{.Valor}}"></div>
  {{end}}{{range .Activos}}<div class="campo"><label for="{{.ID}}">{{.Etiqueta}}</label><input type="text" id="{{.ID}}" value="{{.Valor}}"></div>
  {{end}}<div class="checks">
  {{range .Checks}}<label><input type="checkbox" id="{{.ID}}"{{if .Activo}} checked{{end}}> {{.Etiqueta}}</label>
  {{end}}</div>
  <div class="guias">
  {{range .Guias}}<div class="campo"><label for="edit_guia_{{.N}}">Guía {{.N}}</label><input type="text" id="edit_guia_{{.N}}" value="{{.Valor}}"></div>
  {{end}}</div>
  <div class="sellos">
  {{range .SellosSalida}}<div class="campo"><label for="edit_sello_salida_{{.N}}p">Sello salida {{.N}}P</label><input type="text" id="edit_sello_salida_{{.N}}p" value="{{.Valor}}"></div>
  {{end}}{{range .SellosRetorno}}<div class="campo"><label for="edit_sello_retorno_{{.N}}p">Sello retorno {{.N}}P</label><input type="text" id="edit_sello_retorno_{{.N}}p" value="{{.Valor}}"></div>
  {{end}}</div>
  <div id="edit-comidas-container">
  {{range .Comidas}}<div class="comida-item-edit" id="comida-edit-{{.Slot}}">
    <span class="comida-numero">#{{.Ordinal}}</span>
    <input type="text" class="comida_guia" value="{{.Fila.Guia}}">
    <input type="text" class="comida_proveedor" value="{{.Fila.Proveedor}}">
    <input type="text" class="comida_descripcion" value="{{.Fila.Descripcion}}">
    <input type="number" class="comida_kilo" value="{{.Fila.Kilo}}" step="0.01" min="0">
    <input type="number" class="comida_bultos" value="{{.Fila.Bultos}}" min="0">
  </div>
  {{end}}</div>
  {{range .Cierre}}<div class="campo"><label for="{{.ID}}">{{.Etiqueta}}</label><input type="text" id="{{.ID}}" value="{{.Valor}}"></div>
  {{end}}<select id="edit_administrativo_responsable">
  <option value="">Seleccione un administrativo...</option>
  {{range .Administrativos}}<option value="{{.}}"{{if eq . $.AdministrativoResponsable}} selected{{end}}>{{.}}</option>
  {{end}}</select>
</form>
`))

var plantillaCentros = template.Must(template.New("centros").Parse(`
<div id="centros-costo">
{{range .}}<button type="button" class="centro-costo" data-codigo="{{.Codigo}}">{{.Codigo}} - {{.Casino}}{{if .Ruta}} ({{.Ruta}}){{end}}</button>
{{end}}</div>
`))

// RenderFormulario arma el markup del paso de edicion a partir del
// estado en memoria. Los checks salen marcados solo con marca activa y
// las comidas llevan su ordinal visible y su slot como identidad.
func (s *Sesion) RenderFormulario() (string, error) {
	f := &s.Formulario
	data := formularioRender{
		NumeroViaje: f.NumeroViaje,
		CentroCosto: f.CentroCosto,
		Generales: []campoRender{
			{"edit_fecha", "Fecha", f.Fecha},
			{"edit_casino", "Casino", f.Casino},
			{"edit_ruta", "Ruta", f.Ruta},
		},
		Transporte: []campoRender{
			{"edit_tipo_camion", "Tipo camión", f.TipoCamion},
			{"edit_patente_camion", "Patente camión", f.PatenteCamion},
			{"edit_patente_semi", "Patente semi", f.PatenteSemi},
			{"edit_numero_rampa", "N° rampla", f.NumeroRampa},
			{"edit_peso_camion", "Peso camión", f.PesoCamion},
			{"edit_numero_camion", "N° camión", f.NumeroCamion},
			{"edit_termografos_gps", "Termógrafos GPS", f.TermografosGPS},
		},
		Conductor: []campoRender{
			{"edit_chofer", "Chofer", f.Chofer},
			{"edit_celular", "Celular", f.Celular},
			{"edit_rut", "RUT", f.RUT},
			{"edit_hora_salida", "Fecha hora salida", f.HoraSalida},
			{"edit_hora_llegada", "Fecha hora llegada", f.HoraLlegada},
		},
		Activos: []campoRender{
			{"edit_num_wencos", "N° wencos", f.NumWencos},
			{"edit_bin", "Bin", f.Bin},
			{"edit_pallets", "Pallets", f.Pallets},
			{"edit_pallets_chep", "Pallets CHEP", f.PalletsChep},
			{"edit_pallets_pl_negro_grueso", "Pallet negro grueso", f.PalletsPlNegroGrueso},
			{"edit_pallets_pl_negro_alternativo", "Pallet negro alternativo", f.PalletsPlNegroAlternativo},
			{"edit_pallets_congelado", "Pallets congelado", f.PalletsCongelado},
			{"edit_wencos_congelado", "Wencos congelado", f.WencosCongelado},
			{"edit_pallets_refrigerado", "Pallets refrigerado", f.PalletsRefrigerado},
			{"edit_wencos_refrigerado", "Wencos refrigerado", f.WencosRefrigerado},
			{"edit_pallets_abarrote", "Pallets abarrote", f.PalletsAbarrote},
		},
		Checks: []checkRender{
			{"edit_check_congelado", "Congelado", f.CheckCongelado},
			{"edit_check_refrigerado", "Refrigerado", f.CheckRefrigerado},
			{"edit_check_abarrote", "Abarrote", f.CheckAbarrote},
			{"edit_check_implementos", "Implementos", f.CheckImplementos},
			{"edit_check_aseo", "Aseo", f.CheckAseo},
			{"edit_check_trazabilidad", "Trazabilidad", f.CheckTrazabilidad},
			{"edit_check_plataforma_wtck", "Plataforma WTCK", f.CheckPlataformaWTCK},
			{"edit_check_env_correo_wtck", "Envío correo WTCK", f.CheckEnvCorreoWTCK},
			{"edit_check_revision_planilla_despacho", "Revisión planilla despacho", f.CheckRevisionPlanillaDespacho},
		},
		Cierre: []campoRender{
			{"edit_numero_certificado_fumigacion", "N° certificado fumigación", f.NumeroCertificadoFumigacion},
			{"edit_revision_limpieza_camion_acciones", "Revisión limpieza camión", f.RevisionLimpiezaCamionAcciones},
		},
		Administrativos:           s.Administrativos,
		AdministrativoResponsable: f.AdministrativoResponsable,
	}

	for i := 1; i <= models.NumeroGuias; i++ {
		data.Guias = append(data.Guias, slotRender{N: i, Valor: f.Guias[i-1]})
	}
	for i := 1; i <= models.NumeroSellos; i++ {
		data.SellosSalida = append(data.SellosSalida, slotRender{N: i, Valor: f.SellosSalida[i-1]})
		data.SellosRetorno = append(data.SellosRetorno, slotRender{N: i, Valor: f.SellosRetorno[i-1]})
	}
	for i, fila := range f.Comidas.Filas() {
		data.Comidas = append(data.Comidas, comidaRender{Slot: fila.Slot, Ordinal: i + 1, Fila: fila})
	}

	var b strings.Builder
	if err := plantillaFormulario.Execute(&b, data); err != nil {
		return "", fmt.Errorf("renderizando formulario: %w", err)
	}
	return b.String(), nil
}

// RenderCentros arma los botones del paso de seleccion de centro de
// costo.
func (s *Sesion) RenderCentros() (string, error) {
	var b strings.Builder
	if err := plantillaCentros.Execute(&b, s.Centros); err != nil {
		return "", fmt.Errorf("renderizando centros: %w", err)
	}
	return b.String(), nil
}
