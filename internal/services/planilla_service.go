package services

import (
	"bytes"
	"fmt"
	"strings"

	"viajes/internal/domain"
	"viajes/internal/models"
	"viajes/internal/repositories"
	"viajes/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// PlanillaService genera la planilla de control de despacho en PDF, una
// pagina por centro de costo del viaje.
type PlanillaService struct {
	Viajes    repositories.ViajesRepository
	Comidas   repositories.ComidasRepository
	RequestID string
}

// GenerarPorViaje arma el PDF completo de un numero de viaje con una
// pagina por cada centro de costo donde existe.
func (s PlanillaService) GenerarPorViaje(numero string) ([]byte, string, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return nil, "", domain.ValidationError{Field: "numero_viaje", Msg: "es obligatorio"}
	}

	centros, err := s.Viajes.CentrosPorViaje(numero)
	if err != nil {
		return nil, "", err
	}
	if len(centros) == 0 {
		return nil, "", domain.NotFoundError{Resource: "viaje"}
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Planilla Control Despacho", false)
	pdf.SetMargins(8, 5, 8)
	pdf.SetAutoPageBreak(false, 5)

	for _, centro := range centros {
		viaje, err := s.Viajes.PorNumeroYCentro(numero, centro)
		if err != nil {
			return nil, "", err
		}
		comidas, err := s.Comidas.ListarPorViajeCentro(numero, centro)
		if err != nil {
			return nil, "", err
		}
		paginaPlanilla(pdf, viaje, comidas)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el PDF", Err: err}
	}

	utils.LogEvent(s.RequestID, "planilla", "generar",
		fmt.Sprintf("numero=%s paginas=%d", numero, len(centros)))
	filename := fmt.Sprintf("viaje_%s.pdf", numero)
	return buf.Bytes(), filename, nil
}

// GenerarPorViajeCentro arma el PDF de una sola pagina para un viaje en
// un centro de costo.
func (s PlanillaService) GenerarPorViajeCentro(numero, centro string) ([]byte, string, error) {
	numero = strings.TrimSpace(numero)
	centro = strings.TrimSpace(centro)
	if numero == "" || centro == "" {
		return nil, "", domain.ValidationError{Msg: "numero_viaje y centro_costo son obligatorios"}
	}

	viaje, err := s.Viajes.PorNumeroYCentro(numero, centro)
	if err != nil {
		return nil, "", err
	}
	comidas, err := s.Comidas.ListarPorViajeCentro(numero, centro)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Planilla Control Despacho", false)
	pdf.SetMargins(8, 5, 8)
	pdf.SetAutoPageBreak(false, 5)
	paginaPlanilla(pdf, viaje, comidas)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el PDF", Err: err}
	}

	utils.LogEvent(s.RequestID, "planilla", "generar_centro",
		fmt.Sprintf("numero=%s centro=%s", numero, centro))
	filename := fmt.Sprintf("viaje_%s_%s.pdf", numero, centro)
	return buf.Bytes(), filename, nil
}

// sinCero oculta contadores vacios o en cero, igual que la planilla
// impresa.
func sinCero(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "0" {
		return ""
	}
	return v
}

func paginaPlanilla(pdf *gofpdf.Fpdf, v models.Viaje, comidas []models.Comida) {
	pdf.AddPage()

	gris := func() { pdf.SetFillColor(208, 208, 208) }
	grisOscuro := func() { pdf.SetFillColor(128, 128, 128) }

	// Encabezado
	grisOscuro()
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(120, 8, "PLANILLA CONTROL DESPACHO", "1", 0, "C", true, 0, "")
	gris()
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(25, 8, "VIAJE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 8, v.NumeroViaje, "1", 1, "C", false, 0, "")
	pdf.Ln(1)

	// Info general, dos pares etiqueta/valor por fila
	filaInfo := func(et1, val1, et2, val2 string) {
		gris()
		pdf.SetFont("Helvetica", "B", 6)
		pdf.CellFormat(28, 5, et1, "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(94, 5, val1, "1", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "B", 6)
		pdf.CellFormat(28, 5, et2, "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(50, 5, val2, "1", 1, "C", false, 0, "")
	}
	filaInfo("CASINO", v.Casino, "C.COSTO", v.CostoCodigo)
	filaInfo("RUTA", v.Ruta, "PATENTE CAMION", v.PatenteCamion)
	filaInfo("FECHA", v.Fecha, "PATENTE SEMI", v.PatenteSemi)
	filaInfo("PESO", v.PesoCamion, "TIPO CAMION", v.TipoCamion)
	filaInfo("TERMOGRAFOS", v.TermografosGPS, "N DE RAMPLA", v.NumeroRampa)
	filaInfo("CONDUCTOR", v.Conductor, "N CAMION", v.NumeroCamion)
	filaInfo("RUT", v.RUT, "FECHA HORA LLEGADA", v.FechaHoraLlegadaDHL)
	filaInfo("CELULAR", v.Celular, "FECHA HORA SALIDA", v.FechaHoraSalidaDHL)
	pdf.Ln(1)

	// Activos salida y pallets por area
	grisOscuro()
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(133, 6, "ACTIVOS SALIDA", "1", 0, "C", true, 0, "")
	pdf.CellFormat(67, 6, "PALLETS POR AREA", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	filaActivos := func(et1, val1, et2, val2, et3, val3 string) {
		gris()
		pdf.SetFont("Helvetica", "B", 6.5)
		pdf.CellFormat(33, 7, et1, "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(33, 7, val1, "1", 0, "C", false, 0, "")
		gris()
		pdf.SetFont("Helvetica", "B", 6.5)
		pdf.CellFormat(33, 7, et2, "1", 0, "C", et2 != "", 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(34, 7, val2, "1", 0, "C", false, 0, "")
		gris()
		pdf.SetFont("Helvetica", "B", 6.5)
		pdf.CellFormat(33, 7, et3, "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(34, 7, val3, "1", 1, "C", false, 0, "")
	}
	filaActivos("N WENCOS", sinCero(string(v.NumWencos)), "BIN", sinCero(v.Bin), "REFRIGERADO", sinCero(string(v.PalletsRefrigerado)))
	filaActivos("PALLETS", sinCero(string(v.Pallets)), "PALLET NEGRO GRUESO", sinCero(v.PalletsPlNegroGrueso), "CONGELADO", sinCero(string(v.PalletsCongelado)))
	filaActivos("PALLET CHEP", sinCero(string(v.PalletsChep)), "PALLET NEGRO ALTER.", sinCero(v.PalletsPlNegroAlternativo), "ABARROTE", sinCero(string(v.PalletsAbarrote)))
	filaActivos("ADMIN. RESPONSABLE", v.AdministrativoResponsable, "", "", "WENCOS CONGELADO", sinCero(string(v.WencosCongelado)))
	filaActivos("REVISION LIMPIEZA", v.RevisionLimpiezaCamionAcciones, "", "", "WENCOS REFRIGERADO", sinCero(string(v.WencosRefrigerado)))
	pdf.Ln(1)

	// Checklist en una sola fila
	marca := func(m models.Marca) string {
		if m.Activa() {
			return "x"
		}
		return ""
	}
	checks := []struct {
		etiqueta string
		valor    string
	}{
		{"CONG.", marca(v.CheckCongelado)},
		{"REFRIG.", marca(v.CheckRefrigerado)},
		{"ABARR.", marca(v.CheckAbarrote)},
		{"IMPLEM.", marca(v.CheckImplementos)},
		{"ASEO", marca(v.CheckAseo)},
		{"TRAZ.", marca(v.CheckTrazabilidad)},
		{"PLAT. WTCK", marca(v.CheckPlataformaWTCK)},
		{"ENV. WTCK", marca(v.CheckEnvCorreoWTCK)},
		{"REV. PLANILLA", marca(v.CheckRevisionPlanillaDespacho)},
	}
	pdf.SetFont("Helvetica", "B", 6)
	for i, ch := range checks {
		salto := 0
		if i == len(checks)-1 {
			salto = 1
		}
		gris()
		pdf.CellFormat(16, 7, ch.etiqueta, "1", 0, "C", true, 0, "")
		pdf.CellFormat(6, 7, ch.valor, "1", salto, "C", false, 0, "")
	}
	pdf.Ln(1)

	// Sellos de salida y entrada
	pdf.SetFont("Helvetica", "B", 7)
	gris()
	pdf.CellFormat(33, 5, "SELLOS", "1", 0, "C", true, 0, "")
	for i := 1; i <= models.NumeroSellos; i++ {
		salto := 0
		if i == models.NumeroSellos {
			salto = 1
		}
		pdf.CellFormat(33, 5, fmt.Sprintf("%dP", i), "1", salto, "C", true, 0, "")
	}
	gris()
	pdf.CellFormat(33, 5, "SALIDA", "1", 0, "C", true, 0, "")
	for i := 1; i <= models.NumeroSellos; i++ {
		salto := 0
		if i == models.NumeroSellos {
			salto = 1
		}
		pdf.CellFormat(33, 5, v.SelloSalida(i), "1", salto, "C", false, 0, "")
	}
	gris()
	pdf.CellFormat(33, 5, "ENTRADA", "1", 0, "C", true, 0, "")
	for i := 1; i <= models.NumeroSellos; i++ {
		salto := 0
		if i == models.NumeroSellos {
			salto = 1
		}
		pdf.CellFormat(33, 5, v.SelloRetorno(i), "1", salto, "C", false, 0, "")
	}
	pdf.Ln(1)

	// Guias de despacho en tres columnas de siete
	grisOscuro()
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(198, 6, "GUIAS DE DESPACHO", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 7)
	for fila := 0; fila < 7; fila++ {
		for col := 0; col < 3; col++ {
			n := col*7 + fila + 1
			salto := 0
			if col == 2 {
				salto = 1
			}
			gris()
			pdf.CellFormat(14, 5, fmt.Sprintf("G%d", n), "1", 0, "C", true, 0, "")
			pdf.CellFormat(52, 5, v.Guia(n), "1", salto, "C", false, 0, "")
		}
	}
	pdf.Ln(1)

	// Comidas preparadas
	grisOscuro()
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(198, 6, "COMIDAS PREPARADAS", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	gris()
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(30, 5, "GUIA", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 5, "PROVEEDOR", "1", 0, "C", true, 0, "")
	pdf.CellFormat(83, 5, "DESCRIPCION", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 5, "KILO", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 5, "BULTOS", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, c := range comidas {
		pdf.CellFormat(30, 5, c.GuiaComida, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 5, c.Proveedor, "1", 0, "C", false, 0, "")
		pdf.CellFormat(83, 5, c.Descripcion, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 5, sinCero(fmt.Sprintf("%g", c.Kilo)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 5, sinCero(fmt.Sprintf("%d", c.Bultos)), "1", 1, "C", false, 0, "")
	}

	// Certificado de fumigacion al pie
	if strings.TrimSpace(v.NumeroCertificadoFumigacion) != "" {
		pdf.Ln(1)
		gris()
		pdf.SetFont("Helvetica", "B", 6.5)
		pdf.CellFormat(50, 5, "CERT. FUMIGACION", "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(148, 5, v.NumeroCertificadoFumigacion, "1", 1, "C", false, 0, "")
	}
}
