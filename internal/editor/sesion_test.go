package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"viajes/internal/models"
)

// apiFalsa registra las llamadas y devuelve respuestas predefinidas.
type apiFalsa struct {
	llamadasCentros int
	centros         []models.CentroCosto
	crudo           string
	errCentros      error

	llamadasViaje int
	viaje         models.Viaje
	comidas       []models.Comida
	errViaje      error

	actualizado   *models.ActualizarViajeRequest
	errActualizar error

	eliminados  []string
	errEliminar error

	administrativos []string
	errAdmin        error
}

func (a *apiFalsa) BuscarCentrosCosto(_ context.Context, numero string) ([]models.CentroCosto, string, error) {
	a.llamadasCentros++
	return a.centros, a.crudo, a.errCentros
}

func (a *apiFalsa) BuscarViaje(_ context.Context, numero, centro string) (models.Viaje, []models.Comida, error) {
	a.llamadasViaje++
	return a.viaje, a.comidas, a.errViaje
}

func (a *apiFalsa) ActualizarViaje(_ context.Context, req models.ActualizarViajeRequest) (string, error) {
	a.actualizado = &req
	return "", a.errActualizar
}

func (a *apiFalsa) EliminarViaje(_ context.Context, numero, centro string) (string, error) {
	a.eliminados = append(a.eliminados, numero+"/"+centro)
	return "", a.errEliminar
}

func (a *apiFalsa) ListarAdministrativos(_ context.Context) ([]string, error) {
	return a.administrativos, a.errAdmin
}

func TestBusquedaVaciaNoLlamaLaRed(t *testing.T) {
	api := &apiFalsa{}
	s := NuevaSesion(api)

	s.BuscarPorNumero(context.Background(), "   ")

	if api.llamadasCentros != 0 {
		t.Fatalf("una busqueda vacia no debe llamar la red")
	}
	if s.MensajeBusqueda != "Ingresa un número de viaje" {
		t.Fatalf("mensaje inesperado: %q", s.MensajeBusqueda)
	}
}

func TestBusquedaConResultadosMuestraCentros(t *testing.T) {
	api := &apiFalsa{
		centros: []models.CentroCosto{
			{Codigo: "5001", Casino: "Casino Norte"},
			{Codigo: "5002", Casino: "Sin casino"},
		},
	}
	s := NuevaSesion(api)

	s.BuscarPorNumero(context.Background(), "V-77")

	if !s.VerCentros || s.VerFormulario {
		t.Fatalf("debe mostrarse solo el paso de centros: centros=%v form=%v", s.VerCentros, s.VerFormulario)
	}
	if s.MensajeBusqueda != "Se encontraron 2 centro(s) de costo" {
		t.Fatalf("mensaje inesperado: %q", s.MensajeBusqueda)
	}

	html, err := s.RenderCentros()
	if err != nil {
		t.Fatalf("render de centros fallo: %v", err)
	}
	if !strings.Contains(html, "5001 - Casino Norte") || !strings.Contains(html, "5002 - Sin casino") {
		t.Fatalf("los centros deben rotularse codigo - casino:\n%s", html)
	}
}

func TestBusquedaSinResultadosOcultaPasosYDiagnostica(t *testing.T) {
	api := &apiFalsa{centros: nil, crudo: "[]"}
	s := NuevaSesion(api)
	s.VerCentros = true
	s.VerFormulario = true

	s.BuscarPorNumero(context.Background(), "V-404")

	if s.VerCentros || s.VerFormulario {
		t.Fatalf("sin resultados deben ocultarse ambos pasos")
	}
	if !strings.Contains(s.MensajeBusqueda, "No se encontraron registros para el viaje V-404") {
		t.Fatalf("el diagnostico debe incluir el numero: %q", s.MensajeBusqueda)
	}
	if !strings.Contains(s.MensajeBusqueda, "Respuesta: []") {
		t.Fatalf("el diagnostico debe incluir la respuesta cruda: %q", s.MensajeBusqueda)
	}
}

func TestBusquedaConErrorDeRed(t *testing.T) {
	api := &apiFalsa{errCentros: errors.New("Error HTTP: 500")}
	s := NuevaSesion(api)

	s.BuscarPorNumero(context.Background(), "V-1")

	if s.VerCentros || s.VerFormulario {
		t.Fatalf("con error de red deben ocultarse ambos pasos")
	}
	if !strings.Contains(s.MensajeBusqueda, "Error al buscar viaje") {
		t.Fatalf("mensaje inesperado: %q", s.MensajeBusqueda)
	}
}

func TestSeleccionarCentroCargaElFormulario(t *testing.T) {
	viaje := models.Viaje{
		NumeroViaje:    "V-9",
		CostoCodigo:    "5001",
		Conductor:      "Maria Perez",
		CheckCongelado: "x",
	}
	api := &apiFalsa{viaje: viaje, comidas: []models.Comida{}}
	s := NuevaSesion(api)
	s.NumeroBuscado = "V-9"
	s.VerCentros = true

	s.SeleccionarCentro(context.Background(), "5001")

	if !s.VerFormulario || s.VerCentros {
		t.Fatalf("debe mostrarse solo el formulario")
	}
	if s.Formulario.Chofer != "Maria Perez" {
		t.Fatalf("conductor debe cargar en chofer, quedo %q", s.Formulario.Chofer)
	}
	if !s.Formulario.CheckCongelado {
		t.Fatalf("la marca x minuscula debe encender el check")
	}
	if s.Formulario.Comidas.Cantidad() != 0 {
		t.Fatalf("un viaje sin comidas debe cargar con 0 filas")
	}
}

func TestSeleccionarCentroVacioNoLlamaLaRed(t *testing.T) {
	api := &apiFalsa{}
	s := NuevaSesion(api)
	s.NumeroBuscado = "V-9"
	s.VerFormulario = true

	s.SeleccionarCentro(context.Background(), "   ")

	if api.llamadasViaje != 0 {
		t.Fatalf("sin centro elegido no debe llamarse la red")
	}
	if s.VerFormulario {
		t.Fatalf("sin centro elegido el formulario debe ocultarse")
	}
}

func TestGuardarExitosoMarcaRecarga(t *testing.T) {
	api := &apiFalsa{}
	s := NuevaSesion(api)
	s.Formulario.NumeroViaje = "V-9"
	s.Formulario.CentroCosto = "5001"
	s.Formulario.CheckAseo = true

	s.Guardar(context.Background())

	if api.actualizado == nil {
		t.Fatalf("no se envio la actualizacion")
	}
	if api.actualizado.CheckAseo != "X" {
		t.Fatalf("el check marcado debe viajar como X, viajo %q", api.actualizado.CheckAseo)
	}
	if !s.Dialogos.InfoVisible || s.Dialogos.Tipo != DialogoExito {
		t.Fatalf("debe abrirse el modal de exito")
	}
	if !s.Dialogos.CerrarInfo() {
		t.Fatalf("cerrar el modal de exito debe recargar la pagina")
	}
}

func TestGuardarRechazadoNoRecarga(t *testing.T) {
	api := &apiFalsa{errActualizar: ErrorDeclarado{Mensaje: "Viaje no encontrado"}}
	s := NuevaSesion(api)
	s.Formulario.NumeroViaje = "V-9"
	s.Formulario.CentroCosto = "5001"

	s.Guardar(context.Background())

	if s.Dialogos.Tipo != DialogoError {
		t.Fatalf("un rechazo debe abrir el modal de error")
	}
	if s.Dialogos.Mensaje != "Viaje no encontrado" {
		t.Fatalf("debe mostrarse el mensaje declarado, mostro %q", s.Dialogos.Mensaje)
	}
	if s.Dialogos.CerrarInfo() {
		t.Fatalf("cerrar un modal de error nunca recarga")
	}
}

func TestGuardarConCaidaDeRed(t *testing.T) {
	api := &apiFalsa{errActualizar: errors.New("connection refused")}
	s := NuevaSesion(api)

	s.Guardar(context.Background())

	if s.Dialogos.Titulo != "ERROR DE CONEXIÓN" {
		t.Fatalf("una caida de transporte debe abrir el modal de conexion, abrio %q", s.Dialogos.Titulo)
	}
	if s.Dialogos.CerrarInfo() {
		t.Fatalf("el error de conexion no debe recargar")
	}
}

func TestEliminarComidaSinConfirmarNoMuta(t *testing.T) {
	s := NuevaSesion(&apiFalsa{})
	s.Formulario.Comidas.CargarDesde([]models.Comida{{Descripcion: "sopa"}, {Descripcion: "postre"}})

	s.EliminarComida(0)
	s.Dialogos.Confirmar(false)

	if s.Formulario.Comidas.Cantidad() != 2 {
		t.Fatalf("sin confirmar la fila debe permanecer")
	}

	s.EliminarComida(0)
	s.Dialogos.Confirmar(true)

	if s.Formulario.Comidas.Cantidad() != 1 {
		t.Fatalf("confirmando debe eliminarse la fila")
	}
	if s.Formulario.Comidas.Ordinal(1) != 1 {
		t.Fatalf("la fila restante debe renumerarse a #1")
	}
}

func TestAgregarComidaLlenaMuestraAdvertencia(t *testing.T) {
	s := NuevaSesion(&apiFalsa{})
	for i := 0; i < MaximoComidas; i++ {
		s.AgregarComida()
	}

	s.AgregarComida()

	if s.Formulario.Comidas.Cantidad() != MaximoComidas {
		t.Fatalf("la lista debe quedar en %d filas", MaximoComidas)
	}
	if !s.Dialogos.InfoVisible || s.Dialogos.Tipo != DialogoAdvertencia {
		t.Fatalf("la fila 21 debe mostrar la advertencia")
	}
}

func TestEliminarViajeRequiereConfirmacion(t *testing.T) {
	api := &apiFalsa{}
	s := NuevaSesion(api)
	s.Formulario.NumeroViaje = "V-9"
	s.Formulario.CentroCosto = "5001"

	s.EliminarViaje(context.Background())
	if len(api.eliminados) != 0 {
		t.Fatalf("sin confirmar no debe llamarse la red")
	}

	s.Dialogos.Confirmar(true)
	if len(api.eliminados) != 1 || api.eliminados[0] != "V-9/5001" {
		t.Fatalf("confirmando debe eliminarse el viaje: %v", api.eliminados)
	}
	if !s.Dialogos.CerrarInfo() {
		t.Fatalf("el modal de eliminado debe recargar al cerrarse")
	}
}

func TestEliminarViajeSinIdentificadores(t *testing.T) {
	api := &apiFalsa{}
	s := NuevaSesion(api)

	s.EliminarViaje(context.Background())

	if len(api.eliminados) != 0 {
		t.Fatalf("sin identificadores no debe llamarse la red")
	}
	if !s.Dialogos.InfoVisible || s.Dialogos.Tipo != DialogoError {
		t.Fatalf("debe mostrarse el modal de error de validacion")
	}
}

func TestCargarAdministrativosFallaEnSilencio(t *testing.T) {
	api := &apiFalsa{errAdmin: errors.New("timeout")}
	s := NuevaSesion(api)

	s.CargarAdministrativos(context.Background())

	if s.Administrativos != nil {
		t.Fatalf("un fallo debe dejar la lista vacia")
	}
	if s.Dialogos.InfoVisible {
		t.Fatalf("el fallo de administrativos no muestra dialogo")
	}
}

func TestCancelarDescartaElEstado(t *testing.T) {
	s := NuevaSesion(&apiFalsa{})
	s.NumeroBuscado = "V-9"
	s.Centros = []models.CentroCosto{{Codigo: "5001"}}
	s.VerFormulario = true
	s.Formulario.NumeroViaje = "V-9"

	s.Cancelar()

	if s.NumeroBuscado != "" || s.Centros != nil || s.VerFormulario || s.Formulario.NumeroViaje != "" {
		t.Fatalf("cancelar debe volver al paso de busqueda limpio")
	}
}
