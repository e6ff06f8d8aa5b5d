package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"viajes/internal/models"
)

// Sesion es el asistente de edicion en tres pasos: buscar un numero de
// viaje, elegir el centro de costo y editar el formulario. Los pasos
// son visualmente excluyentes; los flags VerCentros y VerFormulario
// gobiernan cual se muestra.
type Sesion struct {
	API        API
	Dialogos   Dialogos
	Formulario Formulario

	NumeroBuscado   string
	Centros         []models.CentroCosto
	Administrativos []string

	MensajeBusqueda string
	VerCentros      bool
	VerFormulario   bool
}

func NuevaSesion(api API) *Sesion {
	return &Sesion{API: api}
}

// BuscarPorNumero ejecuta el primer paso. Con entrada vacia no hay
// llamada de red; con resultados muestra el paso de centros; sin
// resultados oculta ambos pasos y deja el diagnostico con la respuesta
// cruda del servidor.
func (s *Sesion) BuscarPorNumero(ctx context.Context, numero string) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		s.MensajeBusqueda = "Ingresa un número de viaje"
		return
	}
	s.NumeroBuscado = numero

	centros, crudo, err := s.API.BuscarCentrosCosto(ctx, numero)
	if err != nil {
		s.Centros = nil
		s.VerCentros = false
		s.VerFormulario = false
		s.MensajeBusqueda = fmt.Sprintf("Error al buscar viaje: %v", err)
		return
	}

	if len(centros) == 0 {
		s.Centros = nil
		s.VerCentros = false
		s.VerFormulario = false
		s.MensajeBusqueda = fmt.Sprintf(
			"No se encontraron registros para el viaje %s. Respuesta: %s",
			numero, crudo,
		)
		return
	}

	s.Centros = centros
	s.VerCentros = true
	s.VerFormulario = false
	s.MensajeBusqueda = fmt.Sprintf("Se encontraron %d centro(s) de costo", len(centros))
}

// SeleccionarCentro carga el viaje completo del centro elegido y pasa
// al formulario de edicion. Sin centro elegido no hay llamada de red y
// el formulario queda oculto.
func (s *Sesion) SeleccionarCentro(ctx context.Context, codigo string) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		s.VerFormulario = false
		return
	}

	viaje, comidas, err := s.API.BuscarViaje(ctx, s.NumeroBuscado, codigo)
	if err != nil {
		s.Dialogos.MostrarInfo("ERROR", fmt.Sprintf("Error: %v", err), DialogoError)
		return
	}

	s.Formulario.CargarDesde(viaje, comidas)
	s.VerCentros = false
	s.VerFormulario = true
}

// AgregarComida agrega una fila vacia; con la lista llena muestra la
// advertencia y no muta nada.
func (s *Sesion) AgregarComida() {
	if _, ok := s.Formulario.Comidas.Agregar(); !ok {
		s.Dialogos.MostrarInfo(
			"ATENCIÓN",
			fmt.Sprintf("Máximo %d comidas permitidas", MaximoComidas),
			DialogoAdvertencia,
		)
	}
}

// EliminarComida pide confirmacion y solo borra la fila si el usuario
// acepta.
func (s *Sesion) EliminarComida(slot int) {
	if s.Formulario.Comidas.PorSlot(slot) == nil {
		return
	}
	s.Dialogos.MostrarConfirmacion(
		"¿Estás seguro de eliminar esta comida? Esta acción no se puede deshacer.",
		func(confirmado bool) {
			if confirmado {
				s.Formulario.Comidas.Eliminar(slot)
			}
		},
	)
}

// Guardar serializa el formulario completo y lo envia. El modal de
// exito deja marcada la recarga; los fallos muestran un modal de error
// sin recarga.
func (s *Sesion) Guardar(ctx context.Context) {
	req := s.Formulario.Serializar()

	if _, err := s.API.ActualizarViaje(ctx, req); err != nil {
		var declarado ErrorDeclarado
		if errors.As(err, &declarado) {
			mensaje := declarado.Mensaje
			if mensaje == "" {
				mensaje = "No se pudo actualizar el viaje. Por favor, intenta nuevamente."
			}
			s.Dialogos.MostrarInfo("ERROR AL ACTUALIZAR", mensaje, DialogoError)
			return
		}
		s.Dialogos.MostrarInfo(
			"ERROR DE CONEXIÓN",
			"No se pudo conectar con el servidor. Verifica tu conexión e intenta nuevamente.",
			DialogoError,
		)
		return
	}

	s.Dialogos.MarcarActualizacionExitosa()
	s.Dialogos.MostrarInfo(
		"VIAJE ACTUALIZADO",
		fmt.Sprintf("El viaje %s ha sido actualizado exitosamente. La página se recargará para buscar otro viaje.", req.NumeroViaje),
		DialogoExito,
	)
}

// EliminarViaje pide confirmacion y borra el viaje cargado junto a sus
// comidas.
func (s *Sesion) EliminarViaje(ctx context.Context) {
	numero := s.Formulario.NumeroViaje
	centro := s.Formulario.CentroCosto
	if numero == "" || centro == "" {
		s.Dialogos.MostrarInfo(
			"ERROR",
			"No se pudo obtener el número de viaje o centro de costo. Por favor, intenta nuevamente.",
			DialogoError,
		)
		return
	}

	s.Dialogos.MostrarConfirmacion(
		fmt.Sprintf("¿Estás seguro de eliminar el viaje %s - %s? Esta acción eliminará el viaje y todas sus comidas asociadas. No se puede deshacer.", numero, centro),
		func(confirmado bool) {
			if !confirmado {
				return
			}
			if _, err := s.API.EliminarViaje(ctx, numero, centro); err != nil {
				var declarado ErrorDeclarado
				if errors.As(err, &declarado) {
					mensaje := declarado.Mensaje
					if mensaje == "" {
						mensaje = "No se pudo eliminar el viaje. Por favor, intenta nuevamente."
					}
					s.Dialogos.MostrarInfo("ERROR AL ELIMINAR", mensaje, DialogoError)
					return
				}
				s.Dialogos.MostrarInfo(
					"ERROR DE CONEXIÓN",
					"No se pudo conectar con el servidor. Verifica tu conexión e intenta nuevamente.",
					DialogoError,
				)
				return
			}

			s.Dialogos.MarcarActualizacionExitosa()
			s.Dialogos.MostrarInfo(
				"VIAJE ELIMINADO",
				fmt.Sprintf("El viaje %s ha sido eliminado exitosamente. La página se recargará.", numero),
				DialogoExito,
			)
		},
	)
}

// CargarAdministrativos llena el selector de responsables. Un fallo
// aqui solo se registra: la pantalla sigue usable con la lista vacia.
func (s *Sesion) CargarAdministrativos(ctx context.Context) {
	nombres, err := s.API.ListarAdministrativos(ctx)
	if err != nil {
		log.Printf("Error cargando administrativos: %v", err)
		s.Administrativos = nil
		return
	}
	s.Administrativos = nombres
}

// Cancelar descarta el viaje cargado y vuelve al paso de busqueda.
func (s *Sesion) Cancelar() {
	s.Formulario = Formulario{}
	s.Centros = nil
	s.NumeroBuscado = ""
	s.MensajeBusqueda = ""
	s.VerCentros = false
	s.VerFormulario = false
}
