package editor

// TipoDialogo controla el estilo del modal informativo.
type TipoDialogo string

const (
	DialogoExito       TipoDialogo = "success"
	DialogoError       TipoDialogo = "error"
	DialogoAdvertencia TipoDialogo = "warning"
	DialogoInfo        TipoDialogo = "info"
)

// Dialogos modela los dos modales de la pantalla: el informativo y el
// de confirmacion. El informativo recuerda si la ultima actualizacion
// fue exitosa para pedir la recarga de la pagina al cerrarse.
type Dialogos struct {
	InfoVisible bool
	Titulo      string
	Mensaje     string
	Tipo        TipoDialogo

	ConfirmVisible bool
	ConfirmMensaje string
	pendiente      func(bool)

	actualizacionExitosa bool
}

// MostrarInfo abre el modal informativo.
func (d *Dialogos) MostrarInfo(titulo, mensaje string, tipo TipoDialogo) {
	d.InfoVisible = true
	d.Titulo = titulo
	d.Mensaje = mensaje
	d.Tipo = tipo
}

// CerrarInfo cierra el modal informativo. Devuelve true si la pagina
// debe recargarse: solo tras una actualizacion exitosa, y el flag se
// consume al cerrar.
func (d *Dialogos) CerrarInfo() bool {
	d.InfoVisible = false
	recargar := d.actualizacionExitosa
	d.actualizacionExitosa = false
	return recargar
}

// MarcarActualizacionExitosa deja pendiente la recarga para el proximo
// cierre del modal informativo.
func (d *Dialogos) MarcarActualizacionExitosa() {
	d.actualizacionExitosa = true
}

// MostrarConfirmacion abre el modal de confirmacion con un callback que
// recibira la decision. Solo hay un callback pendiente a la vez: una
// segunda confirmacion antes de resolver la primera la reemplaza.
func (d *Dialogos) MostrarConfirmacion(mensaje string, callback func(bool)) {
	d.ConfirmVisible = true
	d.ConfirmMensaje = mensaje
	d.pendiente = callback
}

// Confirmar resuelve el modal de confirmacion con la decision del
// usuario y limpia el callback pendiente antes de invocarlo.
func (d *Dialogos) Confirmar(confirmado bool) {
	d.ConfirmVisible = false
	cb := d.pendiente
	d.pendiente = nil
	if cb != nil {
		cb(confirmado)
	}
}
