package editor

import (
	"strconv"
	"strings"

	"viajes/internal/models"
)

// MaximoComidas limita las filas de comidas del formulario.
const MaximoComidas = 20

// ComidaFila es una fila editable de comida. Slot es la identidad
// interna asignada al insertar y nunca se reutiliza; el ordinal visible
// (#1..#N) se deriva de la posicion en la lista y se renumera en cada
// alta o baja. Los valores se mantienen como texto, igual que los
// inputs del formulario.
type ComidaFila struct {
	Slot        int
	Guia        string
	Proveedor   string
	Descripcion string
	Kilo        string
	Bultos      string
}

// ListaComidas mantiene las filas en orden de despliegue.
type ListaComidas struct {
	filas         []ComidaFila
	siguienteSlot int
}

// CargarDesde reemplaza la lista con las comidas del servidor. Los
// slots parten en 0 y el contador queda listo para la proxima alta.
func (l *ListaComidas) CargarDesde(comidas []models.Comida) {
	l.filas = make([]ComidaFila, 0, len(comidas))
	for i, c := range comidas {
		l.filas = append(l.filas, ComidaFila{
			Slot:        i,
			Guia:        c.GuiaComida,
			Proveedor:   c.Proveedor,
			Descripcion: c.Descripcion,
			Kilo:        strconv.FormatFloat(c.Kilo, 'f', -1, 64),
			Bultos:      strconv.Itoa(c.Bultos),
		})
	}
	l.siguienteSlot = len(comidas)
}

// Agregar inserta una fila vacia al final. Devuelve false sin mutar
// nada si ya hay MaximoComidas filas.
func (l *ListaComidas) Agregar() (*ComidaFila, bool) {
	if len(l.filas) >= MaximoComidas {
		return nil, false
	}
	l.filas = append(l.filas, ComidaFila{
		Slot:   l.siguienteSlot,
		Kilo:   "0",
		Bultos: "0",
	})
	l.siguienteSlot++
	return &l.filas[len(l.filas)-1], true
}

// Eliminar quita la fila con ese slot. Las filas siguientes conservan
// su slot pero sus ordinales visibles se corren.
func (l *ListaComidas) Eliminar(slot int) bool {
	for i, f := range l.filas {
		if f.Slot == slot {
			l.filas = append(l.filas[:i], l.filas[i+1:]...)
			return true
		}
	}
	return false
}

// PorSlot devuelve la fila con ese slot para editarla en el lugar.
func (l *ListaComidas) PorSlot(slot int) *ComidaFila {
	for i := range l.filas {
		if l.filas[i].Slot == slot {
			return &l.filas[i]
		}
	}
	return nil
}

// Filas devuelve las filas en orden de despliegue.
func (l *ListaComidas) Filas() []ComidaFila {
	return l.filas
}

// Cantidad devuelve el numero de filas visibles.
func (l *ListaComidas) Cantidad() int {
	return len(l.filas)
}

// Ordinal devuelve la posicion visible (1..N) del slot, o 0 si no
// existe.
func (l *ListaComidas) Ordinal(slot int) int {
	for i, f := range l.filas {
		if f.Slot == slot {
			return i + 1
		}
	}
	return 0
}

// Serializar arma las comidas a enviar. Una fila entra solo si su
// descripcion no queda vacia tras recortar espacios; kilo y bultos caen
// a 0 cuando no parsean.
func (l *ListaComidas) Serializar() []models.Comida {
	out := []models.Comida{}
	for _, f := range l.filas {
		descripcion := strings.TrimSpace(f.Descripcion)
		if descripcion == "" {
			continue
		}
		kilo, err := strconv.ParseFloat(strings.TrimSpace(f.Kilo), 64)
		if err != nil {
			kilo = 0
		}
		bultos, err := strconv.Atoi(strings.TrimSpace(f.Bultos))
		if err != nil {
			bultos = 0
		}
		out = append(out, models.Comida{
			GuiaComida:  f.Guia,
			Proveedor:   f.Proveedor,
			Descripcion: descripcion,
			Kilo:        kilo,
			Bultos:      bultos,
		})
	}
	return out
}
