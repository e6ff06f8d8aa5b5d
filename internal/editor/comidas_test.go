package editor

import (
	"testing"

	"viajes/internal/models"
)

func TestOrdinalesContiguosTrasEliminar(t *testing.T) {
	var lista ListaComidas
	lista.CargarDesde([]models.Comida{
		{Descripcion: "almuerzo"},
		{Descripcion: "cena"},
		{Descripcion: "desayuno"},
	})

	if !lista.Eliminar(1) {
		t.Fatalf("no se encontro el slot 1")
	}

	filas := lista.Filas()
	if len(filas) != 2 {
		t.Fatalf("quedaron %d filas, esperaba 2", len(filas))
	}
	if filas[0].Slot != 0 || filas[1].Slot != 2 {
		t.Fatalf("los slots deben conservarse: %d, %d", filas[0].Slot, filas[1].Slot)
	}
	if lista.Ordinal(0) != 1 || lista.Ordinal(2) != 2 {
		t.Fatalf("los ordinales deben renumerarse 1..N: %d, %d", lista.Ordinal(0), lista.Ordinal(2))
	}
	if lista.Ordinal(1) != 0 {
		t.Fatalf("el slot eliminado no debe tener ordinal")
	}
}

func TestSlotsNoSeReutilizan(t *testing.T) {
	var lista ListaComidas
	lista.CargarDesde(nil)

	fila1, _ := lista.Agregar()
	fila2, _ := lista.Agregar()
	if fila1.Slot == fila2.Slot {
		t.Fatalf("dos filas con el mismo slot %d", fila1.Slot)
	}

	lista.Eliminar(fila2.Slot)
	fila3, _ := lista.Agregar()
	if fila3.Slot == fila2.Slot {
		t.Fatalf("el slot %d se reutilizo tras eliminar", fila2.Slot)
	}
}

func TestAgregarRechazaFila21(t *testing.T) {
	var lista ListaComidas
	for i := 0; i < MaximoComidas; i++ {
		if _, ok := lista.Agregar(); !ok {
			t.Fatalf("la fila %d debio aceptarse", i+1)
		}
	}

	if _, ok := lista.Agregar(); ok {
		t.Fatalf("la fila %d debio rechazarse", MaximoComidas+1)
	}
	if lista.Cantidad() != MaximoComidas {
		t.Fatalf("la lista quedo con %d filas, esperaba %d", lista.Cantidad(), MaximoComidas)
	}
}

func TestSerializarExcluyeDescripcionesVacias(t *testing.T) {
	var lista ListaComidas
	lista.CargarDesde(nil)

	a, _ := lista.Agregar()
	a.Descripcion = "cazuela"
	a.Kilo = "2.5"
	a.Bultos = "3"

	b, _ := lista.Agregar()
	b.Descripcion = "   "

	c, _ := lista.Agregar()
	c.Descripcion = "pan"
	c.Kilo = "no-numero"
	c.Bultos = ""

	out := lista.Serializar()
	if len(out) != 2 {
		t.Fatalf("serializo %d comidas, esperaba 2", len(out))
	}
	if out[0].Descripcion != "cazuela" || out[0].Kilo != 2.5 || out[0].Bultos != 3 {
		t.Fatalf("primera comida mal serializada: %+v", out[0])
	}
	if out[1].Kilo != 0 || out[1].Bultos != 0 {
		t.Fatalf("los numericos invalidos deben caer a 0: %+v", out[1])
	}
}

func TestCargarDesdeViajeSinComidas(t *testing.T) {
	var lista ListaComidas
	lista.CargarDesde([]models.Comida{})

	if lista.Cantidad() != 0 {
		t.Fatalf("una carga vacia debe dejar 0 filas")
	}
	fila, ok := lista.Agregar()
	if !ok || fila.Slot != 0 {
		t.Fatalf("tras carga vacia la primera alta debe usar el slot 0, uso %d", fila.Slot)
	}
}
