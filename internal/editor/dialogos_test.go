package editor

import "testing"

func TestCerrarInfoConsumeElFlagDeRecarga(t *testing.T) {
	var d Dialogos

	d.MostrarInfo("VIAJE ACTUALIZADO", "ok", DialogoExito)
	if d.CerrarInfo() {
		t.Fatalf("sin actualizacion exitosa no debe recargar")
	}

	d.MarcarActualizacionExitosa()
	d.MostrarInfo("VIAJE ACTUALIZADO", "ok", DialogoExito)
	if !d.CerrarInfo() {
		t.Fatalf("tras actualizacion exitosa el cierre debe recargar")
	}
	if d.CerrarInfo() {
		t.Fatalf("el flag de recarga debe consumirse en el primer cierre")
	}
}

func TestConfirmacionLimpiaElCallback(t *testing.T) {
	var d Dialogos
	llamadas := 0

	d.MostrarConfirmacion("seguro?", func(bool) { llamadas++ })
	d.Confirmar(true)
	d.Confirmar(true)

	if llamadas != 1 {
		t.Fatalf("el callback se invoco %d veces, esperaba 1", llamadas)
	}
	if d.ConfirmVisible {
		t.Fatalf("el modal debe cerrarse al confirmar")
	}
}

func TestSegundaConfirmacionReemplazaLaPrimera(t *testing.T) {
	var d Dialogos
	var resuelto string

	d.MostrarConfirmacion("primera", func(bool) { resuelto = "primera" })
	d.MostrarConfirmacion("segunda", func(bool) { resuelto = "segunda" })
	d.Confirmar(true)

	if resuelto != "segunda" {
		t.Fatalf("debe resolverse el callback mas reciente, resolvio %q", resuelto)
	}
}

func TestConfirmarCanceladoEntregaFalse(t *testing.T) {
	var d Dialogos
	decidido := true

	d.MostrarConfirmacion("seguro?", func(ok bool) { decidido = ok })
	d.Confirmar(false)

	if decidido {
		t.Fatalf("cancelar debe entregar false al callback")
	}
}
