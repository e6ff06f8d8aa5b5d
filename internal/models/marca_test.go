package models

import (
	"encoding/json"
	"testing"
)

func TestMarcaActiva(t *testing.T) {
	casos := []struct {
		valor  string
		activa bool
	}{
		{"X", true},
		{"x", true},
		{"1", true},
		{"", false},
		{"0", false},
		{"no", false},
		{"XX", false},
	}
	for _, c := range casos {
		if got := Marca(c.valor).Activa(); got != c.activa {
			t.Fatalf("Marca(%q).Activa() = %v, esperaba %v", c.valor, got, c.activa)
		}
	}
}

func TestMarcaUnmarshalToleraNumeros(t *testing.T) {
	var v struct {
		Check Marca `json:"check"`
	}

	if err := json.Unmarshal([]byte(`{"check": 1}`), &v); err != nil {
		t.Fatalf("unmarshal numerico fallo: %v", err)
	}
	if !v.Check.Activa() {
		t.Fatalf("el 1 numerico debe contar como marcado, quedo %q", v.Check)
	}

	if err := json.Unmarshal([]byte(`{"check": null}`), &v); err != nil {
		t.Fatalf("unmarshal null fallo: %v", err)
	}
	if v.Check.Activa() {
		t.Fatalf("null debe quedar desmarcado")
	}

	if err := json.Unmarshal([]byte(`{"check": "x"}`), &v); err != nil {
		t.Fatalf("unmarshal string fallo: %v", err)
	}
	if !v.Check.Activa() {
		t.Fatalf("la x minuscula debe contar como marcada")
	}
}

func TestMarcaDesdeBool(t *testing.T) {
	if MarcaDesdeBool(true) != "X" {
		t.Fatalf("marcado debe serializar como X")
	}
	if MarcaDesdeBool(false) != "" {
		t.Fatalf("desmarcado debe serializar vacio")
	}
}

func TestTextoToleraStringONumero(t *testing.T) {
	var v struct {
		Pallets Texto `json:"pallets"`
	}

	if err := json.Unmarshal([]byte(`{"pallets": "12"}`), &v); err != nil {
		t.Fatalf("unmarshal string fallo: %v", err)
	}
	if v.Pallets.Entero() != 12 {
		t.Fatalf("Entero() = %d, esperaba 12", v.Pallets.Entero())
	}

	if err := json.Unmarshal([]byte(`{"pallets": 7}`), &v); err != nil {
		t.Fatalf("unmarshal numerico fallo: %v", err)
	}
	if v.Pallets != "7" {
		t.Fatalf("el numero debe normalizarse a texto, quedo %q", v.Pallets)
	}

	if err := json.Unmarshal([]byte(`{"pallets": "s/i"}`), &v); err != nil {
		t.Fatalf("unmarshal texto libre fallo: %v", err)
	}
	if v.Pallets.Entero() != 0 {
		t.Fatalf("texto no numerico debe caer a 0")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fallo: %v", err)
	}
	if string(raw) != `{"pallets":"s/i"}` {
		t.Fatalf("Texto debe salir siempre como string JSON, salio %s", raw)
	}
}
