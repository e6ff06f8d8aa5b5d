package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Marca representa el valor centinela de los checklists heredados de las
// planillas. Los registros antiguos guardan 'X', 'x', '1' o el número 1;
// cualquier otro valor cuenta como desmarcado.
type Marca string

func (m Marca) Activa() bool {
	switch string(m) {
	case "X", "x", "1":
		return true
	}
	return false
}

// MarcaDesdeBool serializa un check del formulario: marcado => "X", no => "".
func MarcaDesdeBool(activa bool) Marca {
	if activa {
		return "X"
	}
	return ""
}

func (m *Marca) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = Marca(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*m = Marca(n.String())
		return nil
	}
	return fmt.Errorf("marca: valor no soportado %s", string(b))
}

// Texto es un escalar tolerante para columnas que las cargas de Excel
// antiguas dejaron como texto o número indistintamente (contadores de
// pallets, wencos, etc.). Siempre se serializa como string JSON.
type Texto string

func (t Texto) String() string { return string(t) }

// Entero interpreta el valor como entero, 0 si no es parseable.
func (t Texto) Entero() int {
	n, err := strconv.Atoi(string(t))
	if err != nil {
		return 0
	}
	return n
}

func (t Texto) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *Texto) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Texto(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = Texto(n.String())
		return nil
	}
	return fmt.Errorf("texto: valor no soportado %s", string(b))
}
