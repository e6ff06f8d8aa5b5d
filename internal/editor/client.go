package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"viajes/internal/models"
)

// API es la superficie de red que consume el editor. Client la
// implementa contra el backend real; los tests la sustituyen.
type API interface {
	BuscarCentrosCosto(ctx context.Context, numero string) ([]models.CentroCosto, string, error)
	BuscarViaje(ctx context.Context, numero, centro string) (models.Viaje, []models.Comida, error)
	ActualizarViaje(ctx context.Context, req models.ActualizarViajeRequest) (string, error)
	EliminarViaje(ctx context.Context, numero, centro string) (string, error)
	ListarAdministrativos(ctx context.Context) ([]string, error)
}

// Client habla JSON con el backend de viajes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// BuscarCentrosCosto devuelve los centros candidatos del numero de
// viaje junto con el cuerpo crudo de la respuesta, que la sesion usa en
// el mensaje de diagnostico cuando la lista viene vacia.
func (c *Client) BuscarCentrosCosto(ctx context.Context, numero string) ([]models.CentroCosto, string, error) {
	body, status, err := c.get(ctx, "/api/buscar-centros-costo/"+url.PathEscape(numero))
	if err != nil {
		return nil, "", err
	}
	if status != http.StatusOK {
		return nil, string(body), fmt.Errorf("Error HTTP: %d", status)
	}

	var centros []models.CentroCosto
	if err := json.Unmarshal(body, &centros); err != nil {
		return nil, string(body), nil
	}
	return centros, string(body), nil
}

type respuestaViaje struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Viaje   models.Viaje    `json:"viaje"`
	Comidas []models.Comida `json:"comidas"`
}

func (c *Client) BuscarViaje(ctx context.Context, numero, centro string) (models.Viaje, []models.Comida, error) {
	body, status, err := c.post(ctx, "/api/buscar-viaje", map[string]string{
		"numero_viaje": numero,
		"centro_costo": centro,
	})
	if err != nil {
		return models.Viaje{}, nil, err
	}

	var resp respuestaViaje
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Viaje{}, nil, fmt.Errorf("Error HTTP: %d", status)
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Viaje no encontrado"
		}
		return models.Viaje{}, nil, fmt.Errorf("%s", msg)
	}
	return resp.Viaje, resp.Comidas, nil
}

type respuestaSimple struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ActualizarViaje envia el formulario completo. Devuelve el mensaje
// declarado por el servidor; un success=false llega como error.
func (c *Client) ActualizarViaje(ctx context.Context, req models.ActualizarViajeRequest) (string, error) {
	body, status, err := c.post(ctx, "/api/actualizar-viaje", req)
	if err != nil {
		return "", err
	}

	var resp respuestaSimple
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("Error HTTP: %d", status)
	}
	if !resp.Success {
		return resp.Message, errActualizacion(resp.Message)
	}
	return resp.Message, nil
}

func (c *Client) EliminarViaje(ctx context.Context, numero, centro string) (string, error) {
	body, status, err := c.post(ctx, "/api/eliminar-viaje", map[string]string{
		"numero_viaje": numero,
		"centro_costo": centro,
	})
	if err != nil {
		return "", err
	}

	var resp respuestaSimple
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("Error HTTP: %d", status)
	}
	if !resp.Success {
		return resp.Message, errActualizacion(resp.Message)
	}
	return resp.Message, nil
}

type respuestaAdministrativos struct {
	Success         bool     `json:"success"`
	Administrativos []string `json:"administrativos"`
}

func (c *Client) ListarAdministrativos(ctx context.Context) ([]string, error) {
	body, status, err := c.get(ctx, "/api/listar-administrativos")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("Error HTTP: %d", status)
	}

	var resp respuestaAdministrativos
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return resp.Administrativos, nil
}

// ErrorDeclarado marca una respuesta con success=false: el servidor
// contesto pero rechazo la operacion.
type ErrorDeclarado struct {
	Mensaje string
}

func (e ErrorDeclarado) Error() string {
	if e.Mensaje == "" {
		return "operacion rechazada por el servidor"
	}
	return e.Mensaje
}

func errActualizacion(msg string) error {
	return ErrorDeclarado{Mensaje: msg}
}
