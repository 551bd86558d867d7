// Package api is the HTTP adapter for the Talentum backend. Every outbound
// request is decorated with the persisted bearer token; a 401 from any
// endpoint invalidates the session (token cleared, navigation to the login
// view), while a 403 is surfaced to the caller with the session left intact.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/talentumplus/talentum/internal/client/config"
	"github.com/talentumplus/talentum/internal/client/models"
)

// TokenStore is the adapter's view of the persisted credential.
type TokenStore interface {
	Token() string
	Clear() error
}

// Navigator lets the adapter force a view change when the session dies
// mid-request. CurrentView prevents redirect loops on the auth views.
type Navigator interface {
	CurrentView() string
	Navigate(view string)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	nav        Navigator
}

func NewClient(cfg *config.Config, tokens TokenStore, nav Navigator) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.ServerEndpointAddr, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		tokens:     tokens,
		nav:        nav,
	}
}

type serverError struct {
	Message string `json:"message"`
}

// do issues one request and decodes the response into out (if non-nil).
// Requests are sent unauthenticated when no token is persisted; the server
// decides. No retries.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var se serverError
		_ = json.Unmarshal(data, &se)

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			c.invalidateSession()
			return fmt.Errorf("%w: %s", ErrUnauthorized, se.Message)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrForbidden, se.Message)
		default:
			return &APIError{StatusCode: resp.StatusCode, Message: se.Message}
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

// invalidateSession drops the persisted token and steers the user back to
// the login view, unless an auth view is already showing.
func (c *Client) invalidateSession() {
	_ = c.tokens.Clear()
	if c.nav == nil {
		return
	}
	view := c.nav.CurrentView()
	if view == models.ViewLogin || view == models.ViewRegister {
		return
	}
	c.nav.Navigate(models.ViewLogin)
}

// AuthResponse is the payload of /login and /register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
	Rol         string `json:"rol"`
	Nombre      string `json:"nombre"`
}

func (c *Client) Register(ctx context.Context, email, password, nombre, rol string) (*AuthResponse, error) {
	var res AuthResponse
	body := map[string]string{"email": email, "password": password, "nombre": nombre, "rol": rol}
	if err := c.do(ctx, http.MethodPost, "/register", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListCourses(ctx context.Context, categoria, nivel string) ([]*models.Course, error) {
	q := url.Values{}
	if categoria != "" {
		q.Set("categoria", categoria)
	}
	if nivel != "" {
		q.Set("nivel", nivel)
	}
	var result []*models.Course
	if err := c.do(ctx, http.MethodGet, withQuery("/cursos", q), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Enroll(ctx context.Context, cursoCodigo string) (*models.Enrollment, error) {
	var result models.Enrollment
	path := "/cursos/" + url.PathEscape(cursoCodigo) + "/inscripcion"
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) MyEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	if err := c.do(ctx, http.MethodGet, "/inscripciones", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UpdateProgress(ctx context.Context, enrollmentID string, progreso float64) (*models.Enrollment, error) {
	var result models.Enrollment
	path := "/inscripciones/" + url.PathEscape(enrollmentID) + "/progreso"
	if err := c.do(ctx, http.MethodPut, path, map[string]float64{"progreso": progreso}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) TakeExam(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	var result models.Enrollment
	path := "/inscripciones/" + url.PathEscape(enrollmentID) + "/examen"
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListOffers(ctx context.Context, estado, skill string) ([]*models.Offer, error) {
	q := url.Values{}
	if estado != "" {
		q.Set("estado", estado)
	}
	if skill != "" {
		q.Set("skill", skill)
	}
	var result []*models.Offer
	if err := c.do(ctx, http.MethodGet, withQuery("/ofertas", q), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Apply(ctx context.Context, ofertaID string) (*models.Application, error) {
	var result models.Application
	path := "/ofertas/" + url.PathEscape(ofertaID) + "/aplicar"
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) MyApplications(ctx context.Context) ([]*models.Application, error) {
	var result []*models.Application
	if err := c.do(ctx, http.MethodGet, "/aplicaciones", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	var result models.Profile
	if err := c.do(ctx, http.MethodGet, "/candidatos/"+url.PathEscape(email), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Contacts(ctx context.Context, email string) ([]*models.Contact, error) {
	var result []*models.Contact
	if err := c.do(ctx, http.MethodGet, "/red/"+url.PathEscape(email), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SendRequest(ctx context.Context, destinatario, mensaje string) (*models.ConnectionRequest, error) {
	var result models.ConnectionRequest
	body := map[string]string{"destinatario": destinatario, "mensaje": mensaje}
	if err := c.do(ctx, http.MethodPost, "/solicitudes", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) PendingRequests(ctx context.Context) ([]*models.ConnectionRequest, error) {
	var result []*models.ConnectionRequest
	if err := c.do(ctx, http.MethodGet, "/solicitudes/recibidas", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) RespondRequest(ctx context.Context, id, accion string) (*models.ConnectionRequest, error) {
	var result models.ConnectionRequest
	path := "/solicitudes/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, map[string]string{"accion": accion}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var result []*models.User
	if err := c.do(ctx, http.MethodGet, withQuery("/usuarios/buscar", q), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
