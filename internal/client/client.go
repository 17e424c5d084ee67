// Package client реализует HTTP-клиент сервиса заявок. Проверяет переходы статусов и назначения
// локально до обращения к сервису, кэширует ответы и сбрасывает кэш после изменений.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/workflow"
)

// Confirmer запрашивает у пользователя подтверждение необратимого действия.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc позволяет использовать функцию как Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Client обращается к HTTP API сервиса.
type Client struct {
	baseURL    string
	http       *http.Client
	store      *Store
	log        *zap.Logger
	retryDelay time.Duration
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger задаёт логгер.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRetryDelay задаёт паузу перед повтором запроса.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// New создаёт клиента для сервиса по адресу baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: 15 * time.Second},
		store:      NewStore(),
		log:        zap.NewNop(),
		retryDelay: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store возвращает кэш клиента.
func (c *Client) Store() *Store {
	return c.store
}

// RequestQuery: фильтры списка заявок.
type RequestQuery struct {
	Status      model.RequestStatus
	RequestType model.RequestType
	EquipmentID int64
	Page        int
	PageSize    int
}

func (q RequestQuery) values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.RequestType != "" {
		v.Set("request_type", string(q.RequestType))
	}
	if q.EquipmentID > 0 {
		v.Set("equipment", strconv.FormatInt(q.EquipmentID, 10))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v
}

// ListRequests возвращает страницу заявок.
func (c *Client) ListRequests(ctx context.Context, q RequestQuery) (model.Page[model.MaintenanceRequest], error) {
	query := q.values().Encode()
	return cached[model.Page[model.MaintenanceRequest]](ctx, c, "requests?"+query, "/requests/?"+query)
}

// GetRequest возвращает заявку.
func (c *Client) GetRequest(ctx context.Context, id int64) (model.MaintenanceRequest, error) {
	return cached[model.MaintenanceRequest](ctx, c, requestKey(id), fmt.Sprintf("/requests/%d", id))
}

// AllowedTransitions возвращает статусы, доступные из текущего статуса заявки.
// Вычисляется локально по закэшированной заявке.
func (c *Client) AllowedTransitions(ctx context.Context, id int64) ([]model.RequestStatus, error) {
	mr, err := c.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return workflow.AllowedTransitions(mr.Status), nil
}

// CreateRequestInput: тело создания заявки.
type CreateRequestInput struct {
	Subject       string         `json:"subject"`
	EquipmentID   int64          `json:"equipment"`
	RequestType   string         `json:"request_type,omitempty"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	Duration      model.Duration `json:"duration"`
	TeamID        *int64         `json:"team,omitempty"`
	TechnicianID  *int64         `json:"technician,omitempty"`
}

// CreateRequest создаёт заявку. Создание никогда не повторяется автоматически.
func (c *Client) CreateRequest(ctx context.Context, in CreateRequestInput) (model.MaintenanceRequest, error) {
	var mr model.MaintenanceRequest
	if err := c.doOnce(ctx, http.MethodPost, "/requests/", in, &mr); err != nil {
		return model.MaintenanceRequest{}, err
	}
	c.store.Invalidate("requests", "calendar", equipmentRequestsKey(mr.EquipmentID))
	return mr, nil
}

// ChangeStatus переводит заявку в статус to. Недопустимый переход отклоняется без
// обращения к сервису, переход в текущий статус ничего не делает. Для SCRAP нужен
// положительный ответ confirm; без него возвращается ErrConfirmationDeclined.
// После успеха сбрасываются кэши заявки, списков, оборудования и календаря.
func (c *Client) ChangeStatus(ctx context.Context, id int64, to model.RequestStatus, confirm Confirmer) (model.MaintenanceRequest, error) {
	if _, err := model.ParseStatus(string(to)); err != nil {
		return model.MaintenanceRequest{}, err
	}
	current, err := c.GetRequest(ctx, id)
	if err != nil {
		return model.MaintenanceRequest{}, err
	}

	t, err := workflow.Plan(current.Status, to)
	if err != nil {
		return model.MaintenanceRequest{}, err
	}
	if t.NoOp {
		return current, nil
	}

	confirmed := false
	if workflow.RequiresConfirmation(to) {
		if confirm == nil {
			return model.MaintenanceRequest{}, ErrConfirmationDeclined
		}
		prompt := fmt.Sprintf("Move request #%d %q to %s? Equipment %q will be marked unusable. This cannot be undone.",
			current.ID, current.Subject, to.Label(), current.EquipmentName)
		ok, err := confirm.Confirm(ctx, prompt)
		if err != nil {
			return model.MaintenanceRequest{}, fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			return model.MaintenanceRequest{}, ErrConfirmationDeclined
		}
		confirmed = true
	}

	body := struct {
		Status  model.RequestStatus `json:"status"`
		Confirm bool                `json:"confirm"`
	}{Status: to, Confirm: confirmed}

	var updated model.MaintenanceRequest
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/status", id), body, &updated); err != nil {
		return model.MaintenanceRequest{}, err
	}

	c.store.Invalidate(
		requestKey(id),
		"requests",
		equipmentKey(current.EquipmentID),
		"equipment",
		equipmentRequestsKey(current.EquipmentID),
		"calendar",
	)
	c.log.Debug("status changed", zap.Int64("request_id", id), zap.String("status", string(to)))
	return updated, nil
}

// AssignTechnician назначает техника (nil снимает назначение). Техник проверяется
// по составу команды заявки до обращения к сервису.
func (c *Client) AssignTechnician(ctx context.Context, id int64, technicianID *int64) (model.MaintenanceRequest, error) {
	current, err := c.GetRequest(ctx, id)
	if err != nil {
		return model.MaintenanceRequest{}, err
	}

	var team *model.Team
	if current.TeamID != nil {
		t, err := c.GetTeam(ctx, *current.TeamID)
		if err != nil {
			return model.MaintenanceRequest{}, err
		}
		team = &t
	}
	if err := assignment.ValidateTechnician(assignment.ScopeRequestForm, "technician", team, nil, technicianID); err != nil {
		return model.MaintenanceRequest{}, err
	}

	body := struct {
		Technician *int64 `json:"technician"`
	}{Technician: technicianID}

	var updated model.MaintenanceRequest
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/assign", id), body, &updated); err != nil {
		return model.MaintenanceRequest{}, err
	}

	c.store.Invalidate(requestKey(id), "requests", equipmentRequestsKey(current.EquipmentID), "calendar")
	return updated, nil
}

// ListEquipment возвращает страницу оборудования.
func (c *Client) ListEquipment(ctx context.Context, page int) (model.Page[model.Equipment], error) {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	return cached[model.Page[model.Equipment]](ctx, c, "equipment?"+v.Encode(), "/equipment/?"+v.Encode())
}

// GetEquipment возвращает оборудование.
func (c *Client) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	return cached[model.Equipment](ctx, c, equipmentKey(id), fmt.Sprintf("/equipment/%d", id))
}

// EquipmentRequests возвращает все заявки по оборудованию.
func (c *Client) EquipmentRequests(ctx context.Context, id int64) ([]model.MaintenanceRequest, error) {
	return cached[[]model.MaintenanceRequest](ctx, c, equipmentRequestsKey(id), fmt.Sprintf("/equipment/%d/requests", id))
}

// ListTeams возвращает все команды.
func (c *Client) ListTeams(ctx context.Context) ([]model.Team, error) {
	return cached[[]model.Team](ctx, c, "teams", "/teams/")
}

// GetTeam возвращает команду с составом.
func (c *Client) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	return cached[model.Team](ctx, c, fmt.Sprintf("team/%d", id), fmt.Sprintf("/teams/%d", id))
}

// TechnicianCandidates возвращает допустимых техников для формы.
func (c *Client) TechnicianCandidates(ctx context.Context, scope assignment.Scope, teamID *int64) (assignment.Candidates, error) {
	v := url.Values{}
	if scope == assignment.ScopeEquipmentForm {
		v.Set("scope", "equipment")
	} else {
		v.Set("scope", "request")
	}
	if teamID != nil {
		v.Set("team", strconv.FormatInt(*teamID, 10))
	}
	return cached[assignment.Candidates](ctx, c, "technicians?"+v.Encode(), "/technicians?"+v.Encode())
}

// Calendar возвращает события плановых работ в диапазоне [from, to); нулевые границы не ограничивают.
func (c *Client) Calendar(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	v := url.Values{}
	if !from.IsZero() {
		v.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		v.Set("to", to.Format(time.RFC3339))
	}
	return cached[[]model.CalendarEvent](ctx, c, "calendar?"+v.Encode(), "/calendar?"+v.Encode())
}

func requestKey(id int64) string           { return fmt.Sprintf("request/%d", id) }
func equipmentKey(id int64) string         { return fmt.Sprintf("equipment/%d", id) }
func equipmentRequestsKey(id int64) string { return fmt.Sprintf("equipment/%d/requests", id) }

// cached отдаёт значение из кэша или загружает его GET-запросом.
// Результат, полученный после инвалидации ключа, в кэш не попадает.
func cached[T any](ctx context.Context, c *Client, key, path string) (T, error) {
	if v, ok := c.store.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := c.store.Generation(key)
	var out T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	c.store.Put(key, gen, out)
	return out, nil
}

// do выполняет идемпотентный запрос и повторяет его не более одного раза
// при сетевой ошибке или ответе 5xx.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	b := retry.WithMaxRetries(1, retry.NewConstant(c.retryDelay))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.doOnce(ctx, method, path, body, out)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsRetryable() {
			c.log.Debug("retrying request", zap.String("method", method), zap.String("path", path), zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env struct {
			Error struct {
				Code    string              `json:"code"`
				Message string              `json:"message"`
				Fields  map[string][]string `json:"fields"`
			} `json:"error"`
		}
		if json.Unmarshal(data, &env) == nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Fields = env.Error.Fields
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
