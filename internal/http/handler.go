package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

// EquipmentService: операции над оборудованием, нужные обработчикам.
type EquipmentService interface {
	ListEquipment(ctx context.Context, page, pageSize int) ([]model.Equipment, int, error)
	GetEquipment(ctx context.Context, id int64) (model.Equipment, error)
	CreateEquipment(ctx context.Context, e model.Equipment) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, patch service.EquipmentPatch) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error
	EquipmentRequests(ctx context.Context, id int64) ([]model.MaintenanceRequest, error)
}

// TeamService: операции над командами.
type TeamService interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.Team, error)
	CreateTeam(ctx context.Context, name string, memberIDs []int64) (model.Team, error)
	UpdateTeam(ctx context.Context, id int64, patch service.TeamPatch) (model.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// UserService: каталог пользователей и кандидаты в техники.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	TechnicianCandidates(ctx context.Context, scope assignment.Scope, teamID *int64) (assignment.Candidates, error)
}

// RequestService: операции над заявками.
type RequestService interface {
	ListRequests(ctx context.Context, f model.RequestFilter) ([]model.MaintenanceRequest, int, error)
	GetRequest(ctx context.Context, id int64) (model.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, in service.RequestInput) (model.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id int64, patch service.RequestPatch) (model.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
	AllowedTransitions(ctx context.Context, id int64) (model.RequestStatus, []model.RequestStatus, error)
	ChangeStatus(ctx context.Context, id int64, to model.RequestStatus, confirmed bool) (model.MaintenanceRequest, error)
	AssignTechnician(ctx context.Context, id int64, technicianID *int64) (model.MaintenanceRequest, error)
}

// CalendarService: календарь плановых работ.
type CalendarService interface {
	Events(ctx context.Context, from, to *time.Time) ([]model.CalendarEvent, error)
}

// Services собирает зависимости обработчиков.
type Services struct {
	Equipment EquipmentService
	Teams     TeamService
	Users     UserService
	Requests  RequestService
	Calendar  CalendarService
}

// Options: настройки HTTP-слоя.
type Options struct {
	CORSOrigins     []string
	DefaultPageSize int
}

type Handler struct {
	Services
	Log *zap.Logger

	opts     Options
	validate *validator.Validate
}

func NewHandler(svc Services, log *zap.Logger, opts Options) *Handler {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = service.DefaultPageSize
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	return &Handler{
		Services: svc,
		Log:      log,
		opts:     opts,
		validate: newValidator(),
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(h.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/equipment", func(r chi.Router) {
		r.Get("/", h.handleEquipmentList)
		r.Post("/", h.handleEquipmentCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleEquipmentGet)
			r.Patch("/", h.handleEquipmentUpdate)
			r.Delete("/", h.handleEquipmentDelete)
			r.Get("/requests", h.handleEquipmentRequests)
		})
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.handleTeamList)
		r.Post("/", h.handleTeamCreate)
		r.Get("/{id}", h.handleTeamGet)
		r.Patch("/{id}", h.handleTeamUpdate)
		r.Delete("/{id}", h.handleTeamDelete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleUserList)
		r.Get("/{id}", h.handleUserGet)
	})
	r.Get("/technicians", h.handleTechnicians)

	r.Route("/requests", func(r chi.Router) {
		r.Get("/", h.handleRequestList)
		r.Post("/", h.handleRequestCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleRequestGet)
			r.Patch("/", h.handleRequestUpdate)
			r.Delete("/", h.handleRequestDelete)
			r.Get("/transitions", h.handleRequestTransitions)
			r.Post("/status", h.handleRequestStatus)
			r.Post("/assign", h.handleRequestAssign)
		})
	})

	r.Get("/calendar", h.handleCalendar)

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr := service.AsAppError(err)

	fields := []zap.Field{
		zap.String("handler", handlerName),
		zap.String("code", appErr.Code),
		zap.String("message", appErr.Message),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	if appErr.Status >= http.StatusInternalServerError {
		h.Log.Error("handler error", fields...)
	} else {
		h.Log.Info("handler error", fields...)
	}

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	resp.Error.Fields = appErr.Fields
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса; неизвестные поля отклоняются.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return service.ErrBadRequest("request body is empty")
		}
		return service.ErrBadRequest("invalid JSON: " + err.Error())
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrNotFound("not found")
	}
	return id, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
