package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"arena-team-bot/internal/model"
	"arena-team-bot/internal/service"
)

// TeamService описывает read-only операции реестра, которые отдаёт status API.
type TeamService interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, name string) (model.Team, error)
	Counts() (open, full, pending int)
}

type Handler struct {
	Teams   TeamService
	Metrics http.Handler
	Log     *slog.Logger
}

func NewHandler(teams TeamService, metrics http.Handler, log *slog.Logger) *Handler {
	return &Handler{
		Teams:   teams,
		Metrics: metrics,
		Log:     log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.handleAlive)
	r.Get("/health", h.handleHealth)

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.handleTeamList)
		r.Get("/{name}", h.handleTeamGet)
	})

	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleAlive отвечает пингам внешнего аптайм-монитора.
func (h *Handler) handleAlive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("I'm alive"))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	open, full, pending := h.Teams.Counts()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "ok",
		OpenTeams:      open,
		FullTeams:      full,
		PendingInvites: pending,
	})
}
