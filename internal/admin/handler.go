package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalog "holocron/internal/catalog/models"
	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/platform/httputil"
	adminmw "holocron/pkg/platform/middleware/admin"
	"holocron/pkg/requestcontext"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*catalog.User, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*catalog.User, error)
}

type Handler struct {
	service UserService
	logger  *slog.Logger
	token   string
}

// NewHandler builds the admin API. An empty token disables every route.
func NewHandler(service UserService, token string, logger *slog.Logger) *Handler {
	return &Handler{service: service, token: token, logger: logger}
}

// Register mounts /admin/users behind the admin token check.
func (h *Handler) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(h.token, h.logger))
		r.Get("/users", h.handleListUsers)
		r.Post("/users", h.handleCreateUser)
	})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, "failed to list users", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUsersListResponse(users))
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "failed to create user", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
