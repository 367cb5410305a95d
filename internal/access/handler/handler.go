// Package handler exposes the catalog and favorites operations over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"holocron/internal/access/models"
	catalog "holocron/internal/catalog/models"
	favorites "holocron/internal/favorites/models"
	id "holocron/pkg/domain"
	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/platform/httputil"
	"holocron/pkg/requestcontext"
)

// Confirmation and route-level error messages.
const (
	MsgNoData               = "there's no data"
	MsgPersonAdded          = "PEOPLE ADDED"
	MsgPlanetAdded          = "PLANET ADDED"
	MsgFavoritePersonAdded  = "People add to favorites"
	MsgFavoritePlanetAdded  = "Planet add to favorites"
	MsgFavoritePersonDelete = "PEOPLE DELETED FROM FAVORITES"
	MsgFavoritePlanetDelete = "PLANET DELETED FROM FAVORITES"
)

// Service defines the interface for catalog and favorites operations.
type Service interface {
	ListPeople(ctx context.Context) ([]*catalog.Person, error)
	ListPlanets(ctx context.Context) ([]*catalog.Planet, error)
	ListUsers(ctx context.Context) ([]*catalog.User, error)
	GetPerson(ctx context.Context, personID id.PersonID) (*catalog.Person, error)
	GetPlanet(ctx context.Context, planetID id.PlanetID) (*catalog.Planet, error)
	CreatePerson(ctx context.Context, in catalog.NewPerson) (*catalog.Person, error)
	CreatePlanet(ctx context.Context, in catalog.NewPlanet) (*catalog.Planet, error)
	ListFavorites(ctx context.Context, userID id.UserID) (*models.Favorites, error)
	AddFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*favorites.FavoritePerson, error)
	AddFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*favorites.FavoritePlanet, error)
	RemoveFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) error
	RemoveFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) error
}

// Handler serves the public API.
type Handler struct {
	service Service
	logger  *slog.Logger
	grouped bool
}

type Option func(*Handler)

// WithGroupedFavorites returns favorites as {"people": [...], "planets": [...]}.
func WithGroupedFavorites(grouped bool) Option {
	return func(h *Handler) {
		h.grouped = grouped
	}
}

func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the public routes. Path ids only match decimal digits,
// so anything else falls through to the router's not-found handler.
func (h *Handler) Register(r chi.Router) {
	r.Get("/people", h.handleListPeople)
	r.Get("/people/{id:[0-9]+}", h.handleGetPerson)
	r.Post("/people", h.handleCreatePerson)

	r.Get("/planet", h.handleListPlanets)
	r.Get("/planet/{id:[0-9]+}", h.handleGetPlanet)
	r.Post("/planet", h.handleCreatePlanet)

	r.Get("/user", h.handleListUsers)
	r.Get("/user/{userID:[0-9]+}/favorites", h.handleListFavorites)
	r.Post("/user/{userID:[0-9]+}/favorites/people/{personID:[0-9]+}", h.handleAddFavoritePerson)
	r.Post("/user/{userID:[0-9]+}/favorites/planet/{planetID:[0-9]+}", h.handleAddFavoritePlanet)
	r.Delete("/user/{userID:[0-9]+}/favorites/people/{personID:[0-9]+}", h.handleRemoveFavoritePerson)
	r.Delete("/user/{userID:[0-9]+}/favorites/planet/{planetID:[0-9]+}", h.handleRemoveFavoritePlanet)
}

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.ListPeople(r.Context())
	if err != nil {
		h.fail(w, r, "failed to list people", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToPersonResponses(people))
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid person id", err)
		return
	}
	person, err := h.service.GetPerson(r.Context(), personID)
	if err != nil {
		h.fail(w, r, "failed to get person", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToPersonResponse(person))
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	if !h.decode(w, r, &req) {
		return
	}
	if _, err := h.service.CreatePerson(r.Context(), req.ToNewPerson()); err != nil {
		h.fail(w, r, "failed to create person", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MsgPersonAdded)
}

func (h *Handler) handleListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.service.ListPlanets(r.Context())
	if err != nil {
		h.fail(w, r, "failed to list planets", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToPlanetResponses(planets))
}

func (h *Handler) handleGetPlanet(w http.ResponseWriter, r *http.Request) {
	planetID, err := id.ParsePlanetID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid planet id", err)
		return
	}
	planet, err := h.service.GetPlanet(r.Context(), planetID)
	if err != nil {
		h.fail(w, r, "failed to get planet", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToPlanetResponse(planet))
}

func (h *Handler) handleCreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlanetRequest
	if !h.decode(w, r, &req) {
		return
	}
	if _, err := h.service.CreatePlanet(r.Context(), req.ToNewPlanet()); err != nil {
		h.fail(w, r, "failed to create planet", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MsgPlanetAdded)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, "failed to list users", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ToUserResponses(users))
}

func (h *Handler) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		h.fail(w, r, "invalid user id", err)
		return
	}
	favs, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "failed to list favorites", err)
		return
	}
	if h.grouped {
		httputil.WriteJSON(w, http.StatusOK, favs.Grouped())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, favs.Flattened())
}

func (h *Handler) handleAddFavoritePerson(w http.ResponseWriter, r *http.Request) {
	userID, personID, ok := h.personLinkParams(w, r)
	if !ok {
		return
	}
	if _, err := h.service.AddFavoritePerson(r.Context(), userID, personID); err != nil {
		h.fail(w, r, "failed to add favorite person", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MsgFavoritePersonAdded)
}

func (h *Handler) handleAddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, planetID, ok := h.planetLinkParams(w, r)
	if !ok {
		return
	}
	if _, err := h.service.AddFavoritePlanet(r.Context(), userID, planetID); err != nil {
		h.fail(w, r, "failed to add favorite planet", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MsgFavoritePlanetAdded)
}

func (h *Handler) handleRemoveFavoritePerson(w http.ResponseWriter, r *http.Request) {
	userID, personID, ok := h.personLinkParams(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveFavoritePerson(r.Context(), userID, personID); err != nil {
		h.fail(w, r, "failed to remove favorite person", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MsgFavoritePersonDelete)
}

func (h *Handler) handleRemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, planetID, ok := h.planetLinkParams(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveFavoritePlanet(r.Context(), userID, planetID); err != nil {
		h.fail(w, r, "failed to remove favorite planet", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MsgFavoritePlanetDelete)
}

func (h *Handler) personLinkParams(w http.ResponseWriter, r *http.Request) (id.UserID, id.PersonID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		h.fail(w, r, "invalid user id", err)
		return 0, 0, false
	}
	personID, err := id.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		h.fail(w, r, "invalid person id", err)
		return 0, 0, false
	}
	return userID, personID, true
}

func (h *Handler) planetLinkParams(w http.ResponseWriter, r *http.Request) (id.UserID, id.PlanetID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		h.fail(w, r, "invalid user id", err)
		return 0, 0, false
	}
	planetID, err := id.ParsePlanetID(chi.URLParam(r, "planetID"))
	if err != nil {
		h.fail(w, r, "invalid planet id", err)
		return 0, 0, false
	}
	return userID, planetID, true
}

// decode reads a JSON body. A missing, null or empty document is answered
// with "there's no data"; the same goes for a body that is not JSON at all.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := httputil.DecodeJSON(r, v)
	if err == nil {
		return true
	}
	ctx := r.Context()
	if !errors.Is(err, httputil.ErrEmptyBody) {
		h.logger.WarnContext(ctx, "undecodable request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, MsgNoData))
	return false
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if !dErrors.HasCode(err, dErrors.CodeNotFound) && !dErrors.HasCode(err, dErrors.CodeInvalidInput) {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
