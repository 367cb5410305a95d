package admin

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	catalogstore "holocron/internal/catalog/store"
	"holocron/pkg/passwords"
	adminmw "holocron/pkg/platform/middleware/admin"
)

const testToken = "rogue-one"

func newAdminRouter(token string) http.Handler {
	svc := NewService(catalogstore.NewInMemory(), passwords.Hasher{Cost: bcrypt.MinCost})
	r := chi.NewRouter()
	NewHandler(svc, token, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func send(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(adminmw.HeaderAdminToken, token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAdminUsers(t *testing.T) {
	r := newAdminRouter(testToken)

	rr := send(r, http.MethodPost, "/admin/users", testToken, `{"email":"leia@alderaan.gov","password":"help-me-obi-wan"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"id":1,"email":"leia@alderaan.gov"}`, rr.Body.String())

	rr = send(r, http.MethodPost, "/admin/users", testToken, `{"email":"leia@alderaan.gov","password":"help-me-obi-wan"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = send(r, http.MethodGet, "/admin/users", testToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list UsersListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestAdminUsersGuard(t *testing.T) {
	t.Run("wrong token", func(t *testing.T) {
		rr := send(newAdminRouter(testToken), http.MethodGet, "/admin/users", "nope", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rr := send(newAdminRouter(testToken), http.MethodGet, "/admin/users", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("disabled without configured token", func(t *testing.T) {
		rr := send(newAdminRouter(""), http.MethodGet, "/admin/users", "anything", "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestAdminCreateUserBadBody(t *testing.T) {
	rr := send(newAdminRouter(testToken), http.MethodPost, "/admin/users", testToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = send(newAdminRouter(testToken), http.MethodPost, "/admin/users", testToken, `{"email":"x@y.io","password":"tiny"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
