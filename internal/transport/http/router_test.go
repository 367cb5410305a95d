package httptransport_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accesshandler "holocron/internal/access/handler"
	"holocron/internal/access/service"
	catalog "holocron/internal/catalog/models"
	catalogstore "holocron/internal/catalog/store"
	favoritestore "holocron/internal/favorites/store"
	"holocron/internal/platform/database"
	"holocron/internal/platform/metrics"
	"holocron/internal/platform/middleware"
	ratelimitmw "holocron/internal/ratelimit/middleware"
	"holocron/internal/ratelimit/models"
	"holocron/internal/ratelimit/service/requestlimit"
	"holocron/internal/ratelimit/store/bucket"
	httptransport "holocron/internal/transport/http"
	"holocron/pkg/testutil"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(t *testing.T, mutate func(*httptransport.Config)) (http.Handler, *catalogstore.InMemory) {
	t.Helper()
	cat := catalogstore.NewInMemory()
	svc := service.New(cat, favoritestore.NewInMemory(cat), database.NopTransactor{})
	reg := prometheus.NewRegistry()
	cfg := httptransport.Config{
		Logger:  discard(),
		Metrics: metrics.NewWithRegistry(reg, reg),
		Public:  []httptransport.Registrar{accesshandler.New(svc, discard())},
		Health: map[string]httptransport.HealthChecker{
			"database": httptransport.HealthFunc(func(context.Context) error { return nil }),
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return httptransport.NewRouter(cfg), cat
}

func TestRouter(t *testing.T) {
	testutil.Given(t, "the assembled router", func(t *testing.T) {
		router, cat := newRouter(t, nil)

		testutil.When(t, "creating and fetching a person", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/people", map[string]string{
				"name": "Luke Skywalker", "gender": "male", "birth_year": "19BBY",
			}))
			testutil.AssertStatus(t, rr, http.StatusOK)
			testutil.AssertMessage(t, rr, "PEOPLE ADDED")

			rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/people/1"))

			testutil.Then(t, "the record round-trips with a request id header", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
				person := testutil.UnmarshalResponse[map[string]any](t, rr)
				assert.Equal(t, "Luke Skywalker", (*person)["name"])
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))
			})
		})

		testutil.When(t, "a path has a trailing slash", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/people/"))

			testutil.Then(t, "it is routed as without", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
			})
		})

		testutil.When(t, "adding a favorite and listing it", func(t *testing.T) {
			_, err := cat.InsertUser(context.Background(), catalog.NewUser{Email: "luke@rebellion.org", PasswordHash: "x"})
			require.NoError(t, err)

			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/user/1/favorites/people/1"))
			testutil.AssertMessage(t, rr, "People add to favorites")

			rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/user/1/favorites"))

			testutil.Then(t, "the favorite carries the nested person", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
				assert.Contains(t, rr.Body.String(), `"person":{"id":1`)
			})
		})

		testutil.When(t, "calling an unknown route", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/starships"))

			testutil.Then(t, "it responds with a status envelope", func(t *testing.T) {
				testutil.AssertStatusEnvelope(t, rr, http.StatusNotFound)
			})
		})

		testutil.When(t, "using a path id that is not an integer", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/planet/tatooine"))

			testutil.Then(t, "no route matches", func(t *testing.T) {
				testutil.AssertStatusEnvelope(t, rr, http.StatusNotFound)
			})
		})

		testutil.When(t, "using the wrong method", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPut, "/people"))

			testutil.Then(t, "it responds 405 with a status envelope", func(t *testing.T) {
				testutil.AssertStatusEnvelope(t, rr, http.StatusMethodNotAllowed)
			})
		})

		testutil.When(t, "requesting the sitemap", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/"))

			testutil.Then(t, "it lists the registered routes", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
				routes := *testutil.UnmarshalResponse[[]string](t, rr)
				assert.Contains(t, routes, "GET /people")
				assert.Contains(t, routes, "DELETE /user/{userID:[0-9]+}/favorites/planet/{planetID:[0-9]+}")
				assert.Contains(t, routes, "GET /healthz")
			})
		})

		testutil.When(t, "scraping metrics", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

			testutil.Then(t, "request series are labelled by route pattern", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
				assert.Contains(t, rr.Body.String(), `route="/people/{id:[0-9]+}"`)
			})
		})
	})
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, _ := newRouter(t, nil)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.JSONEq(t, `{"status":"ok","checks":{"database":"ok"}}`, rr.Body.String())
	})

	t.Run("a failing dependency answers 503", func(t *testing.T) {
		router, _ := newRouter(t, func(cfg *httptransport.Config) {
			cfg.Health["redis"] = httptransport.HealthFunc(func(context.Context) error { return errors.New("dial tcp: refused") })
		})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		assert.JSONEq(t, `{"status":"degraded","checks":{"database":"ok","redis":"unavailable"}}`, rr.Body.String())
	})
}

func TestRateLimitAppliesToPublicRoutesOnly(t *testing.T) {
	limiter, err := requestlimit.New(bucket.NewInMemoryBucketStore(), models.Limit{RequestsPerWindow: 1, Window: time.Minute})
	require.NoError(t, err)
	router, _ := newRouter(t, func(cfg *httptransport.Config) {
		cfg.RateLimit = ratelimitmw.New(limiter, discard()).RateLimit
	})

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/people"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, "0", rr.Header().Get(ratelimitmw.HeaderRemaining))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/planet"))
	testutil.AssertStatusEnvelope(t, rr, http.StatusTooManyRequests)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRecoveryRendersPanics(t *testing.T) {
	router, _ := newRouter(t, func(cfg *httptransport.Config) {
		cfg.Public = append(cfg.Public, panicRoute{})
	})

	req := testutil.NewRequest(t, http.MethodGet, "/boom")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusEnvelope(t, rr, http.StatusInternalServerError)
	assert.False(t, strings.Contains(rr.Body.String(), "kaboom"))
}

type panicRoute struct{}

func (panicRoute) Register(r chi.Router) {
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })
}

func TestCORS(t *testing.T) {
	preflight := func(t *testing.T, router http.Handler, origin string) *httptest.ResponseRecorder {
		req := testutil.NewRequest(t, http.MethodOptions, "/people")
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		return testutil.DoRequest(router, req)
	}

	testutil.Given(t, "any origin is allowed", func(t *testing.T) {
		router, _ := newRouter(t, func(cfg *httptransport.Config) {
			cfg.CORSOrigins = []string{"*"}
		})

		testutil.When(t, "a browser sends a preflight", func(t *testing.T) {
			rr := preflight(t, router, "https://app.example")

			testutil.Then(t, "it is answered before routing", func(t *testing.T) {
				assert.Equal(t, http.StatusNoContent, rr.Code)
				assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			})
		})

		testutil.When(t, "a cross-origin GET is made", func(t *testing.T) {
			req := testutil.NewRequest(t, http.MethodGet, "/people")
			req.Header.Set("Origin", "https://app.example")
			rr := testutil.DoRequest(router, req)

			testutil.Then(t, "the response carries the allow-origin header", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
				assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			})
		})
	})

	testutil.Given(t, "a restricted origin list", func(t *testing.T) {
		router, _ := newRouter(t, func(cfg *httptransport.Config) {
			cfg.CORSOrigins = []string{"https://app.example"}
		})

		testutil.When(t, "a listed and an unlisted origin call", func(t *testing.T) {
			allowed := testutil.NewRequest(t, http.MethodGet, "/planet")
			allowed.Header.Set("Origin", "https://app.example")
			denied := testutil.NewRequest(t, http.MethodGet, "/planet")
			denied.Header.Set("Origin", "https://evil.example")

			testutil.Then(t, "only the listed origin is echoed", func(t *testing.T) {
				rr := testutil.DoRequest(router, allowed)
				assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))

				rr = testutil.DoRequest(router, denied)
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			})
		})
	})

	testutil.Given(t, "CORS is disabled", func(t *testing.T) {
		router, _ := newRouter(t, nil)

		testutil.Then(t, "a preflight falls through to method not allowed", func(t *testing.T) {
			rr := preflight(t, router, "https://app.example")
			testutil.AssertStatusEnvelope(t, rr, http.StatusMethodNotAllowed)
			assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	})
}
