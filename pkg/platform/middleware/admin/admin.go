package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"holocron/pkg/platform/httputil"
	"holocron/pkg/requestcontext"
)

// HeaderAdminToken carries the shared administration secret.
const HeaderAdminToken = "X-Admin-Token"

// RequireAdminToken rejects requests whose X-Admin-Token does not match
// expectedToken. An empty expectedToken rejects everything so that an
// unconfigured deployment never exposes admin routes.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if expectedToken == "" {
				logger.WarnContext(ctx, "admin route called but admin token not configured",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteMessage(w, http.StatusForbidden, "admin interface disabled")
				return
			}
			token := r.Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteMessage(w, http.StatusUnauthorized, "admin token required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
