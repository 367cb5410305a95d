package testutil

import (
	"net/http"

	"holocron/pkg/requestcontext"
)

// WithClientIP sets the client metadata the metadata middleware would set.
func WithClientIP(req *http.Request, ip string) *http.Request {
	ctx := requestcontext.WithClientMetadata(req.Context(), ip, req.UserAgent())
	return req.WithContext(ctx)
}

// WithRequestID sets the request id the RequestID middleware would set.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
