package audit

import (
	"context"
	"strings"

	"github.com/mssola/useragent"

	"holocron/pkg/requestcontext"
)

// Enrich fills request correlation fields from ctx. Fields already set on
// the event are kept.
func Enrich(ctx context.Context, event Event) Event {
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Client == "" {
		event.Client = SummarizeUserAgent(requestcontext.UserAgent(ctx))
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = AuditEvent(event.Action).Category()
	}
	return event
}

// SummarizeUserAgent reduces a User-Agent header to "browser/os", or "bot"
// for crawlers. Unparseable or empty input yields "".
func SummarizeUserAgent(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ua := useragent.New(raw)
	if ua.Bot() {
		return "bot"
	}
	browser, _ := ua.Browser()
	os := ua.OS()
	switch {
	case browser == "" && os == "":
		return ""
	case os == "":
		return browser
	case browser == "":
		return os
	}
	return browser + "/" + os
}
