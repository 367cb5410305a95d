package audit

import (
	"context"
	"time"

	id "holocron/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so sinks
// can route or sample them differently.
type EventCategory string

const (
	// CategoryCompliance covers account lifecycle (user creation).
	CategoryCompliance EventCategory = "compliance"
	// CategorySecurity covers abuse signals such as rate limit rejections.
	CategorySecurity EventCategory = "security"
	// CategoryOperations covers routine catalog and favorites mutations.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted after a successful mutation. Keep it transport-agnostic
// so sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Action    string
	// UserID is zero for events not tied to a user (catalog creates).
	UserID id.UserID
	// SubjectType and SubjectID name the record the action touched.
	SubjectType string
	SubjectID   int64
	RequestID   string
	ClientIP    string
	// Client is a short "browser/os" summary of the caller's User-Agent.
	Client string
}

type AuditEvent string

const (
	EventUserCreated AuditEvent = "user_created"

	EventPersonCreated AuditEvent = "person_created"
	EventPlanetCreated AuditEvent = "planet_created"

	EventFavoritePersonAdded   AuditEvent = "favorite_person_added"
	EventFavoritePersonRemoved AuditEvent = "favorite_person_removed"
	EventFavoritePlanetAdded   AuditEvent = "favorite_planet_added"
	EventFavoritePlanetRemoved AuditEvent = "favorite_planet_removed"

	EventRateLimitExceeded AuditEvent = "rate_limit_exceeded"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventUserCreated:       CategoryCompliance,
	EventRateLimitExceeded: CategorySecurity,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Sink persists or forwards events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is a Sink that can also be queried.
type Store interface {
	Sink
	ListByUser(ctx context.Context, userID id.UserID) ([]Event, error)
}
