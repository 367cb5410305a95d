package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: no record matches the lookup
//   - ErrConstraint: the store rejected a write (NOT NULL, UNIQUE, FOREIGN KEY)
//   - ErrUnavailable: the backing service cannot be reached
//
// Validation of client input belongs to pkg/domain-errors, not here.
var (
	ErrNotFound    = errors.New("not found")
	ErrConstraint  = errors.New("constraint violation")
	ErrUnavailable = errors.New("unavailable")
)

// ConstraintViolation is ErrConstraint carrying the backend's own message
// and, for SQL stores, the driver error.
type ConstraintViolation struct {
	Detail string
	Err    error
}

func (e *ConstraintViolation) Error() string { return e.Detail }

func (e *ConstraintViolation) Unwrap() error { return e.Err }

func (e *ConstraintViolation) Is(target error) bool { return target == ErrConstraint }

// Constraint returns a ConstraintViolation for detail.
func Constraint(detail string) error {
	return &ConstraintViolation{Detail: detail}
}
