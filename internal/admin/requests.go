package admin

import (
	"net/mail"
	"strings"

	dErrors "holocron/pkg/domain-errors"
)

const maxEmailLen = 254

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CreateUserRequest) Normalize() {
	if r == nil {
		return
	}
	r.Email = strings.TrimSpace(r.Email)
}

// Follows validation order: Size -> Required -> Syntax.
func (r *CreateUserRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.Email) > maxEmailLen {
		return dErrors.New(dErrors.CodeInvalidInput, "email must be 254 characters or less")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "email is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "password is required")
	}
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != r.Email {
		return dErrors.New(dErrors.CodeInvalidInput, "email is invalid")
	}
	return nil
}
