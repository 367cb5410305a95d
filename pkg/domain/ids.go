// Package domain holds identifier primitives shared across modules.
//
// Identifiers are positive integers assigned by the store. Each entity gets
// its own named type so a PersonID cannot be passed where a PlanetID is
// expected. Zero is never assigned.
package domain

import (
	"strconv"
	"strings"

	dErrors "holocron/pkg/domain-errors"
)

type (
	UserID     int64
	PersonID   int64
	PlanetID   int64
	FavoriteID int64
)

func (id UserID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id PersonID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id PlanetID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id FavoriteID) String() string { return strconv.FormatInt(int64(id), 10) }

// parseID accepts any run of decimal digits. Ids the store never assigned
// (zero, or values past int64) are not errors: they parse to an id that
// simply finds no record.
func parseID(s, kind string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	if strings.TrimLeft(s, "0123456789") != "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Only a range error is possible here.
		return 0, nil
	}
	return v, nil
}

// ParseUserID parses a decimal user id from a path segment.
func ParseUserID(s string) (UserID, error) {
	v, err := parseID(s, "user id")
	return UserID(v), err
}

// ParsePersonID parses a decimal person id from a path segment.
func ParsePersonID(s string) (PersonID, error) {
	v, err := parseID(s, "person id")
	return PersonID(v), err
}

// ParsePlanetID parses a decimal planet id from a path segment.
func ParsePlanetID(s string) (PlanetID, error) {
	v, err := parseID(s, "planet id")
	return PlanetID(v), err
}
