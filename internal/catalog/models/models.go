// Package models defines the catalog records: users, people and planets.
package models

import id "holocron/pkg/domain"

// User is an account that can own favorites. PasswordHash never leaves the
// service layer.
type User struct {
	ID           id.UserID
	Email        string
	PasswordHash string
}

// Person is a character. Name is optional.
type Person struct {
	ID        id.PersonID
	Name      *string
	Gender    string
	BirthYear string
}

// Planet is a world. Name is optional.
type Planet struct {
	ID         id.PlanetID
	Name       *string
	Population int64
	Terrain    string
}

// NewPerson carries insert input. Nil fields are written as NULL and left to
// the store's NOT NULL constraints.
type NewPerson struct {
	Name      *string
	Gender    *string
	BirthYear *string
}

// NewPlanet carries insert input. Nil fields are written as NULL.
type NewPlanet struct {
	Name       *string
	Population *int64
	Terrain    *string
}

// NewUser carries insert input for out-of-band user creation.
type NewUser struct {
	Email        string
	PasswordHash string
}
