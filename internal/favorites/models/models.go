// Package models defines favorite links between users and catalog records.
package models

import (
	catalog "holocron/internal/catalog/models"
	id "holocron/pkg/domain"
)

// FavoritePerson links a user to a person. Person is populated by list
// queries and nil otherwise.
type FavoritePerson struct {
	ID       id.FavoriteID
	UserID   id.UserID
	PersonID id.PersonID
	Person   *catalog.Person
}

// FavoritePlanet links a user to a planet. Planet is populated by list
// queries and nil otherwise.
type FavoritePlanet struct {
	ID       id.FavoriteID
	UserID   id.UserID
	PlanetID id.PlanetID
	Planet   *catalog.Planet
}
