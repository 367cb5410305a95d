// Package models holds request and response shapes for the public API.
package models

import (
	catalog "holocron/internal/catalog/models"
	favorites "holocron/internal/favorites/models"
)

// CreatePersonRequest fields are optional; absent required values are left
// for the store to reject.
type CreatePersonRequest struct {
	Name      *string `json:"name"`
	Gender    *string `json:"gender"`
	BirthYear *string `json:"birth_year"`
}

func (r CreatePersonRequest) ToNewPerson() catalog.NewPerson {
	return catalog.NewPerson{Name: r.Name, Gender: r.Gender, BirthYear: r.BirthYear}
}

type CreatePlanetRequest struct {
	Name       *string `json:"name"`
	Population *int64  `json:"population"`
	Terrain    *string `json:"terrain"`
}

func (r CreatePlanetRequest) ToNewPlanet() catalog.NewPlanet {
	return catalog.NewPlanet{Name: r.Name, Population: r.Population, Terrain: r.Terrain}
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type PersonResponse struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Gender    string  `json:"gender"`
	BirthYear string  `json:"birth_year"`
}

type PlanetResponse struct {
	ID         int64   `json:"id"`
	Name       *string `json:"name"`
	Population int64   `json:"population"`
	Terrain    string  `json:"terrain"`
}

type FavoritePersonResponse struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"user_id"`
	Person *PersonResponse `json:"person"`
}

type FavoritePlanetResponse struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"user_id"`
	Planet *PlanetResponse `json:"planet"`
}

// GroupedFavoritesResponse is the favorites shape when grouping is enabled.
type GroupedFavoritesResponse struct {
	People  []FavoritePersonResponse `json:"people"`
	Planets []FavoritePlanetResponse `json:"planets"`
}

// Favorites is a user's two link lists as returned by the service.
type Favorites struct {
	People  []*favorites.FavoritePerson
	Planets []*favorites.FavoritePlanet
}

func ToUserResponse(u *catalog.User) UserResponse {
	return UserResponse{ID: int64(u.ID), Email: u.Email}
}

func ToUserResponses(users []*catalog.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToPersonResponse(p *catalog.Person) *PersonResponse {
	if p == nil {
		return nil
	}
	return &PersonResponse{ID: int64(p.ID), Name: p.Name, Gender: p.Gender, BirthYear: p.BirthYear}
}

func ToPersonResponses(people []*catalog.Person) []*PersonResponse {
	out := make([]*PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, ToPersonResponse(p))
	}
	return out
}

func ToPlanetResponse(p *catalog.Planet) *PlanetResponse {
	if p == nil {
		return nil
	}
	return &PlanetResponse{ID: int64(p.ID), Name: p.Name, Population: p.Population, Terrain: p.Terrain}
}

func ToPlanetResponses(planets []*catalog.Planet) []*PlanetResponse {
	out := make([]*PlanetResponse, 0, len(planets))
	for _, p := range planets {
		out = append(out, ToPlanetResponse(p))
	}
	return out
}

func ToFavoritePersonResponse(f *favorites.FavoritePerson) FavoritePersonResponse {
	return FavoritePersonResponse{ID: int64(f.ID), UserID: int64(f.UserID), Person: ToPersonResponse(f.Person)}
}

func ToFavoritePlanetResponse(f *favorites.FavoritePlanet) FavoritePlanetResponse {
	return FavoritePlanetResponse{ID: int64(f.ID), UserID: int64(f.UserID), Planet: ToPlanetResponse(f.Planet)}
}

// Grouped renders {"people": [...], "planets": [...]}.
func (f Favorites) Grouped() GroupedFavoritesResponse {
	out := GroupedFavoritesResponse{
		People:  make([]FavoritePersonResponse, 0, len(f.People)),
		Planets: make([]FavoritePlanetResponse, 0, len(f.Planets)),
	}
	for _, p := range f.People {
		out.People = append(out.People, ToFavoritePersonResponse(p))
	}
	for _, p := range f.Planets {
		out.Planets = append(out.Planets, ToFavoritePlanetResponse(p))
	}
	return out
}

// Flattened renders the legacy shape: every person favorite, then a single
// trailing element holding the array of planet favorites. A user with no
// favorites yields [[]].
func (f Favorites) Flattened() []any {
	grouped := f.Grouped()
	out := make([]any, 0, len(grouped.People)+1)
	for _, p := range grouped.People {
		out = append(out, p)
	}
	return append(out, grouped.Planets)
}
