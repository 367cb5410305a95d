package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "holocron/internal/catalog/models"
	favorites "holocron/internal/favorites/models"
	id "holocron/pkg/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleFavorites() Favorites {
	return Favorites{
		People: []*favorites.FavoritePerson{{
			ID: 1, UserID: 1, PersonID: 1,
			Person: &catalog.Person{ID: 1, Name: ptr("Luke"), Gender: "male", BirthYear: "19BBY"},
		}},
		Planets: []*favorites.FavoritePlanet{{
			ID: 4, UserID: 1, PlanetID: 2,
			Planet: &catalog.Planet{ID: 2, Name: ptr("Tatooine"), Population: 200000, Terrain: "desert"},
		}},
	}
}

func TestFavorites_Flattened(t *testing.T) {
	raw, err := json.Marshal(sampleFavorites().Flattened())
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":1,"user_id":1,"person":{"id":1,"name":"Luke","gender":"male","birth_year":"19BBY"}},
		[{"id":4,"user_id":1,"planet":{"id":2,"name":"Tatooine","population":200000,"terrain":"desert"}}]
	]`, string(raw))
}

func TestFavorites_FlattenedEmpty(t *testing.T) {
	raw, err := json.Marshal(Favorites{}.Flattened())
	require.NoError(t, err)
	assert.JSONEq(t, `[[]]`, string(raw))
}

func TestFavorites_Grouped(t *testing.T) {
	raw, err := json.Marshal(sampleFavorites().Grouped())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"people":[{"id":1,"user_id":1,"person":{"id":1,"name":"Luke","gender":"male","birth_year":"19BBY"}}],
		"planets":[{"id":4,"user_id":1,"planet":{"id":2,"name":"Tatooine","population":200000,"terrain":"desert"}}]
	}`, string(raw))

	raw, err = json.Marshal(Favorites{}.Grouped())
	require.NoError(t, err)
	assert.JSONEq(t, `{"people":[],"planets":[]}`, string(raw))
}

func TestResponsesSerializeAbsentNameAsNull(t *testing.T) {
	raw, err := json.Marshal(ToPersonResponse(&catalog.Person{ID: 3, Gender: "n/a", BirthYear: "unknown"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":null,"gender":"n/a","birth_year":"unknown"}`, string(raw))
}

func TestUserResponseOmitsPassword(t *testing.T) {
	raw, err := json.Marshal(ToUserResponse(&catalog.User{ID: id.UserID(1), Email: "luke@rebellion.org", PasswordHash: "secret"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"email":"luke@rebellion.org"}`, string(raw))
}
