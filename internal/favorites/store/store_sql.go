package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	catalog "holocron/internal/catalog/models"
	"holocron/internal/favorites/models"
	"holocron/internal/platform/database"
	id "holocron/pkg/domain"
	"holocron/pkg/platform/sentinel"
	txcontext "holocron/pkg/platform/tx"
)

// SQLStore persists favorite links in the fav_people and fav_planet tables.
type SQLStore struct {
	db *database.DB
}

func NewSQL(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) exec(ctx context.Context) txcontext.DBTX {
	return txcontext.Executor(ctx, s.db.DB)
}

func (s *SQLStore) q(query string) string {
	return database.Rebind(s.db.Dialect, query)
}

func (s *SQLStore) ListPeopleByUser(ctx context.Context, userID id.UserID) ([]*models.FavoritePerson, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(`
		SELECT f.id, f.user_id, f.people_id, p.id, p.name, p.gender, p.birth_year
		FROM fav_people f
		JOIN people p ON p.id = f.people_id
		WHERE f.user_id = ?
		ORDER BY f.id`), int64(userID))
	if err != nil {
		return nil, fmt.Errorf("list favorite people: %w", err)
	}
	defer rows.Close()

	out := []*models.FavoritePerson{}
	for rows.Next() {
		var (
			f    models.FavoritePerson
			p    catalog.Person
			name sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.UserID, &f.PersonID, &p.ID, &name, &p.Gender, &p.BirthYear); err != nil {
			return nil, fmt.Errorf("scan favorite person: %w", err)
		}
		if name.Valid {
			p.Name = &name.String
		}
		f.Person = &p
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListPlanetsByUser(ctx context.Context, userID id.UserID) ([]*models.FavoritePlanet, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, s.q(`
		SELECT f.id, f.user_id, f.planet_id, p.id, p.name, p.population, p.terrain
		FROM fav_planet f
		JOIN planet p ON p.id = f.planet_id
		WHERE f.user_id = ?
		ORDER BY f.id`), int64(userID))
	if err != nil {
		return nil, fmt.Errorf("list favorite planets: %w", err)
	}
	defer rows.Close()

	out := []*models.FavoritePlanet{}
	for rows.Next() {
		var (
			f    models.FavoritePlanet
			p    catalog.Planet
			name sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlanetID, &p.ID, &name, &p.Population, &p.Terrain); err != nil {
			return nil, fmt.Errorf("scan favorite planet: %w", err)
		}
		if name.Valid {
			p.Name = &name.String
		}
		f.Planet = &p
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (s *SQLStore) InsertFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*models.FavoritePerson, error) {
	var newID int64
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`INSERT INTO fav_people (user_id, people_id) VALUES (?, ?) RETURNING id`),
		int64(userID), int64(personID),
	).Scan(&newID)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	return &models.FavoritePerson{ID: id.FavoriteID(newID), UserID: userID, PersonID: personID}, nil
}

func (s *SQLStore) InsertFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*models.FavoritePlanet, error) {
	var newID int64
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`INSERT INTO fav_planet (user_id, planet_id) VALUES (?, ?) RETURNING id`),
		int64(userID), int64(planetID),
	).Scan(&newID)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	return &models.FavoritePlanet{ID: id.FavoriteID(newID), UserID: userID, PlanetID: planetID}, nil
}

func (s *SQLStore) FindFavoritePerson(ctx context.Context, userID id.UserID, personID id.PersonID) (*models.FavoritePerson, error) {
	var f models.FavoritePerson
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`SELECT id, user_id, people_id FROM fav_people WHERE user_id = ? AND people_id = ? ORDER BY id LIMIT 1`),
		int64(userID), int64(personID),
	).Scan(&f.ID, &f.UserID, &f.PersonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("favorite person %d for user %d: %w", personID, userID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find favorite person: %w", err)
	}
	return &f, nil
}

func (s *SQLStore) FindFavoritePlanet(ctx context.Context, userID id.UserID, planetID id.PlanetID) (*models.FavoritePlanet, error) {
	var f models.FavoritePlanet
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`SELECT id, user_id, planet_id FROM fav_planet WHERE user_id = ? AND planet_id = ? ORDER BY id LIMIT 1`),
		int64(userID), int64(planetID),
	).Scan(&f.ID, &f.UserID, &f.PlanetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("favorite planet %d for user %d: %w", planetID, userID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find favorite planet: %w", err)
	}
	return &f, nil
}

func (s *SQLStore) DeleteFavoritePerson(ctx context.Context, fav *models.FavoritePerson) error {
	return s.deleteByID(ctx, `DELETE FROM fav_people WHERE id = ?`, fav.ID)
}

func (s *SQLStore) DeleteFavoritePlanet(ctx context.Context, fav *models.FavoritePlanet) error {
	return s.deleteByID(ctx, `DELETE FROM fav_planet WHERE id = ?`, fav.ID)
}

func (s *SQLStore) deleteByID(ctx context.Context, query string, favID id.FavoriteID) error {
	res, err := s.exec(ctx).ExecContext(ctx, s.q(query), int64(favID))
	if err != nil {
		return database.ClassifyError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete favorite %d: %w", favID, err)
	}
	if n == 0 {
		return fmt.Errorf("favorite %d: %w", favID, sentinel.ErrNotFound)
	}
	return nil
}
