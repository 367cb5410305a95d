package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"holocron/internal/catalog/models"
	"holocron/internal/platform/database"
	id "holocron/pkg/domain"
	"holocron/pkg/platform/sentinel"
	txcontext "holocron/pkg/platform/tx"
)

// SQLStore persists the catalog in PostgreSQL or SQLite. Writes join the
// transaction carried by the context, if any.
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

func (s *SQLStore) ListPeople(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, `SELECT id, name, gender, birth_year FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	var out []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListPlanets(ctx context.Context) ([]*models.Planet, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, `SELECT id, name, population, terrain FROM planet ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	defer rows.Close()

	var out []*models.Planet
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan planet: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, `SELECT id, email, password FROM "user" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetPerson(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		s.q(`SELECT id, name, gender, birth_year FROM people WHERE id = ?`), int64(personID))
	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("person %d: %w", personID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

func (s *SQLStore) GetPlanet(ctx context.Context, planetID id.PlanetID) (*models.Planet, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		s.q(`SELECT id, name, population, terrain FROM planet WHERE id = ?`), int64(planetID))
	p, err := scanPlanet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("planet %d: %w", planetID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get planet: %w", err)
	}
	return p, nil
}

func (s *SQLStore) GetUser(ctx context.Context, userID id.UserID) (*models.User, error) {
	var u models.User
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`SELECT id, email, password FROM "user" WHERE id = ?`), int64(userID),
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *SQLStore) InsertPerson(ctx context.Context, in models.NewPerson) (*models.Person, error) {
	var newID int64
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`INSERT INTO people (name, gender, birth_year) VALUES (?, ?, ?) RETURNING id`),
		nullString(in.Name), nullString(in.Gender), nullString(in.BirthYear),
	).Scan(&newID)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	return &models.Person{
		ID:        id.PersonID(newID),
		Name:      in.Name,
		Gender:    *in.Gender,
		BirthYear: *in.BirthYear,
	}, nil
}

func (s *SQLStore) InsertPlanet(ctx context.Context, in models.NewPlanet) (*models.Planet, error) {
	var population sql.NullInt64
	if in.Population != nil {
		population = sql.NullInt64{Int64: *in.Population, Valid: true}
	}
	var newID int64
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`INSERT INTO planet (name, population, terrain) VALUES (?, ?, ?) RETURNING id`),
		nullString(in.Name), population, nullString(in.Terrain),
	).Scan(&newID)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	return &models.Planet{
		ID:         id.PlanetID(newID),
		Name:       in.Name,
		Population: *in.Population,
		Terrain:    *in.Terrain,
	}, nil
}

func (s *SQLStore) InsertUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	var newID int64
	err := s.exec(ctx).QueryRowContext(ctx,
		s.q(`INSERT INTO "user" (email, password) VALUES (?, ?) RETURNING id`),
		in.Email, in.PasswordHash,
	).Scan(&newID)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	return &models.User{ID: id.UserID(newID), Email: in.Email, PasswordHash: in.PasswordHash}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner) (*models.Person, error) {
	var (
		p    models.Person
		name sql.NullString
	)
	if err := row.Scan(&p.ID, &name, &p.Gender, &p.BirthYear); err != nil {
		return nil, err
	}
	if name.Valid {
		p.Name = &name.String
	}
	return &p, nil
}

func scanPlanet(row scanner) (*models.Planet, error) {
	var (
		p    models.Planet
		name sql.NullString
	)
	if err := row.Scan(&p.ID, &name, &p.Population, &p.Terrain); err != nil {
		return nil, err
	}
	if name.Valid {
		p.Name = &name.String
	}
	return &p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
