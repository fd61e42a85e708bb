package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stowr/backend/domain"
	"github.com/stowr/backend/domain/location"
)

type locationRepository struct {
	pool *pgxpool.Pool
}

// NewLocationRepository returns a Postgres-backed implementation of LocationRepo.
func NewLocationRepository(pool *pgxpool.Pool) location.LocationRepo {
	return &locationRepository{pool: pool}
}

func (r *locationRepository) Create(ctx context.Context, l location.Location) (location.Location, error) {
	if l.Id.IsZero() {
		l.Id = domain.NewId[location.LocationTag]()
	}

	const query = `
	INSERT INTO locations (id, name)
	VALUES ($1, $2)
	`
	if _, err := r.pool.Exec(ctx, query, l.Id.String(), l.Name); err != nil {
		return location.Location{}, err
	}
	return l, nil
}

func (r *locationRepository) Fetch(ctx context.Context, id location.LocationId) (*location.Location, error) {
	const query = `
	SELECT id, name
	FROM locations
	WHERE id = $1
	`
	var (
		l     location.Location
		rawID string
	)
	err := r.pool.QueryRow(ctx, query, id.String()).Scan(&rawID, &l.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseId[location.LocationTag](rawID)
	if err != nil {
		return nil, err
	}
	l.Id = parsed
	return &l, nil
}
