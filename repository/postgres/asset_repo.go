package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stowr/backend/domain"
	"github.com/stowr/backend/domain/asset"
	"github.com/stowr/backend/domain/location"
)

type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository returns a Postgres-backed implementation of AssetRepo.
func NewAssetRepository(pool *pgxpool.Pool) asset.AssetRepo {
	return &assetRepository{pool: pool}
}

func (r *assetRepository) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	if a.Id.IsZero() {
		a.Id = domain.NewId[asset.AssetTag]()
	}

	const query = `
	INSERT INTO assets (id, name, location_id)
	VALUES ($1, $2, $3)
	`
	if _, err := r.pool.Exec(ctx, query, a.Id.String(), a.Name, a.Location.String()); err != nil {
		return asset.Asset{}, err
	}
	return a, nil
}

func (r *assetRepository) Fetch(ctx context.Context, id asset.AssetId) (*asset.Asset, error) {
	const query = `
	SELECT id, name, location_id
	FROM assets
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id.String())
	a, err := scanAsset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func scanAsset(row interface {
	Scan(dest ...interface{}) error
}) (*asset.Asset, error) {
	var (
		a        asset.Asset
		rawID    string
		rawLocID string
	)
	if err := row.Scan(&rawID, &a.Name, &rawLocID); err != nil {
		return nil, err
	}

	id, err := domain.ParseId[asset.AssetTag](rawID)
	if err != nil {
		return nil, err
	}
	locID, err := domain.ParseId[location.LocationTag](rawLocID)
	if err != nil {
		return nil, err
	}

	a.Id = id
	a.Location = locID
	return &a, nil
}
