package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowr/backend/domain"
	"github.com/stowr/backend/domain/asset"
	"github.com/stowr/backend/domain/location"
)

func TestCreateAndFetch(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository()

	id := domain.NewId[location.LocationTag]()
	loc := location.NewLocation(id, "warehouse")

	created, err := repo.Create(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, loc, created)

	fetched, err := repo.Fetch(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, loc, *fetched)
}

func TestFetchUnknownIdYieldsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository()

	_, err := repo.Create(ctx, location.NewLocation(domain.NewId[location.LocationTag](), "warehouse"))
	require.NoError(t, err)

	fetched, err := repo.Fetch(ctx, domain.NewId[location.LocationTag]())
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestStoresAreScopedPerEntity(t *testing.T) {
	ctx := context.Background()
	assets := NewAssetRepository()

	locId := domain.NewId[location.LocationTag]()
	a := asset.NewAsset(domain.NewId[asset.AssetTag](), "forklift", locId)
	_, err := assets.Create(ctx, a)
	require.NoError(t, err)

	fetched, err := assets.Fetch(ctx, a.Id)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "forklift", fetched.Name)
	assert.Equal(t, locId, fetched.Location)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := NewStore(func(l location.Location) location.LocationId { return l.Id })

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, location.NewLocation(domain.NewId[location.LocationTag](), "shelf"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, n, store.Len())
}
