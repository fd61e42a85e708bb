package asset

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowr/backend/domain"
	domainasset "github.com/stowr/backend/domain/asset"
	domainlocation "github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/repository/memory"
	"github.com/stowr/backend/usecase"
	uclocation "github.com/stowr/backend/usecase/location"
)

type memJournal struct {
	streams map[string][]usecase.EventRecord
}

func newMemJournal() *memJournal {
	return &memJournal{streams: make(map[string][]usecase.EventRecord)}
}

func (j *memJournal) Append(stream string, name string, payload json.RawMessage) (uint64, error) {
	seq := uint64(len(j.streams[stream]) + 1)
	j.streams[stream] = append(j.streams[stream], usecase.EventRecord{Seq: seq, Name: name, Payload: payload})
	return seq, nil
}

func (j *memJournal) Replay(stream string, fn func(usecase.EventRecord) error) error {
	for _, rec := range j.streams[stream] {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

type fixture struct {
	assets    *UseCase
	locations *uclocation.UseCase
	journal   *memJournal
}

func newFixture() fixture {
	journal := newMemJournal()
	locRepo := memory.NewLocationRepository()
	return fixture{
		assets:    New(memory.NewAssetRepository(), locRepo, journal, nil),
		locations: uclocation.New(locRepo, journal, nil),
		journal:   journal,
	}
}

func TestCreateAssetRequiresLocation(t *testing.T) {
	f := newFixture()

	_, err := f.assets.CreateAsset(context.Background(), "Crowbar", domain.NewId[domainlocation.LocationTag]())
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestCreateAndGetAsset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	loc, err := f.locations.CreateLocation(ctx, "Shed")
	require.NoError(t, err)

	created, err := f.assets.CreateAsset(ctx, "Crowbar", loc.Id)
	require.NoError(t, err)
	assert.False(t, created.Id.IsZero())

	got, err := f.assets.GetAsset(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Crowbar", got.Name)
	assert.Equal(t, loc.Id, got.Location)
}

func TestGetAssetUnknown(t *testing.T) {
	f := newFixture()

	_, err := f.assets.GetAsset(context.Background(), domain.NewId[domainasset.AssetTag]())
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestRenameAssetJournalsAndApplies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	loc, err := f.locations.CreateLocation(ctx, "Shed")
	require.NoError(t, err)
	created, err := f.assets.CreateAsset(ctx, "Old Name", loc.Id)
	require.NoError(t, err)

	renamed, err := f.assets.RenameAsset(ctx, created.Id, "New Name")
	require.NoError(t, err)
	assert.Equal(t, "New Name", renamed.Name)

	// The stored row is untouched; the rename lives in the journal.
	stream := f.journal.streams["asset:"+created.Id.String()]
	require.Len(t, stream, 1)
	assert.Equal(t, "Rename", stream[0].Name)

	got, err := f.assets.GetAsset(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func TestRelocateAssetChecksTarget(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	loc, err := f.locations.CreateLocation(ctx, "Shed")
	require.NoError(t, err)
	created, err := f.assets.CreateAsset(ctx, "Crowbar", loc.Id)
	require.NoError(t, err)

	_, err = f.assets.RelocateAsset(ctx, created.Id, domain.NewId[domainlocation.LocationTag]())
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	garage, err := f.locations.CreateLocation(ctx, "Garage")
	require.NoError(t, err)

	moved, err := f.assets.RelocateAsset(ctx, created.Id, garage.Id)
	require.NoError(t, err)
	assert.Equal(t, garage.Id, moved.Location)

	got, err := f.assets.GetAsset(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, garage.Id, got.Location)
}

func TestCommandsAccumulate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	loc, err := f.locations.CreateLocation(ctx, "Shed")
	require.NoError(t, err)
	created, err := f.assets.CreateAsset(ctx, "v1", loc.Id)
	require.NoError(t, err)

	for _, name := range []string{"v2", "v3", "v4"} {
		_, err := f.assets.RenameAsset(ctx, created.Id, name)
		require.NoError(t, err)
	}

	got, err := f.assets.GetAsset(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "v4", got.Name)
	assert.Len(t, f.journal.streams["asset:"+created.Id.String()], 3)
}
