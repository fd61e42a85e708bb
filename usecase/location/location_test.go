package location

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowr/backend/domain"
	domainlocation "github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/repository/memory"
	"github.com/stowr/backend/usecase"
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

func TestCreateAndGetLocation(t *testing.T) {
	uc := New(memory.NewLocationRepository(), newMemJournal(), nil)
	ctx := context.Background()

	created, err := uc.CreateLocation(ctx, "Shed")
	require.NoError(t, err)
	assert.False(t, created.Id.IsZero())

	got, err := uc.GetLocation(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Shed", got.Name)
}

func TestGetLocationUnknown(t *testing.T) {
	uc := New(memory.NewLocationRepository(), newMemJournal(), nil)

	_, err := uc.GetLocation(context.Background(), domain.NewId[domainlocation.LocationTag]())
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestRenameLocation(t *testing.T) {
	journal := newMemJournal()
	uc := New(memory.NewLocationRepository(), journal, nil)
	ctx := context.Background()

	created, err := uc.CreateLocation(ctx, "Shed")
	require.NoError(t, err)

	renamed, err := uc.RenameLocation(ctx, created.Id, "Garage")
	require.NoError(t, err)
	assert.Equal(t, "Garage", renamed.Name)

	got, err := uc.GetLocation(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Garage", got.Name)

	stream := journal.streams["location:"+created.Id.String()]
	require.Len(t, stream, 1)
	assert.Equal(t, "Rename", stream[0].Name)
}

func TestRenameLocationUnknown(t *testing.T) {
	uc := New(memory.NewLocationRepository(), newMemJournal(), nil)

	_, err := uc.RenameLocation(context.Background(), domain.NewId[domainlocation.LocationTag](), "Garage")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}
