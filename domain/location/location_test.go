package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowr/backend/domain"
)

func TestNewLocation(t *testing.T) {
	id := domain.NewId[LocationTag]()
	loc := NewLocation(id, "warehouse")
	assert.Equal(t, id, loc.Id)
	assert.Equal(t, "warehouse", loc.Name)
}

func TestRename(t *testing.T) {
	loc := NewLocation(domain.NewId[LocationTag](), "Old Name")
	loc.Rename("New Name")
	assert.Equal(t, "New Name", loc.Name)
}

func TestHandleCommandLeavesStateUntouched(t *testing.T) {
	loc := NewLocation(domain.NewId[LocationTag](), "Old Name")

	events, err := loc.HandleCommand(RenameCommand{NewName: "New Name"})
	require.NoError(t, err)
	require.Equal(t, []LocationEvent{RenameEvent{NewName: "New Name"}}, events)

	assert.Equal(t, "Old Name", loc.Name)
}

// Applying the produced event must land on the same state as invoking the
// underlying method directly.
func TestReplayMatchesDirectInvocation(t *testing.T) {
	orig := NewLocation(domain.NewId[LocationTag](), "Old Name")

	events, err := orig.HandleCommand(RenameCommand{NewName: "New Name"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	replayed := orig
	for _, evt := range events {
		replayed.ApplyEvent(evt)
	}

	direct := orig
	direct.Rename("New Name")

	assert.Equal(t, direct, replayed)
}

func TestEventCodecRoundTrip(t *testing.T) {
	evt := RenameEvent{NewName: "Shelf B"}
	name := LocationEventName(evt)
	assert.Equal(t, "Rename", name)

	decoded, err := DecodeLocationEvent(name, []byte(`{"newname":"Shelf B"}`))
	require.NoError(t, err)
	assert.Equal(t, evt, decoded)
}

func TestDecodeUnknownEvent(t *testing.T) {
	_, err := DecodeLocationEvent("Vanish", nil)
	require.ErrorIs(t, err, domain.ErrUnknownEvent)
}
