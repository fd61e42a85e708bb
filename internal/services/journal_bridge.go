package services

import (
	"encoding/json"

	"github.com/stowr/backend/internal/infrastructure/journal"
	"github.com/stowr/backend/usecase"
)

// JournalBridge adapts the Bolt journal to the use case port.
type JournalBridge struct {
	store *journal.Store
}

func NewJournalBridge(store *journal.Store) *JournalBridge {
	return &JournalBridge{store: store}
}

func (b *JournalBridge) Append(stream string, name string, payload json.RawMessage) (uint64, error) {
	return b.store.Append(stream, name, payload)
}

func (b *JournalBridge) Replay(stream string, fn func(usecase.EventRecord) error) error {
	return b.store.Replay(stream, func(rec journal.Record) error {
		return fn(usecase.EventRecord{Seq: rec.Seq, Name: rec.Name, Payload: rec.Payload})
	})
}

var _ usecase.EventJournal = (*JournalBridge)(nil)
