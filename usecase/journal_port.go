package usecase

import "encoding/json"

// EventRecord mirrors a journaled event without binding use cases to storage.
type EventRecord struct {
	Seq     uint64
	Name    string
	Payload json.RawMessage
}

// EventJournal abstracts the event journal so use cases stay storage-agnostic.
type EventJournal interface {
	Append(stream string, name string, payload json.RawMessage) (uint64, error)
	Replay(stream string, fn func(EventRecord) error) error
}
