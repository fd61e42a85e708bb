package domain

// Aggregate pairs an entity's current state with the command-handling and
// event-applying behavior that governs its transitions. Implementations are
// emitted by stowr-gen; applications interact with aggregates through this
// contract only.
//
// HandleCommand must leave the receiver untouched and produce the events that
// record the requested mutation. ApplyEvent mutates the live state and is the
// replay path: folding an ordered event sequence over a starting state must
// reproduce the same final state on every run.
type Aggregate[C any, E any] interface {
	HandleCommand(cmd C) ([]E, error)
	ApplyEvent(evt E)
}
