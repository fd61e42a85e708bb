package domain

import "context"

// Repository is the base persistence port shared by all entities. The
// generator emits a per-entity interface binding Entity and Id so adapters
// for one entity cannot be handed another entity's identifier.
//
// Implementations own their internal mutual exclusion; the port itself
// carries no locking discipline, only the capability signature.
type Repository[E any, I comparable] interface {
	// Create persists a new entity and returns the stored value, which may
	// differ from the input. Callers must not assume identity.
	Create(ctx context.Context, entity E) (E, error)

	// Fetch returns the entity for id, or nil with a nil error when absent.
	// Absence is a normal outcome, not an error.
	Fetch(ctx context.Context, id I) (*E, error)
}
