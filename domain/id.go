package domain

import (
	"github.com/google/uuid"
)

// Id is the one underlying identifier representation shared by every entity:
// a v4 UUID parameterized by an entity-specific tag type. The tag is never
// instantiated; it only exists so that identifiers of different entities are
// distinct types and cannot be mixed up at compile time.
//
// The tag is erased from the serialized form: only the raw UUID travels
// through JSON or storage, so cross-tag deserialization is prevented at the
// type layer, not at the data layer.
type Id[T any] struct {
	value uuid.UUID
}

// NewId generates a fresh random identifier. Uniqueness is probabilistic
// (122 random bits), which is an accepted tradeoff at realistic cardinalities.
func NewId[T any]() Id[T] {
	return Id[T]{value: uuid.New()}
}

// ParseId parses the canonical UUID text form into a tagged identifier.
func ParseId[T any](s string) (Id[T], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Id[T]{}, err
	}
	return Id[T]{value: u}, nil
}

// IdOf wraps an existing UUID into a tagged identifier.
func IdOf[T any](u uuid.UUID) Id[T] {
	return Id[T]{value: u}
}

// UUID returns the raw underlying value.
func (id Id[T]) UUID() uuid.UUID {
	return id.value
}

// IsZero reports whether the identifier is the zero value.
func (id Id[T]) IsZero() bool {
	return id.value == uuid.Nil
}

// String renders the canonical UUID text form.
func (id Id[T]) String() string {
	return id.value.String()
}

// MarshalText implements encoding.TextMarshaler. Only the raw value is
// serialized; the tag does not survive the trip.
func (id Id[T]) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Id[T]) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	id.value = u
	return nil
}
