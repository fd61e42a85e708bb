//go:build stowrdesign

package location

// This file is the generation-time declaration only; it is excluded from
// regular builds. The compiled Location type is the stowr-gen expansion in
// location_gen.go, which injects the identifier slot ahead of the declared
// fields.

// Location is a place where assets can be stowed.
//
//stowr:domain
type Location struct {
	Name string
}
