//go:build stowrdesign

package asset

import (
	"github.com/stowr/backend/domain/location"
)

// This file is the generation-time declaration only; it is excluded from
// regular builds. The compiled Asset type is the stowr-gen expansion in
// asset_gen.go, which injects the identifier slot ahead of the declared
// fields.

// Asset is a tracked inventory item stowed at a location.
//
//stowr:domain
type Asset struct {
	Name     string
	Location location.LocationId
}
