package asset

import (
	"github.com/stowr/backend/domain/location"
)

//go:generate go run github.com/stowr/backend/cmd/stowr-gen -type Asset

// Rename changes the display name of the asset.
//
//stowr:command
func (a *Asset) Rename(newName string) {
	a.Name = newName
}

// Relocate moves the asset to another location.
//
//stowr:command
func (a *Asset) Relocate(location location.LocationId) {
	a.Location = location
}

// StowedAt reports whether the asset currently sits at the given location.
func (a *Asset) StowedAt(id location.LocationId) bool {
	return a.Location == id
}
