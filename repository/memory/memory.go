package memory

import (
	"github.com/stowr/backend/domain/asset"
	"github.com/stowr/backend/domain/location"
)

// NewAssetRepository returns an in-memory AssetRepository.
func NewAssetRepository() asset.AssetRepo {
	return NewStore(func(a asset.Asset) asset.AssetId { return a.Id })
}

// NewLocationRepository returns an in-memory LocationRepository.
func NewLocationRepository() location.LocationRepo {
	return NewStore(func(l location.Location) location.LocationId { return l.Id })
}
