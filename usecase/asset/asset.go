package asset

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/stowr/backend/domain"
	domainasset "github.com/stowr/backend/domain/asset"
	"github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/usecase"
)

type UseCase struct {
	assets    domainasset.AssetRepo
	locations location.LocationRepo
	journal   usecase.EventJournal
	logger    *zap.Logger
}

func New(assets domainasset.AssetRepo, locations location.LocationRepo, journal usecase.EventJournal, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		assets:    assets,
		locations: locations,
		journal:   journal,
		logger:    logger,
	}
}

// CreateAsset stows a new asset at an existing location.
func (uc *UseCase) CreateAsset(ctx context.Context, name string, at location.LocationId) (*domainasset.Asset, error) {
	loc, err := uc.locations.Fetch(ctx, at)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocationNotFound
	}

	created, err := uc.assets.Create(ctx, domainasset.NewAsset(domain.NewId[domainasset.AssetTag](), name, at))
	if err != nil {
		return nil, err
	}
	uc.logger.Info("asset created",
		zap.String("asset_id", created.Id.String()),
		zap.String("location_id", at.String()))
	return &created, nil
}

// GetAsset loads the stored asset and folds any journaled events over it.
func (uc *UseCase) GetAsset(ctx context.Context, id domainasset.AssetId) (*domainasset.Asset, error) {
	a, err := uc.assets.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAssetNotFound
	}

	if err := uc.journal.Replay(streamKey(id), func(rec usecase.EventRecord) error {
		evt, err := domainasset.DecodeAssetEvent(rec.Name, rec.Payload)
		if err != nil {
			return err
		}
		a.ApplyEvent(evt)
		return nil
	}); err != nil {
		return nil, err
	}
	return a, nil
}

// RenameAsset dispatches a rename command and journals the resulting event.
func (uc *UseCase) RenameAsset(ctx context.Context, id domainasset.AssetId, newName string) (*domainasset.Asset, error) {
	return uc.dispatch(ctx, id, domainasset.RenameCommand{NewName: newName})
}

// RelocateAsset dispatches a relocate command after checking the target exists.
func (uc *UseCase) RelocateAsset(ctx context.Context, id domainasset.AssetId, to location.LocationId) (*domainasset.Asset, error) {
	loc, err := uc.locations.Fetch(ctx, to)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocationNotFound
	}
	return uc.dispatch(ctx, id, domainasset.RelocateCommand{Location: to})
}

func (uc *UseCase) dispatch(ctx context.Context, id domainasset.AssetId, cmd domainasset.AssetCommand) (*domainasset.Asset, error) {
	a, err := uc.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := a.HandleCommand(cmd)
	if err != nil {
		return nil, err
	}

	for _, evt := range events {
		name := domainasset.AssetEventName(evt)
		payload, err := json.Marshal(evt)
		if err != nil {
			return nil, err
		}
		seq, err := uc.journal.Append(streamKey(id), name, payload)
		if err != nil {
			return nil, err
		}
		a.ApplyEvent(evt)
		uc.logger.Info("asset event journaled",
			zap.String("asset_id", id.String()),
			zap.String("event", name),
			zap.Uint64("seq", seq))
	}
	return a, nil
}

func streamKey(id domainasset.AssetId) string {
	return "asset:" + id.String()
}
