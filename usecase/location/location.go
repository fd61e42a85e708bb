package location

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/stowr/backend/domain"
	domainlocation "github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/usecase"
)

type UseCase struct {
	locations domainlocation.LocationRepo
	journal   usecase.EventJournal
	logger    *zap.Logger
}

func New(locations domainlocation.LocationRepo, journal usecase.EventJournal, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		locations: locations,
		journal:   journal,
		logger:    logger,
	}
}

func (uc *UseCase) CreateLocation(ctx context.Context, name string) (*domainlocation.Location, error) {
	created, err := uc.locations.Create(ctx, domainlocation.NewLocation(domain.NewId[domainlocation.LocationTag](), name))
	if err != nil {
		return nil, err
	}
	uc.logger.Info("location created", zap.String("location_id", created.Id.String()))
	return &created, nil
}

// GetLocation loads the stored location and folds any journaled events over it.
func (uc *UseCase) GetLocation(ctx context.Context, id domainlocation.LocationId) (*domainlocation.Location, error) {
	l, err := uc.locations.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrLocationNotFound
	}

	if err := uc.journal.Replay(streamKey(id), func(rec usecase.EventRecord) error {
		evt, err := domainlocation.DecodeLocationEvent(rec.Name, rec.Payload)
		if err != nil {
			return err
		}
		l.ApplyEvent(evt)
		return nil
	}); err != nil {
		return nil, err
	}
	return l, nil
}

// RenameLocation dispatches a rename command and journals the resulting event.
func (uc *UseCase) RenameLocation(ctx context.Context, id domainlocation.LocationId, newName string) (*domainlocation.Location, error) {
	l, err := uc.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := l.HandleCommand(domainlocation.RenameCommand{NewName: newName})
	if err != nil {
		return nil, err
	}

	for _, evt := range events {
		name := domainlocation.LocationEventName(evt)
		payload, err := json.Marshal(evt)
		if err != nil {
			return nil, err
		}
		seq, err := uc.journal.Append(streamKey(id), name, payload)
		if err != nil {
			return nil, err
		}
		l.ApplyEvent(evt)
		uc.logger.Info("location event journaled",
			zap.String("location_id", id.String()),
			zap.String("event", name),
			zap.Uint64("seq", seq))
	}
	return l, nil
}

func streamKey(id domainlocation.LocationId) string {
	return "location:" + id.String()
}
