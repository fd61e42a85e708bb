package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stowr/backend/domain"
	domainasset "github.com/stowr/backend/domain/asset"
	domainlocation "github.com/stowr/backend/domain/location"
	"github.com/stowr/backend/internal/infrastructure/journal"
	ucasset "github.com/stowr/backend/usecase/asset"
	uclocation "github.com/stowr/backend/usecase/location"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// ProjectorConfig controls how frequently replayed state is refreshed.
type ProjectorConfig struct {
	Interval time.Duration
}

// Projector periodically folds journaled events for every stream so the
// read path stays warm and decode failures surface before a client hits them.
type Projector struct {
	journal   *journal.Store
	monitor   ConnectionHealth
	assets    *ucasset.UseCase
	locations *uclocation.UseCase
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       ProjectorConfig
}

func NewProjector(
	store *journal.Store,
	monitor ConnectionHealth,
	assets *ucasset.UseCase,
	locations *uclocation.UseCase,
	logger *zap.Logger,
	cfg ProjectorConfig,
) *Projector {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Projector{
		journal:   store,
		monitor:   monitor,
		assets:    assets,
		locations: locations,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = p.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := p.Refresh(ctx); err != nil {
			p.logger.Error("projection refresh failed", zap.Error(err))
		}
	})

	return p
}

// Start launches the cron scheduler.
func (p *Projector) Start() {
	if p == nil || p.cron == nil {
		return
	}
	p.cron.Start()
	p.logger.Info("projector started")
}

// Stop gracefully stops the scheduler.
func (p *Projector) Stop(ctx context.Context) {
	if p == nil || p.cron == nil {
		return
	}
	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	p.logger.Info("projector stopped")
}

// Refresh replays every journal stream once.
func (p *Projector) Refresh(ctx context.Context) error {
	if p == nil || p.journal == nil {
		return nil
	}
	if p.monitor != nil && !p.monitor.IsOnline() {
		p.logger.Debug("skipping projection refresh (offline)")
		return nil
	}

	streams, err := p.journal.Streams()
	if err != nil {
		return err
	}

	for _, stream := range streams {
		if err := p.refreshStream(ctx, stream); err != nil {
			p.logger.Warn("stream projection failed",
				zap.String("stream", stream),
				zap.Error(err))
		}
	}
	return nil
}

func (p *Projector) refreshStream(ctx context.Context, stream string) error {
	kind, raw, ok := strings.Cut(stream, ":")
	if !ok {
		return fmt.Errorf("malformed stream key %q", stream)
	}

	switch kind {
	case "asset":
		id, err := domain.ParseId[domainasset.AssetTag](raw)
		if err != nil {
			return err
		}
		_, err = p.assets.GetAsset(ctx, id)
		return err
	case "location":
		id, err := domain.ParseId[domainlocation.LocationTag](raw)
		if err != nil {
			return err
		}
		_, err = p.locations.GetLocation(ctx, id)
		return err
	default:
		return fmt.Errorf("unsupported stream kind %s", kind)
	}
}
