// Package metadata polls now-playing information from an ordered
// cascade of sources while playback is active.
package metadata

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/config"
	"github.com/itsyourradio/radiobar/internal/domain"
)

// placeholderTitle is shown when every source fails and nothing has
// been displayed yet this session
const placeholderTitle = "Live Stream"

// Source is one now-playing data source in the fallback cascade
type Source interface {
	Name() string
	// Fetch retrieves and normalizes the current now-playing data
	Fetch(ctx context.Context) (domain.NowPlaying, error)
}

// NewSources builds the default cascade from configuration: the
// primary JSON endpoint, then the raw status document, then the
// playlist file. Sources without a configured URL are left out.
func NewSources(logger *zap.Logger, cfg *config.Config) []Source {
	var sources []Source
	if cfg.Metadata.URL != "" {
		sources = append(sources, NewAzuraCastSource(logger, cfg.Metadata.URL, cfg.Metadata.APIKey))
	}
	if cfg.Metadata.StatusURL != "" {
		sources = append(sources, NewIcecastSource(logger, cfg.Metadata.StatusURL, cfg.Metadata.Mount))
	}
	if cfg.Metadata.PlaylistURL != "" {
		sources = append(sources, NewPlaylistSource(logger, cfg.Metadata.PlaylistURL))
	}
	return sources
}

// Poller runs the periodic metadata fetch loop. Poll cycles are
// strictly sequential: the next cycle's timer is armed only after the
// current cycle, including the onUpdate callback, has returned.
type Poller struct {
	logger   *zap.Logger
	sources  []Source
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

// NewPoller creates a poller over the given source cascade
func NewPoller(logger *zap.Logger, sources []Source, interval time.Duration) *Poller {
	return &Poller{
		logger:   logger,
		sources:  sources,
		interval: interval,
	}
}

// Start begins periodic polling. It is a no-op if the poller is
// already running.
func (p *Poller) Start(ctx context.Context, onUpdate func(domain.NowPlaying)) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Debug("Metadata poller started", zap.Duration("interval", p.interval))
	go p.loop(pollCtx, onUpdate)
}

// Stop cancels the pending poll and any scheduled next poll.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	p.cancel()
	p.cancel = nil
	p.logger.Debug("Metadata poller stopped")
}

func (p *Poller) loop(ctx context.Context, onUpdate func(domain.NowPlaying)) {
	timer := time.NewTimer(0) // First cycle fires immediately
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		p.cycle(ctx, onUpdate)

		// Arm the next poll only now that the cycle has completed
		timer.Reset(p.interval)
	}
}

// cycle walks the source cascade once, first success wins.
func (p *Poller) cycle(ctx context.Context, onUpdate func(domain.NowPlaying)) {
	for _, src := range p.sources {
		if ctx.Err() != nil {
			return
		}

		np, err := src.Fetch(ctx)
		if err != nil {
			p.logger.Warn("Metadata source failed",
				zap.String("source", src.Name()), zap.Error(err))
			continue
		}

		p.logger.Debug("Metadata fetched",
			zap.String("source", src.Name()),
			zap.String("artist", np.Artist),
			zap.String("title", np.Title))
		onUpdate(np)
		return
	}

	if ctx.Err() != nil {
		return
	}

	// Every source failed. Offer the generic placeholder; the player
	// applies it only when nothing has been shown yet this session.
	p.logger.Warn("All metadata sources failed")
	onUpdate(domain.NowPlaying{Title: placeholderTitle, Placeholder: true})
}
