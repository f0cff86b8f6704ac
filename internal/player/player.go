// Package player owns playback state and arbitrates every transition
// between the audio engine, the metadata poller, the artwork pipeline
// and the presentation surface.
package player

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/config"
	"github.com/itsyourradio/radiobar/internal/domain"
	"github.com/itsyourradio/radiobar/internal/theme"
)

const (
	// unknownTrackTitle is shown when a source reports no title
	unknownTrackTitle = "Unknown Track"

	// messageDuration is how long transient messages stay visible
	messageDuration = 3 * time.Second

	// persistent marks a message that stays until the next user action
	persistent = 0
)

// Player is the playback state machine. All mutable state lives here,
// guarded by a single mutex; async completions (engine events, poll
// results, artwork resolutions) are filtered by a generation counter
// so nothing stale is ever applied after a Stop.
type Player struct {
	logger   *zap.Logger
	engine   domain.AudioEngine
	surface  domain.Surface
	poller   domain.Poller
	resolver domain.ArtworkResolver
	fetcher  domain.Fetcher

	// extract is swappable for tests; defaults to theme.ExtractBytes
	extract func(data []byte) (domain.Palette, error)

	stationName    string
	candidates     []domain.StreamCandidate
	defaultPalette domain.Palette
	autoplay       bool
	volume         float64

	mu         sync.Mutex
	status     domain.PlaybackStatus
	attempting bool
	current    domain.TrackMetadata
	palette    domain.Palette
	failCount  int
	artLoading bool
	generation uint64

	runCtx context.Context
	cancel context.CancelFunc
}

// New creates the player. Engine events must be routed to the returned
// player, which implements domain.EngineEvents.
func New(
	logger *zap.Logger,
	cfg *config.Config,
	engine domain.AudioEngine,
	surface domain.Surface,
	poller domain.Poller,
	resolver domain.ArtworkResolver,
	fetcher domain.Fetcher,
) *Player {
	return &Player{
		logger:         logger,
		engine:         engine,
		surface:        surface,
		poller:         poller,
		resolver:       resolver,
		fetcher:        fetcher,
		extract:        theme.ExtractBytes,
		stationName:    cfg.Station.Name,
		candidates:     cfg.StreamCandidates(),
		defaultPalette: cfg.DefaultPalette(),
		autoplay:       cfg.Playback.Autoplay,
		volume:         cfg.Playback.Volume,
		status:         domain.StatusStopped,
		palette:        cfg.DefaultPalette(),
	}
}

// Start initializes the player: volume, default theme, disabled
// controls. It returns immediately; playback begins on user action or,
// with autoplay, on the engine's ready event.
func (p *Player) Start(ctx context.Context) error {
	p.mu.Lock()
	p.runCtx, p.cancel = context.WithCancel(context.Background())
	p.mu.Unlock()

	if err := p.engine.SetVolume(p.volume); err != nil {
		p.logger.Warn("Failed to set initial volume", zap.Error(err))
	}

	p.surface.RenderTheme(p.defaultPalette)
	p.surface.SetControlsEnabled(false)

	p.logger.Info("Player started",
		zap.Int("candidates", len(p.candidates)),
		zap.Bool("autoplay", p.autoplay))
	return nil
}

// Close shuts the player down for good.
func (p *Player) Close() error {
	p.Stop()
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	p.logger.Info("Player closed")
	return nil
}

// Status returns the current playback status.
func (p *Player) Status() domain.PlaybackStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Play starts playback from Stopped, or resumes from Paused.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.status == domain.StatusPlaying:
		return
	case p.status == domain.StatusPaused:
		// Resume, no metadata reset
		if err := p.engine.Play(); err != nil {
			p.logger.Error("Failed to resume playback", zap.Error(err))
			p.surface.ShowMessage("Error resuming playback", domain.MessageError, messageDuration)
			return
		}
		// Marks the reconnect as user-requested so a failure is not
		// swallowed by the paused-error rule below
		p.attempting = true
		return
	case p.attempting:
		return
	}

	if len(p.candidates) == 0 {
		p.surface.ShowMessage("No stream configured", domain.MessageError, messageDuration)
		return
	}

	p.attempting = true
	p.surface.SetLoading(true)
	p.startCandidateLocked(p.candidates[p.failCount%len(p.candidates)])
}

// Pause pauses playback. Metadata keeps polling while paused.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != domain.StatusPlaying {
		return
	}
	if err := p.engine.Pause(); err != nil {
		p.logger.Error("Failed to pause playback", zap.Error(err))
		return
	}
	p.status = domain.StatusPaused
}

// TogglePlayPause flips between playing and paused, starting playback
// when stopped.
func (p *Player) TogglePlayPause() {
	p.mu.Lock()
	status := p.status
	p.mu.Unlock()

	if status == domain.StatusPlaying {
		p.Pause()
	} else {
		p.Play()
	}
}

// Stop stops playback and resets all displayed state to defaults.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// SetVolume forwards the volume to the engine.
func (p *Player) SetVolume(v float64) {
	if err := p.engine.SetVolume(v); err != nil {
		p.logger.Warn("Failed to set volume", zap.Error(err))
	}
}

// stopLocked performs the full Stop transition. Caller holds mu.
func (p *Player) stopLocked() {
	// Invalidate every in-flight poll and artwork completion
	p.generation++
	p.status = domain.StatusStopped
	p.attempting = false
	p.artLoading = false

	p.poller.Stop()
	if err := p.engine.Stop(); err != nil {
		p.logger.Warn("Failed to stop engine", zap.Error(err))
	}

	p.current = domain.TrackMetadata{}
	p.palette = p.defaultPalette

	p.surface.RenderTrackText("", "")
	p.surface.RenderArtwork("")
	p.surface.RenderTheme(p.defaultPalette)
	p.surface.SetLoading(false)
	p.surface.SetControlsEnabled(false)
}

// startCandidateLocked points the engine at a candidate and requests
// playback. Caller holds mu.
func (p *Player) startCandidateLocked(c domain.StreamCandidate) {
	p.logger.Info("Starting stream",
		zap.String("format", string(c.Format)),
		zap.String("url", c.URL))

	if err := p.engine.SetSource(c); err != nil {
		p.logger.Error("Failed to set stream source", zap.Error(err))
		p.onErrorLocked(err.Error())
		return
	}
	if err := p.engine.Play(); err != nil {
		p.logger.Error("Failed to request playback", zap.Error(err))
		p.onErrorLocked(err.Error())
	}
}

// OnReady fires once when the engine has initialized.
func (p *Player) OnReady() {
	p.logger.Debug("Engine ready")
	if p.autoplay {
		p.Play()
	}
}

// OnPlay marks playback active and starts the metadata poller.
func (p *Player) OnPlay() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = domain.StatusPlaying
	p.attempting = false
	p.failCount = 0

	p.surface.SetLoading(false)
	p.surface.SetControlsEnabled(true)

	// Idempotent while running, so resuming from pause is harmless
	p.poller.Start(p.runCtx, p.applyNowPlaying)
}

// OnPause confirms a pause reported by the engine.
func (p *Player) OnPause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == domain.StatusPlaying {
		p.status = domain.StatusPaused
	}
}

// OnStop handles an engine-initiated stop.
func (p *Player) OnStop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == domain.StatusStopped && !p.attempting {
		return
	}
	p.stopLocked()
}

// OnError drives the stream fallback chain.
func (p *Player) OnError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onErrorLocked(msg)
}

func (p *Player) onErrorLocked(msg string) {
	// Engine events are delivered asynchronously, so an error emitted
	// just before Stop can land after it. It belongs to the session the
	// user already ended and must not restart playback.
	if p.status == domain.StatusStopped && !p.attempting {
		p.logger.Debug("Engine error after stop, discarding", zap.String("error", msg))
		return
	}

	if p.status == domain.StatusPaused {
		if p.attempting {
			// The user asked to resume and the reconnect failed
			p.attempting = false
			p.logger.Warn("Resume failed", zap.String("error", msg))
			p.surface.ShowMessage("Error resuming playback", domain.MessageError, messageDuration)
			return
		}
		// Spontaneous errors while paused are not expected from a live
		// stream engine; log and carry on rather than tearing playback
		// down.
		p.logger.Warn("Engine error while paused, ignoring", zap.String("error", msg))
		return
	}

	p.failCount++
	p.logger.Warn("Playback error",
		zap.String("error", msg),
		zap.Int("failCount", p.failCount))

	if len(p.candidates) == 0 || p.failCount >= len(p.candidates) {
		// Every representation tried: wrap the counter, give up, and
		// leave retrying to the user.
		p.failCount = 0
		p.stopLocked()
		p.surface.ShowMessage("Stream unavailable", domain.MessageError, persistent)
		return
	}

	p.surface.ShowMessage("Trying backup stream...", domain.MessageInfo, messageDuration)
	p.attempting = true
	p.startCandidateLocked(p.candidates[p.failCount])
}

// applyNowPlaying merges one poll result into the displayed metadata.
// Invoked from the poller goroutine.
func (p *Player) applyNowPlaying(np domain.NowPlaying) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A poll completing after Stop must not resurrect stale state
	if p.status == domain.StatusStopped {
		return
	}

	// The generic placeholder only fills an otherwise empty display
	if np.Placeholder && (p.current.Title != "" || p.current.Artist != "") {
		return
	}

	title := np.Title
	if title == "" {
		title = unknownTrackTitle
	}
	artist := np.Artist
	if artist == "" {
		artist = p.stationName
	}

	if p.current.SameTrack(artist, title) {
		return
	}

	// Title and artist always move together
	p.current.Title = title
	p.current.Artist = artist
	p.surface.RenderTrackText(artist, title)

	if np.Placeholder {
		return
	}

	if p.artLoading {
		// One resolution at a time; this update's artwork may lag by
		// one poll cycle, which is accepted staleness
		p.logger.Debug("Artwork resolution in flight, skipping",
			zap.String("artist", np.Artist), zap.String("title", np.Title))
		return
	}
	p.artLoading = true
	gen := p.generation
	go p.resolveArtwork(gen, np.Artist, np.Title, np.ArtURL)
}

// resolveArtwork runs the resolve -> fetch -> extract pipeline off the
// lock and applies the outcome if the session is still current.
func (p *Player) resolveArtwork(gen uint64, artist, title, hint string) {
	artURL, data, err := p.resolver.Resolve(p.runCtx, artist, title, hint)
	if err != nil {
		// Exhausted providers are silent: prior art stays up
		p.logger.Debug("No artwork resolved",
			zap.String("artist", artist), zap.String("title", title), zap.Error(err))
		p.finishArtwork(gen, func() {})
		return
	}

	// Resolution already downloaded the image for a validated hint;
	// only provider results still need fetching
	if data == nil {
		data, err = p.fetcher.Fetch(p.runCtx, artURL)
		if err != nil {
			p.logger.Warn("Artwork download failed", zap.String("url", artURL), zap.Error(err))
			p.finishArtwork(gen, func() {
				// Artwork load failure drops the theme back to default
				p.palette = p.defaultPalette
				p.surface.RenderTheme(p.defaultPalette)
			})
			return
		}
	}

	pal, err := p.extract(data)
	if err != nil {
		// No palette available; keep the previous theme
		p.logger.Warn("Palette extraction failed", zap.String("url", artURL), zap.Error(err))
		p.finishArtwork(gen, func() {
			p.applyArtworkLocked(artURL)
		})
		return
	}

	p.finishArtwork(gen, func() {
		p.applyArtworkLocked(artURL)
		p.palette = pal
		p.surface.RenderTheme(pal)
	})
}

// finishArtwork clears the in-flight guard and applies the outcome,
// both only if the resolution still belongs to the current session.
func (p *Player) finishArtwork(gen uint64, apply func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation || p.status == domain.StatusStopped {
		// Superseded by Stop: a newer session owns the guard now
		return
	}
	p.artLoading = false
	apply()
}

// applyArtworkLocked updates the artwork URL, equality-gated. Caller
// holds mu.
func (p *Player) applyArtworkLocked(artURL string) {
	if artURL == p.current.ArtworkURL {
		return
	}
	p.current.ArtworkURL = artURL
	p.surface.RenderArtwork(artURL)
}
