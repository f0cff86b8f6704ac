package domain

import (
	"context"
	"time"
)

// AudioEngine defines the interface to the host's native media capability.
// The player never decodes audio itself; it only drives an engine.
//
//go:generate mockgen -destination=mocks/domain_mocks.go -package=mocks github.com/itsyourradio/radiobar/internal/domain AudioEngine,Surface,Fetcher
type AudioEngine interface {
	// SetSource points the engine at a stream candidate. It does not
	// start playback.
	SetSource(c StreamCandidate) error

	// Play starts (or resumes) playback of the current source.
	// Completion is signalled asynchronously via EngineEvents.
	Play() error

	// Pause pauses playback
	Pause() error

	// Stop stops playback and releases the source
	Stop() error

	// SetVolume sets the playback volume in the range 0.0-1.0
	SetVolume(v float64) error
}

// EngineEvents is implemented by the player and driven by an engine.
// All callbacks may be invoked from the engine's own goroutine.
type EngineEvents interface {
	// OnReady fires once when the engine has finished initializing
	OnReady()

	// OnPlay fires when playback has actually started
	OnPlay()

	// OnPause fires when playback has been paused
	OnPause()

	// OnStop fires when playback has been stopped
	OnStop()

	// OnError reports a playback failure with a human-readable message
	OnError(msg string)
}

// Surface defines the presentation capability the player pushes its
// side effects to. The player itself holds no UI references.
type Surface interface {
	// RenderTrackText displays the current artist and title
	RenderTrackText(artist, title string)

	// RenderArtwork displays album artwork; an empty URL clears it
	RenderArtwork(url string)

	// RenderTheme applies the accent color theme derived from artwork
	RenderTheme(p Palette)

	// ShowMessage displays a transient message for the given duration
	ShowMessage(text string, kind MessageKind, d time.Duration)

	// SetLoading toggles the loading indicator
	SetLoading(active bool)

	// SetControlsEnabled toggles the availability of transport controls
	SetControlsEnabled(enabled bool)
}

// Fetcher defines the interface for retrieving artwork image data
type Fetcher interface {
	// Fetch downloads image data from a URL, validating that the
	// response actually carries an image. Returns the raw bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Poller periodically fetches now-playing metadata while playback is
// active and reports normalized results through a callback.
type Poller interface {
	// Start begins periodic polling. onUpdate is invoked from the
	// poller's goroutine after each successful cycle. Cycles are
	// strictly sequential: the next poll is scheduled only once the
	// current cycle, including onUpdate, has returned.
	Start(ctx context.Context, onUpdate func(NowPlaying))

	// Stop cancels the pending poll and any scheduled next poll
	Stop()
}

// ArtworkResolver resolves album artwork for a track by trying
// provider sources in priority order.
type ArtworkResolver interface {
	// Resolve returns a usable artwork URL, or ErrNoArtwork when the
	// hint and every provider came up empty. A provider failure is
	// never fatal to the resolution as a whole. When resolution had to
	// download the image to validate it, the bytes are returned too so
	// the caller does not fetch the same URL twice; data is nil when
	// only the URL is known.
	Resolve(ctx context.Context, artist, title, hint string) (url string, data []byte, err error)
}
