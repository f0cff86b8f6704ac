// Package audio implements the stream engine for live HTTP audio.
// It maintains the network connection to the station and reports
// lifecycle transitions; it does not decode audio itself.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/domain"
	"github.com/itsyourradio/radiobar/internal/playlist"
)

const playlistFetchTimeout = 5 * time.Second

// StreamEngine connects to a live HTTP stream and drains it for as
// long as playback is active. Playlist candidates (M3U, PLS) are
// resolved to their first stream URL on Play.
//
// All EngineEvents callbacks are delivered on a separate goroutine;
// callers may invoke engine methods while holding their own locks.
type StreamEngine struct {
	logger *zap.Logger

	// streamClient has no overall timeout: a live stream body never ends
	streamClient   *http.Client
	playlistClient *http.Client

	mu      sync.Mutex
	handler domain.EngineEvents
	source  domain.StreamCandidate
	cancel  context.CancelFunc
	paused  bool
	volume  float64
}

// NewStreamEngine creates an engine with no source set.
func NewStreamEngine(logger *zap.Logger) *StreamEngine {
	return &StreamEngine{
		logger: logger,
		streamClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 10 * time.Second,
			},
		},
		playlistClient: &http.Client{Timeout: playlistFetchTimeout},
		volume:         1.0,
	}
}

// SetHandler installs the event sink. Must be called before Play.
func (e *StreamEngine) SetHandler(h domain.EngineEvents) {
	e.mu.Lock()
	e.handler = h
	e.mu.Unlock()
}

// Start announces readiness to the handler.
func (e *StreamEngine) Start(ctx context.Context) error {
	e.logger.Info("Audio engine ready")
	e.emit(func(h domain.EngineEvents) { h.OnReady() })
	return nil
}

// SetSource points the engine at a stream candidate without starting it.
func (e *StreamEngine) SetSource(c domain.StreamCandidate) error {
	if c.URL == "" {
		return fmt.Errorf("stream candidate has no url")
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	// Switching sources tears down any active connection
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.source = c
	e.paused = false
	return nil
}

// Play connects to the current source, or resumes after a pause by
// rejoining the live edge.
func (e *StreamEngine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.source.URL == "" {
		return fmt.Errorf("no source set")
	}
	if e.cancel != nil && !e.paused {
		// Already connected and playing
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.paused = false

	go e.run(ctx, e.source)
	return nil
}

// Pause disconnects from the stream. A live stream has no position to
// hold, so resuming rejoins at the current broadcast point.
func (e *StreamEngine) Pause() error {
	e.mu.Lock()
	if e.cancel == nil {
		e.mu.Unlock()
		return nil
	}
	e.cancel()
	e.cancel = nil
	e.paused = true
	e.mu.Unlock()

	e.emit(func(h domain.EngineEvents) { h.OnPause() })
	return nil
}

// Stop disconnects and releases the source.
func (e *StreamEngine) Stop() error {
	e.mu.Lock()
	hadConn := e.cancel != nil
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.paused = false
	e.mu.Unlock()

	if hadConn {
		e.emit(func(h domain.EngineEvents) { h.OnStop() })
	}
	return nil
}

// SetVolume stores the requested volume. With no local decoder there
// is nothing to scale, but remote controllers still read it back.
func (e *StreamEngine) SetVolume(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("volume %v out of range", v)
	}
	e.mu.Lock()
	e.volume = v
	e.mu.Unlock()
	return nil
}

// Volume returns the last volume set.
func (e *StreamEngine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// run resolves the candidate, connects, and drains the stream until
// the context is cancelled or the connection fails.
func (e *StreamEngine) run(ctx context.Context, c domain.StreamCandidate) {
	streamURL := c.URL
	if c.IsPlaylist() {
		resolved, err := e.resolvePlaylist(ctx, c)
		if err != nil {
			e.fail(ctx, fmt.Sprintf("playlist resolution failed: %v", err))
			return
		}
		streamURL = resolved
	}

	e.logger.Info("Connecting to stream",
		zap.String("format", string(c.Format)),
		zap.String("url", streamURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		e.fail(ctx, fmt.Sprintf("invalid stream url: %v", err))
		return
	}
	req.Header.Set("Icy-MetaData", "0")

	resp, err := e.streamClient.Do(req)
	if err != nil {
		e.fail(ctx, fmt.Sprintf("connection failed: %v", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.fail(ctx, fmt.Sprintf("stream returned status %d", resp.StatusCode))
		return
	}

	e.emit(func(h domain.EngineEvents) { h.OnPlay() })

	_, err = io.Copy(io.Discard, resp.Body)
	if ctx.Err() != nil {
		// Deliberate disconnect, events already sent by Pause or Stop
		return
	}
	if err != nil {
		e.fail(ctx, fmt.Sprintf("stream dropped: %v", err))
		return
	}
	// A live stream body ending cleanly still means the broadcast is gone
	e.fail(ctx, "stream ended")
}

// resolvePlaylist downloads a playlist candidate and returns its first
// stream URL.
func (e *StreamEngine) resolvePlaylist(ctx context.Context, c domain.StreamCandidate) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := e.playlistClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("playlist returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 256<<10))
	if err != nil {
		return "", err
	}

	var entries []playlist.Entry
	if c.Format == domain.FormatPLS {
		entries = playlist.ParsePLS(string(data))
	} else {
		entries = playlist.ParseM3U(string(data))
	}
	url := playlist.FirstURL(entries)
	if url == "" {
		return "", fmt.Errorf("playlist has no stream entries")
	}
	return url, nil
}

// fail reports a connection error unless the session was cancelled.
func (e *StreamEngine) fail(ctx context.Context, msg string) {
	if ctx.Err() != nil {
		return
	}
	e.logger.Warn("Stream failure", zap.String("error", msg))

	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.mu.Unlock()

	e.emit(func(h domain.EngineEvents) { h.OnError(msg) })
}

// emit delivers an event off the caller's goroutine.
func (e *StreamEngine) emit(event func(domain.EngineEvents)) {
	e.mu.Lock()
	h := e.handler
	e.mu.Unlock()
	if h == nil {
		return
	}
	go event(h)
}
