// Package surface provides presentation backends for the player.
package surface

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/domain"
)

// Console renders player state as lines on a terminal. It is the
// default surface for the standalone daemon; embedders provide their
// own implementation of domain.Surface instead.
type Console struct {
	logger *zap.Logger

	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a console surface writing to out.
func NewConsole(logger *zap.Logger, out io.Writer) *Console {
	return &Console{logger: logger, out: out}
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format+"\n", args...)
}

// RenderTrackText displays the current artist and title.
func (c *Console) RenderTrackText(artist, title string) {
	if artist == "" && title == "" {
		return
	}
	c.printf("♪ %s - %s", artist, title)
}

// RenderArtwork prints the resolved artwork URL. A terminal cannot
// show the image itself.
func (c *Console) RenderArtwork(url string) {
	if url == "" {
		return
	}
	c.printf("  art: %s", url)
}

// RenderTheme prints the derived palette as hex triples.
func (c *Console) RenderTheme(p domain.Palette) {
	c.printf("  theme: %s %s %s", p[0].Hex(), p[1].Hex(), p[2].Hex())
}

// ShowMessage prints a transient status line.
func (c *Console) ShowMessage(text string, kind domain.MessageKind, d time.Duration) {
	prefix := "·"
	switch kind {
	case domain.MessageError:
		prefix = "✗"
	case domain.MessageSuccess:
		prefix = "✓"
	}
	c.printf("%s %s", prefix, text)
}

// SetLoading logs the loading indicator state.
func (c *Console) SetLoading(active bool) {
	if active {
		c.printf("  loading...")
	}
}

// SetControlsEnabled is a no-op on a terminal.
func (c *Console) SetControlsEnabled(enabled bool) {
	c.logger.Debug("Controls availability changed", zap.Bool("enabled", enabled))
}
