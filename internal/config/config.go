package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/domain"
)

const (
	defaultStationName  = "itsyourradio"
	defaultPollInterval = 4000 * time.Millisecond
	defaultVolume       = 0.7
)

// defaultColors is the palette applied on Stop or before any artwork
// has been resolved.
var defaultColors = []string{"#c3deeb", "#8a6389", "#2e4e7e"}

// Config holds the full player configuration loaded from TOML, with
// environment variable overrides for deploy-time secrets.
type Config struct {
	Station  StationConfig  `toml:"station"`
	Metadata MetadataConfig `toml:"metadata"`
	Artwork  ArtworkConfig  `toml:"artwork"`
	Playback PlaybackConfig `toml:"playback"`
	Theme    ThemeConfig    `toml:"theme"`
}

// StationConfig identifies the station and its ordered stream candidates.
type StationConfig struct {
	Name    string         `toml:"name"`
	Streams []StreamConfig `toml:"streams"`
}

// StreamConfig is one stream candidate entry
type StreamConfig struct {
	Format string `toml:"format"`
	URL    string `toml:"url"`
}

// MetadataConfig holds the now-playing source cascade settings.
type MetadataConfig struct {
	// URL is the primary now-playing endpoint (AzuraCast-style JSON)
	URL string `toml:"url"`
	// APIKey, when set, is sent as X-API-Key with primary requests
	APIKey string `toml:"api_key"`
	// StatusURL is the secondary raw status document (Icecast-style)
	StatusURL string `toml:"status_url"`
	// Mount selects the matching source entry when the status document
	// carries more than one (matched against the listen URL)
	Mount string `toml:"mount"`
	// PlaylistURL is the tertiary playlist-file source
	PlaylistURL string `toml:"playlist_url"`
	// IntervalMs is the fixed poll interval in milliseconds
	IntervalMs int `toml:"interval_ms"`
}

// ArtworkConfig holds artwork provider settings.
type ArtworkConfig struct {
	LastFMAPIKey string `toml:"lastfm_api_key"`
}

// PlaybackConfig holds engine startup settings.
type PlaybackConfig struct {
	Autoplay bool    `toml:"autoplay"`
	Volume   float64 `toml:"volume"`
}

// ThemeConfig holds the default palette as hex color strings.
type ThemeConfig struct {
	DefaultColors []string `toml:"default_colors"`
}

// Load reads configuration from the given TOML file and applies
// environment overrides. An empty path loads defaults only, which is
// enough to run against the environment.
func Load(logger *zap.Logger) (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("RADIOBAR_CONFIG")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.String("station", cfg.Station.Name),
		zap.Int("streams", len(cfg.Station.Streams)),
		zap.String("metadataUrl", cfg.Metadata.URL),
		zap.Bool("autoplay", cfg.Playback.Autoplay))

	return cfg, nil
}

// applyEnv overlays deploy-time values onto the file configuration.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RADIOBAR_METADATA_URL"); v != "" {
		cfg.Metadata.URL = v
	}
	if v := os.Getenv("RADIOBAR_METADATA_API_KEY"); v != "" {
		cfg.Metadata.APIKey = v
	}
	if v := os.Getenv("RADIOBAR_LASTFM_API_KEY"); v != "" {
		cfg.Artwork.LastFMAPIKey = v
	}
	if v := os.Getenv("RADIOBAR_AUTOPLAY"); v != "" {
		cfg.Playback.Autoplay = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("RADIOBAR_VOLUME"); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Playback.Volume = vol
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Station.Name == "" {
		cfg.Station.Name = defaultStationName
	}
	if cfg.Metadata.IntervalMs <= 0 {
		cfg.Metadata.IntervalMs = int(defaultPollInterval / time.Millisecond)
	}
	if cfg.Playback.Volume <= 0 || cfg.Playback.Volume > 1 {
		cfg.Playback.Volume = defaultVolume
	}
	if len(cfg.Theme.DefaultColors) != 3 {
		cfg.Theme.DefaultColors = defaultColors
	}
}

// Validate rejects configurations the player cannot run with.
func Validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Station.Streams))
	for _, s := range cfg.Station.Streams {
		if s.URL == "" {
			return fmt.Errorf("stream candidate %q has no url", s.Format)
		}
		if seen[s.Format] {
			return fmt.Errorf("duplicate stream format %q", s.Format)
		}
		seen[s.Format] = true
	}
	for _, c := range cfg.Theme.DefaultColors {
		if _, err := ParseHexColor(c); err != nil {
			return fmt.Errorf("default color %q: %w", c, err)
		}
	}
	return nil
}

// PollInterval returns the metadata poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Metadata.IntervalMs) * time.Millisecond
}

// StreamCandidates returns the ordered fallback list of stream sources.
func (c *Config) StreamCandidates() []domain.StreamCandidate {
	out := make([]domain.StreamCandidate, 0, len(c.Station.Streams))
	for _, s := range c.Station.Streams {
		out = append(out, domain.StreamCandidate{
			Format: domain.StreamFormat(s.Format),
			URL:    s.URL,
		})
	}
	return out
}

// DefaultPalette returns the configured fallback palette.
func (c *Config) DefaultPalette() domain.Palette {
	var p domain.Palette
	for i := 0; i < len(p) && i < len(c.Theme.DefaultColors); i++ {
		rgb, err := ParseHexColor(c.Theme.DefaultColors[i])
		if err != nil {
			continue
		}
		p[i] = rgb
	}
	return p
}

// ParseHexColor parses "#RRGGBB" into an RGB triple.
func ParseHexColor(s string) (domain.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return domain.RGB{}, fmt.Errorf("invalid hex color length %d", len(s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return domain.RGB{}, fmt.Errorf("invalid hex color: %w", err)
	}
	return domain.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
