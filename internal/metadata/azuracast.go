package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/domain"
)

// azuracastResponse mirrors the nested now-playing document of the
// primary endpoint
type azuracastResponse struct {
	NowPlaying *struct {
		Song struct {
			Title  string `json:"title"`
			Artist string `json:"artist"`
			Art    string `json:"art"`
		} `json:"song"`
	} `json:"now_playing"`
}

// AzuraCastSource is the primary now-playing source: a JSON endpoint
// with an explicit artist/title split and an optional inline artwork
// URL.
type AzuraCastSource struct {
	logger *zap.Logger
	client *http.Client
	url    string
	apiKey string
}

// NewAzuraCastSource creates the primary metadata source
func NewAzuraCastSource(logger *zap.Logger, url, apiKey string) *AzuraCastSource {
	return &AzuraCastSource{
		logger: logger,
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
		apiKey: apiKey,
	}
}

func (s *AzuraCastSource) Name() string { return "azuracast" }

// Fetch retrieves and normalizes the current song.
func (s *AzuraCastSource) Fetch(ctx context.Context) (domain.NowPlaying, error) {
	var np domain.NowPlaying

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return np, fmt.Errorf("failed to create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return np, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return np, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload azuracastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return np, fmt.Errorf("malformed response: %w", err)
	}
	if payload.NowPlaying == nil {
		return np, fmt.Errorf("malformed response: missing now_playing")
	}

	song := payload.NowPlaying.Song
	np.Title = song.Title
	np.Artist = song.Artist
	np.ArtURL = song.Art
	return np, nil
}
