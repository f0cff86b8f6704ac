package artwork

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultITunesURL = "https://itunes.apple.com/search"

type itunesSearchResponse struct {
	Results []struct {
		ArtworkURL100 string `json:"artworkUrl100"`
	} `json:"results"`
}

// ITunes looks up track artwork through the iTunes search API. The
// API encodes the thumbnail resolution in the URL, so the 100x100
// result is upscaled by string substitution.
type ITunes struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL string
}

// NewITunes creates the iTunes artwork provider
func NewITunes(logger *zap.Logger) *ITunes {
	return &ITunes{
		logger:  logger,
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: defaultITunesURL,
	}
}

func (p *ITunes) Name() string { return "itunes" }

// Lookup searches for the track and upscales the thumbnail URL.
func (p *ITunes) Lookup(ctx context.Context, artist, title string) (string, error) {
	params := url.Values{}
	params.Set("term", strings.TrimSpace(artist+" "+title))
	params.Set("media", "music")
	params.Set("limit", "1")

	var payload itunesSearchResponse
	if err := getJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return "", err
	}

	if len(payload.Results) == 0 || payload.Results[0].ArtworkURL100 == "" {
		return "", ErrNotFound
	}
	return strings.Replace(payload.Results[0].ArtworkURL100, "100x100", "600x600", 1), nil
}
