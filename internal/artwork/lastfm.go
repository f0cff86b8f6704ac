package artwork

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultLastFMURL = "https://ws.audioscrobbler.com/2.0/"

// lastfmImage is one size variant of an album image
type lastfmImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

type lastfmTrackResponse struct {
	Track struct {
		Album struct {
			Image []lastfmImage `json:"image"`
		} `json:"album"`
	} `json:"track"`
}

type lastfmAlbumSearchResponse struct {
	Results struct {
		AlbumMatches struct {
			Album []struct {
				Image []lastfmImage `json:"image"`
			} `json:"album"`
		} `json:"albummatches"`
	} `json:"results"`
}

// LastFMTrack looks up album artwork through the Last.fm track.getInfo
// method.
type LastFMTrack struct {
	logger  *zap.Logger
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewLastFMTrack creates the track-level Last.fm artwork provider
func NewLastFMTrack(logger *zap.Logger, apiKey string) *LastFMTrack {
	return &LastFMTrack{
		logger:  logger,
		client:  &http.Client{Timeout: 5 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultLastFMURL,
	}
}

func (p *LastFMTrack) Name() string { return "lastfm-track" }

// Lookup queries track.getInfo and picks the large image variant.
func (p *LastFMTrack) Lookup(ctx context.Context, artist, title string) (string, error) {
	params := url.Values{}
	params.Set("method", "track.getInfo")
	params.Set("api_key", p.apiKey)
	params.Set("artist", artist)
	params.Set("track", title)
	params.Set("format", "json")

	var payload lastfmTrackResponse
	if err := getJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return "", err
	}

	if u := pickLargeImage(payload.Track.Album.Image); u != "" {
		return u, nil
	}
	return "", ErrNotFound
}

// LastFMAlbum is the album-search variant of the Last.fm lookup, tried
// when the track-level query yields no usable image.
type LastFMAlbum struct {
	logger  *zap.Logger
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewLastFMAlbum creates the album-search Last.fm artwork provider
func NewLastFMAlbum(logger *zap.Logger, apiKey string) *LastFMAlbum {
	return &LastFMAlbum{
		logger:  logger,
		client:  &http.Client{Timeout: 5 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultLastFMURL,
	}
}

func (p *LastFMAlbum) Name() string { return "lastfm-album" }

// Lookup queries album.search with the track title as the album term
// and takes the first match.
func (p *LastFMAlbum) Lookup(ctx context.Context, artist, title string) (string, error) {
	params := url.Values{}
	params.Set("method", "album.search")
	params.Set("api_key", p.apiKey)
	params.Set("album", title)
	params.Set("artist", artist)
	params.Set("format", "json")

	var payload lastfmAlbumSearchResponse
	if err := getJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return "", err
	}

	albums := payload.Results.AlbumMatches.Album
	if len(albums) == 0 {
		return "", ErrNotFound
	}
	if u := pickLargeImage(albums[0].Image); u != "" {
		return u, nil
	}
	return "", ErrNotFound
}

// pickLargeImage prefers the extralarge variant, then large
func pickLargeImage(images []lastfmImage) string {
	var large string
	for _, img := range images {
		if img.URL == "" {
			continue
		}
		switch img.Size {
		case "extralarge":
			return img.URL
		case "large":
			large = img.URL
		}
	}
	return large
}

// getJSON performs a GET and decodes the JSON body into out
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "radiobar/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}
