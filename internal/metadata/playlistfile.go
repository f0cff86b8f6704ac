package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/domain"
	"github.com/itsyourradio/radiobar/internal/playlist"
)

const _maxPlaylistSize = 256 * 1024

// PlaylistSource is the tertiary metadata source: the station's M3U
// playlist file, with the stream title embedded in its EXTINF line.
type PlaylistSource struct {
	logger *zap.Logger
	client *http.Client
	url    string
}

// NewPlaylistSource creates the playlist-file metadata source
func NewPlaylistSource(logger *zap.Logger, url string) *PlaylistSource {
	return &PlaylistSource{
		logger: logger,
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
	}
}

func (s *PlaylistSource) Name() string { return "playlist" }

// Fetch downloads the playlist and normalizes the first embedded
// stream title.
func (s *PlaylistSource) Fetch(ctx context.Context) (domain.NowPlaying, error) {
	var np domain.NowPlaying

	sep := "?"
	if strings.Contains(s.url, "?") {
		sep = "&"
	}
	reqURL := fmt.Sprintf("%s%snocache=%d", s.url, sep, time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return np, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return np, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return np, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxPlaylistSize))
	if err != nil {
		return np, fmt.Errorf("failed to read body: %w", err)
	}

	streamTitle := playlist.FirstTitle(playlist.ParseM3U(string(data)))
	if streamTitle == "" {
		return np, fmt.Errorf("playlist carries no stream title")
	}

	np.Artist, np.Title = SplitStreamTitle(streamTitle)
	return np, nil
}
