package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/domain"
)

type icecastMount struct {
	ListenURL string `json:"listenurl"`
	Title     string `json:"title"`
}

// icecastResponse holds the raw status document. The source field is
// a single object when one mount is live and an array otherwise, so it
// is decoded in two passes.
type icecastResponse struct {
	Icestats struct {
		Source json.RawMessage `json:"source"`
	} `json:"icestats"`
}

// IcecastSource is the secondary metadata source: the server's raw
// status document, carrying a combined "Artist - Title" stream title
// per mount.
type IcecastSource struct {
	logger *zap.Logger
	client *http.Client
	url    string
	mount  string
}

// NewIcecastSource creates the status-document metadata source. mount
// selects the matching entry when the document lists several (matched
// as a substring of the listen URL); empty means "first with a title".
func NewIcecastSource(logger *zap.Logger, url, mount string) *IcecastSource {
	return &IcecastSource{
		logger: logger,
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
		mount:  mount,
	}
}

func (s *IcecastSource) Name() string { return "icecast" }

// Fetch retrieves the status document and normalizes the matching
// mount's stream title.
func (s *IcecastSource) Fetch(ctx context.Context) (domain.NowPlaying, error) {
	var np domain.NowPlaying

	// Some servers cache the status document aggressively
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

	var payload icecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return np, fmt.Errorf("malformed response: %w", err)
	}

	mount, err := s.pickMount(payload.Icestats.Source)
	if err != nil {
		return np, err
	}

	np.Artist, np.Title = SplitStreamTitle(mount.Title)
	if np.Title == "" {
		return np, fmt.Errorf("source entry has no stream title")
	}
	return np, nil
}

func (s *IcecastSource) pickMount(raw json.RawMessage) (icecastMount, error) {
	if len(raw) == 0 {
		return icecastMount{}, fmt.Errorf("malformed response: missing source")
	}

	var single icecastMount
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, nil
	}

	var many []icecastMount
	if err := json.Unmarshal(raw, &many); err != nil {
		return icecastMount{}, fmt.Errorf("malformed response: %w", err)
	}

	for _, m := range many {
		if s.mount != "" && !strings.Contains(m.ListenURL, s.mount) {
			continue
		}
		if m.Title != "" {
			return m, nil
		}
	}
	return icecastMount{}, fmt.Errorf("no matching source entry")
}
