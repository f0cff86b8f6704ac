package domain

import "fmt"

// PlaybackStatus represents the current state of the player
type PlaybackStatus string

const (
	// StatusStopped indicates playback is stopped (initial state)
	StatusStopped PlaybackStatus = "Stopped"
	// StatusPlaying indicates the stream is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusPaused indicates playback is paused
	StatusPaused PlaybackStatus = "Paused"
)

// StreamFormat tags a stream candidate (mp3, aacp, m3u, pls, ...)
type StreamFormat string

const (
	FormatMP3  StreamFormat = "mp3"
	FormatAACP StreamFormat = "aacp"
	FormatM3U  StreamFormat = "m3u"
	FormatPLS  StreamFormat = "pls"
)

// StreamCandidate is one entry of the ordered stream fallback list.
// No two candidates of a station share a format tag.
type StreamCandidate struct {
	Format StreamFormat
	URL    string
}

// IsPlaylist reports whether the candidate points at a playlist file
// rather than a raw audio stream.
func (c StreamCandidate) IsPlaylist() bool {
	return c.Format == FormatM3U || c.Format == FormatPLS
}

// TrackMetadata is the currently displayed now-playing information.
// Title and artist are always updated together; each update is gated
// by an equality check to suppress redundant UI churn.
type TrackMetadata struct {
	Title      string
	Artist     string
	ArtworkURL string
}

// SameTrack reports whether the given artist/title pair matches the
// currently held metadata.
func (t TrackMetadata) SameTrack(artist, title string) bool {
	return t.Artist == artist && t.Title == title
}

// NowPlaying is the normalized result of a single metadata poll,
// before it is merged into TrackMetadata.
type NowPlaying struct {
	Artist string
	Title  string
	// ArtURL is a direct artwork hint supplied inline by the metadata
	// source. It takes priority over the artwork provider cascade.
	ArtURL string
	// Placeholder marks a generic "Live Stream" result emitted when
	// every metadata source failed. It is applied only if nothing has
	// been shown yet this play session.
	Placeholder bool
}

// RGB is a single extracted color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Palette holds exactly three representative colors derived from album
// artwork, ordered most-to-least prominent.
type Palette [3]RGB

// MessageKind classifies a transient message shown on the surface
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
	MessageInfo    MessageKind = "info"
)
