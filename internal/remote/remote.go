// Package remote exposes transport controls to the host desktop so
// media keys and system players can drive playback.
package remote

import "github.com/itsyourradio/radiobar/internal/domain"

// Controls is the subset of player operations a remote controller may
// invoke.
type Controls interface {
	Play()
	Pause()
	Stop()
	TogglePlayPause()
	Status() domain.PlaybackStatus
}
