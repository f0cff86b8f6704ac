//go:build linux
// +build linux

package remote

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"go.uber.org/zap"
)

const (
	busName    = "org.mpris.MediaPlayer2.radiobar"
	objectPath = "/org/mpris/MediaPlayer2"

	rootInterface   = "org.mpris.MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Service registers the player on the session bus under the MPRIS
// media player interface, so desktop media keys work.
type Service struct {
	logger   *zap.Logger
	controls Controls
	identity string
	conn     *dbus.Conn
}

// NewService creates the MPRIS remote control service (Linux implementation).
func NewService(logger *zap.Logger, controls Controls, identity string) *Service {
	return &Service{
		logger:   logger,
		controls: controls,
		identity: identity,
	}
}

// Start connects to the session bus and claims the player name. A bus
// without a session (headless deployments) is logged and tolerated.
func (s *Service) Start(ctx context.Context) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		s.logger.Warn("No D-Bus session bus, media keys disabled", zap.Error(err))
		return nil
	}
	s.conn = conn

	handler := &mprisHandler{service: s}
	if err := conn.Export(handler, objectPath, playerInterface); err != nil {
		return fmt.Errorf("export player interface: %w", err)
	}
	if err := conn.Export(handler, objectPath, rootInterface); err != nil {
		return fmt.Errorf("export root interface: %w", err)
	}
	if err := conn.Export(introspect.Introspectable(introspectXML), objectPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("export introspection: %w", err)
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		s.logger.Warn("MPRIS name already taken, media keys disabled",
			zap.String("name", busName))
		return nil
	}

	s.logger.Info("MPRIS remote control registered", zap.String("name", busName))
	return nil
}

// Close releases the bus name and connection.
func (s *Service) Close() error {
	if s.conn == nil {
		return nil
	}
	if _, err := s.conn.ReleaseName(busName); err != nil {
		s.logger.Warn("Failed to release MPRIS name", zap.Error(err))
	}
	return s.conn.Close()
}

// mprisHandler receives method calls from the bus.
type mprisHandler struct {
	service *Service
}

// Play handles org.mpris.MediaPlayer2.Player.Play.
func (h *mprisHandler) Play() *dbus.Error {
	h.service.controls.Play()
	return nil
}

// Pause handles org.mpris.MediaPlayer2.Player.Pause.
func (h *mprisHandler) Pause() *dbus.Error {
	h.service.controls.Pause()
	return nil
}

// PlayPause handles org.mpris.MediaPlayer2.Player.PlayPause, bound to
// the media key on most desktops.
func (h *mprisHandler) PlayPause() *dbus.Error {
	h.service.controls.TogglePlayPause()
	return nil
}

// Stop handles org.mpris.MediaPlayer2.Player.Stop.
func (h *mprisHandler) Stop() *dbus.Error {
	h.service.controls.Stop()
	return nil
}

// Next and Previous are mandatory on the interface; a live stream has
// no track list to move through.
func (h *mprisHandler) Next() *dbus.Error     { return nil }
func (h *mprisHandler) Previous() *dbus.Error { return nil }

// Raise and Quit belong to the root interface.
func (h *mprisHandler) Raise() *dbus.Error { return nil }

func (h *mprisHandler) Quit() *dbus.Error {
	h.service.controls.Stop()
	return nil
}

const introspectXML = `
<node>
	<interface name="org.mpris.MediaPlayer2">
		<method name="Raise"/>
		<method name="Quit"/>
	</interface>
	<interface name="org.mpris.MediaPlayer2.Player">
		<method name="Play"/>
		<method name="Pause"/>
		<method name="PlayPause"/>
		<method name="Stop"/>
		<method name="Next"/>
		<method name="Previous"/>
	</interface>
</node>`
