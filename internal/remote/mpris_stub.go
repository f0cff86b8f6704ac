//go:build !linux
// +build !linux

package remote

import (
	"context"

	"go.uber.org/zap"
)

// Service is a placeholder on platforms without a D-Bus session bus.
type Service struct {
	logger *zap.Logger
}

// NewService creates a stub remote control service for unsupported platforms.
func NewService(logger *zap.Logger, controls Controls, identity string) *Service {
	return &Service{logger: logger}
}

// Start logs that remote control is unavailable and succeeds anyway.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Remote media key control is not available on this platform")
	return nil
}

// Close is a no-op.
func (s *Service) Close() error {
	return nil
}
