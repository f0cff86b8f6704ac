// Package artwork resolves album artwork for a track by walking an
// ordered cascade of provider sources, tolerating any provider
// failing.
package artwork

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/config"
	"github.com/itsyourradio/radiobar/internal/domain"
)

// ErrNotFound is returned by a provider that answered but had no
// usable image. It advances the cascade exactly like a network error.
var ErrNotFound = errors.New("no artwork found")

// ErrNoArtwork is returned once the hint and every provider came up
// empty. The caller retains its prior artwork in that case.
var ErrNoArtwork = errors.New("artwork providers exhausted")

const providerTimeout = 5 * time.Second

// Provider is a single artwork source in the cascade
type Provider interface {
	Name() string
	// Lookup returns an artwork URL for the track, or ErrNotFound
	Lookup(ctx context.Context, artist, title string) (string, error)
}

// Resolver walks the provider cascade, short-circuiting on the first
// success. A direct hint URL supplied by the metadata source is
// priority zero and only has to prove it actually serves an image.
type Resolver struct {
	logger    *zap.Logger
	fetcher   domain.Fetcher
	providers []Provider
	timeout   time.Duration
}

// NewResolver creates a resolver over the given ordered providers
func NewResolver(logger *zap.Logger, fetcher domain.Fetcher, providers []Provider) *Resolver {
	return &Resolver{
		logger:    logger,
		fetcher:   fetcher,
		providers: providers,
		timeout:   providerTimeout,
	}
}

// NewProviders builds the default cascade from configuration: Last.fm
// track lookup, Last.fm album search, then the iTunes catalog. The
// Last.fm providers are skipped entirely without an API key.
func NewProviders(logger *zap.Logger, cfg *config.Config) []Provider {
	var providers []Provider
	if key := cfg.Artwork.LastFMAPIKey; key != "" {
		providers = append(providers,
			NewLastFMTrack(logger, key),
			NewLastFMAlbum(logger, key),
		)
	}
	providers = append(providers, NewITunes(logger))
	return providers
}

// Resolve returns the first usable artwork URL for the track. Every
// step carries its own timeout; a timeout or HTTP error means "this
// source found nothing" and the cascade advances. Validating a direct
// hint downloads the image, so the bytes ride along with the URL and
// the caller skips its own fetch.
func (r *Resolver) Resolve(ctx context.Context, artist, title, hint string) (string, []byte, error) {
	if hint != "" {
		hctx, cancel := context.WithTimeout(ctx, r.timeout)
		data, err := r.fetcher.Fetch(hctx, hint)
		cancel()
		if err == nil {
			r.logger.Debug("Using direct artwork hint", zap.String("url", hint))
			return hint, data, nil
		}
		r.logger.Warn("Direct artwork hint unusable, falling back to providers",
			zap.String("url", hint), zap.Error(err))
	}

	if artist == "" && title == "" {
		return "", nil, ErrNoArtwork
	}

	for _, p := range r.providers {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		pctx, cancel := context.WithTimeout(ctx, r.timeout)
		artURL, err := p.Lookup(pctx, artist, title)
		cancel()

		if err != nil {
			if errors.Is(err, ErrNotFound) {
				r.logger.Debug("Provider found no artwork", zap.String("provider", p.Name()))
			} else {
				r.logger.Warn("Artwork provider failed",
					zap.String("provider", p.Name()), zap.Error(err))
			}
			continue
		}
		if artURL != "" {
			r.logger.Debug("Artwork resolved",
				zap.String("provider", p.Name()), zap.String("url", artURL))
			return artURL, nil, nil
		}
	}

	return "", nil, ErrNoArtwork
}
