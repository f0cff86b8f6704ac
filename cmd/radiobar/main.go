package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/itsyourradio/radiobar/internal/artwork"
	"github.com/itsyourradio/radiobar/internal/audio"
	"github.com/itsyourradio/radiobar/internal/config"
	"github.com/itsyourradio/radiobar/internal/domain"
	"github.com/itsyourradio/radiobar/internal/fetcher"
	"github.com/itsyourradio/radiobar/internal/metadata"
	"github.com/itsyourradio/radiobar/internal/player"
	"github.com/itsyourradio/radiobar/internal/remote"
	"github.com/itsyourradio/radiobar/internal/surface"
)

// AppOptions assembles the full dependency graph. Kept as a variable
// so tests can validate the graph without starting the app.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.Load,
		newFetcher,
		newResolver,
		newPoller,
		audio.NewStreamEngine,
		newEngine,
		newSurface,
		player.New,
		newRemote,
	),
	fx.Invoke(registerHooks),
)

func main() {
	// Local overrides for development; absence is not an error
	_ = godotenv.Load()

	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates the process-wide zap logger.
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newFetcher(logger *zap.Logger) domain.Fetcher {
	return fetcher.NewHTTPFetcher(logger)
}

func newResolver(logger *zap.Logger, cfg *config.Config, f domain.Fetcher) domain.ArtworkResolver {
	return artwork.NewResolver(logger, f, artwork.NewProviders(logger, cfg))
}

func newPoller(logger *zap.Logger, cfg *config.Config) domain.Poller {
	return metadata.NewPoller(logger, metadata.NewSources(logger, cfg), cfg.PollInterval())
}

func newEngine(e *audio.StreamEngine) domain.AudioEngine {
	return e
}

func newSurface(logger *zap.Logger) domain.Surface {
	return surface.NewConsole(logger, os.Stdout)
}

func newRemote(logger *zap.Logger, p *player.Player, cfg *config.Config) *remote.Service {
	return remote.NewService(logger, p, cfg.Station.Name)
}

// registerHooks wires the event flow and ties component lifecycles to
// the application.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	engine *audio.StreamEngine,
	p *player.Player,
	rc *remote.Service,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("radiobar starting")

			engine.SetHandler(p)
			if err := p.Start(ctx); err != nil {
				return err
			}
			if err := rc.Start(ctx); err != nil {
				return err
			}
			// Fires the ready event, which triggers autoplay if enabled
			return engine.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("radiobar shutting down")
			if err := rc.Close(); err != nil {
				logger.Warn("Remote control shutdown failed", zap.Error(err))
			}
			return p.Close()
		},
	})
}
