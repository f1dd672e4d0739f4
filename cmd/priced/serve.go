package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"priced/internal/artifact"
	"priced/internal/config"
	"priced/internal/httpapi"
	"priced/internal/predictor"
)

// serve loads the model once and serves HTTP until ctx is done. A nil ln
// listens on cfg.Addr().
func serve(ctx context.Context, cfg config.Config, logger zerolog.Logger, ln net.Listener) error {
	a, err := artifact.Load(cfg.ModelPath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.ModelPath).Msg("failed to load model")
		return err
	}
	svc, err := predictor.NewWithConfig(predictor.ServiceConfig{Model: a.Model, Info: a.Info, CacheSize: cfg.CacheSize})
	if err != nil {
		return err
	}

	httpapi.SetLogger(logger)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSOrigins, nil, nil)
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	if ln == nil {
		if ln, err = net.Listen("tcp", cfg.Addr()); err != nil {
			logger.Error().Err(err).Str("addr", cfg.Addr()).Msg("listen failed")
			return err
		}
	}
	srv := &http.Server{
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	logger.Info().
		Str("addr", ln.Addr().String()).
		Str("model", a.Info.Source).
		Str("kind", a.Info.Kind).
		Int("n_features", a.Info.NumFeatures).
		Msg("priced listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error().Err(err).Msg("server error")
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}
