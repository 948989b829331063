package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/verbnet-reader/internal/config"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
	"github.com/heartmarshall/verbnet-reader/internal/transport/middleware"
	"github.com/heartmarshall/verbnet-reader/internal/transport/rest"
)

// NewHandler assembles the HTTP API with its middleware stack.
func NewHandler(cfg config.Config, logger *slog.Logger, lex *Lexicon, m *metrics.Metrics, rl *middleware.RateLimiter) http.Handler {
	vn := rest.NewVerbNetHandler(lex.Service, m, cfg.Server.MaxFrames, logger)
	health := rest.NewHealthHandler(lex.Store, lex.Index, BuildVersion())
	mux := rest.NewMux(vn, health, m.Handler(), rl.Limit(cfg.Server.FramesPerMinute))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m, m.HTTPRequestsInFlight, rest.RoutePattern(mux)),
		middleware.CORS(cfg.CORS),
	)(mux)
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Serve(ctx context.Context, cfg config.Config, logger *slog.Logger, lex *Lexicon, m *metrics.Metrics) error {
	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, lex, m, rl),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
