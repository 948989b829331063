package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/verbnet-reader/internal/config"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
)

// Run is the server entry point. It loads configuration, initializes the
// logger, opens the corpus and serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("corpus_source", cfg.Corpus.Source),
		slog.String("index_mode", cfg.Corpus.IndexMode),
	)

	m := metrics.New()
	lex, err := OpenLexicon(ctx, *cfg, logger, m)
	if err != nil {
		return err
	}
	defer lex.Close()

	return Serve(ctx, *cfg, logger, lex, m)
}
