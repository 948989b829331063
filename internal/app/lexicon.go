package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/verbnet-reader/internal/adapter/postgres"
	"github.com/heartmarshall/verbnet-reader/internal/adapter/postgres/document"
	"github.com/heartmarshall/verbnet-reader/internal/config"
	"github.com/heartmarshall/verbnet-reader/internal/corpus"
	"github.com/heartmarshall/verbnet-reader/internal/domain"
	"github.com/heartmarshall/verbnet-reader/internal/index"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
	"github.com/heartmarshall/verbnet-reader/internal/service/verbnet"
)

// Store is implemented by every document store.
type Store interface {
	ListDocuments(ctx context.Context) ([]string, error)
	OpenRaw(ctx context.Context, documentID string) (string, error)
	OpenParsed(ctx context.Context, documentID string) (*domain.ClassNode, error)
	Ping(ctx context.Context) error
}

// Lexicon is an opened corpus: its store, lookup tables and query service.
type Lexicon struct {
	Service *verbnet.Service
	Index   *index.Index
	Store   Store
	Pool    *pgxpool.Pool // nil for file corpora
}

// Close releases the database pool, if any.
func (l *Lexicon) Close() {
	if l.Pool != nil {
		l.Pool.Close()
	}
}

// OpenLexicon opens the configured document store and builds the index.
func OpenLexicon(ctx context.Context, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) (*Lexicon, error) {
	lex := &Lexicon{}

	switch cfg.Corpus.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		repo, err := document.New(pool, cfg.Corpus.CacheSize)
		if err != nil {
			pool.Close()
			return nil, err
		}
		lex.Pool = pool
		lex.Store = repo
	default:
		files, err := corpus.NewFileStore(cfg.Corpus.Root, cfg.Corpus.FilePattern, cfg.Corpus.CacheSize)
		if err != nil {
			return nil, err
		}
		if err := files.Ping(ctx); err != nil {
			return nil, err
		}
		lex.Store = files
	}
	lex.Store = &instrumentedStore{Store: lex.Store, metrics: m}

	idx, err := buildIndex(ctx, cfg.Corpus.IndexMode, lex.Store, logger, m)
	if err != nil {
		lex.Close()
		return nil, err
	}
	lex.Index = idx

	lex.Service = verbnet.NewService(logger, lex.Store, idx, verbnet.Options{
		ExpandSubstructures: cfg.Corpus.ExpandsSubstructures(),
	})
	return lex, nil
}

func buildIndex(ctx context.Context, mode string, store Store, logger *slog.Logger, m *metrics.Metrics) (*index.Index, error) {
	start := time.Now()

	var (
		idx *index.Index
		err error
	)
	if mode == config.IndexFull {
		idx, err = index.BuildFull(ctx, store)
	} else {
		mode = config.IndexQuick
		idx, err = index.BuildQuick(ctx, store)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s index: %w", mode, err)
	}

	elapsed := time.Since(start)
	stats := idx.Stats()
	logger.InfoContext(ctx, "index built",
		slog.String("mode", mode),
		slog.Int("documents", stats.Documents),
		slog.Int("classes", stats.Classes),
		slog.Int("lemmas", stats.Lemmas),
		slog.Int("sense_ids", stats.SenseIDs),
		slog.Duration("duration", elapsed),
	)
	m.RecordIndexBuild(mode, elapsed, stats.Documents, stats.Classes, stats.Lemmas, stats.SenseIDs)
	return idx, nil
}

// instrumentedStore counts parsed-document loads.
type instrumentedStore struct {
	Store
	metrics *metrics.Metrics
}

func (s *instrumentedStore) OpenParsed(ctx context.Context, documentID string) (*domain.ClassNode, error) {
	node, err := s.Store.OpenParsed(ctx, documentID)
	s.metrics.RecordDocumentLoad(err)
	return node, err
}
