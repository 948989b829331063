package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/verbnet-reader/internal/adapter/postgres"
	"github.com/heartmarshall/verbnet-reader/internal/adapter/postgres/classindex"
	"github.com/heartmarshall/verbnet-reader/internal/adapter/postgres/document"
	"github.com/heartmarshall/verbnet-reader/internal/config"
	"github.com/heartmarshall/verbnet-reader/internal/corpus"
	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

var errNoDSN = errors.New("database.dsn is required")

func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if cfg.DSN == "" {
		return nil, errNoDSN
	}
	return postgres.NewPool(ctx, cfg)
}

// Migrate applies the database migrations.
func Migrate(ctx context.Context, cfg config.Config, logger *slog.Logger) (int, error) {
	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	return postgres.Migrate(ctx, pool, logger)
}

// Import copies every document of the file corpus at root into the
// database in one transaction, and returns how many were written.
func Import(ctx context.Context, cfg config.Config, logger *slog.Logger, root string) (int, error) {
	files, err := corpus.NewFileStore(root, cfg.Corpus.FilePattern, 0)
	if err != nil {
		return 0, err
	}
	ids, err := files.ListDocuments(ctx)
	if err != nil {
		return 0, err
	}

	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	repo, err := document.New(pool, 0)
	if err != nil {
		return 0, err
	}

	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			raw, err := files.OpenRaw(ctx, id)
			if err != nil {
				return err
			}
			// Reject documents the lexicon could not read back.
			if _, err := corpus.DecodeString(raw); err != nil {
				return fmt.Errorf("document %s: %w", id, err)
			}
			if err := repo.Upsert(ctx, domain.Document{ID: id, Raw: raw}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", root, err)
	}

	logger.InfoContext(ctx, "corpus imported",
		slog.String("root", root),
		slog.Int("documents", len(ids)),
	)
	return len(ids), nil
}

// Export writes the lookup tables of lex to the database, replacing any
// previous export.
func Export(ctx context.Context, cfg config.Config, logger *slog.Logger, lex *Lexicon) (classindex.Counts, error) {
	pool := lex.Pool
	if pool == nil {
		p, err := openPool(ctx, cfg.Database)
		if err != nil {
			return classindex.Counts{}, err
		}
		defer p.Close()
		pool = p
	}

	repo := classindex.New(pool)
	var counts classindex.Counts
	// Concurrent exports would otherwise interleave deletes and inserts.
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}
	err := postgres.NewTxManager(pool).RunInTxWith(ctx, opts, func(ctx context.Context) error {
		var err error
		counts, err = repo.ReplaceSnapshot(ctx, lex.Index.Snapshot())
		return err
	})
	if err != nil {
		return classindex.Counts{}, fmt.Errorf("export index: %w", err)
	}

	logger.InfoContext(ctx, "index exported",
		slog.Int("classes", counts.Classes),
		slog.Int("lemma_links", counts.LemmaClasses),
		slog.Int("sense_links", counts.SenseClasses),
	)
	return counts, nil
}
