// Package document stores raw VerbNet documents in PostgreSQL and serves
// them to the lexicon the same way the file store does.
package document

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/verbnet-reader/internal/adapter/postgres"
	"github.com/heartmarshall/verbnet-reader/internal/corpus"
	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

const table = "vn_documents"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type db interface {
	querier
	Ping(ctx context.Context) error
}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	db    db
	cache *lru.Cache[string, *domain.ClassNode]
}

// New creates a document repository. cacheSize <= 0 disables the cache of
// decoded documents.
func New(db db, cacheSize int) (*Repo, error) {
	r := &Repo{db: db}
	if cacheSize > 0 {
		cache, err := lru.New[string, *domain.ClassNode](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create document cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// q returns the transaction from ctx when there is one.
func (r *Repo) q(ctx context.Context) querier {
	if tx, ok := postgres.TxFromCtx(ctx); ok {
		return tx
	}
	return r.db
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts a document or replaces the raw text of an existing one.
func (r *Repo) Upsert(ctx context.Context, doc domain.Document) error {
	query, args, err := psql.
		Insert(table).
		Columns("id", "raw", "imported_at").
		Values(doc.ID, doc.Raw, sq.Expr("now()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET raw = EXCLUDED.raw, imported_at = EXCLUDED.imported_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "document", doc.ID)
	}

	if r.cache != nil {
		r.cache.Remove(doc.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListDocuments returns all document ids, sorted.
func (r *Repo) ListDocuments(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("id").From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "document", "list")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "document", "list")
	}
	return ids, nil
}

// OpenRaw returns the raw text of a document.
func (r *Repo) OpenRaw(ctx context.Context, documentID string) (string, error) {
	query, args, err := psql.Select("raw").From(table).Where(sq.Eq{"id": documentID}).ToSql()
	if err != nil {
		return "", fmt.Errorf("build select: %w", err)
	}

	var raw string
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return "", postgres.MapError(err, "document", documentID)
	}
	return raw, nil
}

// OpenParsed returns the decoded root class of a document.
func (r *Repo) OpenParsed(ctx context.Context, documentID string) (*domain.ClassNode, error) {
	if r.cache != nil {
		if node, ok := r.cache.Get(documentID); ok {
			return node, nil
		}
	}

	raw, err := r.OpenRaw(ctx, documentID)
	if err != nil {
		return nil, err
	}

	node, err := corpus.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", documentID, err)
	}

	if r.cache != nil {
		r.cache.Add(documentID, node)
	}
	return node, nil
}
