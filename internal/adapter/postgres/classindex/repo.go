// Package classindex exports the in-memory lookup tables to PostgreSQL so
// other systems can query the lexicon with SQL.
package classindex

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/verbnet-reader/internal/adapter/postgres"
	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo writes and reads the exported class index.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a class index repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Counts are the row counts of the exported tables.
type Counts struct {
	Classes      int `json:"classes" yaml:"classes"`
	LemmaClasses int `json:"lemmaClasses" yaml:"lemma_classes"`
	SenseClasses int `json:"senseClasses" yaml:"sense_classes"`
}

// ReplaceSnapshot deletes the previous export and writes snap. Run it inside
// TxManager.RunInTx so readers never see a partial index.
func (r *Repo) ReplaceSnapshot(ctx context.Context, snap domain.IndexSnapshot) (Counts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	// vn_lemma_classes and vn_sense_classes cascade.
	if _, err := q.Exec(ctx, `DELETE FROM vn_classes`); err != nil {
		return Counts{}, postgres.MapError(err, "class_index", "delete")
	}

	batch := &pgx.Batch{}
	for _, c := range snap.Classes {
		batch.Queue(
			`INSERT INTO vn_classes (id, short_id, document_id) VALUES ($1, $2, $3)`,
			c.ID, c.ShortID, c.DocumentID,
		)
	}
	for _, l := range snap.LemmaClasses {
		batch.Queue(
			`INSERT INTO vn_lemma_classes (lemma, position, class_id) VALUES ($1, $2, $3)`,
			l.Key, l.Position, l.ClassID,
		)
	}
	for _, l := range snap.SenseClasses {
		batch.Queue(
			`INSERT INTO vn_sense_classes (sense_id, position, class_id) VALUES ($1, $2, $3)`,
			l.Key, l.Position, l.ClassID,
		)
	}

	if _, err := sendBatchExec(ctx, q, batch); err != nil {
		return Counts{}, postgres.MapError(err, "class_index", "insert")
	}

	return Counts{
		Classes:      len(snap.Classes),
		LemmaClasses: len(snap.LemmaClasses),
		SenseClasses: len(snap.SenseClasses),
	}, nil
}

// Count returns the row counts of the exported tables.
func (r *Repo) Count(ctx context.Context) (Counts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c Counts
	err := q.QueryRow(ctx, `SELECT
		(SELECT count(*) FROM vn_classes),
		(SELECT count(*) FROM vn_lemma_classes),
		(SELECT count(*) FROM vn_sense_classes)`,
	).Scan(&c.Classes, &c.LemmaClasses, &c.SenseClasses)
	if err != nil {
		return Counts{}, postgres.MapError(err, "class_index", "count")
	}
	return c, nil
}

// ClassesForLemma returns the exported class ids of lemma in index order.
func (r *Repo) ClassesForLemma(ctx context.Context, lemma string) ([]string, error) {
	query, args, err := psql.
		Select("class_id").
		From("vn_lemma_classes").
		Where(sq.Eq{"lemma": lemma}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lemma", lemma)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "lemma", lemma)
	}
	return ids, nil
}

func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch) (int, error) {
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
