package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
)

const (
	selectResourcesQuery = `SELECT lang, section, key, value FROM resources ORDER BY lang, section, key`

	upsertResourceQuery = `INSERT INTO resources (lang, section, key, value, updated_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (lang, section, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
)

// Querier is the part of *pgxpool.Pool, *pgx.Conn and pgx.Tx the adapter reads through.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BatchSender is the part of *pgxpool.Pool and pgx.Tx used to store resources.
type BatchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Row is one (lang, section, key) entry of the resources table.
type Row struct {
	Lang    string
	Section string
	Key     string
	Value   string
}

// Adapter loads resources from the resources table created by Migrate.
type Adapter struct {
	db Querier
}

// NewAdapter returns an i18n.TranslationAdapter reading from db.
func NewAdapter(db Querier) *Adapter {
	return &Adapter{db: db}
}

// Load reads every row of the resources table.
func (a *Adapter) Load(ctx context.Context) (i18n.Resources, error) {
	rows, err := a.db.Query(ctx, selectResourcesQuery)
	if err != nil {
		return nil, classifyLoadError(err)
	}

	list, err := pgx.CollectRows(rows, scanRow)
	if err != nil {
		return nil, classifyLoadError(err)
	}

	return Assemble(list), nil
}

func classifyLoadError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return errors.Join(ErrFailedToLoadResources, ErrSchemaNotMigrated, err)
	}
	return errors.Join(ErrFailedToLoadResources, err)
}

func scanRow(row pgx.CollectableRow) (Row, error) {
	var r Row
	err := row.Scan(&r.Lang, &r.Section, &r.Key, &r.Value)
	return r, err
}

// Assemble groups rows into Resources. Later duplicates win.
func Assemble(rows []Row) i18n.Resources {
	res := make(i18n.Resources)
	for _, r := range rows {
		if r.Lang == "" || r.Section == "" || r.Key == "" {
			continue
		}
		res.Set(r.Lang, r.Section, r.Key, r.Value)
	}
	return res
}

// Store upserts every entry of res in one batch. Keys absent from res are left in place.
func Store(ctx context.Context, db BatchSender, res i18n.Resources) error {
	batch := &pgx.Batch{}
	for lang, sections := range res {
		for section, entries := range sections {
			for key, value := range entries {
				batch.Queue(upsertResourceQuery, lang, section, key, value)
			}
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := db.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return errors.Join(ErrFailedToStoreResources, err)
		}
	}
	if err := br.Close(); err != nil {
		return errors.Join(ErrFailedToStoreResources, err)
	}
	return nil
}
