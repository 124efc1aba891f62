package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// blobRepo implements BlobRepo on the blobs table with ent's SQL builders.
type blobRepo struct {
	drv *entsql.Driver
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *blobRepo) Get(ctx context.Context, key string) (Blob, bool, error) {
	query, args := builder().
		Select(columnKey, columnValue, columnUpdatedAt).
		From(builder().Table(blobsTable)).
		Where(entsql.EQ(columnKey, key)).
		Query()

	blobs, err := r.query(ctx, query, args)
	if err != nil {
		return Blob{}, false, fmt.Errorf("query blob %q: %w", key, err)
	}
	if len(blobs) == 0 {
		return Blob{}, false, nil
	}
	return blobs[0], true, nil
}

func (r *blobRepo) Put(ctx context.Context, key, value string) error {
	query, args := builder().
		Insert(blobsTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns(columnKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save blob %q: %w", key, err)
	}
	return nil
}

func (r *blobRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete(blobsTable).
		Where(entsql.EQ(columnKey, key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

func (r *blobRepo) List(ctx context.Context) ([]Blob, error) {
	query, args := builder().
		Select(columnKey, columnValue, columnUpdatedAt).
		From(builder().Table(blobsTable)).
		OrderBy(columnKey).
		Query()

	blobs, err := r.query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	return blobs, nil
}

func (r *blobRepo) query(ctx context.Context, query string, args []any) ([]Blob, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Blob
	for rows.Next() {
		var (
			b  Blob
			ms int64
		)
		if err := rows.Scan(&b.Key, &b.Value, &ms); err != nil {
			return nil, fmt.Errorf("scan blob: %w", err)
		}
		b.UpdatedAt = time.UnixMilli(ms)
		out = append(out, b)
	}
	return out, rows.Err()
}
