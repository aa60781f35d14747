package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGClient serves the store contract straight from Postgres, for deployments
// that skip the hosted REST backend. It plays the "server" role, so it mints
// row ids and stamps timestamps the way the backend otherwise would.
type PGClient struct {
	pool *pgxpool.Pool
}

func NewPGClient(pool *pgxpool.Pool) *PGClient {
	return &PGClient{pool: pool}
}

func (c *PGClient) Select(ctx context.Context, collection string, q Query) ([]Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var sb strings.Builder
	args := make([]any, 0, len(q.Filters))
	sb.WriteString(`SELECT * FROM ` + collection)
	for i, f := range q.Filters {
		if !ValidColumn(f.Column) {
			return nil, fmt.Errorf("invalid filter column %q", f.Column)
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, f.Value)
		fmt.Fprintf(&sb, "%s = $%d", f.Column, len(args))
	}
	if q.Order.Column != "" {
		if !ValidColumn(q.Order.Column) {
			return nil, fmt.Errorf("invalid order column %q", q.Order.Column)
		}
		dir := "ASC"
		if q.Order.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", q.Order.Column, dir)
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := c.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	defer rows.Close()
	return collectRows(rows)
}

func (c *PGClient) Insert(ctx context.Context, collection string, row Row) (Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	r := row.Clone()
	now := FormatTime(time.Now())
	r["id"] = uuid.NewString()
	r["created_at"] = now
	r["updated_at"] = now
	if collection == SessionMessages {
		delete(r, "updated_at")
	}

	cols := make([]string, 0, len(r))
	ph := make([]string, 0, len(r))
	args := make([]any, 0, len(r))
	for k, v := range r {
		if !ValidColumn(k) {
			return nil, fmt.Errorf("invalid column %q", k)
		}
		cols = append(cols, k)
		args = append(args, v)
		ph = append(ph, fmt.Sprintf("$%d", len(args)))
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		collection, strings.Join(cols, ", "), strings.Join(ph, ", "))
	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", collection, err)
	}
	defer rows.Close()
	return singleFromRows(rows)
}

func (c *PGClient) Update(ctx context.Context, collection string, id string, row Row) (Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	sets := make([]string, 0, len(row)+1)
	args := []any{id}
	for k, v := range row {
		if !ValidColumn(k) {
			return nil, fmt.Errorf("invalid column %q", k)
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", k, len(args)))
	}
	args = append(args, FormatTime(time.Now()))
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING *",
		collection, strings.Join(sets, ", "))
	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", collection, err)
	}
	defer rows.Close()
	return singleFromRows(rows)
}

func (c *PGClient) Delete(ctx context.Context, collection string, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	tag, err := c.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", collection), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func checkCollection(collection string) error {
	if !KnownCollection(collection) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return nil
}

func collectRows(rows pgx.Rows) ([]Row, error) {
	fields := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		r := make(Row, len(fields))
		for i, f := range fields {
			r[string(f.Name)] = normalizeValue(vals[i])
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func singleFromRows(rows pgx.Rows) (Row, error) {
	out, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out[0], nil
}

// normalizeValue maps pgx scan types onto the JSON shapes the rest of the
// module expects from Row.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return FormatTime(t)
	case [16]byte:
		return uuid.UUID(t).String()
	case []byte:
		return string(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
