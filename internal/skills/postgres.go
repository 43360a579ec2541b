package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable is the table read by LoadPostgres when none is configured
const DefaultTable = "skills"

// Querier is the subset of pgx used to read dictionary rows
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres reads skill, aliases and type columns from a table
func LoadPostgres(ctx context.Context, q Querier, table string) (*Dictionary, Stats, error) {
	if table == "" {
		table = DefaultTable
	}
	source := "postgres:" + table

	query := fmt.Sprintf(
		`SELECT skill, COALESCE(aliases, ''), COALESCE(type, 'hard') FROM %s ORDER BY 1`,
		pgx.Identifier{table}.Sanitize(),
	)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, Stats{}, &LoadError{Source: source, Message: "query failed", Cause: err}
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Row, error) {
		var r Row
		err := row.Scan(&r.Skill, &r.Aliases, &r.Type)
		return r, err
	})
	if err != nil {
		return nil, Stats{}, &LoadError{Source: source, Message: "failed to scan rows", Cause: err}
	}

	stats := Stats{Rows: len(records)}
	for _, r := range records {
		if strings.TrimSpace(r.Skill) == "" {
			stats.Skipped++
		}
	}
	d := NewDictionary(records)
	if d.Len() == 0 {
		return nil, stats, &LoadError{Source: source, Message: "no skill rows could be parsed"}
	}
	return d, stats, nil
}

// ConnectAndLoad opens a short-lived pool, loads the dictionary and closes the pool
func ConnectAndLoad(ctx context.Context, databaseURL string, table string) (*Dictionary, Stats, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, Stats{}, &LoadError{Source: "postgres", Message: "failed to create connection pool", Cause: err}
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, Stats{}, &LoadError{Source: "postgres", Message: "failed to ping database", Cause: err}
	}

	return LoadPostgres(ctx, pool, table)
}
