// Package postgres provides the Postgres-backed sales provider.
//
// The provider issues exactly one read query per fetch and returns rows in
// the order the database produced them (descending by sales count). There
// is no caching, pagination, or retry.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"saleschart/pkg/errors"
	"saleschart/pkg/sales"
)

// fetchQuery is the single read this provider ever issues. The descending
// order is part of the provider contract; consumers rely on it and never
// re-sort.
const fetchQuery = `SELECT produto, vendas FROM vendas_produto ORDER BY vendas DESC`

// Provider fetches the sales dataset from a Postgres database.
type Provider struct {
	db *sql.DB
}

// Open connects to Postgres using the given DSN and verifies the
// connection with a ping.
func Open(ctx context.Context, dsn string) (*Provider, error) {
	if dsn == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "database DSN is empty")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "open postgres")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "ping postgres")
	}
	return &Provider{db: db}, nil
}

// Fetch runs the read query and scans the full result set. Any failure is
// returned as a single opaque provider error; no partial dataset is ever
// returned.
func (p *Provider) Fetch(ctx context.Context) (sales.Dataset, error) {
	rows, err := p.db.QueryContext(ctx, fetchQuery)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "query vendas_produto")
	}
	defer func() { _ = rows.Close() }()

	var ds sales.Dataset
	for rows.Next() {
		var r sales.Record
		if err := rows.Scan(&r.Produto, &r.Vendas); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatabase, err, "scan row")
		}
		ds = append(ds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "iterate rows")
	}

	if err := ds.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProvider, err, "invalid dataset from database")
	}
	return ds, nil
}

// Close releases the underlying connection pool.
func (p *Provider) Close() error {
	return p.db.Close()
}
