// Package sales defines the product-sales dataset charted by saleschart.
//
// A Dataset is an ordered sequence of records. Ordering is owned by the
// provider that produced it (descending by sales count, ties in provider
// order) and is preserved all the way through layout and painting: nothing
// downstream re-sorts. Datasets are replaced wholesale on each refresh,
// never mutated in place.
package sales

import (
	"context"

	"saleschart/pkg/errors"
)

// Record is a single charted row. The JSON field names are fixed by the
// external wire contract of GET /vendas.
type Record struct {
	Produto string `json:"produto"`
	Vendas  int    `json:"vendas"`
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// Validate checks every record: product names must be non-empty and sales
// counts non-negative. Duplicate product names are allowed; bars are keyed
// by position, not by name.
func (d Dataset) Validate() error {
	for i, r := range d {
		if r.Produto == "" {
			return errors.New(errors.ErrCodeInvalidRecord, "record %d: empty product name", i)
		}
		if r.Vendas < 0 {
			return errors.New(errors.ErrCodeInvalidRecord, "record %d (%s): negative sales count %d", i, r.Produto, r.Vendas)
		}
	}
	return nil
}

// MaxVendas returns the largest sales count in the dataset, or 0 if the
// dataset is empty or every count is zero.
func (d Dataset) MaxVendas() int {
	maxV := 0
	for _, r := range d {
		if r.Vendas > maxV {
			maxV = r.Vendas
		}
	}
	return maxV
}

// IsDescending reports whether the dataset is ordered by non-increasing
// sales count, the order providers are contracted to produce.
func (d Dataset) IsDescending() bool {
	for i := 1; i < len(d); i++ {
		if d[i].Vendas > d[i-1].Vendas {
			return false
		}
	}
	return true
}

// Top returns the first n records. Truncation to a display count happens
// here, before layout, never inside it. A non-positive or oversized n
// returns the dataset unchanged.
func (d Dataset) Top(n int) Dataset {
	if n <= 0 || n >= len(d) {
		return d
	}
	return d[:n]
}

// Provider produces the dataset to chart. Fetch gets exactly one try per
// refresh cycle: implementations must not retry internally, and a failure
// surfaces as a single opaque error.
type Provider interface {
	Fetch(ctx context.Context) (Dataset, error)
}

// Static is a fixed in-memory provider, useful for tests and demos.
type Static struct {
	Records Dataset
}

// Fetch returns a copy of the configured records so callers cannot mutate
// the provider's backing slice.
func (s Static) Fetch(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProvider, err, "fetch cancelled")
	}
	out := make(Dataset, len(s.Records))
	copy(out, s.Records)
	return out, nil
}
