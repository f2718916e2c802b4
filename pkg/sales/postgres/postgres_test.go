package postgres

import (
	"context"
	"strings"
	"testing"

	"saleschart/pkg/errors"
)

func TestOpenEmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Open(\"\") error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestFetchQueryShape(t *testing.T) {
	// The provider contract: one read, descending order baked into the
	// query so consumers never re-sort.
	if !strings.Contains(fetchQuery, "ORDER BY vendas DESC") {
		t.Errorf("fetchQuery = %q, want descending order clause", fetchQuery)
	}
	if !strings.HasPrefix(fetchQuery, "SELECT produto, vendas FROM vendas_produto") {
		t.Errorf("fetchQuery = %q, want single read of vendas_produto", fetchQuery)
	}
}
