package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"saleschart/pkg/errors"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vendas" {
			t.Errorf("path = %q, want /vendas", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"produto":"Notebook","vendas":120},{"produto":"Mouse","vendas":80}]`))
	}))
	defer srv.Close()

	ds, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("len(dataset) = %d, want 2", len(ds))
	}
	if ds[0].Produto != "Notebook" || ds[0].Vendas != 120 {
		t.Errorf("dataset[0] = %+v, want {Notebook 120}", ds[0])
	}
	if !ds.IsDescending() {
		t.Error("dataset not in descending order")
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if !errors.Is(err, errors.ErrCodeProvider) {
		t.Errorf("error code = %v, want PROVIDER_ERROR", errors.GetCode(err))
	}
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("error code = %v, want NETWORK_ERROR", errors.GetCode(err))
	}
}

func TestFetchMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if !errors.Is(err, errors.ErrCodeProvider) {
		t.Errorf("error code = %v, want PROVIDER_ERROR", errors.GetCode(err))
	}
}

func TestFetchInvalidRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"produto":"","vendas":10}]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if !errors.Is(err, errors.ErrCodeProvider) {
		t.Errorf("error code = %v, want PROVIDER_ERROR", errors.GetCode(err))
	}
}

func TestFetchEmptyDatasetIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ds, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v, want nil (empty dataset is a condition, not an error)", err)
	}
	if len(ds) != 0 {
		t.Errorf("len(dataset) = %d, want 0", len(ds))
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:8080/")
	if c.baseURL != "http://localhost:8080" {
		t.Errorf("baseURL = %q, want trailing slash removed", c.baseURL)
	}
}
