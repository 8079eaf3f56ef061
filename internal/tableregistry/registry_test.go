package tableregistry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-engine/internal/payroll"
)

func TestLoadBuiltin(t *testing.T) {
	tb, err := Load(context.Background(), Source{})
	require.NoError(t, err)

	assert.Equal(t, 2025, tb.Year)
	assert.Len(t, tb.ContributionBrackets, 4)
	assert.Len(t, tb.TaxBrackets, 5)
}

func TestLoadFileMatchesBuiltin(t *testing.T) {
	tb, err := Load(context.Background(), Source{Path: "testdata/tables-2025.yaml"})
	require.NoError(t, err)

	want := payroll.DefaultTables()
	assert.True(t, want.ContributionCeiling.Equal(tb.ContributionCeiling))
	assert.True(t, want.SimplifiedDiscount.Equal(tb.SimplifiedDiscount))
	require.Len(t, tb.TaxBrackets, len(want.TaxBrackets))
	for i, b := range tb.TaxBrackets {
		assert.Equal(t, want.TaxBrackets[i].Unbounded(), b.Unbounded(), "bracket %d", i)
		assert.True(t, want.TaxBrackets[i].Rate.Equal(b.Rate), "bracket %d", i)
		assert.True(t, want.TaxBrackets[i].Deduction.Equal(b.Deduction), "bracket %d", i)
	}
}

func TestLoadFileErrors(t *testing.T) {
	for _, path := range []string{
		"testdata/unterminated.yaml",
		"testdata/unknown_field.yaml",
		"testdata/missing.yaml",
	} {
		_, err := Load(context.Background(), Source{Path: path})
		assert.ErrorIs(t, err, payroll.ErrConfiguration, path)
	}
}

func TestLoadFromRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tables" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payroll.DefaultTables())
	}))
	defer srv.Close()

	tb, err := Load(context.Background(), Source{URL: srv.URL + "/", Timeout: time.Second})
	require.NoError(t, err)

	assert.True(t, payroll.DefaultTables().DependentDeduction.Equal(tb.DependentDeduction))
	assert.True(t, tb.TaxBrackets[len(tb.TaxBrackets)-1].Unbounded())
}

func TestLoadFromRegistryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), Source{URL: srv.URL})
	assert.ErrorIs(t, err, payroll.ErrConfiguration)
}

func TestLoadFromRegistryInvalidTables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"year":2025,"contribution_ceiling":"951.62","contribution_brackets":[],"tax_brackets":[]}`))
	}))
	defer srv.Close()

	_, err := Load(context.Background(), Source{URL: srv.URL})
	assert.ErrorIs(t, err, payroll.ErrConfiguration)
}

func TestSourceOrigin(t *testing.T) {
	assert.Equal(t, "builtin", Source{}.Origin())
	assert.Equal(t, "file:x.yaml", Source{Path: "x.yaml"}.Origin())
	assert.Equal(t, "registry:http://r", Source{URL: "http://r", Path: "x.yaml"}.Origin())
}
