// Package tableregistry resolves the bracket tables the process runs with.
// Tables come from a remote registry, a YAML file, or the compiled
// defaults, in that order of preference. They are resolved once at startup.
package tableregistry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"payroll-engine/internal/payroll"
)

const defaultTimeout = 2 * time.Second

// Source says where to look for tables. Zero value means compiled defaults.
type Source struct {
	URL     string
	Path    string
	Timeout time.Duration
}

// Origin names where a loaded table set came from.
func (s Source) Origin() string {
	switch {
	case s.URL != "":
		return "registry:" + s.URL
	case s.Path != "":
		return "file:" + s.Path
	}
	return "builtin"
}

// Load resolves and validates the tables for src. Every failure wraps
// payroll.ErrConfiguration; there is no fallback once a source is named.
func Load(ctx context.Context, src Source) (payroll.Tables, error) {
	var (
		t   payroll.Tables
		err error
	)
	switch {
	case src.URL != "":
		t, err = fetch(ctx, newClient(src.Timeout), src.URL)
	case src.Path != "":
		t, err = readFile(src.Path)
	default:
		t = payroll.DefaultTables()
	}
	if err != nil {
		return payroll.Tables{}, fmt.Errorf("%w: %s: %v", payroll.ErrConfiguration, src.Origin(), err)
	}

	if err := t.Validate(); err != nil {
		return payroll.Tables{}, fmt.Errorf("%s: %w", src.Origin(), err)
	}
	return t, nil
}

func newClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func fetch(ctx context.Context, client *http.Client, baseURL string) (payroll.Tables, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/tables", nil)
	if err != nil {
		return payroll.Tables{}, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return payroll.Tables{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return payroll.Tables{}, fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	var t payroll.Tables
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return payroll.Tables{}, fmt.Errorf("decode registry response: %w", err)
	}
	return t, nil
}

func readFile(path string) (payroll.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return payroll.Tables{}, err
	}
	defer f.Close()

	var t payroll.Tables
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return payroll.Tables{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return t, nil
}
