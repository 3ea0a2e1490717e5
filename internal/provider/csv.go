package provider

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
)

// CSVSource reads sheets as CSV, either from files under a local directory
// or over HTTP(S) from a base URL (the shape a published-spreadsheet CSV
// export serves). Which mode applies is decided by the base's scheme.
type CSVSource struct {
	base   string
	client *http.Client
}

// NewCSVSource creates a source rooted at base, which is either a directory
// path or an http(s) URL.
func NewCSVSource(base string) *CSVSource {
	return &CSVSource{
		base: strings.TrimRight(base, "/"),
		client: &http.Client{
			Timeout: constants.ProviderTimeout,
		},
	}
}

// FetchRows returns all rows of the named sheet, header included. Short rows
// are acceptable; width normalization is the parser's job.
func (s *CSVSource) FetchRows(ctx context.Context, sheet string) ([][]string, error) {
	var body io.ReadCloser
	var err error

	if s.isRemote() {
		body, err = s.open(ctx, s.base+"/"+sheet)
	} else {
		body, err = s.openFile(filepath.Join(s.base, sheet))
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()

	reader := csv.NewReader(body)
	// Rows legitimately vary in width: trailing empty columns are routinely
	// trimmed by spreadsheet exports.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", sheet, err)
	}

	return rows, nil
}

func (s *CSVSource) isRemote() bool {
	return strings.HasPrefix(s.base, "http://") || strings.HasPrefix(s.base, "https://")
}

func (s *CSVSource) open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	return resp.Body, nil
}

func (s *CSVSource) openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
