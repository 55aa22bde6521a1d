// Package sheets fetches the published price sheet (a spreadsheet exported
// as CSV per named tab) over HTTP.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"joalheria_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Tab names expected at the sheet endpoint.
const (
	TabRates  = "rates"
	TabStones = "stones"
	TabSlabs  = "slabs"
)

const defaultFetchTimeout = 15 * time.Second

// CSVSource retrieves the three price-sheet tabs from a base URL, requesting
// each tab via a `sheet` query parameter.
type CSVSource struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

var _ interfaces.ISheetSource = (*CSVSource)(nil)

func NewCSVSource(baseURL string, client *http.Client, log *zap.Logger) *CSVSource {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CSVSource{baseURL: baseURL, client: client, log: log}
}

type fetchResult struct {
	tab  string
	body string
	err  error
}

// FetchAll retrieves all three tabs concurrently, bounding sync latency to
// the slowest single fetch. It is all-or-nothing: the first failure cancels
// the remaining requests and no partial payload escapes.
func (s *CSVSource) FetchAll(ctx context.Context) (interfaces.SheetPayload, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tabs := []string{TabRates, TabStones, TabSlabs}
	results := make(chan fetchResult, len(tabs))
	for _, tab := range tabs {
		go func(tab string) {
			body, err := s.fetchTab(ctx, tab)
			results <- fetchResult{tab: tab, body: body, err: err}
		}(tab)
	}

	var payload interfaces.SheetPayload
	var firstErr error
	for range tabs {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		switch res.tab {
		case TabRates:
			payload.Rates = res.body
		case TabStones:
			payload.Stones = res.body
		case TabSlabs:
			payload.Slabs = res.body
		}
	}
	if firstErr != nil {
		return interfaces.SheetPayload{}, firstErr
	}

	s.log.Debug("price sheet fetched",
		zap.Int("rates_bytes", len(payload.Rates)),
		zap.Int("stones_bytes", len(payload.Stones)),
		zap.Int("slabs_bytes", len(payload.Slabs)))
	return payload, nil
}

func (s *CSVSource) fetchTab(ctx context.Context, tab string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("sheet %s: invalid base url: %w", tab, err)
	}
	q := u.Query()
	q.Set("sheet", tab)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("sheet %s: %w", tab, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sheet %s: %w", tab, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sheet %s: unexpected status %d", tab, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sheet %s: reading body: %w", tab, err)
	}
	return string(body), nil
}
