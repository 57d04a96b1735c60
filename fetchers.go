package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrFetch marks transport failures and non-200 responses
	ErrFetch = errors.New("fetch failed")
	// ErrParse marks a response body that is not JSON
	ErrParse = errors.New("parse failed")
)

// Fetcher retrieves j1 documents from a wttr.in compatible host
type Fetcher struct {
	Config     Config
	HTTPClient *http.Client
	Verbose    bool
}

// NewFetcher creates a Fetcher with a client timeout taken from cfg
func NewFetcher(cfg Config, verbose bool) *Fetcher {
	return &Fetcher{
		Config: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		Verbose: verbose,
	}
}

// reportURL builds https://<host>/<escaped location>?format=j1
func (f *Fetcher) reportURL(location string) string {
	params := url.Values{}
	params.Set("format", "j1")
	if f.Config.Lang != "" {
		params.Set("lang", f.Config.Lang)
	}

	return fmt.Sprintf("https://%s/%s?%s", f.Config.Host, url.PathEscape(location), params.Encode())
}

// FetchReportData fetches the raw j1 body for a location
func (f *Fetcher) FetchReportData(ctx context.Context, location string) ([]byte, error) {
	reqURL := f.reportURL(location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching weather for %q: %v", ErrFetch, location, err)
	}
	defer resp.Body.Close()

	if f.Verbose {
		log.Printf("GET %s: %s in %s", reqURL, resp.Status, time.Since(start).Round(time.Millisecond))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response: %v", ErrFetch, err)
	}

	return body, nil
}

// FetchReport fetches and decodes the report for a location
func (f *Fetcher) FetchReport(ctx context.Context, location string) (Report, error) {
	body, err := f.FetchReportData(ctx, location)
	if err != nil {
		return Report{}, err
	}
	return DecodeReport(body)
}
