package scrape

import (
	"gold-price-telegram-bot/internal/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// The source serves different (or empty) content to unrecognized clients,
// so every request carries a browser User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher downloads the gold price page markup.
type Fetcher struct {
	client *resty.Client
	url    string
}

// NewFetcher creates a fetcher for the given source URL.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		client: resty.New(),
		url:    url,
	}
}

// Fetch issues a single GET against the source page and returns the raw
// markup. One attempt only; any transport error or non-success status is
// returned to the caller, who treats it as "no data".
func (f *Fetcher) Fetch() (string, error) {
	metrics.FetchesTotal.Inc()

	resp, err := f.client.R().
		SetHeader("User-Agent", browserUserAgent).
		Get(f.url)
	if err != nil {
		metrics.FetchFailures.Inc()
		return "", errors.Wrapf(err, "could not fetch %s", f.url)
	}
	if !resp.IsSuccess() {
		metrics.FetchFailures.Inc()
		return "", errors.Errorf("unexpected status %d fetching %s", resp.StatusCode(), f.url)
	}

	return resp.String(), nil
}
