// Package scrape turns the semi-structured gold price page into ordered
// price records.
package scrape

import (
	"strings"

	"gold-price-telegram-bot/config"
	"gold-price-telegram-bot/internal/metrics"
	"gold-price-telegram-bot/internal/types"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Scraper combines the fetcher and the record extractor into the gold price
// source consumed by the alert pipeline and the HTTP handlers.
type Scraper struct {
	fetcher   *Fetcher
	extractor RecordExtractor
}

// NewScraper creates a scraper against the configured source page.
func NewScraper(cfg config.SourceConfig) *Scraper {
	return &Scraper{
		fetcher:   NewFetcher(cfg.GoldPriceURL),
		extractor: TableExtractor{},
	}
}

// GoldPrices fetches and parses the source page. Markup anomalies yield
// partial or empty results; only transport failures return an error.
func (s *Scraper) GoldPrices() ([]types.PriceRecord, error) {
	markup, err := s.fetcher.Fetch()
	if err != nil {
		return nil, err
	}
	return s.Parse(markup), nil
}

// Parse extracts price records from raw markup. It never fails: unreadable
// input produces an empty result.
func (s *Scraper) Parse(markup string) []types.PriceRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Errorf("could not parse source markup: %v", err)
		return nil
	}

	records := s.extractor.ExtractRecords(doc)
	metrics.RecordsParsed.Add(float64(len(records)))
	log.Debugf("parsed %d price records", len(records))
	return records
}
