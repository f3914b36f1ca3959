package domaincheck

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"adagency/internal/app/config"
	"adagency/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Result is one availability answer, never persisted.
type Result struct {
	Domain     string `json:"domain"`
	Available  bool   `json:"available"`
	Price      string `json:"price"`
	InvalidTLD bool   `json:"invalidTld"`
}

// Catalog supplies the TLD pricing reference data.
type Catalog interface {
	ListPricing(ctx context.Context) ([]ds.PricingEntry, error)
}

// Fallback TLD set used when the pricing catalog is empty.
var defaultTLDs = []string{".com", ".org", ".net", ".edu"}

// Checker batches RDAP lookups for a candidate name across a TLD set.
// Lookup errors are treated as unavailable (fail-closed): we would rather
// hide a sellable domain than sell one that is already taken.
type Checker struct {
	client        *http.Client
	baseURL       string
	catalog       Catalog
	batchSize     int
	batchDelay    time.Duration
	fallbackPrice float64

	// replaced in tests
	sleep func(d time.Duration)
}

func NewChecker(cfg config.RegistryConfig, catalog Catalog) *Checker {
	return &Checker{
		client:        &http.Client{Timeout: cfg.Timeout},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		catalog:       catalog,
		batchSize:     cfg.BatchSize,
		batchDelay:    cfg.BatchDelay,
		fallbackPrice: cfg.FallbackPrice,
		sleep:         time.Sleep,
	}
}

// Check produces one Result per TLD for the query. The only error path is
// the pricing catalog fetch; per-TLD lookup failures degrade to a
// best-effort Result instead of aborting the batch.
func (c *Checker) Check(ctx context.Context, query string, selectedTLDs []string) ([]Result, error) {
	entries, err := c.catalog.ListPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pricing catalog: %w", err)
	}

	prices := make(map[string]float64, len(entries))
	for _, e := range entries {
		prices[strings.ToLower(e.TLD)] = e.Price
	}

	base, ext := splitQuery(query)

	// An explicit extension outside the allow-list short-circuits the
	// whole check without any network call.
	if ext != "" && !ValidTLD(ext) {
		return []Result{{
			Domain:     strings.ToLower(query),
			Available:  false,
			Price:      "N/A",
			InvalidTLD: true,
		}}, nil
	}

	tlds := c.resolveTLDs(selectedTLDs, entries)
	if ext != "" && !containsTLD(tlds, ext) {
		tlds = append(tlds, ext)
	}

	results := make([]Result, len(tlds))
	for start := 0; start < len(tlds); start += c.batchSize {
		end := start + c.batchSize
		if end > len(tlds) {
			end = len(tlds)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tld := strings.ToLower(tlds[i])
				domain := strings.ToLower(base) + tld
				results[i] = Result{
					Domain:    domain,
					Available: c.lookup(ctx, domain),
					Price:     c.renderPrice(prices, tld),
				}
			}(i)
		}
		wg.Wait()

		// Courtesy delay between batches, skipped after the last one.
		if end < len(tlds) {
			c.sleep(c.batchDelay)
		}
	}

	return results, nil
}

// lookup maps registry status to availability: 404 means unregistered,
// 429 is treated as available (kept from the original integration even
// though it risks false positives under load), anything else is taken.
func (c *Checker) lookup(ctx context.Context, domain string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/domain/"+domain, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logrus.Warnf("registry lookup failed for %s: %v", domain, err)
		return false
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return true
	case http.StatusTooManyRequests:
		logrus.Warnf("registry rate limit hit on %s", domain)
		return true
	default:
		return false
	}
}

func (c *Checker) renderPrice(prices map[string]float64, tld string) string {
	price, ok := prices[tld]
	if !ok {
		price = c.fallbackPrice
	}
	return fmt.Sprintf("$%.2f/Year", price)
}

func (c *Checker) resolveTLDs(selected []string, entries []ds.PricingEntry) []string {
	if len(selected) > 0 {
		tlds := make([]string, 0, len(selected))
		for _, t := range selected {
			tlds = append(tlds, normalizeTLD(t))
		}
		return tlds
	}
	if len(entries) > 0 {
		tlds := make([]string, 0, len(entries))
		for _, e := range entries {
			tlds = append(tlds, strings.ToLower(e.TLD))
		}
		return tlds
	}
	return append([]string(nil), defaultTLDs...)
}

// splitQuery separates the base name from an explicit extension: the
// extension is everything from the last dot on. No dot means the whole
// query is the base name.
func splitQuery(query string) (base, ext string) {
	query = strings.TrimSpace(query)
	idx := strings.LastIndex(query, ".")
	if idx < 0 {
		return query, ""
	}
	return query[:idx], strings.ToLower(query[idx:])
}

func normalizeTLD(tld string) string {
	tld = strings.ToLower(strings.TrimSpace(tld))
	if tld != "" && !strings.HasPrefix(tld, ".") {
		tld = "." + tld
	}
	return tld
}

func containsTLD(tlds []string, tld string) bool {
	for _, t := range tlds {
		if strings.EqualFold(t, tld) {
			return true
		}
	}
	return false
}
