package domaincheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"adagency/internal/app/config"
	"adagency/internal/app/ds"
)

type fakeCatalog struct {
	entries []ds.PricingEntry
	err     error
	calls   int
}

func (f *fakeCatalog) ListPricing(ctx context.Context) ([]ds.PricingEntry, error) {
	f.calls++
	return f.entries, f.err
}

// registryStub answers RDAP lookups with a fixed status per domain and
// counts every request it receives.
type registryStub struct {
	mu       sync.Mutex
	statuses map[string]int
	requests int32
}

func (s *registryStub) handler(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&s.requests, 1)
	domain := strings.TrimPrefix(r.URL.Path, "/domain/")

	s.mu.Lock()
	status, ok := s.statuses[domain]
	s.mu.Unlock()
	if !ok {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}

func newTestChecker(t *testing.T, catalog *fakeCatalog, stub *registryStub) (*Checker, *[]time.Duration) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(stub.handler))
	t.Cleanup(srv.Close)

	checker := NewChecker(config.RegistryConfig{
		BaseURL:       srv.URL,
		BatchSize:     3,
		BatchDelay:    500 * time.Millisecond,
		FallbackPrice: 14.99,
		Timeout:       5 * time.Second,
	}, catalog)

	var sleeps []time.Duration
	checker.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	return checker, &sleeps
}

func TestCheckBaseNameWithoutDot(t *testing.T) {
	catalog := &fakeCatalog{entries: []ds.PricingEntry{
		{TLD: ".com", Price: 12.99},
		{TLD: ".so", Price: 59.99},
	}}
	stub := &registryStub{statuses: map[string]int{
		"example.com": http.StatusNotFound,
		"example.so":  http.StatusOK,
	}}
	checker, _ := newTestChecker(t, catalog, stub)

	results, err := checker.Check(context.Background(), "example", nil)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Domain != "example.com" || !results[0].Available {
		t.Errorf("expected example.com available, got %+v", results[0])
	}
	if results[0].Price != "$12.99/Year" {
		t.Errorf("expected catalog price, got %q", results[0].Price)
	}
	if results[1].Domain != "example.so" || results[1].Available {
		t.Errorf("expected example.so unavailable, got %+v", results[1])
	}
}

func TestCheckInvalidExtensionShortCircuits(t *testing.T) {
	catalog := &fakeCatalog{entries: []ds.PricingEntry{{TLD: ".com", Price: 12.99}}}
	stub := &registryStub{}
	checker, _ := newTestChecker(t, catalog, stub)

	results, err := checker.Check(context.Background(), "example.notatld", nil)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected a single result, got %d", len(results))
	}
	r := results[0]
	if !r.InvalidTLD || r.Available || r.Price != "N/A" {
		t.Errorf("unexpected result for invalid extension: %+v", r)
	}
	if got := atomic.LoadInt32(&stub.requests); got != 0 {
		t.Errorf("expected zero registry lookups, got %d", got)
	}
}

func TestCheckBatchingAndDelay(t *testing.T) {
	// Seven TLDs with batch size 3: batches of 3, 3, 1 and exactly two
	// inter-batch sleeps.
	catalog := &fakeCatalog{}
	stub := &registryStub{}
	checker, sleeps := newTestChecker(t, catalog, stub)

	selected := []string{".com", ".net", ".org", ".io", ".co", ".biz", ".info"}
	results, err := checker.Check(context.Background(), "brand", selected)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	if len(results) != len(selected) {
		t.Fatalf("expected %d results, got %d", len(selected), len(results))
	}
	if got := atomic.LoadInt32(&stub.requests); int(got) != len(selected) {
		t.Errorf("expected %d lookups, got %d", len(selected), got)
	}
	if len(*sleeps) != 2 {
		t.Fatalf("expected 2 inter-batch delays, got %d", len(*sleeps))
	}
	for _, d := range *sleeps {
		if d != 500*time.Millisecond {
			t.Errorf("expected 500ms delay, got %s", d)
		}
	}

	// Result order must follow the input TLD order despite concurrent
	// lookups inside each batch.
	for i, tld := range selected {
		if want := "brand" + tld; results[i].Domain != want {
			t.Errorf("result %d: expected %s, got %s", i, want, results[i].Domain)
		}
	}
}

func TestCheckFallbackPriceAndDefaultTLDs(t *testing.T) {
	catalog := &fakeCatalog{} // empty catalog
	stub := &registryStub{}
	checker, _ := newTestChecker(t, catalog, stub)

	results, err := checker.Check(context.Background(), "startup", nil)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	if len(results) != len(defaultTLDs) {
		t.Fatalf("expected default TLD set of %d, got %d results", len(defaultTLDs), len(results))
	}
	for _, r := range results {
		if r.Price != "$14.99/Year" {
			t.Errorf("expected fallback price for %s, got %q", r.Domain, r.Price)
		}
	}
}

func TestCheckRateLimitTreatedAsAvailable(t *testing.T) {
	catalog := &fakeCatalog{}
	stub := &registryStub{statuses: map[string]int{
		"busy.com": http.StatusTooManyRequests,
	}}
	checker, _ := newTestChecker(t, catalog, stub)

	results, err := checker.Check(context.Background(), "busy", []string{".com"})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(results) != 1 || !results[0].Available {
		t.Errorf("429 should map to available, got %+v", results)
	}
}

func TestCheckExplicitExtensionAppended(t *testing.T) {
	catalog := &fakeCatalog{}
	stub := &registryStub{statuses: map[string]int{
		"shop.so": http.StatusNotFound,
	}}
	checker, _ := newTestChecker(t, catalog, stub)

	results, err := checker.Check(context.Background(), "shop.so", []string{".com"})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected selected TLD plus explicit extension, got %d results", len(results))
	}
	last := results[len(results)-1]
	if last.Domain != "shop.so" || !last.Available {
		t.Errorf("expected explicit shop.so appended and available, got %+v", last)
	}
}

func TestCheckCatalogErrorAborts(t *testing.T) {
	catalog := &fakeCatalog{err: context.DeadlineExceeded}
	stub := &registryStub{}
	checker, _ := newTestChecker(t, catalog, stub)

	_, err := checker.Check(context.Background(), "example", nil)
	if err == nil {
		t.Fatal("expected error when catalog fetch fails")
	}
	if got := atomic.LoadInt32(&stub.requests); got != 0 {
		t.Errorf("expected no lookups after catalog failure, got %d", got)
	}
}

func TestSplitQuery(t *testing.T) {
	tests := []struct {
		query string
		base  string
		ext   string
	}{
		{"example", "example", ""},
		{"example.com", "example", ".com"},
		{"my.shop.so", "my.shop", ".so"},
		{"Example.COM", "Example", ".com"},
		{"  spaced.net  ", "spaced", ".net"},
	}
	for _, tt := range tests {
		base, ext := splitQuery(tt.query)
		if base != tt.base || ext != tt.ext {
			t.Errorf("splitQuery(%q) = (%q, %q), want (%q, %q)", tt.query, base, ext, tt.base, tt.ext)
		}
	}
}

func TestValidTLD(t *testing.T) {
	if !ValidTLD(".com") || !ValidTLD(".so") {
		t.Error("expected .com and .so to be valid")
	}
	if ValidTLD(".notatld") {
		t.Error(".notatld should not be valid")
	}
}
