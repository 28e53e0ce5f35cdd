package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/daehantax/fund-match/internal/models"
)

// Loader owns the in-memory dataset caches. Each kind is loaded at most once
// per process (until Invalidate) by cascading through the ranked sources:
// published sheet, local file, built-in fallback. Every per-source failure is
// logged and swallowed; the fallback tables are non-empty, so callers always
// receive rows.
type Loader struct {
	registry *Registry
	fetcher  Fetcher

	mu      sync.RWMutex
	grants  []models.GrantPosting
	clients []models.ClientRecord

	// Collapses concurrent first loads into a single fetch/parse pass.
	group singleflight.Group
}

// NewLoader wires a loader from the source registry. A nil fetcher gets the
// default HTTP fetcher.
func NewLoader(registry *Registry, fetcher Fetcher) *Loader {
	if fetcher == nil {
		fetcher = NewHTTPFetcher()
	}
	return &Loader{registry: registry, fetcher: fetcher}
}

// LoadGrants returns the cached grant table, loading it on first call.
func (l *Loader) LoadGrants(ctx context.Context) ([]models.GrantPosting, error) {
	l.mu.RLock()
	cached := l.grants
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	result, err, _ := l.group.Do("grants", func() (interface{}, error) {
		l.mu.RLock()
		cached := l.grants
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		grants := l.loadGrantTable(ctx)
		l.mu.Lock()
		l.grants = grants
		l.mu.Unlock()
		return grants, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.GrantPosting), nil
}

// LoadClients returns the cached client ledger, loading it on first call.
func (l *Loader) LoadClients(ctx context.Context) ([]models.ClientRecord, error) {
	l.mu.RLock()
	cached := l.clients
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	result, err, _ := l.group.Do("clients", func() (interface{}, error) {
		l.mu.RLock()
		cached := l.clients
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		clients := l.loadClientTable(ctx)
		l.mu.Lock()
		l.clients = clients
		l.mu.Unlock()
		return clients, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.ClientRecord), nil
}

// Invalidate drops both caches so the next load re-runs the source cascade.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.grants = nil
	l.clients = nil
	l.mu.Unlock()
}

func (l *Loader) loadGrantTable(ctx context.Context) []models.GrantPosting {
	rows, err := l.loadRows(ctx, "grants", l.registry.Grants)
	if err != nil {
		log.Printf("[loader] grant sources exhausted, using fallback table: %v", err)
		return fallbackGrantsCopy()
	}

	grants := make([]models.GrantPosting, 0, len(rows))
	for i, row := range rows {
		grants = append(grants, NormalizeGrantRow(row, i))
	}
	log.Printf("[loader] loaded %d grant postings", len(grants))
	return grants
}

func (l *Loader) loadClientTable(ctx context.Context) []models.ClientRecord {
	rows, err := l.loadRows(ctx, "clients", l.registry.Clients)
	if err != nil {
		log.Printf("[loader] client sources exhausted, using fallback table: %v", err)
		return fallbackClientsCopy()
	}

	clients := make([]models.ClientRecord, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, NormalizeClientRow(row))
	}
	log.Printf("[loader] loaded %d client records", len(clients))
	return clients
}

// loadRows walks the ranked sources for one kind. A parse error or empty
// result is treated exactly like a fetch failure and cascades onward.
func (l *Loader) loadRows(ctx context.Context, kind string, cfg SourceConfig) ([]RawRow, error) {
	if cfg.remoteConfigured() {
		rows, err := l.loadRemote(ctx, cfg.SheetURL)
		if err == nil {
			log.Printf("[loader] %s: loaded from published sheet", kind)
			return rows, nil
		}
		log.Printf("[loader] %s: published sheet failed, trying local file: %v", kind, err)
	}

	if cfg.LocalPath != "" {
		rows, err := loadLocalFile(cfg.LocalPath)
		if err == nil {
			log.Printf("[loader] %s: loaded from local file %s", kind, cfg.LocalPath)
			return rows, nil
		}
		log.Printf("[loader] %s: local file failed: %v", kind, err)
	}

	return nil, fmt.Errorf("no usable source for %s", kind)
}

func (l *Loader) loadRemote(ctx context.Context, url string) ([]RawRow, error) {
	body, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return parseCSVRows(body)
}

func loadLocalFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCSVRows(f)
}
