package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"ecompulse/internal/dataprocessing"
	"ecompulse/pkg/contracts/domain"
)

// Snapshot is one loaded and cleaned dataset state. All fields are read-only
// after construction; filters and metric functions take copies of the slice
// headers and never mutate rows.
type Snapshot struct {
	Tables *domain.Tables

	// Sales is the full item-order join across all statuses.
	Sales []domain.SalesRecord

	// Delivered is Sales restricted to delivered orders, with year/month
	// and delivery-day fields derived.
	Delivered []domain.SalesRecord

	Signature string
	LoadedAt  time.Time
}

// Cache memoizes a Snapshot keyed by the data directory plus a modification
// signature of the six files. It is an explicit object held by the caller,
// not ambient process state; a changed file on disk invalidates it on the
// next Snapshot call.
type Cache struct {
	dir    string
	logger *slog.Logger

	mu   sync.Mutex
	snap *Snapshot
}

// NewCache creates a cache for the given data directory.
func NewCache(dir string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		dir:    dir,
		logger: logger.With(slog.String("component", "dataset_cache")),
	}
}

// Dir returns the data directory the cache reads from.
func (c *Cache) Dir() string {
	return c.dir
}

// Snapshot returns the cached snapshot, reloading from disk only when the
// file signature changed since the last load.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sig, err := c.signature()
	if err != nil {
		return nil, err
	}

	if c.snap != nil && c.snap.Signature == sig {
		return c.snap, nil
	}

	start := time.Now()
	tables, err := Load(ctx, c.dir)
	if err != nil {
		return nil, err
	}

	orders := dataprocessing.ParseOrderDates(tables.Orders)
	tables.Orders = orders
	sales := dataprocessing.BuildSalesData(tables.OrderItems, orders, tables.Products, tables.Customers)
	delivered := dataprocessing.AddDeliverySpeed(dataprocessing.FilterDelivered(sales))

	c.snap = &Snapshot{
		Tables:    tables,
		Sales:     sales,
		Delivered: delivered,
		Signature: sig,
		LoadedAt:  time.Now(),
	}

	c.logger.InfoContext(ctx, "dataset snapshot refreshed",
		slog.String("dir", c.dir),
		slog.Int("sales_rows", len(sales)),
		slog.Int("delivered_rows", len(delivered)),
		slog.String("duration", time.Since(start).String()))

	return c.snap, nil
}

// Invalidate drops the cached snapshot so the next call reloads from disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
}

// signature builds the invalidation key from the mod time and size of each
// dataset file. Missing files yield an empty component so the subsequent
// Load reports the proper missing-file error.
func (c *Cache) signature() (string, error) {
	parts := make([]string, 0, len(Files)+1)
	parts = append(parts, c.dir)
	for _, name := range Files {
		info, err := os.Stat(filepath.Join(c.dir, name))
		if err != nil {
			parts = append(parts, name+":absent")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d:%d", name, info.ModTime().UnixNano(), info.Size()))
	}
	return strings.Join(parts, "|"), nil
}
