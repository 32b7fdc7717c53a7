package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"promptdeck-hq/promptdeck/pkg/providers"
	"promptdeck-hq/promptdeck/pkg/providers/openrouter"
	"promptdeck-hq/promptdeck/pkg/telemetry/metrics"

	"github.com/robfig/cron/v3"
)

// Lister is the part of the OpenRouter client the catalog depends on.
type Lister interface {
	ListModelsWithSource(ctx context.Context) ([]providers.ModelDescriptor, openrouter.Source)
}

// Catalog caches the ordered model list and refreshes it on a schedule.
// Reads are safe for concurrent use and always see a complete list.
type Catalog struct {
	lister   Lister
	schedule string
	upstream *metrics.UpstreamMetrics

	mu     sync.RWMutex
	models []providers.ModelDescriptor

	cron *cron.Cron
}

// New creates a catalog backed by lister. schedule is a cron expression
// (robfig/cron format, "@every 1h" style accepted); empty disables
// scheduled refresh. upstream may be nil.
func New(lister Lister, schedule string, upstream *metrics.UpstreamMetrics) *Catalog {
	return &Catalog{
		lister:   lister,
		schedule: schedule,
		upstream: upstream,
	}
}

// Start performs the initial refresh and starts the refresh schedule.
// The initial refresh cannot fail: the lister degrades to its built-in
// fallback list rather than erroring.
func (c *Catalog) Start(ctx context.Context) error {
	c.Refresh(ctx)

	if c.schedule == "" {
		slog.Info("catalog refresh schedule disabled, list is fixed for process lifetime")
		return nil
	}

	c.cron = cron.New()
	_, err := c.cron.AddFunc(c.schedule, func() {
		c.Refresh(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid catalog refresh schedule %q: %w", c.schedule, err)
	}

	c.cron.Start()
	slog.Info("catalog refresh scheduled", "schedule", c.schedule)
	return nil
}

// Stop stops the refresh schedule and waits for a running refresh to finish.
func (c *Catalog) Stop() {
	if c.cron != nil {
		stopCtx := c.cron.Stop()
		<-stopCtx.Done()
	}
}

// Refresh fetches the model list and replaces the cached snapshot.
func (c *Catalog) Refresh(ctx context.Context) {
	models, source := c.lister.ListModelsWithSource(ctx)

	c.mu.Lock()
	c.models = models
	c.mu.Unlock()

	if c.upstream != nil {
		c.upstream.RecordCatalogRefresh(string(source))
	}

	slog.Debug("model catalog refreshed",
		"models", len(models),
		"source", string(source),
	)
}

// Models returns a copy of the current model list, in catalog order.
func (c *Catalog) Models() []providers.ModelDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	models := make([]providers.ModelDescriptor, len(c.models))
	copy(models, c.models)
	return models
}

// Contains reports whether modelID is in the current catalog.
func (c *Catalog) Contains(modelID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.models {
		if m.ID == modelID {
			return true
		}
	}
	return false
}
