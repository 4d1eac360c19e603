// Package container provides dependency injection for the document
// pipeline. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"github.com/darioristic/crm-monorepo-sub013/internal/aiclient"
	"github.com/darioristic/crm-monorepo-sub013/internal/config"
	"github.com/darioristic/crm-monorepo-sub013/internal/enrich"
	"github.com/darioristic/crm-monorepo-sub013/internal/extract"
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
	"github.com/darioristic/crm-monorepo-sub013/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getters only.
type Container struct {
	logger    logging.Logger
	cfg       *config.Config
	client    *aiclient.GeminiClient
	extractor *extract.Extractor
	enricher  *enrich.Enricher
	taxonomy  []models.Category
}

// NewContainer creates and wires all application dependencies. A missing
// model credential leaves the client nil: the extractor will then fail with
// a configuration error while the enricher silently no-ops, matching the
// pipeline's propagation policy.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	taxonomyStore := store.NewTaxonomyStore(cfg.Taxonomy.File, logger)
	taxonomy, err := taxonomyStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("loading taxonomy: %w", err)
	}

	var client *aiclient.GeminiClient
	var extractorClient aiclient.Client
	if cfg.HasCredential() {
		client, err = aiclient.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AITimeout(), logger)
		if err != nil {
			return nil, err
		}
		extractorClient = client
		logger.Info("Model client configured",
			logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	} else {
		logger.Warn("No model credential configured, AI features are disabled")
	}

	return &Container{
		logger:    logger,
		cfg:       cfg,
		client:    client,
		extractor: extract.NewExtractor(extractorClient, cfg, logger),
		enricher:  enrich.NewEnricher(extractorClient, cfg, taxonomy, logger),
		taxonomy:  taxonomy,
	}, nil
}

// Logger returns the shared logger.
func (c *Container) Logger() logging.Logger {
	return c.logger
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.cfg
}

// Extractor returns the document extraction orchestrator.
func (c *Container) Extractor() *extract.Extractor {
	return c.extractor
}

// Enricher returns the transaction enrichment orchestrator.
func (c *Container) Enricher() *enrich.Enricher {
	return c.enricher
}

// Taxonomy returns the loaded category taxonomy.
func (c *Container) Taxonomy() []models.Category {
	return c.taxonomy
}

// Close releases the underlying model client, if one was configured.
func (c *Container) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
