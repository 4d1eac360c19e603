// Package store provides loading of category-taxonomy overrides from YAML.
// The taxonomy slugs are a closed set; the override file can adjust labels
// and classification hints per deployment, but never introduce new slugs.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

// taxonomyFile is the YAML shape of a taxonomy override file.
type taxonomyFile struct {
	Categories []models.Category `yaml:"categories"`
}

// TaxonomyStore manages loading of the category taxonomy.
type TaxonomyStore struct {
	file   string
	logger logging.Logger
}

// NewTaxonomyStore creates a store for the given override file. An empty
// file name means the built-in taxonomy is used as-is.
func NewTaxonomyStore(file string, logger logging.Logger) *TaxonomyStore {
	return &TaxonomyStore{
		file:   file,
		logger: logger,
	}
}

// findConfigFile looks for the taxonomy file in standard locations.
func (s *TaxonomyStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "docai", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories returns the category taxonomy. Override entries replace the
// label and hint of matching built-in slugs; entries with unknown slugs are
// skipped with a warning so the closed set stays closed.
func (s *TaxonomyStore) LoadCategories() ([]models.Category, error) {
	categories := models.DefaultCategories()
	if s.file == "" {
		return categories, nil
	}

	filePath, err := s.findConfigFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			if s.logger != nil {
				s.logger.Warn("Taxonomy file not found, using built-in taxonomy",
					logging.Field{Key: "file", Value: s.file})
			}
			return categories, nil
		}
		return nil, fmt.Errorf("error resolving taxonomy file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading taxonomy file %s: %w", filePath, err)
	}

	var parsed taxonomyFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy file %s: %w", filePath, err)
	}

	overrides := make(map[string]models.Category, len(parsed.Categories))
	for _, override := range parsed.Categories {
		if !models.ValidCategorySlug(override.Slug) {
			if s.logger != nil {
				s.logger.Warn("Ignoring unknown category slug in taxonomy file",
					logging.Field{Key: logging.FieldCategory, Value: override.Slug},
					logging.Field{Key: "file", Value: filePath})
			}
			continue
		}
		overrides[override.Slug] = override
	}

	for i, c := range categories {
		if override, ok := overrides[c.Slug]; ok {
			if override.Label != "" {
				categories[i].Label = override.Label
			}
			if override.Hint != "" {
				categories[i].Hint = override.Hint
			}
		}
	}

	return categories, nil
}
