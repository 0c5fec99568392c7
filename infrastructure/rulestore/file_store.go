// Package rulestore provides file-based loading of service rule packs.
package rulestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Saffronius/acpgen/registry"
)

// fileStoreConfig holds configuration for the FileStore.
type fileStoreConfig struct {
	path string // Path to the rule pack file
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path: filepath.Join(os.Getenv("HOME"), ".acpgen", "rules.yaml"),
	}
}

// FileStoreOption configures a FileStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the rule pack file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.path = path
	}
}

// FileStore reads service rule packs from a YAML file.
type FileStore struct {
	config fileStoreConfig
}

// NewFileStore creates a new FileStore with the given options.
func NewFileStore(opts ...FileStoreOption) *FileStore {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileStore{config: cfg}
}

// Load reads and parses the rule pack. A missing file yields an empty
// pack so that deployments without local overrides work unchanged.
func (s *FileStore) Load() (registry.RulePack, error) {
	data, err := os.ReadFile(s.config.path)
	if os.IsNotExist(err) {
		return registry.RulePack{}, nil
	}
	if err != nil {
		return registry.RulePack{}, fmt.Errorf("failed to read rule pack: %w", err)
	}
	return registry.ParseRulePack(data)
}

// ConfigPath returns the path to the backing file.
func (s *FileStore) ConfigPath() string {
	return s.config.path
}
