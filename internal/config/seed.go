package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/bizdir/internal/model"
)

// SeedPath returns the resolved seed file path, or "" when the built-in
// samples are used.
func (c *Config) SeedPath() string {
	if c.SeedFile == "" {
		return ""
	}
	if filepath.IsAbs(c.SeedFile) {
		return c.SeedFile
	}
	return filepath.Join(c.dir, c.SeedFile)
}

// LoadSeed returns the records a session starts with: the configured seed
// file if set, otherwise the built-in samples. The file is read once and
// never written.
func (c *Config) LoadSeed() ([]model.Business, error) {
	path := c.SeedPath()
	if path == "" {
		return model.SampleBusinesses(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("seed file %s not found", path)
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	records, err := model.DecodeDirectory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
