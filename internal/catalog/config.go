package catalog

import "errors"

// Config errors.
var ErrDataDirEmpty = errors.New("data directory not set")

// Config holds the catalog settings.
type Config struct {
	// DataDir is the directory holding the catalog database.
	DataDir string
}

// Validate checks the configuration for required fields.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
