package main

import (
	"errors"
	"fmt"

	"github.com/0x5844/bbviz"
)

// maxBoards bounds the number of boards the tui command opens at start.
const maxBoards = 16

func loadConfig(configFilepath string) (*Config, error) {
	var config Config
	if isJSONFile(configFilepath) {
		if err := loadFromJSON(configFilepath, &config); err != nil {
			return nil, err
		}
	} else if isYAMLFile(configFilepath) {
		if err := loadFromYAML(configFilepath, &config); err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("config file %q must be JSON or YAML", configFilepath)
	}
	config.originalFilepath = configFilepath
	return &config, nil
}

// Config holds defaults that command line flags override.
type Config struct {
	originalFilepath string
	Orientation      *bbviz.Orientation `json:"orientation" yaml:"orientation"`
	CellSize         int                `json:"cell_size" yaml:"cell_size"`
	Boards           int                `json:"boards" yaml:"boards"`
}

func (c *Config) ConfigFilepath() string {
	return c.originalFilepath
}

// OrientationOr returns the configured orientation, or def if none is set.
func (c *Config) OrientationOr(def bbviz.Orientation) bbviz.Orientation {
	if c.Orientation == nil {
		return def
	}
	return *c.Orientation
}

func (c *Config) Validate() error {
	var errs []error
	if c.CellSize < 0 {
		errs = append(errs, fmt.Errorf("cell_size must not be negative, got %d", c.CellSize))
	}
	if c.Boards < 0 || c.Boards > maxBoards {
		errs = append(errs, fmt.Errorf("boards must be between 0 and %d, got %d", maxBoards, c.Boards))
	}
	return errors.Join(errs...)
}
