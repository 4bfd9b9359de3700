// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package stage

import (
	"github.com/gviegas/stage/light"
)

// Config is used to configure new scenes.
type Config struct {
	// The maximum number of lights per frame.
	// Values less than or equal to zero mean
	// the default.
	//
	// Default is light.MaxLight.
	MaxLight int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxLight: light.MaxLight,
	}
}

var cfg Config

// Configure replaces the configuration used by New
// with config.
// Scenes created before the call are not affected.
func Configure(config *Config) { cfg = *config }

// CurrentConfig returns the configuration used by New.
func CurrentConfig() Config { return cfg }

func init() {
	config := DefaultConfig()
	Configure(&config)
}
