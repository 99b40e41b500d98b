package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/Kareem-create21/SilentSetup/pkg/model"
)

const (
	DefaultListenAddress = "127.0.0.1:8940"
	DefaultScratchSubdir = "silentsetup"
)

// Config is the daemon configuration. Zero fields are filled with
// defaults by ApplyDefaults before validation.
type Config struct {
	// ListenAddress is the TCP address the HTTP API binds to.
	ListenAddress string `json:"listenAddress"`

	// ScratchDir holds generated archives. Never garbage-collected by
	// the daemon; retention is an external concern.
	ScratchDir string `json:"scratchDir"`

	// DefaultCompressionLevel applies to projects created without one.
	DefaultCompressionLevel int `json:"defaultCompressionLevel"`
}

func (c *Config) ApplyDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}
	if c.ScratchDir == "" {
		c.ScratchDir = filepath.Join(os.TempDir(), DefaultScratchSubdir)
	}
	if c.DefaultCompressionLevel == 0 {
		c.DefaultCompressionLevel = model.DefaultCompressionLevel
	}
}

func (c *Config) Validate() error {
	var result *multierror.Error

	if c.ListenAddress == "" {
		result = multierror.Append(result, fmt.Errorf("listenAddress is required"))
	}
	if c.ScratchDir == "" {
		result = multierror.Append(result, fmt.Errorf("scratchDir is required"))
	}
	if c.DefaultCompressionLevel < model.MinCompressionLevel || c.DefaultCompressionLevel > model.MaxCompressionLevel {
		result = multierror.Append(result, fmt.Errorf("defaultCompressionLevel must be between %d and %d",
			model.MinCompressionLevel, model.MaxCompressionLevel))
	}

	return result.ErrorOrNil()
}
