package daemon

import (
	"fmt"
	"os"

	log "github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"

	"github.com/Kareem-create21/SilentSetup/pkg/config"
	"github.com/Kareem-create21/SilentSetup/pkg/installer"
	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/repo"
	"github.com/Kareem-create21/SilentSetup/pkg/server"
)

type Config struct {
	ConfDirectory string
}

// SilentSetupd wires the in-memory store, the archive builder and the
// HTTP API into one process.
type SilentSetupd struct {
	Config    *Config
	APIConfig *config.Config

	Store   *io.MemoryStore
	Builder *installer.Builder
	Server  *server.APIServer
}

// Start loads configuration, prepares the scratch directory and starts
// the HTTP API server.
func (d *SilentSetupd) Start() error {
	var err error
	d.APIConfig, err = config.LoadDirectory(d.Config.ConfDirectory)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(d.APIConfig.ScratchDir, 0o755); err != nil {
		return fmt.Errorf("create scratch directory '%s': %v", d.APIConfig.ScratchDir, err)
	}

	schema, err := repo.GetSchema()
	if err != nil {
		return err
	}

	storeLogger := log.New(&log.LoggerOptions{
		Name:   "silentsetup",
		Output: os.Stdout,
	})
	d.Store, err = io.NewMemoryStore(schema, storeLogger)
	if err != nil {
		return err
	}

	d.Builder = installer.NewBuilder(d.APIConfig.ScratchDir, storeLogger)

	d.Server = server.NewAPIServer(d.APIConfig, d.Store, d.Builder)
	if err := d.Server.Start(); err != nil {
		return err
	}

	logrus.Infof("silentsetupd started, scratch directory %s", d.APIConfig.ScratchDir)
	return nil
}

// Stop gracefully stops the HTTP server. Generated archives stay on
// disk; the scratch directory is never cleaned by the daemon.
func (d *SilentSetupd) Stop() {
	if d.Server != nil {
		d.Server.Stop()
	}
}
