package core

import (
	"github.com/arthur-debert/gearbox/pkg/config"
	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/logging"
	"github.com/arthur-debert/gearbox/pkg/registry"

	// Import bundled trigger packages so their init functions register them
	_ "github.com/arthur-debert/gearbox/pkg/triggers"
)

// Runtime is the state a host keeps after startup
type Runtime struct {
	Config *config.Config
	Table  *dispatch.Table
}

// Initialize loads configuration and materializes the default registry.
// It must run after every trigger package has been initialized, which Go
// guarantees once main has started.
func Initialize(opts config.LoadOptions) (*Runtime, error) {
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	return Start(cfg, registry.Default())
}

// Start materializes reg using cfg
func Start(cfg *config.Config, reg *registry.Registry) (*Runtime, error) {
	logger := logging.GetLogger("core.init")

	table, err := reg.Materialize(cfg.MaterializeOptions()...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to materialize dispatch table")
		return nil, err
	}

	logger.Debug().
		Bool("strict", cfg.Registry.Strict).
		Int("transitions", table.Len()).
		Msg("Core initialization completed")

	return &Runtime{Config: cfg, Table: table}, nil
}

// MustInitialize calls Initialize and panics on error
func MustInitialize(opts config.LoadOptions) *Runtime {
	rt, err := Initialize(opts)
	if err != nil {
		panic("core initialization failed: " + err.Error())
	}
	return rt
}
