package cmd

import (
	"github.com/cottand/streamtype/internal/config"
	"github.com/cottand/streamtype/internal/log"
	"github.com/cottand/streamtype/repr"
	"github.com/cottand/streamtype/types"
)

var logger = log.For("cmd")

// Setup installs the hooks of the types package and, when configPath is set,
// applies the configuration file and registers its types in the default
// registry
func Setup(configPath string) error {
	repr.Install()
	types.InstallHooks(types.Hooks{Logger: log.For})
	if configPath == "" {
		return nil
	}
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := c.Log.Apply(); err != nil {
		return err
	}
	c.RegisterTypes(types.DefaultRegistry())
	logger.Debug("loaded configuration", "path", configPath, "types", len(c.Types))
	return nil
}
