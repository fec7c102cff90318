package cmd

import (
	"log/slog"

	"github.com/samuelgr/xidi/mapper"
)

// Check validates a mapper definitions file by actually building every
// mapper it defines, so template chains, element mapper expressions, and
// actuator descriptors are all exercised exactly as they would be at load
// time.
type Check struct {
	File            string `arg:"" help:"Mapper definitions file (.toml, .yaml, .yml, or .json)"`
	IncludeStandard bool   `help:"Make the canned mappers available as templates" default:"true" negatable:""`
}

// Run is called by kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	registry := mapper.NewRegistry()
	if c.IncludeStandard {
		if err := mapper.RegisterStandardMappers(registry); err != nil {
			return err
		}
	}

	defs, err := mapper.LoadDefinitions(c.File)
	if err != nil {
		return err
	}
	if len(defs.Mappers) == 0 {
		logger.Warn("definitions file contains no mappers", "file", c.File)
		return nil
	}

	builder := mapper.NewBuilder(registry)
	if err := defs.Apply(builder); err != nil {
		return err
	}
	built, err := defs.BuildAll(builder)
	if err != nil {
		return err
	}

	for _, m := range built {
		caps := m.Capabilities()
		logger.Info("mapper is valid",
			"name", m.Name(),
			"axes", caps.AxisCount(),
			"buttons", caps.ButtonCount(),
			"pov", caps.HasPov())
	}
	logger.Info("definitions file is valid", "file", c.File, "mappers", len(built))
	return nil
}
