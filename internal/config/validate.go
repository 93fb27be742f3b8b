package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Probe.Workers < 1 {
		return errors.New("probe.workers must be at least 1")
	}
	if c.Output.BitrateFloor < 8 {
		return fmt.Errorf("output.bitrate_floor %d kbps is below the usable minimum", c.Output.BitrateFloor)
	}
	if c.Output.BitrateCeiling < c.Output.BitrateFloor {
		return fmt.Errorf("output.bitrate_ceiling %d must not be below output.bitrate_floor %d",
			c.Output.BitrateCeiling, c.Output.BitrateFloor)
	}
	if c.Output.SampleRate < 8000 {
		return fmt.Errorf("output.sample_rate %d Hz is below the usable minimum", c.Output.SampleRate)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
