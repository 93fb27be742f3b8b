package config

import "strings"

func (c *Config) normalize() error {
	c.Binaries.FFmpeg = strings.TrimSpace(c.Binaries.FFmpeg)
	c.Binaries.FFprobe = strings.TrimSpace(c.Binaries.FFprobe)
	if c.Binaries.FFmpeg == "" {
		c.Binaries.FFmpeg = defaultFFmpegBinary
	}
	if c.Binaries.FFprobe == "" {
		c.Binaries.FFprobe = defaultFFprobeBinary
	}

	if c.Probe.Workers == 0 {
		c.Probe.Workers = defaultProbeWorkers
	}

	c.Output.DefaultGenre = strings.TrimSpace(c.Output.DefaultGenre)
	if c.Output.DefaultGenre == "" {
		c.Output.DefaultGenre = defaultGenre
	}
	if c.Output.BitrateFloor == 0 {
		c.Output.BitrateFloor = defaultBitrateFloor
	}
	if c.Output.BitrateCeiling == 0 {
		c.Output.BitrateCeiling = defaultBitrateCeiling
	}
	if c.Output.SampleRate == 0 {
		c.Output.SampleRate = defaultSampleRate
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
