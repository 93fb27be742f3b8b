package config

const (
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFprobeBinary  = "ffprobe"
	defaultProbeWorkers   = 8
	defaultGenre          = "Audiobook"
	defaultBitrateFloor   = 64
	defaultBitrateCeiling = 256
	defaultSampleRate     = 44100
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Binaries: Binaries{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Probe: Probe{
			Workers: defaultProbeWorkers,
		},
		Output: Output{
			DefaultGenre:   defaultGenre,
			BitrateFloor:   defaultBitrateFloor,
			BitrateCeiling: defaultBitrateCeiling,
			SampleRate:     defaultSampleRate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
