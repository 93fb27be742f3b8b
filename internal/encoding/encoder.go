package encoding

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"bookbinder/internal/logging"
	"bookbinder/internal/services"
)

// Job describes one encode invocation. All paths are absolute.
type Job struct {
	ConcatPath   string
	MetadataPath string
	CoverPath    string
	OutputPath   string
	BitrateKbps  int
	SampleRate   int
	TotalMS      int64
	Verbose      bool
}

// Encoder wraps the ffmpeg binary.
type Encoder struct {
	Binary string
	Logger *slog.Logger
}

// Run executes ffmpeg for the job. In verbose mode ffmpeg's own output
// streams to stderr; otherwise the machine-readable progress stream drives a
// progress display and ffmpeg diagnostics are captured for error reporting.
func (e *Encoder) Run(ctx context.Context, job Job) error {
	binary := e.binaryName()
	if _, err := exec.LookPath(binary); err != nil {
		return services.Wrap(services.ErrConfiguration, "encode", "",
			fmt.Sprintf("%s not found on PATH, install ffmpeg or set binaries.ffmpeg in config", binary), err)
	}

	codec := e.pickAACEncoder(ctx)
	args := buildArgs(job, codec)

	if e.Logger != nil {
		e.Logger.Info("launching ffmpeg",
			logging.String("codec", codec),
			logging.Int("bitrate_kbps", job.BitrateKbps),
			logging.String("output", job.OutputPath),
			logging.Bool("cover", job.CoverPath != ""))
		e.Logger.Debug("ffmpeg command",
			logging.String("command", binary+" "+strings.Join(args, " ")))
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	if job.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return services.Wrap(services.ErrExternalTool, "encode", "ffmpeg", job.OutputPath, err)
		}
		return nil
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "encode", "ffmpeg", "open progress pipe", err)
	}
	var diagnostics strings.Builder
	cmd.Stderr = &diagnostics

	if err := cmd.Start(); err != nil {
		return services.Wrap(services.ErrExternalTool, "encode", "ffmpeg", "start", err)
	}

	reporter := newReporter(job.TotalMS, e.Logger)
	consumeProgress(stdout, reporter.update)
	reporter.finish()

	if err := cmd.Wait(); err != nil {
		detail := strings.TrimSpace(diagnostics.String())
		if detail != "" {
			detail = lastLines(detail, 5)
		}
		return services.Wrap(services.ErrExternalTool, "encode", "ffmpeg", detail, err)
	}
	return nil
}

// buildArgs assembles the full ffmpeg argument list: concat demuxer input,
// FFMETADATA input, optional cover mapped as attached artwork, AAC encode at
// the target bitrate, and chapter/metadata mapping from the descriptor.
func buildArgs(job Job, codec string) []string {
	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", job.ConcatPath,
		"-i", job.MetadataPath,
	}

	if job.CoverPath != "" {
		args = append(args,
			"-i", job.CoverPath,
			"-map", "0:a", "-map", "2:v",
			"-c:v", "copy",
			"-disposition:v", "attached_pic",
		)
	} else {
		args = append(args, "-map", "0:a")
	}

	sampleRate := job.SampleRate
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	args = append(args,
		"-c:a", codec,
		"-b:a", fmt.Sprintf("%dk", job.BitrateKbps),
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-threads", "0",
		"-map_metadata", "1",
		"-map_chapters", "1",
	)

	if !job.Verbose {
		args = append(args, "-progress", "pipe:1", "-nostats")
	}

	return append(args, "-y", job.OutputPath)
}

// pickAACEncoder prefers Apple's AudioToolbox encoder on macOS when the
// local ffmpeg build ships it; every other platform uses the native encoder.
func (e *Encoder) pickAACEncoder(ctx context.Context) string {
	if runtime.GOOS != "darwin" {
		return "aac"
	}
	output, err := exec.CommandContext(ctx, e.binaryName(), "-hide_banner", "-encoders").Output()
	if err == nil && strings.Contains(string(output), "aac_at") {
		return "aac_at"
	}
	return "aac"
}

func (e *Encoder) binaryName() string {
	if binary := strings.TrimSpace(e.Binary); binary != "" {
		return binary
	}
	return "ffmpeg"
}

func lastLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
