package probe

import (
	"context"
	"log/slog"
	"math"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"bookbinder/internal/logging"
	"bookbinder/internal/media/ffprobe"
	"bookbinder/internal/services"
)

// Prober inspects audio files. The zero value uses "ffprobe" from PATH with
// a single worker and no logging.
type Prober struct {
	Binary  string
	Workers int
	Logger  *slog.Logger
}

// Available reports whether the ffprobe binary can be resolved. When it
// cannot, File switches to the pure-Go fallback prober.
func (p *Prober) Available() bool {
	binary := p.Binary
	if binary == "" {
		binary = "ffprobe"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// File probes a single file and returns its descriptor.
func (p *Prober) File(ctx context.Context, path string) (AudioFile, error) {
	if p.Available() {
		return p.ffprobeFile(ctx, path)
	}
	return fallbackFile(path)
}

// Files probes every path concurrently, preserving input order. The first
// failure aborts the whole batch and is reported with the offending path.
func (p *Prober) Files(ctx context.Context, paths []string) ([]AudioFile, error) {
	if len(paths) == 0 {
		return nil, services.Wrap(services.ErrValidation, "probe", "", "no input files", nil)
	}

	useFallback := !p.Available()
	if useFallback && p.Logger != nil {
		p.Logger.Warn("ffprobe not found, using built-in MP3 prober",
			logging.String("binary", p.binaryName()))
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	files := make([]AudioFile, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			var (
				file AudioFile
				err  error
			)
			if useFallback {
				file, err = fallbackFile(path)
			} else {
				file, err = p.ffprobeFile(groupCtx, path)
			}
			if err != nil {
				return err
			}
			files[i] = file
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if p.Logger != nil {
		p.Logger.Debug("probe batch complete",
			logging.Int("files", len(files)),
			logging.Bool("fallback", useFallback))
	}
	return files, nil
}

func (p *Prober) ffprobeFile(ctx context.Context, path string) (AudioFile, error) {
	result, err := ffprobe.Inspect(ctx, p.Binary, path)
	if err != nil {
		return AudioFile{}, services.Wrap(services.ErrExternalTool, "probe", "ffprobe", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	durationMS := int64(math.Round(result.DurationSeconds() * 1000))
	return AudioFile{
		Path:        abs,
		Filename:    filepath.Base(path),
		DurationMS:  durationMS,
		BitrateKbps: int(result.BitRate() / 1000),
		SampleRate:  result.SampleRate(),
		Tags:        normalizeTags(result.MergedTags()),
	}, nil
}

func (p *Prober) binaryName() string {
	if p.Binary != "" {
		return p.Binary
	}
	return "ffprobe"
}
