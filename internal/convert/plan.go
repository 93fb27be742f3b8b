package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"bookbinder/internal/book"
	"bookbinder/internal/config"
	"bookbinder/internal/fileutil"
	"bookbinder/internal/logging"
	"bookbinder/internal/manifest"
	"bookbinder/internal/probe"
	"bookbinder/internal/services"
	"bookbinder/internal/textutil"
)

// Options carries everything the command line supplies for one conversion.
type Options struct {
	InputDir     string
	OutputPath   string
	ManifestPath string
	Overrides    book.Metadata
	DryRun       bool
	Verbose      bool
}

// Plan is the fully resolved description of one conversion. Building it has
// no side effects beyond reading the inputs.
type Plan struct {
	RunID        string
	InputDir     string
	ManifestPath string
	Files        []probe.AudioFile
	Chapters     []book.Chapter
	Metadata     book.Metadata
	CoverPath    string
	BitrateKbps  int
	TotalMS      int64
	OutputPath   string
}

// Planner resolves conversion plans.
type Planner struct {
	Config *config.Config
	Logger *slog.Logger
}

// BuildPlan discovers and probes the inputs, applies the manifest and the
// command-line overrides, and returns the resolved plan.
func (p *Planner) BuildPlan(ctx context.Context, opts Options) (*Plan, error) {
	inputDir, err := filepath.Abs(opts.InputDir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "plan", "", opts.InputDir, err)
	}

	discovered, err := fileutil.DiscoverAudio(inputDir)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "plan", "discover", inputDir, err)
	}

	man, manifestPath, err := p.loadManifest(inputDir, opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	ordered, err := manifest.ResolveOrder(discovered, man)
	if err != nil {
		return nil, err
	}

	prober := &probe.Prober{
		Binary:  p.Config.FFprobeBinary(),
		Workers: p.Config.Probe.Workers,
		Logger:  p.Logger,
	}
	files, err := prober.Files(ctx, ordered)
	if err != nil {
		return nil, err
	}
	if err := validateDurations(files); err != nil {
		return nil, err
	}

	overrides := man.TitleOverrides()
	titles := make([]string, len(files))
	for i, file := range files {
		titles[i] = book.ResolveTitle(file, overrides[file.Filename])
	}
	chapters, err := book.BuildTimeline(files, titles)
	if err != nil {
		return nil, err
	}

	manifestMeta := man.Metadata()
	cliMeta := opts.Overrides
	detected := book.AggregateTags(files)
	detected.Cover = fileutil.FindCoverImage(inputDir)
	if err := resolveCoverPaths(inputDir, &cliMeta, &manifestMeta); err != nil {
		return nil, err
	}

	meta := book.Merge(manifestMeta, cliMeta, detected, p.Config.Output.DefaultGenre)

	plan := &Plan{
		RunID:        uuid.NewString(),
		InputDir:     inputDir,
		ManifestPath: manifestPath,
		Files:        files,
		Chapters:     chapters,
		Metadata:     meta,
		CoverPath:    meta.Cover,
		BitrateKbps:  book.TargetBitrate(files, p.Config.Output.BitrateFloor, p.Config.Output.BitrateCeiling),
		TotalMS:      book.TotalDuration(chapters),
		OutputPath:   resolveOutputPath(inputDir, opts.OutputPath, meta.Title),
	}

	if p.Logger != nil {
		p.Logger.Info("plan resolved",
			logging.String("run_id", plan.RunID),
			logging.Int("chapters", len(plan.Chapters)),
			logging.Int("bitrate_kbps", plan.BitrateKbps),
			logging.Int64("total_ms", plan.TotalMS),
			logging.String("output", plan.OutputPath))
	}
	return plan, nil
}

// loadManifest loads an explicitly named manifest, or looks for one next to
// the inputs. A nil manifest is valid: tags and filenames carry the run.
func (p *Planner) loadManifest(inputDir, explicit string) (*manifest.Manifest, string, error) {
	path := explicit
	if path == "" {
		path = manifest.Find(inputDir)
		if path == "" {
			return nil, "", nil
		}
	} else if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}
	}

	man, err := manifest.Load(path)
	if err != nil {
		return nil, "", err
	}
	if p.Logger != nil {
		p.Logger.Debug("manifest loaded",
			logging.String("path", path),
			logging.Int("chapters", len(man.Chapters)))
	}
	return man, path, nil
}

// validateDurations rejects files the probe reported as zero-length before
// they reach the timeline builder, so a broken input surfaces as a problem
// with the file rather than as an internal error.
func validateDurations(files []probe.AudioFile) error {
	for _, file := range files {
		if file.DurationMS <= 0 {
			return services.Wrap(services.ErrValidation, "plan", "probe",
				fmt.Sprintf("%s has no measurable duration", file.Filename), nil)
		}
	}
	return nil
}

// resolveCoverPaths makes declared cover paths absolute and verifies they
// exist. Manifest covers resolve relative to the input directory; CLI covers
// resolve relative to the working directory.
func resolveCoverPaths(inputDir string, cli, man *book.Metadata) error {
	if cli.Cover != "" {
		abs, err := filepath.Abs(cli.Cover)
		if err == nil {
			cli.Cover = abs
		}
		if !fileutil.FileExists(cli.Cover) {
			return services.Wrap(services.ErrValidation, "plan", "",
				fmt.Sprintf("cover image %s does not exist", cli.Cover), nil)
		}
	}
	if man.Cover != "" {
		if !filepath.IsAbs(man.Cover) {
			man.Cover = filepath.Join(inputDir, man.Cover)
		}
		if !fileutil.FileExists(man.Cover) {
			return services.Wrap(services.ErrValidation, "plan", "",
				fmt.Sprintf("manifest cover image %s does not exist", man.Cover), nil)
		}
	}
	return nil
}

// resolveOutputPath picks the output file: the explicit path when given,
// otherwise "<sanitized title>.m4b" next to the inputs, falling back to
// "audiobook.m4b" when no title resolved.
func resolveOutputPath(inputDir, explicit, title string) string {
	if explicit != "" {
		if abs, err := filepath.Abs(explicit); err == nil {
			return abs
		}
		return explicit
	}
	name := textutil.SanitizeFileName(title)
	if name == "" {
		name = "audiobook"
	}
	return filepath.Join(inputDir, name+".m4b")
}
