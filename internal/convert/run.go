package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"bookbinder/internal/encoding"
	"bookbinder/internal/ffmetadata"
	"bookbinder/internal/logging"
	"bookbinder/internal/services"
)

const lockFileName = ".bookbinder.lock"

// Run executes a resolved plan: takes the input-directory lock, writes the
// concat list and FFMETADATA descriptor into a temporary workspace, and runs
// the encoder. The workspace is removed on every exit path.
func (p *Planner) Run(ctx context.Context, plan *Plan, verbose bool) error {
	lock := flock.New(filepath.Join(plan.InputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return services.Wrap(services.ErrInternal, "convert", "lock", plan.InputDir, err)
	}
	if !locked {
		return services.Wrap(services.ErrValidation, "convert", "lock",
			fmt.Sprintf("another conversion is already running in %s", plan.InputDir), nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	workDir, err := os.MkdirTemp("", "bookbinder-"+shortRunID(plan.RunID)+"-")
	if err != nil {
		return services.Wrap(services.ErrInternal, "convert", "workspace", "", err)
	}
	defer os.RemoveAll(workDir)

	paths := make([]string, len(plan.Files))
	for i, file := range plan.Files {
		paths[i] = file.Path
	}
	concatPath := filepath.Join(workDir, "concat.txt")
	if err := os.WriteFile(concatPath, ffmetadata.ConcatList(paths), 0o644); err != nil {
		return services.Wrap(services.ErrInternal, "convert", "workspace", concatPath, err)
	}

	metaBytes, err := ffmetadata.Marshal(plan.Metadata, plan.Chapters)
	if err != nil {
		return err
	}
	metadataPath := filepath.Join(workDir, "metadata.txt")
	if err := os.WriteFile(metadataPath, metaBytes, 0o644); err != nil {
		return services.Wrap(services.ErrInternal, "convert", "workspace", metadataPath, err)
	}

	if p.Logger != nil {
		p.Logger.Debug("workspace prepared",
			logging.String("run_id", plan.RunID),
			logging.String("dir", workDir))
	}

	encoder := &encoding.Encoder{
		Binary: p.Config.FFmpegBinary(),
		Logger: p.Logger,
	}
	job := encoding.Job{
		ConcatPath:   concatPath,
		MetadataPath: metadataPath,
		CoverPath:    plan.CoverPath,
		OutputPath:   plan.OutputPath,
		BitrateKbps:  plan.BitrateKbps,
		SampleRate:   p.Config.Output.SampleRate,
		TotalMS:      plan.TotalMS,
		Verbose:      verbose,
	}
	if err := encoder.Run(ctx, job); err != nil {
		return err
	}

	if p.Logger != nil {
		p.Logger.Info("audiobook written",
			logging.String("output", plan.OutputPath),
			logging.Int("chapters", len(plan.Chapters)))
	}
	return nil
}

// shortRunID keeps temp directory names readable.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
