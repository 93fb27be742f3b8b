package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bookbinder/internal/book"
	"bookbinder/internal/fileutil"
	"bookbinder/internal/manifest"
	"bookbinder/internal/probe"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "init <input-dir>",
		Short: "Generate a manifest.yaml pre-filled from the input files",
		Long: "Init probes the MP3 files in the input directory and writes a\n" +
			"manifest.yaml next to them: one chapter entry per file in natural\n" +
			"order, titles resolved from tags and filenames, and book-level fields\n" +
			"filled from the tags where possible. Edit the file, then run convert.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputDir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			target := outputPath
			if target == "" {
				target = filepath.Join(inputDir, "manifest.yaml")
			} else if target, err = filepath.Abs(target); err != nil {
				return err
			}
			if !force && fileutil.FileExists(target) {
				return fmt.Errorf("manifest already exists at %s (use --force to replace it)", target)
			}

			paths, err := fileutil.DiscoverAudio(inputDir)
			if err != nil {
				return err
			}
			prober := &probe.Prober{
				Binary:  cfg.FFprobeBinary(),
				Workers: cfg.Probe.Workers,
				Logger:  logger,
			}
			files, err := prober.Files(cmd.Context(), paths)
			if err != nil {
				return err
			}

			detected := book.AggregateTags(files)
			if cover := fileutil.FindCoverImage(inputDir); cover != "" {
				detected.Cover = filepath.Base(cover)
			}

			durations := make([]string, 0, len(files))
			for _, file := range files {
				durations = append(durations, book.FormatDuration(file.DurationMS))
			}
			if err := manifest.Generate(files, detected).Save(target, durations); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s with %d chapters\n", target, len(files))
			fmt.Fprintln(out, "Adjust order, titles, and metadata, then run: bookbinder convert", inputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Manifest destination (default: manifest.yaml next to the inputs)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing manifest")
	return cmd
}
