package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookbinder/internal/book"
	"bookbinder/internal/fileutil"
	"bookbinder/internal/probe"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input-dir>",
		Short: "Probe the input files and print their properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			paths, err := fileutil.DiscoverAudio(args[0])
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

			var totalMS int64
			rows := make([][]string, 0, len(files))
			for _, file := range files {
				totalMS += file.DurationMS
				rows = append(rows, []string{
					file.Filename,
					book.FormatDuration(file.DurationMS),
					formatKbps(file.BitrateKbps),
					formatHertz(file.SampleRate),
					book.ResolveTitle(file, ""),
					file.Tag(probe.TagArtist),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Duration", "Bitrate", "Sample Rate", "Chapter Title", "Artist Tag"},
				rows,
				[]string{"Total", book.FormatDuration(totalMS), "", "", "", ""},
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
			))

			if cover := fileutil.FindCoverImage(args[0]); cover != "" {
				fmt.Fprintf(out, "Cover image: %s\n", cover)
			}
			return nil
		},
	}
	return cmd
}

func formatKbps(kbps int) string {
	if kbps <= 0 {
		return "?"
	}
	return strconv.Itoa(kbps) + " kbps"
}

func formatHertz(hz int) string {
	if hz <= 0 {
		return "?"
	}
	return strconv.Itoa(hz) + " Hz"
}
