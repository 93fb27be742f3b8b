package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookbinder/internal/book"
	"bookbinder/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var opts convert.Options

	cmd := &cobra.Command{
		Use:   "convert <input-dir>",
		Short: "Convert a directory of MP3 files into an M4B audiobook",
		Long: "Convert binds every MP3 in the input directory into one M4B file with\n" +
			"a chapter per input. File order, chapter titles, and book metadata come\n" +
			"from the manifest when present, otherwise from tags and filenames.",
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

			opts.InputDir = args[0]
			planner := &convert.Planner{Config: cfg, Logger: logger}
			plan, err := planner.BuildPlan(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if opts.DryRun {
				printPlan(cmd, plan)
				return nil
			}
			return planner.Run(cmd.Context(), plan, opts.Verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.OutputPath, "output", "o", "", "Output M4B path (default: <title>.m4b next to the inputs)")
	flags.StringVarP(&opts.ManifestPath, "manifest", "m", "", "Manifest file path (default: manifest.yaml next to the inputs)")
	flags.StringVar(&opts.Overrides.Title, "title", "", "Book title override")
	flags.StringVar(&opts.Overrides.Author, "author", "", "Author override")
	flags.StringVar(&opts.Overrides.Narrator, "narrator", "", "Narrator override")
	flags.StringVar(&opts.Overrides.Series, "series", "", "Series override")
	flags.StringVar(&opts.Overrides.Year, "year", "", "Publication year override")
	flags.StringVar(&opts.Overrides.Genre, "genre", "", "Genre override")
	flags.StringVar(&opts.Overrides.Description, "description", "", "Description override")
	flags.StringVar(&opts.Overrides.Cover, "cover", "", "Cover image path override")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Resolve and print the plan without encoding")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Stream raw ffmpeg output instead of a progress bar")

	return cmd
}

// printPlan renders the resolved plan: book metadata, then the chapter
// timeline with a total-duration footer.
func printPlan(cmd *cobra.Command, plan *convert.Plan) {
	out := cmd.OutOrStdout()

	for _, field := range metadataFields(plan.Metadata) {
		if field.value != "" {
			fmt.Fprintf(out, "%-12s %s\n", field.label+":", field.value)
		}
	}
	fmt.Fprintf(out, "%-12s %d kbps\n", "Bitrate:", plan.BitrateKbps)
	if plan.CoverPath != "" {
		fmt.Fprintf(out, "%-12s %s\n", "Cover:", plan.CoverPath)
	}
	if plan.ManifestPath != "" {
		fmt.Fprintf(out, "%-12s %s\n", "Manifest:", plan.ManifestPath)
	}
	fmt.Fprintf(out, "%-12s %s\n\n", "Output:", plan.OutputPath)

	rows := make([][]string, 0, len(plan.Chapters))
	for _, chapter := range plan.Chapters {
		rows = append(rows, []string{
			strconv.Itoa(chapter.Index + 1),
			chapter.Title,
			chapter.SourceFile,
			book.FormatDuration(chapter.StartMS),
			book.FormatDuration(chapter.DurationMS()),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Chapter", "Source", "Start", "Duration"},
		rows,
		[]string{"", "", "", "Total", book.FormatDuration(plan.TotalMS)},
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
	))
}

type metadataField struct {
	label string
	value string
}

func metadataFields(meta book.Metadata) []metadataField {
	return []metadataField{
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Narrator", meta.Narrator},
		{"Series", meta.Series},
		{"Year", meta.Year},
		{"Genre", meta.Genre},
		{"Description", meta.Description},
	}
}
