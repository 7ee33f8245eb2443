package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ppiankov/pantrymap/internal/pipeline"
	"github.com/ppiankov/pantrymap/internal/report"
)

const rule = "═══════════════════════════════════════════════════════════"

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [export.csv[.gz]]",
	Short: "Classify a bulk export and write the ingredient artifacts",
	Long: `Build streams the OpenFoodFacts tab-separated export and writes:
- ingredients_json.gz   {name: category ordinal}, always
- ingredients_meta.gz   dietary and nutrition metadata, with --meta
- a SQLite database, with --sqlite
- a JSON and/or XLSX run report, with --report / --xlsx

Names no rule recognises are left out of the artifacts, never defaulted.

Example:
  pantrymap build en.openfoodfacts.org.products.csv.gz
  pantrymap build export.csv --meta --output-dir ./dist
  pantrymap build export.csv --workers 8 --sqlite ingredients.db --xlsx run.xlsx`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"input":          "input.path",
			"encoding":       "input.encoding",
			"output-dir":     "output.dir",
			"meta":           "output.meta",
			"sqlite":         "output.sqlite",
			"report":         "output.report_json",
			"xlsx":           "output.xlsx",
			"top":            "output.top_unclassified",
			"workers":        "run.workers",
			"chunk-size":     "run.chunk_size",
			"progress-every": "run.progress_every",
		})
	},
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	f := buildCmd.Flags()
	f.StringP("input", "i", "", "bulk export path (.csv or .csv.gz)")
	f.String("encoding", "utf-8", "input character encoding label, e.g. windows-1252")
	f.StringP("output-dir", "o", ".", "artifact output directory")
	f.Bool("meta", false, "also write the metadata artifact")
	f.String("sqlite", "", "also export to this SQLite database")
	f.String("report", "", "write the run report as JSON to this path")
	f.String("xlsx", "", "write the run report as XLSX to this path")
	f.Int("top", 50, "number of most frequent unclassified names to report")
	f.IntP("workers", "w", 1, "classification workers (1 = sequential)")
	f.Int("chunk-size", 4096, "rows per parallel work item")
	f.Int("progress-every", 500_000, "log progress every N rows (0 disables)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	if cfg.Input.Path == "" {
		return fmt.Errorf("no input: pass the export path or set input.path (download it from %s)", pipeline.DownloadHint)
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "%s\n", rule)
	fmt.Fprintf(stderr, "  pantrymap build\n")
	fmt.Fprintf(stderr, "%s\n", rule)
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Input file:   %s\n", cfg.Input.Path)
	fmt.Fprintf(stderr, "  Workers:      %d\n", cfg.Run.Workers)
	fmt.Fprintf(stderr, "  Output dir:   %s\n", cfg.Output.Dir)
	fmt.Fprintf(stderr, "  Metadata:     %v\n", cfg.Output.Meta)
	fmt.Fprintf(stderr, "\n")

	ctx := cmd.Context()
	p := pipeline.NewPipeline(cfg, slog.Default())

	res, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if err := p.WriteArtifacts(ctx, res); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	report.WriteSummary(stderr, res.Report)
	return nil
}
