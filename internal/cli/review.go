package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/pantrymap/internal/cache"
	"github.com/ppiankov/pantrymap/internal/llm"
	"github.com/ppiankov/pantrymap/internal/report"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <report.json>",
	Short: "Ask an LLM to suggest categories for unclassified names",
	Long: `Review sends the most frequent unclassified names from a build report to an
OpenAI-compatible model and writes its suggestions to a separate file.

Suggestions are advisory. They are never written into the artifacts; a
curator decides which ones become rules. Suggestions naming a category
outside the registry, or "unknown", are rejected.

Example:
  pantrymap build export.csv --report run.json
  OPENAI_API_KEY=sk-... pantrymap review run.json --llm-provider openai
  pantrymap review run.json --llm-provider ollama --llm-model llama3.1`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"llm-provider": "llm.provider",
			"llm-model":    "llm.model",
			"llm-base-url": "llm.base_url",
			"max-names":    "llm.max_names",
			"out":          "llm.output",
		})
	},
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	f := reviewCmd.Flags()
	f.String("llm-provider", "", "LLM provider (openai, ollama)")
	f.String("llm-model", "", "LLM model name")
	f.String("llm-base-url", "", "OpenAI-compatible endpoint")
	f.Int("max-names", 100, "review at most this many names")
	f.String("out", "review.json", "suggestions output path")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rep, err := report.ReadJSON(args[0])
	if err != nil {
		return err
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.Fetch))
	if err != nil {
		return err
	}
	if provider == nil {
		return errors.New("no LLM provider configured (set --llm-provider or llm.provider)")
	}

	names := rep.TopUnclassified
	if n := cfg.LLM.MaxNames; n > 0 && len(names) > n {
		names = names[:n]
	}
	if len(names) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to review: the report lists no unclassified names")
		return nil
	}

	answers := cache.NewLayeredCache(cfg.Run.MemoTTL, filepath.Join(cfg.Fetch.CacheDir, "review"), cfg.Fetch.CacheTTL)
	reviewer := llm.NewReviewer(provider, answers, cfg.LLM.Model)

	rv, err := reviewer.Review(cmd.Context(), names)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}
	rv.RunID = rep.RunID

	if err := llm.WriteReview(cfg.LLM.Output, rv); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "✓ Reviewed %d names with %s\n", len(names), provider.Name())
	_, _ = fmt.Fprintf(out, "  Suggested:  %d\n", len(rv.Suggestions))
	_, _ = fmt.Fprintf(out, "  Rejected:   %d\n", len(rv.Rejected))
	_, _ = fmt.Fprintf(out, "  Unanswered: %d\n", len(rv.Unanswered))
	_, _ = fmt.Fprintf(out, "  Output:     %s\n", cfg.LLM.Output)
	return nil
}
