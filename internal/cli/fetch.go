package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/pantrymap/internal/cache"
	"github.com/ppiankov/pantrymap/internal/pipeline"
	"github.com/ppiankov/pantrymap/internal/util"
	"github.com/ppiankov/pantrymap/internal/worker"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [dest]",
	Short: "Download the OpenFoodFacts bulk export",
	Long: `Fetch downloads the bulk export, checking robots.txt first and pacing
requests per host. The server's ETag / Last-Modified are remembered, so an
unchanged export is not downloaded again.

Example:
  pantrymap fetch
  pantrymap fetch ./data/export.csv.gz --force
  pantrymap fetch --https-proxy http://proxy:3128`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"url":         "fetch.url",
			"ua":          "fetch.user_agent",
			"timeout":     "fetch.timeout",
			"rps":         "fetch.requests_per_second",
			"cache-dir":   "fetch.cache_dir",
			"http-proxy":  "fetch.http_proxy",
			"https-proxy": "fetch.https_proxy",
			"no-proxy":    "fetch.no_proxy",
		})
	},
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	f := fetchCmd.Flags()
	f.String("url", "", "export URL (default: the OpenFoodFacts TSV export)")
	f.String("ua", "", "HTTP User-Agent")
	f.Duration("timeout", 0, "overall download timeout")
	f.Float64("rps", 1, "requests per second per host")
	f.String("cache-dir", "", "directory for download validators")
	f.String("http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	f.String("https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	f.String("no-proxy", "", "hosts to reach directly (overrides NO_PROXY env var)")
	f.Bool("force", false, "download even if the export is unchanged")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fc := cfg.Fetch
	dest := fc.Dest
	if len(args) == 1 {
		dest = args[0]
	}

	client, err := util.NewHTTPClient(fc.Timeout, fc.HTTPProxy, fc.HTTPSProxy, fc.NoProxy)
	if err != nil {
		return err
	}
	validators := cache.NewDiskCache(filepath.Join(fc.CacheDir, "fetch"), fc.CacheTTL)
	if force, _ := cmd.Flags().GetBool("force"); force {
		_ = validators.Delete(cache.FetchKey(fc.URL))
	}

	fetcher := pipeline.NewFetcher(
		client,
		fc.UserAgent,
		util.NewRobotsChecker(fc.UserAgent, client),
		worker.NewLimiter(fc.RequestsPerSecond, 1),
		validators,
	)

	res, err := fetcher.Download(cmd.Context(), fc.URL, dest)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if res.NotModified {
		_, _ = fmt.Fprintf(out, "✓ %s is up to date (%d bytes)\n", res.Path, res.Meta.Bytes)
		return nil
	}
	_, _ = fmt.Fprintf(out, "✓ Downloaded %s (%d bytes, %d attempt(s))\n", res.Path, res.Meta.Bytes, res.Attempts)
	return nil
}
