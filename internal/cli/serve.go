package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/database"
	"github.com/ppiankov/pantrymap/internal/server"
	"github.com/ppiankov/pantrymap/internal/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups over a built artifact",
	Long: `Serve starts an HTTP server answering ingredient lookups from the artifacts
in the output directory, or from a SQLite export with --sqlite.

Routes:
  GET  /health
  GET  /api/v1/categories
  GET  /api/v1/ingredients/:name
  POST /api/v1/classify

Example:
  pantrymap serve --output-dir ./dist
  pantrymap serve --sqlite ingredients.db --addr :9090`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"addr":       "server.addr",
			"mode":       "server.mode",
			"output-dir": "output.dir",
			"sqlite":     "output.sqlite",
		})
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := serveCmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.String("mode", "release", "gin mode: debug, release, test")
	f.StringP("output-dir", "o", ".", "directory holding the built artifacts")
	f.String("sqlite", "", "serve from this SQLite export instead")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var lookup server.Lookup
	if cfg.Output.SQLite != "" {
		db, err := database.Open(cfg.Output.SQLite)
		if err != nil {
			return fmt.Errorf("open sqlite export: %w", err)
		}
		defer func() { _ = db.Close() }()
		lookup = store.NewIngredientStore(db)
	} else {
		idx, err := server.LoadArtifactIndex(
			filepath.Join(cfg.Output.Dir, cfg.Output.CategoryFile),
			filepath.Join(cfg.Output.Dir, cfg.Output.MetaFile),
		)
		if err != nil {
			return fmt.Errorf("%w (run 'pantrymap build' first)", err)
		}
		lookup = idx
	}

	router := server.SetupRouter(cfg.Server.Mode, server.NewHandler(lookup, classify.New(), version))
	return server.Serve(cmd.Context(), cfg.Server.Addr, router)
}
