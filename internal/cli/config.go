package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/pantrymap/internal/model"
)

// setDefaults registers every config key with its built-in default, which
// also makes each key reachable through PANTRYMAP_* variables
func setDefaults() {
	d := model.DefaultConfig()

	viper.SetDefault("input.path", d.Input.Path)
	viper.SetDefault("input.encoding", d.Input.Encoding)

	viper.SetDefault("output.dir", d.Output.Dir)
	viper.SetDefault("output.category_file", d.Output.CategoryFile)
	viper.SetDefault("output.meta_file", d.Output.MetaFile)
	viper.SetDefault("output.meta", d.Output.Meta)
	viper.SetDefault("output.sqlite", d.Output.SQLite)
	viper.SetDefault("output.report_json", d.Output.ReportJSON)
	viper.SetDefault("output.xlsx", d.Output.XLSX)
	viper.SetDefault("output.top_unclassified", d.Output.TopUnknown)

	viper.SetDefault("run.workers", d.Run.Workers)
	viper.SetDefault("run.chunk_size", d.Run.ChunkSize)
	viper.SetDefault("run.progress_every", d.Run.ProgressEvery)
	viper.SetDefault("run.memo_ttl", d.Run.MemoTTL)

	viper.SetDefault("fetch.url", d.Fetch.URL)
	viper.SetDefault("fetch.dest", d.Fetch.Dest)
	viper.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	viper.SetDefault("fetch.timeout", d.Fetch.Timeout)
	viper.SetDefault("fetch.requests_per_second", d.Fetch.RequestsPerSecond)
	viper.SetDefault("fetch.cache_dir", d.Fetch.CacheDir)
	viper.SetDefault("fetch.cache_ttl", d.Fetch.CacheTTL)
	viper.SetDefault("fetch.http_proxy", d.Fetch.HTTPProxy)
	viper.SetDefault("fetch.https_proxy", d.Fetch.HTTPSProxy)
	viper.SetDefault("fetch.no_proxy", d.Fetch.NoProxy)

	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.mode", d.Server.Mode)

	viper.SetDefault("llm.provider", d.LLM.Provider)
	viper.SetDefault("llm.model", d.LLM.Model)
	viper.SetDefault("llm.base_url", d.LLM.BaseURL)
	viper.SetDefault("llm.api_key", d.LLM.APIKey)
	viper.SetDefault("llm.timeout", d.LLM.Timeout)
	viper.SetDefault("llm.max_names", d.LLM.MaxNames)
	viper.SetDefault("llm.output", d.LLM.Output)

	viper.SetDefault("log_level", d.LogLevel)
	viper.SetDefault("log_format", d.LogFormat)
}

// loadConfig resolves the effective configuration: flags, then env, then
// the config file, then defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pantrymap configuration",
	Long: `Manage pantrymap configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (PANTRYMAP_*, e.g. PANTRYMAP_RUN_WORKERS=8)
3. Config file (~/.pantrymap/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after merging defaults, config file, env vars and flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, rule)
		_, _ = fmt.Fprintln(out, "  Current Configuration")
		_, _ = fmt.Fprintln(out, rule)
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, string(yamlData))
		_, _ = fmt.Fprintln(out, rule)
		if cfg.LLM.APIKey != "" {
			_, _ = fmt.Fprintln(out, "  llm.api_key is set (hidden)")
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.pantrymap/config.yaml with all available options.`,
	// the file may not exist yet, so skip reading it
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := cfgFile
		if configPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("error finding home directory: %w", err)
			}
			configPath = filepath.Join(home, ".pantrymap", "config.yaml")
		}

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'pantrymap config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		yamlData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		header := `# pantrymap configuration file
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (PANTRYMAP_*)
#   3. This config file
#   4. Built-in defaults

`
		footer := `
# API keys are read from the environment only:
#   export OPENAI_API_KEY=sk-...
# For a local Ollama set llm.provider: ollama (base_url defaults to http://localhost:11434/v1)
`
		content := header + string(yamlData) + footer
		if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "✓ Created default configuration: %s\n", configPath)
		_, _ = fmt.Fprintf(out, "\nTo view the configuration:\n")
		_, _ = fmt.Fprintf(out, "  pantrymap config show\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
