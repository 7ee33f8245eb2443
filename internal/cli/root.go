package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ppiankov/pantrymap/internal/logging"
)

// version is overridden at build time with -ldflags "-X ...cli.version=..."
var version = "0.3.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pantrymap",
	Short: "pantrymap - offline ingredient category mapping for OpenFoodFacts exports",
	Long: `pantrymap reads the OpenFoodFacts bulk export and maps every product name
that plausibly names a single cooking ingredient to one of a fixed set of
culinary categories.

Classification is a hand-curated, ordered rule list: the first matching rule
wins. Names no rule recognises are left out of the mapping rather than
guessed.

The result is a compact gzip JSON artifact {name: category ordinal} for
shipping inside an application.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := readConfigFile(); err != nil {
			return err
		}
		level := viper.GetString("log_level")
		if verbose {
			level = "debug"
		}
		logging.Setup(level, viper.GetString("log_format"))
		return nil
	},
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of pantrymap.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pantrymap v%s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.pantrymap/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires defaults, environment variables and global flags into viper
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".pantrymap"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match PANTRYMAP_*, e.g. PANTRYMAP_RUN_WORKERS
	viper.SetEnvPrefix("PANTRYMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("llm.api_key", "PANTRYMAP_LLM_API_KEY", "OPENAI_API_KEY")

	setDefaults()

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// readConfigFile loads the config file. A missing default file is fine; a
// file named with --config must exist and parse.
func readConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

// bindFlags binds the running command's flags to config keys, so a flag set
// on the command line overrides env and file values
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("unknown flag %q for %s", flag, key)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}
