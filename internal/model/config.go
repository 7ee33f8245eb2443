package model

import (
	"fmt"
	"runtime"
	"time"
)

// Config holds every setting of a pantrymap run
type Config struct {
	Input    InputConfig  `yaml:"input" mapstructure:"input"`
	Output   OutputConfig `yaml:"output" mapstructure:"output"`
	Run      RunConfig    `yaml:"run" mapstructure:"run"`
	Fetch    FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Server   ServerConfig `yaml:"server" mapstructure:"server"`
	LLM      LLMConfig    `yaml:"llm" mapstructure:"llm"`

	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"` // text or json
}

// InputConfig describes the bulk source
type InputConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	Encoding string `yaml:"encoding" mapstructure:"encoding"` // charset label, e.g. utf-8, windows-1252
}

// OutputConfig controls which artifacts are written and where
type OutputConfig struct {
	Dir          string `yaml:"dir" mapstructure:"dir"`
	CategoryFile string `yaml:"category_file" mapstructure:"category_file"`
	MetaFile     string `yaml:"meta_file" mapstructure:"meta_file"`
	Meta         bool   `yaml:"meta" mapstructure:"meta"`
	SQLite       string `yaml:"sqlite,omitempty" mapstructure:"sqlite"`
	ReportJSON   string `yaml:"report_json,omitempty" mapstructure:"report_json"`
	XLSX         string `yaml:"xlsx,omitempty" mapstructure:"xlsx"`
	TopUnknown   int    `yaml:"top_unclassified" mapstructure:"top_unclassified"`
}

// RunConfig tunes the classification run
type RunConfig struct {
	Workers       int           `yaml:"workers" mapstructure:"workers"`
	ChunkSize     int           `yaml:"chunk_size" mapstructure:"chunk_size"`
	ProgressEvery int           `yaml:"progress_every" mapstructure:"progress_every"`
	MemoTTL       time.Duration `yaml:"memo_ttl" mapstructure:"memo_ttl"`
}

// FetchConfig controls downloading the bulk source
type FetchConfig struct {
	URL               string        `yaml:"url" mapstructure:"url"`
	Dest              string        `yaml:"dest" mapstructure:"dest"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	CacheDir          string        `yaml:"cache_dir" mapstructure:"cache_dir"`
	CacheTTL          time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	HTTPProxy         string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// ServerConfig controls the lookup server
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
	Mode string `yaml:"mode" mapstructure:"mode"` // debug, release, test
}

// LLMConfig controls the optional review of unclassified names.
// Review output is advisory and never written into the artifacts.
type LLMConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"` // openai or "" (disabled)
	Model    string `yaml:"model" mapstructure:"model"`
	BaseURL  string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	APIKey   string `yaml:"-" mapstructure:"api_key"`
	Timeout  int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxNames int    `yaml:"max_names" mapstructure:"max_names"`
	Output   string `yaml:"output" mapstructure:"output"`
}

// DefaultOFFExportURL is the OpenFoodFacts full TSV export
const DefaultOFFExportURL = "https://static.openfoodfacts.org/data/en.openfoodfacts.org.products.csv.gz"

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Encoding: "utf-8",
		},
		Output: OutputConfig{
			Dir:          ".",
			CategoryFile: "ingredients_json.gz",
			MetaFile:     "ingredients_meta.gz",
			TopUnknown:   50,
		},
		Run: RunConfig{
			Workers:       1,
			ChunkSize:     4096,
			ProgressEvery: 500_000,
			MemoTTL:       30 * time.Minute,
		},
		Fetch: FetchConfig{
			URL:               DefaultOFFExportURL,
			Dest:              "en.openfoodfacts.org.products.csv.gz",
			UserAgent:         "pantrymap/0.3 (+https://github.com/ppiankov/pantrymap)",
			Timeout:           2 * time.Hour,
			RequestsPerSecond: 1,
			CacheDir:          ".pantrymap-cache",
			CacheTTL:          7 * 24 * time.Hour,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		LLM: LLMConfig{
			Timeout:  30,
			MaxNames: 100,
			Output:   "review.json",
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks settings that would otherwise fail deep inside a run
func (c *Config) Validate() error {
	if c.Run.Workers < 1 {
		return fmt.Errorf("run.workers must be >= 1, got %d", c.Run.Workers)
	}
	if c.Run.Workers > 4*runtime.NumCPU() {
		return fmt.Errorf("run.workers %d exceeds 4x CPU count (%d)", c.Run.Workers, runtime.NumCPU())
	}
	if c.Run.ChunkSize < 1 {
		return fmt.Errorf("run.chunk_size must be >= 1, got %d", c.Run.ChunkSize)
	}
	if c.Output.CategoryFile == "" {
		return fmt.Errorf("output.category_file must not be empty")
	}
	if c.Output.Meta && c.Output.MetaFile == "" {
		return fmt.Errorf("output.meta_file must not be empty when metadata is enabled")
	}
	if c.Run.ProgressEvery < 0 {
		return fmt.Errorf("run.progress_every must not be negative, got %d", c.Run.ProgressEvery)
	}
	switch c.LLM.Provider {
	case "", "openai", "ollama":
	default:
		return fmt.Errorf("llm.provider must be openai, ollama or empty, got %q", c.LLM.Provider)
	}
	return nil
}
