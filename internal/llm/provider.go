package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/pantrymap/internal/category"
)

// ErrDisallowedCategory marks a suggestion naming a category outside the
// registry, or the reserved unknown category
var ErrDisallowedCategory = errors.New("disallowed category")

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Suggest asks the model for a category per name
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SuggestRequest contains the names to review
type SuggestRequest struct {
	// Names is the STRICT allowlist of names the model may answer for
	Names []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Suggestion is one advisory category for a name
type Suggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Reason   string `json:"reason,omitempty"`
}

// Rejection is a suggestion dropped by validation
type Rejection struct {
	Suggestion
	Error string `json:"error"`
}

// SuggestResponse contains the validated model output
type SuggestResponse struct {
	Suggestions []Suggestion
	Rejected    []Rejection
	Model       string
	TokensUsed  int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // disabled
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// AllowedCategories returns the category names a suggestion may use
func AllowedCategories() []string {
	out := make([]string, 0, category.Count-1)
	for _, id := range category.All() {
		if id.Valid() {
			out = append(out, id.String())
		}
	}
	return out
}

// BuildPrompt constructs the default review prompt
func BuildPrompt(names []string) string {
	var b strings.Builder
	b.WriteString(`You are helping curate hand-written rules that map grocery product names to culinary categories.

RULES:
1. Answer ONLY for the product names listed below. Do not add names.
2. Use ONLY one of these categories:
`)
	b.WriteString(strings.Join(AllowedCategories(), ", "))
	b.WriteString(`
3. If a name is a prepared dish, a brand, or you are not sure, leave it out.
4. Reply with a JSON array only, e.g. [{"name": "...", "category": "...", "reason": "..."}].

Product names:
`)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return b.String()
}

// ParseSuggestions extracts the JSON array from a model reply and validates
// every entry against the requested names and the category registry
func ParseSuggestions(content string, names []string) ([]Suggestion, []Rejection, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end < start {
		return nil, nil, fmt.Errorf("no JSON array in model reply")
	}

	var raw []Suggestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, nil, fmt.Errorf("parse model reply: %w", err)
	}

	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = true
	}

	var accepted []Suggestion
	var rejected []Rejection
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		s.Name = strings.TrimSpace(s.Name)
		s.Category = strings.ToLower(strings.TrimSpace(s.Category))
		if err := validate(s, requested); err != nil {
			rejected = append(rejected, Rejection{Suggestion: s, Error: err.Error()})
			continue
		}
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		accepted = append(accepted, s)
	}
	return accepted, rejected, nil
}

func validate(s Suggestion, requested map[string]bool) error {
	if !requested[s.Name] {
		return fmt.Errorf("name %q was not requested", s.Name)
	}
	if !category.Lookup(s.Category).Valid() {
		return fmt.Errorf("%w: %q", ErrDisallowedCategory, s.Category)
	}
	return nil
}
