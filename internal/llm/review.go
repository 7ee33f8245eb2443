package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ppiankov/pantrymap/internal/cache"
	"github.com/ppiankov/pantrymap/internal/model"
)

// DefaultBatchSize is how many names go into one model request
const DefaultBatchSize = 25

// Review is the advisory output of one review run. It is written next to,
// never into, the artifacts.
type Review struct {
	Provider    string         `json:"provider"`
	Model       string         `json:"model"`
	RunID       string         `json:"run_id,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
	Suggestions []ReviewedName `json:"suggestions"`
	Rejected    []Rejection    `json:"rejected,omitempty"`
	Unanswered  []string       `json:"unanswered,omitempty"`
	TokensUsed  int            `json:"tokens_used"`
}

// ReviewedName is an accepted suggestion with the name's frequency
type ReviewedName struct {
	Suggestion
	Count  int  `json:"count"`
	Cached bool `json:"cached,omitempty"`
}

// Reviewer sends unclassified names to a provider, remembering answers in a
// cache keyed by model and name
type Reviewer struct {
	provider  Provider
	cache     cache.Cache
	model     string
	batchSize int
}

// NewReviewer creates a reviewer. c may be nil to disable caching.
func NewReviewer(p Provider, c cache.Cache, model string) *Reviewer {
	return &Reviewer{provider: p, cache: c, model: model, batchSize: DefaultBatchSize}
}

// Review asks for a category for each name, in the order given
func (r *Reviewer) Review(ctx context.Context, names []model.NameCount) (*Review, error) {
	out := &Review{
		Provider:    r.provider.Name(),
		Model:       r.model,
		GeneratedAt: time.Now().UTC(),
	}

	answers := make(map[string]ReviewedName, len(names))
	var pending []string
	for _, nc := range names {
		if s, ok := r.cached(nc.Name); ok {
			answers[nc.Name] = ReviewedName{Suggestion: s, Cached: true}
			continue
		}
		pending = append(pending, nc.Name)
	}

	for start := 0; start < len(pending); start += r.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+r.batchSize, len(pending))
		batch := pending[start:end]

		resp, err := r.provider.Suggest(ctx, SuggestRequest{Names: batch, Model: r.model})
		if err != nil {
			return nil, fmt.Errorf("review names %d-%d: %w", start+1, end, err)
		}
		if resp.Model != "" {
			out.Model = resp.Model
		}
		out.TokensUsed += resp.TokensUsed
		out.Rejected = append(out.Rejected, resp.Rejected...)
		for _, s := range resp.Suggestions {
			answers[s.Name] = ReviewedName{Suggestion: s}
			r.remember(s)
		}
		slog.Debug("review batch done", "names", len(batch), "accepted", len(resp.Suggestions), "rejected", len(resp.Rejected))
	}

	out.Suggestions = make([]ReviewedName, 0, len(answers))
	for _, nc := range names {
		a, ok := answers[nc.Name]
		if !ok {
			out.Unanswered = append(out.Unanswered, nc.Name)
			continue
		}
		a.Count = nc.Count
		out.Suggestions = append(out.Suggestions, a)
	}
	return out, nil
}

func (r *Reviewer) cached(name string) (Suggestion, bool) {
	if r.cache == nil {
		return Suggestion{}, false
	}
	data, ok := r.cache.Get(cache.ReviewKey(r.model, name))
	if !ok {
		return Suggestion{}, false
	}
	var s Suggestion
	if err := json.Unmarshal(data, &s); err != nil || s.Name != name {
		return Suggestion{}, false
	}
	return s, true
}

func (r *Reviewer) remember(s Suggestion) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := r.cache.Set(cache.ReviewKey(r.model, s.Name), data, 0); err != nil {
		slog.Warn("failed to cache review answer", "name", s.Name, "error", err)
	}
}

// WriteReview writes a review as indented JSON
func WriteReview(path string, rv *Review) error {
	data, err := json.MarshalIndent(rv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write review: %w", err)
	}
	return nil
}
