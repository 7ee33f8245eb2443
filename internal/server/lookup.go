package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/pantrymap/internal/artifact"
	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
	"github.com/ppiankov/pantrymap/internal/store"
)

// Lookup resolves normalized names to built ingredients.
// *store.IngredientStore satisfies it for SQLite exports.
type Lookup interface {
	Get(ctx context.Context, name string) (*model.Ingredient, error)
	Count(ctx context.Context) (int, error)
	Distribution(ctx context.Context) ([]model.CategoryCount, error)
}

// RunHistory is implemented by lookups that know which build produced them
type RunHistory interface {
	LatestRun(ctx context.Context) (*store.Run, error)
}

// ArtifactIndex serves lookups from the gzip JSON artifacts held in memory
type ArtifactIndex struct {
	categories map[string]category.ID
	meta       map[string]model.Metadata
}

// LoadArtifactIndex reads the category artifact and, when metaPath is set
// and exists, the metadata artifact
func LoadArtifactIndex(categoryPath, metaPath string) (*ArtifactIndex, error) {
	cats, err := artifact.ReadCategories(categoryPath)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	idx := &ArtifactIndex{categories: cats}

	if metaPath != "" {
		meta, err := artifact.ReadMeta(metaPath)
		switch {
		case errors.Is(err, artifact.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("load metadata: %w", err)
		default:
			idx.meta = meta
		}
	}
	return idx, nil
}

// NewArtifactIndex wraps already loaded mappings
func NewArtifactIndex(categories map[string]category.ID, meta map[string]model.Metadata) *ArtifactIndex {
	return &ArtifactIndex{categories: categories, meta: meta}
}

// Get returns the ingredient for name, or nil when it is not in the artifact
func (a *ArtifactIndex) Get(_ context.Context, name string) (*model.Ingredient, error) {
	id, ok := a.categories[name]
	if !ok {
		return nil, nil
	}
	ing := &model.Ingredient{Name: name, Ordinal: uint8(id), Category: id.String()}
	if m, ok := a.meta[name]; ok {
		ing.Meta = &m
	}
	return ing, nil
}

// Count returns the number of entries
func (a *ArtifactIndex) Count(context.Context) (int, error) {
	return len(a.categories), nil
}

// Distribution counts entries per category in ordinal order, omitting empty
// categories
func (a *ArtifactIndex) Distribution(context.Context) ([]model.CategoryCount, error) {
	counts := make([]int, category.Count)
	for _, id := range a.categories {
		if int(id) < len(counts) {
			counts[id]++
		}
	}
	var out []model.CategoryCount
	for _, id := range category.All() {
		if n := counts[id]; n > 0 {
			out = append(out, model.CategoryCount{Ordinal: int(id), Category: id.String(), Count: n})
		}
	}
	return out, nil
}
