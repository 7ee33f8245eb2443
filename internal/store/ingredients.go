// Package store persists a build run into the SQLite export.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

// IngredientStore reads and replaces the exported ingredient tables
type IngredientStore struct {
	db *sql.DB
}

// NewIngredientStore creates a store over an opened database
func NewIngredientStore(db *sql.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

// Snapshot is everything one build run persists
type Snapshot struct {
	Categories map[string]category.ID
	Meta       map[string]model.Metadata // nil when metadata was not built
	Report     *model.Report             // optional
}

const insertIngredient = `INSERT INTO ingredients
	(name, category, vegan, vegetarian, allergens, kcal, protein, carbs, fat, fiber, sodium)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Replace swaps the exported contents for snap in a single transaction.
// Rows are inserted in name order so the file layout is reproducible.
func (s *IngredientStore) Replace(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients`); err != nil {
		return fmt.Errorf("clear ingredients: %w", err)
	}
	if err := syncCategories(ctx, tx); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertIngredient)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	names := make([]string, 0, len(snap.Categories))
	for name := range snap.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		id := snap.Categories[name]
		if !id.Valid() {
			return fmt.Errorf("ingredient %q: refusing category %s", name, id)
		}
		var meta model.Metadata
		if m, ok := snap.Meta[name]; ok {
			meta = m
		}
		_, err := stmt.ExecContext(ctx, name, int(id),
			meta.Vegan, meta.Vegetarian, nullString(meta.Allergens),
			meta.Kcal, meta.Protein, meta.Carbs, meta.Fat, meta.Fiber, meta.Sodium)
		if err != nil {
			return fmt.Errorf("insert ingredient %q: %w", name, err)
		}
	}

	if snap.Report != nil {
		if err := insertRun(ctx, tx, snap.Report); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func syncCategories(ctx context.Context, tx *sql.Tx) error {
	for _, id := range category.All() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (ordinal, name) VALUES (?, ?)
			 ON CONFLICT(ordinal) DO UPDATE SET name = excluded.name`,
			int(id), id.String())
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", id, err)
		}
	}
	return nil
}

func insertRun(ctx context.Context, tx *sql.Tx, r *model.Report) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, started_at, finished_at, rows_read, classified, unclassified, filtered)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Source, r.StartedAt.UTC(), r.FinishedAt.UTC(), r.Rows,
		r.Counts.Classified, r.Counts.Unclassified, r.Counts.Filtered)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

const ingredientCols = `name, category, vegan, vegetarian, allergens, kcal, protein, carbs, fat, fiber, sodium`

func scanIngredient(scanner interface{ Scan(...any) error }) (*model.Ingredient, error) {
	var (
		ing       model.Ingredient
		ordinal   int
		meta      model.Metadata
		allergens sql.NullString
		kcal      sql.NullInt64
		protein   sql.NullFloat64
		carbs     sql.NullFloat64
		fat       sql.NullFloat64
		fiber     sql.NullFloat64
		sodium    sql.NullFloat64
	)
	err := scanner.Scan(&ing.Name, &ordinal, &meta.Vegan, &meta.Vegetarian, &allergens,
		&kcal, &protein, &carbs, &fat, &fiber, &sodium)
	if err != nil {
		return nil, err
	}

	id := category.ID(ordinal)
	ing.Ordinal = uint8(id)
	ing.Category = id.String()

	meta.Category = uint8(id)
	meta.Allergens = allergens.String
	if kcal.Valid {
		meta.Kcal = &kcal.Int64
	}
	meta.Protein = floatPtr(protein)
	meta.Carbs = floatPtr(carbs)
	meta.Fat = floatPtr(fat)
	meta.Fiber = floatPtr(fiber)
	meta.Sodium = floatPtr(sodium)
	if meta != (model.Metadata{Category: meta.Category}) {
		ing.Meta = &meta
	}
	return &ing, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// Get returns one ingredient by normalized name, or nil when absent
func (s *IngredientStore) Get(ctx context.Context, name string) (*model.Ingredient, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ingredientCols+` FROM ingredients WHERE name = ?`, name)
	ing, err := scanIngredient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return ing, nil
}

// Count returns the number of exported ingredients
func (s *IngredientStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingredients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ingredients: %w", err)
	}
	return n, nil
}

// Distribution counts ingredients per category in ordinal order, omitting
// empty categories
func (s *IngredientStore) Distribution(ctx context.Context) ([]model.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.ordinal, c.name, COUNT(i.name)
		 FROM categories c JOIN ingredients i ON i.category = c.ordinal
		 GROUP BY c.ordinal, c.name ORDER BY c.ordinal`)
	if err != nil {
		return nil, fmt.Errorf("distribution: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.CategoryCount
	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.Ordinal, &cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// Run is a persisted build run summary
type Run struct {
	ID           string
	Source       string
	StartedAt    time.Time
	FinishedAt   time.Time
	Rows         int
	Classified   int
	Unclassified int
	Filtered     int
}

// LatestRun returns the most recently finished run, or nil when none exist
func (s *IngredientStore) LatestRun(ctx context.Context) (*Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, started_at, finished_at, rows_read, classified, unclassified, filtered
		 FROM runs ORDER BY finished_at DESC LIMIT 1`).
		Scan(&r.ID, &r.Source, &r.StartedAt, &r.FinishedAt, &r.Rows, &r.Classified, &r.Unclassified, &r.Filtered)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return &r, nil
}
