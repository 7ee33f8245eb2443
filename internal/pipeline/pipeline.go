package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ppiankov/pantrymap/internal/artifact"
	"github.com/ppiankov/pantrymap/internal/cache"
	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/database"
	"github.com/ppiankov/pantrymap/internal/model"
	"github.com/ppiankov/pantrymap/internal/report"
	"github.com/ppiankov/pantrymap/internal/source"
	"github.com/ppiankov/pantrymap/internal/store"
	"github.com/ppiankov/pantrymap/internal/worker"
)

// ErrSourceUnavailable is returned when the bulk export cannot be opened.
// No rows have been processed when it is returned.
var ErrSourceUnavailable = errors.New("source unavailable")

// DownloadHint is where the bulk export can be obtained
const DownloadHint = "https://world.openfoodfacts.org/data"

// Pipeline runs one build: source → classifier → accumulator → artifacts
type Pipeline struct {
	classifier *classify.Classifier
	memo       *cache.MemoryCache
	config     *model.Config
	logger     *slog.Logger
}

// NewPipeline creates a pipeline over the built-in rule tables
func NewPipeline(cfg *model.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	memo := cache.NewMemoryCache(cfg.Run.MemoTTL, 10*time.Minute)
	return &Pipeline{
		classifier: classify.New(classify.WithMemo(memo)),
		memo:       memo,
		config:     cfg,
		logger:     logger,
	}
}

// RunResult is the in-memory outcome of a run, before artifacts are written
type RunResult struct {
	Acc    *classify.Accumulator
	Report *model.Report
}

// Run classifies every row of the configured source. With more than one
// worker, rows are classified in chunks concurrently and applied in source
// order, so the result is identical to a sequential run.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	in := p.config.Input
	reader, err := source.Open(in.Path, in.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (download it from %s): %w", ErrSourceUnavailable, in.Path, DownloadHint, err)
	}
	defer func() { _ = reader.Close() }()

	if missing := reader.Missing(); len(missing) > 0 {
		p.logger.Warn("source is missing columns, treating them as empty", "columns", missing)
	}

	rep := &model.Report{
		RunID:     uuid.NewString(),
		Source:    in.Path,
		StartedAt: time.Now().UTC(),
		Workers:   p.config.Run.Workers,
	}
	p.logger.Info("classifying", "run_id", rep.RunID, "source", in.Path, "workers", rep.Workers)

	acc := classify.NewAccumulator(p.config.Output.Meta)
	prog := &progress{logger: p.logger, acc: acc}
	if n := p.config.Run.ProgressEvery; n > 0 {
		prog.every = &rate.Sometimes{Every: n}
	}

	if p.config.Run.Workers > 1 {
		err = p.runParallel(ctx, reader, acc, prog)
	} else {
		err = p.runSequential(ctx, reader, acc, prog)
	}
	if err != nil {
		return nil, err
	}

	rep.FinishedAt = time.Now().UTC()
	rep.Rows = prog.rows
	rep.Counts = acc.Counts()
	rep.Distribution = acc.Distribution()
	rep.DecidedBy = acc.DecidedBy()
	rep.FilterReasons = acc.FilterReasons()
	rep.TopUnclassified = acc.TopUnclassified(p.config.Output.TopUnknown)
	rep.Entries = len(acc.Categories())
	rep.MetaEntries = len(acc.Meta())

	hits, misses := p.memo.Stats()
	p.logger.Debug("name memo", "hits", hits, "misses", misses, "entries", p.memo.Len())

	return &RunResult{Acc: acc, Report: rep}, nil
}

func (p *Pipeline) runSequential(ctx context.Context, reader *source.Reader, acc *classify.Accumulator, prog *progress) error {
	withMeta := p.config.Output.Meta
	for {
		if prog.rows%4096 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		rec, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		acc.Apply(p.classifier.Evaluate(rec, withMeta))
		prog.tick()
	}
}

func (p *Pipeline) runParallel(ctx context.Context, reader *source.Reader, acc *classify.Accumulator, prog *progress) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	chunks := make(chan worker.Chunk)
	readErr := make(chan error, 1)
	size := p.config.Run.ChunkSize

	go func() {
		defer close(chunks)
		seq := 0
		for {
			recs := make([]model.Record, 0, size)
			var err error
			for len(recs) < size {
				var rec model.Record
				rec, err = reader.Next()
				if err != nil {
					break
				}
				recs = append(recs, rec)
			}
			if len(recs) > 0 {
				select {
				case chunks <- worker.Chunk{Seq: seq, Records: recs}:
					seq++
				case <-ctx.Done():
					readErr <- nil
					return
				}
			}
			if err == io.EOF {
				readErr <- nil
				return
			}
			if err != nil {
				readErr <- fmt.Errorf("read source: %w", err)
				cancel()
				return
			}
		}
	}()

	processor := worker.NewBatchProcessor(p.classifier, p.config.Run.Workers, p.config.Output.Meta)
	procErr := processor.Process(ctx, chunks, func(cr *worker.ChunkResult) error {
		for _, o := range cr.Outcomes {
			acc.Apply(o)
			prog.tick()
		}
		return nil
	})
	cancel()

	if err := <-readErr; err != nil {
		return err
	}
	return procErr
}

// progress reports throughput while the accumulator goroutine applies rows
type progress struct {
	logger *slog.Logger
	acc    *classify.Accumulator
	every  *rate.Sometimes
	rows   int
}

func (pr *progress) tick() {
	pr.rows++
	if pr.every == nil {
		return
	}
	pr.every.Do(func() {
		if pr.rows == 1 {
			return
		}
		c := pr.acc.Counts()
		pr.logger.Info("progress", "rows", pr.rows, "classified", c.Classified, "filtered", c.Filtered)
	})
}

// WriteArtifacts writes every configured output for res and records them in
// its report. Nothing is written once ctx is cancelled.
func (p *Pipeline) WriteArtifacts(ctx context.Context, res *RunResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run aborted, no artifacts written: %w", err)
	}
	out := p.config.Output

	art, err := artifact.WriteCategories(filepath.Join(out.Dir, out.CategoryFile), res.Acc.Categories())
	if err != nil {
		return fmt.Errorf("write categories: %w", err)
	}
	res.Report.Artifacts = append(res.Report.Artifacts, art)
	p.logger.Info("wrote artifact", "path", art.Path, "entries", art.Entries, "bytes", art.Bytes)

	if out.Meta {
		art, err := artifact.WriteMeta(filepath.Join(out.Dir, out.MetaFile), res.Acc.Meta())
		if err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
		res.Report.Artifacts = append(res.Report.Artifacts, art)
		p.logger.Info("wrote artifact", "path", art.Path, "entries", art.Entries, "bytes", art.Bytes)
	}

	if out.SQLite != "" {
		if err := p.writeSQLite(ctx, out.SQLite, res); err != nil {
			return err
		}
	}

	if out.XLSX != "" {
		if err := report.WriteXLSX(out.XLSX, res.Report); err != nil {
			return fmt.Errorf("write xlsx report: %w", err)
		}
		res.Report.Artifacts = append(res.Report.Artifacts, fileArtifact("xlsx", out.XLSX, res.Report.Entries))
	}

	// the JSON report goes last so it lists every other output
	if out.ReportJSON != "" {
		if err := report.WriteJSON(out.ReportJSON, res.Report); err != nil {
			return err
		}
		p.logger.Info("wrote run report", "path", out.ReportJSON)
	}
	return nil
}

func fileArtifact(kind, path string, entries int) model.Artifact {
	art := model.Artifact{Kind: kind, Path: path, Entries: entries}
	if info, err := os.Stat(path); err == nil {
		art.Bytes = info.Size()
	}
	return art
}

func (p *Pipeline) writeSQLite(ctx context.Context, path string, res *RunResult) error {
	db, err := database.Open(path)
	if err != nil {
		return fmt.Errorf("open sqlite export: %w", err)
	}
	defer func() { _ = db.Close() }()

	snap := store.Snapshot{
		Categories: res.Acc.Categories(),
		Meta:       res.Acc.Meta(),
		Report:     res.Report,
	}
	if err := store.NewIngredientStore(db).Replace(ctx, snap); err != nil {
		return fmt.Errorf("write sqlite export: %w", err)
	}

	entries := len(snap.Categories)
	res.Report.Artifacts = append(res.Report.Artifacts, fileArtifact("sqlite", path, entries))
	p.logger.Info("wrote sqlite export", "path", path, "entries", entries)
	return nil
}
