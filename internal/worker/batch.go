package worker

import (
	"context"
	"fmt"

	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/model"
)

// Chunk is a contiguous run of source rows. Seq numbers chunks from zero in
// source order.
type Chunk struct {
	Seq     int
	Records []model.Record
}

// Classifier decides outcomes for records
type Classifier interface {
	Evaluate(rec model.Record, withMeta bool) classify.Outcome
}

// ChunkJob classifies every record of one chunk
type ChunkJob struct {
	Chunk      Chunk
	Classifier Classifier
	WithMeta   bool
}

// Execute classifies the chunk. Cancellation abandons the remaining rows.
func (j *ChunkJob) Execute(ctx context.Context) Result {
	outcomes := make([]classify.Outcome, 0, len(j.Chunk.Records))
	for i, rec := range j.Chunk.Records {
		if i%1024 == 0 && ctx.Err() != nil {
			return &ChunkResult{Seq: j.Chunk.Seq, Error: ctx.Err()}
		}
		outcomes = append(outcomes, j.Classifier.Evaluate(rec, j.WithMeta))
	}
	return &ChunkResult{Seq: j.Chunk.Seq, Outcomes: outcomes}
}

// ChunkResult holds the outcomes of one chunk, in row order
type ChunkResult struct {
	Seq      int
	Outcomes []classify.Outcome
	Error    error
}

// GetError returns the error from the chunk result
func (r *ChunkResult) GetError() error {
	return r.Error
}

// BatchProcessor classifies chunks concurrently and hands the results back
// in chunk sequence order, so the consumer observes exactly the sequential
// row order.
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
	withMeta    bool
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(classifier Classifier, concurrency int, withMeta bool) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{
		classifier:  classifier,
		concurrency: concurrency,
		withMeta:    withMeta,
	}
}

// Process consumes chunks until the channel closes and calls emit once per
// chunk in sequence order. The chunk producer must close chunks and stop
// sending when ctx is done. In-flight chunks are bounded so a slow chunk
// cannot make the reorder buffer grow without limit.
func (b *BatchProcessor) Process(ctx context.Context, chunks <-chan Chunk, emit func(*ChunkResult) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	slots := make(chan struct{}, b.concurrency*4)
	go func() {
		defer pool.Close()
		for {
			var chunk Chunk
			select {
			case c, ok := <-chunks:
				if !ok {
					return
				}
				chunk = c
			case <-ctx.Done():
				return
			}
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				return
			}
			job := &ChunkJob{Chunk: chunk, Classifier: b.classifier, WithMeta: b.withMeta}
			if !pool.Submit(job) {
				return
			}
		}
	}()

	reorder := NewReorder[*ChunkResult]()
	var firstErr error
	for res := range pool.Results() {
		if firstErr != nil {
			continue
		}
		cr := res.(*ChunkResult)
		if err := cr.GetError(); err != nil {
			firstErr = fmt.Errorf("chunk %d: %w", cr.Seq, err)
			cancel()
			continue
		}
		for _, ready := range reorder.Push(cr.Seq, cr) {
			<-slots
			if err := emit(ready); err != nil {
				firstErr = err
				cancel()
				break
			}
		}
	}

	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if n := reorder.Pending(); n > 0 {
		return fmt.Errorf("%d chunks arrived after a missing chunk %d", n, reorder.Next())
	}
	return nil
}
