package worker

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/model"
)

// jitterClassifier echoes the record name after a random delay so chunks
// complete out of order
type jitterClassifier struct{}

func (jitterClassifier) Evaluate(rec model.Record, _ bool) classify.Outcome {
	time.Sleep(time.Duration(rand.Intn(200)) * time.Microsecond)
	return classify.Outcome{Result: classify.Result{Kind: classify.Unclassified, Name: rec.Name}}
}

func feed(ctx context.Context, chunks, size int) <-chan Chunk {
	ch := make(chan Chunk)
	go func() {
		defer close(ch)
		for seq := 0; seq < chunks; seq++ {
			recs := make([]model.Record, size)
			for i := range recs {
				recs[i] = model.Record{Name: fmt.Sprintf("row-%d", seq*size+i)}
			}
			select {
			case ch <- Chunk{Seq: seq, Records: recs}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func TestBatchProcessor_PreservesSourceOrder(t *testing.T) {
	ctx := context.Background()
	processor := NewBatchProcessor(jitterClassifier{}, 8, false)

	var names []string
	err := processor.Process(ctx, feed(ctx, 50, 7), func(cr *ChunkResult) error {
		for _, o := range cr.Outcomes {
			names = append(names, o.Result.Name)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(names) != 350 {
		t.Fatalf("expected 350 outcomes, got %d", len(names))
	}
	for i, name := range names {
		if want := fmt.Sprintf("row-%d", i); name != want {
			t.Fatalf("outcome %d = %q, want %q", i, name, want)
		}
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	ctx := context.Background()
	processor := NewBatchProcessor(jitterClassifier{}, 2, false)

	calls := 0
	err := processor.Process(ctx, feed(ctx, 0, 1), func(*ChunkResult) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if calls != 0 {
		t.Errorf("emit called %d times for no input", calls)
	}
}

func TestBatchProcessor_EmitErrorStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	processor := NewBatchProcessor(jitterClassifier{}, 4, false)

	boom := errors.New("disk full")
	seen := 0
	err := processor.Process(ctx, feed(ctx, 100, 3), func(*ChunkResult) error {
		seen++
		if seen == 5 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected emit error, got %v", err)
	}
	if seen != 5 {
		t.Errorf("emit called %d times after failing", seen)
	}
}

func TestBatchProcessor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	processor := NewBatchProcessor(jitterClassifier{}, 4, false)

	emitted := 0
	err := processor.Process(ctx, feed(ctx, 1000, 10), func(*ChunkResult) error {
		emitted++
		if emitted == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChunkJob_UsesClassifier(t *testing.T) {
	job := &ChunkJob{
		Chunk:      Chunk{Seq: 3, Records: []model.Record{{Name: "Cheddar"}, {Name: "cola"}}},
		Classifier: classify.New(),
		WithMeta:   true,
	}

	res := job.Execute(context.Background()).(*ChunkResult)
	if res.GetError() != nil {
		t.Fatalf("unexpected error: %v", res.GetError())
	}
	if res.Seq != 3 || len(res.Outcomes) != 2 {
		t.Fatalf("got seq %d with %d outcomes", res.Seq, len(res.Outcomes))
	}
	if res.Outcomes[0].Result.Name != "cheddar" || res.Outcomes[0].Meta == nil {
		t.Errorf("first outcome = %+v", res.Outcomes[0])
	}
}

func TestChunkResult_GetError(t *testing.T) {
	expected := errors.New("chunk failed")
	r := &ChunkResult{Seq: 1, Error: expected}
	if r.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r.GetError())
	}
}
