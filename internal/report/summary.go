// Package report renders the diagnostic summary of a build run.
package report

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ppiankov/pantrymap/internal/model"
)

const rule = "═══════════════════════════════════════════════════════════"

// WriteSummary prints the human-readable run summary
func WriteSummary(w io.Writer, r *model.Report) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "\n")
	p.Fprintf(w, "%s\n", rule)
	p.Fprintf(w, "  Build Complete\n")
	p.Fprintf(w, "%s\n", rule)
	p.Fprintf(w, "\n")
	p.Fprintf(w, "  Run:          %s\n", r.RunID)
	p.Fprintf(w, "  Source:       %s\n", r.Source)
	p.Fprintf(w, "  Rows:         %d\n", r.Rows)
	p.Fprintf(w, "  Duration:     %s\n", r.Duration().Round(time.Millisecond))
	p.Fprintf(w, "\n")
	p.Fprintf(w, "  Classified:   %d\n", r.Counts.Classified)
	p.Fprintf(w, "  Unclassified: %d  (left out, never defaulted)\n", r.Counts.Unclassified)
	p.Fprintf(w, "  Filtered out: %d\n", r.Counts.Filtered)

	if len(r.DecidedBy) > 0 {
		p.Fprintf(w, "\n  Decided by:\n")
		for _, src := range []string{"name", "primary", "tags"} {
			if n := r.DecidedBy[src]; n > 0 {
				p.Fprintf(w, "    %12s: %9d\n", src, n)
			}
		}
	}

	if len(r.Distribution) > 0 {
		p.Fprintf(w, "\n  Category distribution:\n")
		for _, cc := range r.Distribution {
			p.Fprintf(w, "    %12s: %9d\n", cc.Category, cc.Count)
		}
	}

	if len(r.Artifacts) > 0 {
		p.Fprintf(w, "\n")
		for _, a := range r.Artifacts {
			p.Fprintf(w, "  Wrote %s (%s, %d entries)\n", a.Path, humanBytes(a.Bytes), a.Entries)
		}
	}
	p.Fprintf(w, "\n")
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.0f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
