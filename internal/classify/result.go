package classify

import (
	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

// Kind is the terminal outcome of classifying one record
type Kind int

const (
	Filtered Kind = iota
	Unclassified
	Classified
)

func (k Kind) String() string {
	switch k {
	case Classified:
		return "classified"
	case Unclassified:
		return "unclassified"
	default:
		return "filtered"
	}
}

// Source names the input that decided a classification
type Source int

const (
	SourceNone Source = iota
	SourceName
	SourcePrimary
	SourceTags
)

func (s Source) String() string {
	switch s {
	case SourceName:
		return "name"
	case SourcePrimary:
		return "primary"
	case SourceTags:
		return "tags"
	default:
		return "none"
	}
}

// Reasons attached to filtered and unclassified results
const (
	ReasonShortName = "short_name"
	ReasonNoMatch   = "no_match"
	ReasonUnknown   = "unknown"
)

// Result is the tagged outcome for one record. Category and Rule are only
// meaningful when Kind is Classified.
type Result struct {
	Kind     Kind
	Name     string // normalized name, the mapping key
	Category category.ID
	Source   Source
	Rule     int
	Reason   string
}

// Outcome is a Result plus the metadata built for it, if requested
type Outcome struct {
	Result Result
	Meta   *model.Metadata
}

// verdictState is the three-valued state of a resolution attempt
type verdictState int

const (
	undetermined verdictState = iota
	resolved
	explicitlyUnknown
)

type verdict struct {
	state    verdictState
	category category.ID
	source   Source
	rule     int
}

func verdictFor(id category.ID, source Source, rule int) verdict {
	if !id.Valid() {
		return verdict{state: explicitlyUnknown, category: category.Unknown, source: source, rule: rule}
	}
	return verdict{state: resolved, category: id, source: source, rule: rule}
}
