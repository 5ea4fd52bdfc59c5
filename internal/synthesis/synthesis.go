// Package synthesis turns the collected reviews into a single consensus
// summary with a verdict, by asking a designated synthesis model to
// cluster the reviews into agreement buckets. Semantic clustering is
// the model's job; this package owns the prompt, the fallback chain,
// and parsing the verdict out of whatever came back.
package synthesis

import (
	"context"

	"github.com/eden-eldith/trialhex/internal/review"
)

// Verdict is the overall recommendation extracted from the synthesis
type Verdict string

const (
	VerdictPass    Verdict = "PASS"
	VerdictRevise  Verdict = "REVISE"
	VerdictReject  Verdict = "REJECT"
	VerdictUnknown Verdict = "UNKNOWN"
)

// Star-rating dimensions produced by the specialist reviewer set
var RatingDimensions = []string{
	"Technical Quality",
	"Logical Coherence",
	"Ethical Alignment",
	"Feasibility",
	"Novelty",
}

// Result is the synthesis outcome. Raw always holds the model's full
// text; the structured fields are best-effort extractions from it.
type Result struct {
	// Raw is the synthesis text exactly as the model produced it
	Raw string

	// Verdict is the extracted overall recommendation
	Verdict Verdict

	// Ratings maps star dimensions to 1..5 (specialist set only,
	// sparse when the model skipped a dimension)
	Ratings map[string]int

	// Model is the model that produced the synthesis
	Model string

	// FormatWarning is set when no verdict token could be extracted.
	// The raw text is still kept and reported.
	FormatWarning bool

	// Skipped is set when too few reviews survived to synthesize
	Skipped bool

	// SkipReason explains a skip in report-ready prose
	SkipReason string
}

// Synthesizer is what the run pipeline depends on. Engine is the real
// implementation; tests substitute canned doubles.
type Synthesizer interface {
	Synthesize(ctx context.Context, set string, results []review.Result) (*Result, error)
}
