package review

import (
	"errors"
	"fmt"

	"github.com/eden-eldith/trialhex/internal/registry"
)

// ErrEmptyRegistry signals a configuration error: a run over zero
// reviewers is meaningless and must abort before any network call
var ErrEmptyRegistry = errors.New("reviewer registry is empty")

// Collect reassembles dispatcher output into the registry's declared
// order, regardless of the order tasks completed in. This keeps report
// layout reproducible under arbitrary network timing. The returned
// slice contains exactly one entry per registered reviewer.
func Collect(specs []registry.ReviewerSpec, results []Result) ([]Result, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyRegistry
	}

	byID := make(map[string]Result, len(results))
	for _, r := range results {
		byID[r.ReviewerID] = r
	}

	ordered := make([]Result, 0, len(specs))
	for _, spec := range specs {
		r, ok := byID[spec.ID]
		if !ok {
			return nil, fmt.Errorf("missing result for reviewer %q", spec.ID)
		}
		ordered = append(ordered, r)
	}

	return ordered, nil
}

// SuccessCount reports how many reviewers produced a review
func SuccessCount(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Succeeded() {
			n++
		}
	}
	return n
}
