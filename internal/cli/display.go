package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/eden-eldith/trialhex/internal/review"
	"github.com/eden-eldith/trialhex/internal/synthesis"
)

// timeNow is swapped in tests for deterministic report dates
var timeNow = time.Now

// printSummary writes the post-run summary to w
func printSummary(w io.Writer, outputPath string, syn *synthesis.Result, results []review.Result) {
	succeeded := review.SuccessCount(results)

	fmt.Fprintf(w, "\nReview saved to: %s\n", outputPath)
	fmt.Fprintf(w, "Reviews collected: %d/%d\n", succeeded, len(results))

	for _, r := range results {
		if !r.Succeeded() {
			fmt.Fprintf(w, "  %s: no review (%s)\n", r.ReviewerName, r.FailReason)
		}
	}

	switch {
	case syn == nil:
		fmt.Fprintln(w, "Verdict: unavailable (synthesis failed)")
	case syn.Skipped:
		fmt.Fprintln(w, "Verdict: unavailable (synthesis skipped, low confidence)")
	case syn.FormatWarning:
		fmt.Fprintln(w, "Verdict: unknown (synthesis did not follow the expected format)")
	default:
		fmt.Fprintf(w, "Verdict: %s\n", syn.Verdict)
	}
}
