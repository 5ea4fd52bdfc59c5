// Package report renders the final review report as markdown. It is
// pure formatting over already-collected data: no network, no clock
// reads, no policy.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/eden-eldith/trialhex/internal/review"
	"github.com/eden-eldith/trialhex/internal/synthesis"
)

// Meta carries run-level facts stamped into the report header
type Meta struct {
	// DocumentName is the input file name (not the full path)
	DocumentName string

	// Date is when the run finished
	Date time.Time

	// Set is the reviewer set identifier used
	Set string

	// ReviewerCount is the total number of registered reviewers
	ReviewerCount int
}

// Assemble renders the full report. The reviews section always holds
// exactly one entry per reviewer in registry order; failed reviewers
// appear with their failure diagnostics rather than being dropped.
// syn may be nil when the synthesis call itself failed.
func Assemble(meta Meta, syn *synthesis.Result, results []review.Result) string {
	var b strings.Builder

	b.WriteString("# Trial by Hex Review\n\n")
	fmt.Fprintf(&b, "**Document:** %s\n", meta.DocumentName)
	fmt.Fprintf(&b, "**Date:** %s\n", meta.Date.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Verdict:** %s\n", verdictLabel(syn))
	fmt.Fprintf(&b, "**Reviewers:** %d (%s set), %d returned a review\n",
		meta.ReviewerCount, meta.Set, review.SuccessCount(results))

	if syn != nil && syn.FormatWarning {
		b.WriteString("**Note:** the synthesis did not follow the expected format; verdict could not be extracted.\n")
	}

	b.WriteString("\n---\n\n## Synthesized Review\n\n")
	b.WriteString(synthesisSection(syn))

	b.WriteString("\n\n---\n\n## Individual Reviews\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, r.ReviewerName)
		if r.Succeeded() {
			fmt.Fprintf(&b, "**Model:** %s\n\n", r.Model)
		} else {
			fmt.Fprintf(&b, "**Status:** FAILED (%s)\n", r.FailReason)
			if len(r.ModelsTried) > 0 {
				fmt.Fprintf(&b, "**Models tried:** %s\n", strings.Join(r.ModelsTried, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString(r.Text)
		b.WriteString("\n\n---\n\n")
	}

	return b.String()
}

// verdictLabel renders the header verdict line
func verdictLabel(syn *synthesis.Result) string {
	switch {
	case syn == nil:
		return "UNAVAILABLE (synthesis failed)"
	case syn.Skipped:
		return "UNAVAILABLE (synthesis skipped, low confidence)"
	case syn.Verdict == synthesis.VerdictUnknown:
		return "UNKNOWN"
	default:
		return string(syn.Verdict)
	}
}

// synthesisSection renders the synthesis body, or the degraded notice
// when no synthesis exists
func synthesisSection(syn *synthesis.Result) string {
	switch {
	case syn == nil:
		return "_Synthesis unavailable: every synthesis model failed. The individual reviews below are unsummarized._"
	case syn.Skipped:
		return fmt.Sprintf("_Synthesis skipped: %s._", syn.SkipReason)
	default:
		var b strings.Builder
		b.WriteString(syn.Raw)
		if len(syn.Ratings) > 0 {
			b.WriteString("\n\n**Extracted ratings:**\n")
			for _, dim := range synthesis.RatingDimensions {
				if stars, ok := syn.Ratings[dim]; ok {
					fmt.Fprintf(&b, "- %s: %d/5\n", dim, stars)
				}
			}
		}
		return b.String()
	}
}
