package synthesis

import (
	"fmt"
	"strings"

	"github.com/eden-eldith/trialhex/internal/registry"
	"github.com/eden-eldith/trialhex/internal/review"
)

const reviewSeparator = "\n\n---REVIEW---\n\n"

// standardSynthesisPrompt is the consensus-bucketing instruction for the
// traditional reviewer set
const standardSynthesisPrompt = `Synthesize these %d blind reviews into a single actionable summary.

OUTPUT FORMAT:
## High Consensus (4+ reviewers agree)
[Issues most reviewers flagged]

## Moderate Consensus (2-3 reviewers)
[Issues some reviewers noted]

## Minority Concerns (1 reviewer, but substantive)
[Individual concerns worth considering]

## Strengths (what reviewers praised)
[Positive feedback]

## VERDICT
PASS: Ready for publication with minor edits
REVISE: Needs significant revision, re-review recommended
REJECT: Fundamental issues need addressing

Remove any credentialism-based dismissals. Focus on substance.`

// plusSynthesisPrompt adds the specialist sections and star ratings
const plusSynthesisPrompt = `Synthesize these %d specialized blind reviews into a comprehensive actionable summary.

The reviewers include:
- 6 traditional academic reviewers (methodology, skeptic, constructive, accessibility, literature, reproducibility)
- 6 specialized philosophical/systems reviewers:
  - Logical Consistency Reviewer (Godelian analysis)
  - Semantic Analyst (Wittgensteinian language debugging)
  - Ethical Alignment Sentinel (bias and impact)
  - Systems Architect (feasibility and implementation)
  - Interdisciplinary Catalyst (cross-domain connections)
  - Steel Man Advocate (charitable strongest interpretation)

OUTPUT FORMAT:

## CRITICAL ISSUES (Consensus across multiple reviewers)
[Issues flagged by 4+ reviewers - these are blockers]

## SIGNIFICANT CONCERNS (2-3 reviewers)
[Important issues worth addressing]

## CONSIDERATIONS (Single reviewer, but substantive)
[Individual concerns that deserve thought]

## STRENGTHS (What reviewers praised)
[Positive consensus]

## LOGICAL/FORMAL ISSUES
[From the Logical Consistency Reviewer - Godelian concerns, self-reference issues]

## SEMANTIC CLARITY
[From the Semantic Analyst - ambiguous terms, language-game confusions]

## ETHICAL ASSESSMENT
[From the Ethical Alignment Sentinel - bias, impact, dual-use concerns]

## FEASIBILITY
[From the Systems Architect - can it be built?]

## INTERDISCIPLINARY CONNECTIONS
[From the Interdisciplinary Catalyst - missed connections, synthesis opportunities]

## STEEL MANNED VERSION
[From the Steel Man Advocate - the strongest form of the argument]

## VERDICT

**Technical Quality:** [1-5 stars]
**Logical Coherence:** [1-5 stars]
**Ethical Alignment:** [1-5 stars]
**Feasibility:** [1-5 stars]
**Novelty:** [1-5 stars]

**Overall:** PASS | REVISE | REJECT

**Priority Actions:**
1. [Most important fix]
2. [Second priority]
3. [Third priority]

Remove any credentialism-based dismissals. Focus on substance.`

// buildPrompt assembles the system and user messages for the synthesis
// call. Only reviews that actually exist go in: failed reviewers are
// named as absent so the model never fabricates a missing opinion.
func buildPrompt(set string, results []review.Result) (systemPrompt, userContent string) {
	var included []string
	var absent []string

	for _, r := range results {
		if r.Succeeded() {
			included = append(included, fmt.Sprintf("### %s\n%s", r.ReviewerName, r.Text))
		} else {
			absent = append(absent, r.ReviewerName)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(included, reviewSeparator))

	if len(absent) > 0 {
		fmt.Fprintf(&b, "\n\n---\n\nNote: the following reviewers did not return a review and are absent from the set above: %s. Do not invent opinions for them.",
			strings.Join(absent, ", "))
	}

	tmpl := standardSynthesisPrompt
	if set == registry.SetPlus {
		tmpl = plusSynthesisPrompt
	}

	return fmt.Sprintf(tmpl, len(included)), b.String()
}
