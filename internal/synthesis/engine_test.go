package synthesis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eden-eldith/trialhex/internal/openrouter"
	"github.com/eden-eldith/trialhex/internal/registry"
	"github.com/eden-eldith/trialhex/internal/review"
)

func successResult(id, name, text string) review.Result {
	return review.Result{
		ReviewerID:   id,
		ReviewerName: name,
		Model:        "some/model",
		Status:       review.StatusSuccess,
		Text:         text,
	}
}

func failedResult(id, name string) review.Result {
	return review.Result{
		ReviewerID:   id,
		ReviewerName: name,
		Status:       review.StatusFailed,
		FailReason:   review.ReasonExhausted,
		Text:         "Review unavailable: every model in the fallback chain failed.",
	}
}

func TestSynthesize_PromptContainsOnlySuccessfulReviews(t *testing.T) {
	var gotSystem, gotUser string
	caller := &openrouter.MockCaller{
		CallFunc: func(ctx context.Context, model, sys, user string) (*openrouter.Attempt, error) {
			gotSystem = sys
			gotUser = user
			return &openrouter.Attempt{Model: model, Outcome: openrouter.OutcomeSuccess, Content: "## VERDICT\nPASS"}, nil
		},
	}

	results := []review.Result{
		successResult("a", "Methodology Reviewer", "solid methods section"),
		failedResult("b", "Harsh Skeptic"),
		successResult("c", "Literature Reviewer", "cites the right prior work"),
	}

	res, err := NewEngine(caller).Synthesize(context.Background(), registry.SetStandard, results)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Contains(t, gotUser, "### Methodology Reviewer")
	assert.Contains(t, gotUser, "solid methods section")
	assert.Contains(t, gotUser, "### Literature Reviewer")

	// The failed reviewer is named as absent, and its placeholder text
	// never leaks into the material being synthesized.
	assert.Contains(t, gotUser, "Harsh Skeptic")
	assert.Contains(t, gotUser, "did not return a review")
	assert.NotContains(t, gotUser, "Review unavailable")

	// Prompt states the real review count and the bucketing thresholds
	assert.Contains(t, gotSystem, "these 2 blind reviews")
	assert.Contains(t, gotSystem, "4+ reviewers")
	assert.Contains(t, gotSystem, "2-3 reviewers")
}

func TestSynthesize_PlusSetUsesSpecialistPromptAndRatings(t *testing.T) {
	raw := `## VERDICT

**Technical Quality:** 4/5
**Logical Coherence:** ★★★
**Ethical Alignment:** 5 stars
**Feasibility:** 2/5
**Novelty:** 4/5

**Overall:** REVISE`

	var gotSystem string
	caller := &openrouter.MockCaller{
		CallFunc: func(ctx context.Context, model, sys, user string) (*openrouter.Attempt, error) {
			gotSystem = sys
			return &openrouter.Attempt{Model: model, Outcome: openrouter.OutcomeSuccess, Content: raw}, nil
		},
	}

	results := []review.Result{
		successResult("a", "A", "x"),
		successResult("b", "B", "y"),
	}

	res, err := NewEngine(caller).Synthesize(context.Background(), registry.SetPlus, results)
	require.NoError(t, err)

	assert.Contains(t, gotSystem, "Steel Man Advocate")
	assert.Equal(t, VerdictRevise, res.Verdict)
	assert.False(t, res.FormatWarning)
	assert.Equal(t, map[string]int{
		"Technical Quality": 4,
		"Logical Coherence": 3,
		"Ethical Alignment": 5,
		"Feasibility":       2,
		"Novelty":           4,
	}, res.Ratings)
}

func TestSynthesize_QuorumNotMetSkips(t *testing.T) {
	caller := &openrouter.MockCaller{
		CallFunc: func(ctx context.Context, model, sys, user string) (*openrouter.Attempt, error) {
			t.Fatal("no model call should happen below quorum")
			return nil, nil
		},
	}

	results := []review.Result{
		successResult("a", "A", "x"),
		failedResult("b", "B"),
		failedResult("c", "C"),
	}

	res, err := NewEngine(caller).Synthesize(context.Background(), registry.SetStandard, results)
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Contains(t, res.SkipReason, "1 of 3")
	assert.Contains(t, res.SkipReason, "low confidence")
	assert.Equal(t, VerdictUnknown, res.Verdict)
}

func TestSynthesize_FallsThroughChain(t *testing.T) {
	var calls []string
	caller := &openrouter.MockCaller{
		CallFunc: func(ctx context.Context, model, sys, user string) (*openrouter.Attempt, error) {
			calls = append(calls, model)
			if len(calls) < 2 {
				err := &openrouter.CallError{Model: model, StatusCode: 500, Retryable: true}
				return &openrouter.Attempt{Model: model, Outcome: openrouter.OutcomeRetryable, Err: err}, err
			}
			return &openrouter.Attempt{Model: model, Outcome: openrouter.OutcomeSuccess, Content: "PASS"}, nil
		},
	}

	e := NewEngine(caller, WithChain([]string{"first", "second", "third"}))
	res, err := e.Synthesize(context.Background(), registry.SetStandard,
		[]review.Result{successResult("a", "A", "x"), successResult("b", "B", "y")})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "second", res.Model)
	assert.Equal(t, VerdictPass, res.Verdict)
}

func TestSynthesize_ChainExhaustedReturnsError(t *testing.T) {
	boom := errors.New("all down")
	caller := &openrouter.MockCaller{
		CallFunc: func(ctx context.Context, model, sys, user string) (*openrouter.Attempt, error) {
			return &openrouter.Attempt{Model: model, Outcome: openrouter.OutcomeFatal, Err: boom}, boom
		},
	}

	e := NewEngine(caller, WithChain([]string{"a", "b"}))
	_, err := e.Synthesize(context.Background(), registry.SetStandard,
		[]review.Result{successResult("a", "A", "x"), successResult("b", "B", "y")})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestSynthesize_UnparseableVerdictSetsFormatWarning(t *testing.T) {
	caller := &openrouter.MockCaller{
		CallFunc: func(ctx context.Context, model, sys, user string) (*openrouter.Attempt, error) {
			return &openrouter.Attempt{Model: model, Outcome: openrouter.OutcomeSuccess,
				Content: "The work shows promise but the summary got cut off mid"}, nil
		},
	}

	res, err := NewEngine(caller).Synthesize(context.Background(), registry.SetStandard,
		[]review.Result{successResult("a", "A", "x"), successResult("b", "B", "y")})
	require.NoError(t, err)

	assert.True(t, res.FormatWarning)
	assert.Equal(t, VerdictUnknown, res.Verdict)
	assert.Contains(t, res.Raw, "shows promise")
}

func TestSynthesize_DefaultChainIsOpusFirst(t *testing.T) {
	e := NewEngine(&openrouter.MockCaller{})
	assert.Equal(t, registry.SynthesisChain(), e.chain)
	assert.Equal(t, "anthropic/claude-opus-4.5", e.chain[0])
}
