package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Standard(t *testing.T) {
	specs, err := Set(SetStandard)
	require.NoError(t, err)
	require.Len(t, specs, 6)

	// Declared order is stable
	assert.Equal(t, "methodology", specs[0].ID)
	assert.Equal(t, "reproducibility", specs[5].ID)

	for _, s := range specs {
		assert.NotEmpty(t, s.Name, "reviewer %s", s.ID)
		assert.NotEmpty(t, s.Persona, "reviewer %s", s.ID)
		assert.False(t, s.Specialist, "reviewer %s", s.ID)
	}
}

func TestSet_Plus(t *testing.T) {
	specs, err := Set(SetPlus)
	require.NoError(t, err)
	require.Len(t, specs, 12)

	// Standard six first, specialists after
	assert.Equal(t, "methodology", specs[0].ID)
	assert.Equal(t, "logic", specs[6].ID)
	assert.Equal(t, "steelman", specs[11].ID)

	for _, s := range specs[6:] {
		assert.True(t, s.Specialist, "reviewer %s", s.ID)
	}
}

func TestSet_Unknown(t *testing.T) {
	_, err := Set("deluxe")
	require.Error(t, err)

	var unknown *ErrUnknownSet
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "deluxe", unknown.ID)
}

func TestChains_PrimaryFirstNoDuplicates(t *testing.T) {
	specs, err := Set(SetPlus)
	require.NoError(t, err)

	for _, s := range specs {
		require.NotEmpty(t, s.Models, "reviewer %s", s.ID)

		seen := make(map[string]bool)
		for _, m := range s.Models {
			assert.False(t, seen[m], "reviewer %s: duplicate model %s", s.ID, m)
			seen[m] = true
		}
	}

	// The accessibility reviewer's primary is also a shared fallback;
	// it must appear exactly once, in first position.
	for _, s := range specs {
		if s.ID == "accessibility" {
			assert.Equal(t, "x-ai/grok-4.1-fast:free", s.Models[0])
			assert.Len(t, s.Models, 3)
		}
	}
}

func TestSynthesisChain(t *testing.T) {
	models := SynthesisChain()
	require.NotEmpty(t, models)
	assert.Equal(t, "anthropic/claude-opus-4.5", models[0])
	assert.Len(t, models, 4)
}

func TestSystemPrompt(t *testing.T) {
	specs, err := Set(SetPlus)
	require.NoError(t, err)

	standard := specs[0]
	prompt := standard.SystemPrompt()
	assert.Contains(t, prompt, standard.Persona)
	assert.Contains(t, prompt, "blind peer review")
	assert.Contains(t, prompt, "Technical accuracy")

	specialist := specs[6]
	prompt = specialist.SystemPrompt()
	assert.Contains(t, prompt, specialist.Name)
	assert.Contains(t, prompt, "Focus ONLY on your specialized domain")
	assert.NotContains(t, prompt, "Technical accuracy")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviewers.yaml")

	content := `reviewers:
  - id: security
    name: Security Reviewer
    persona: security analyst probing for threat models
    models:
      - anthropic/claude-sonnet-4.5
      - openai/gpt-5-mini
  - id: stats
    name: Statistics Reviewer
    persona: statistician checking quantitative claims
    specialist: true
    models:
      - openai/gpt-5.1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	specs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "security", specs[0].ID)
	assert.Equal(t, []string{"anthropic/claude-sonnet-4.5", "openai/gpt-5-mini"}, specs[0].Models)
	assert.True(t, specs[1].Specialist)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty roster",
			content: "reviewers: []\n",
			wantErr: "no reviewers",
		},
		{
			name: "missing id",
			content: `reviewers:
  - name: Nameless
    persona: p
    models: [m]
`,
			wantErr: "missing id",
		},
		{
			name: "duplicate id",
			content: `reviewers:
  - {id: a, name: A, persona: p, models: [m]}
  - {id: a, name: B, persona: p, models: [m]}
`,
			wantErr: "duplicate id",
		},
		{
			name: "missing models",
			content: `reviewers:
  - {id: a, name: A, persona: p}
`,
			wantErr: "missing model chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSet_ReturnsFreshCopies(t *testing.T) {
	a, err := Set(SetStandard)
	require.NoError(t, err)

	a[0].Models[0] = "mutated/model"

	b, err := Set(SetStandard)
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-sonnet-4.5", b[0].Models[0])
}
