// Package registry holds the fixed reviewer rosters: identity, persona
// prompt, and ordered model fallback chain for each reviewer. It is pure
// configuration lookup with no network access or mutation; adding or
// removing a reviewer is a configuration change, not a code change.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in reviewer set identifiers
const (
	SetStandard = "standard" // 6 traditional academic reviewers
	SetPlus     = "plus"     // standard 6 + 6 specialist reviewers
)

// ErrUnknownSet is returned for a reviewer set ID that is not registered
type ErrUnknownSet struct {
	ID string
}

func (e *ErrUnknownSet) Error() string {
	return fmt.Sprintf("unknown reviewer set: %q (must be %q or %q)", e.ID, SetStandard, SetPlus)
}

// ReviewerSpec describes one reviewer: stable identity, persona prompt,
// and the ordered list of models to try (primary first).
// Specs are immutable once loaded; Set and Load return fresh copies.
type ReviewerSpec struct {
	// ID is the stable reviewer identifier used in results and the ledger
	ID string `yaml:"id"`

	// Name is the display name used in the report
	Name string `yaml:"name"`

	// Persona is the reviewer's critical stance, spliced into the system prompt
	Persona string `yaml:"persona"`

	// Specialist reviewers are addressed by name and restricted to their
	// domain; non-specialists get the general evaluation rubric.
	Specialist bool `yaml:"specialist,omitempty"`

	// Models is the fallback chain, primary first
	Models []string `yaml:"models"`
}

// SystemPrompt builds the full system prompt for this reviewer
func (s ReviewerSpec) SystemPrompt() string {
	if s.Specialist {
		return fmt.Sprintf(`You are %s, a %s

You are conducting a blind peer review. Focus ONLY on your specialized domain.
Do NOT reference author credentials or affiliations - this is blind review.
Be specific. Cite sections. Provide actionable feedback.`, s.Name, s.Persona)
	}

	return fmt.Sprintf(`You are a %s conducting a blind peer review.

Evaluate this work on:
1. Technical accuracy
2. Clarity of argument
3. Evidence quality
4. Novel contribution
5. Weaknesses and gaps

Be specific. Cite sections. Provide actionable feedback.
Do NOT reference author credentials or affiliations - this is blind review.
Focus purely on the quality of the work itself.`, s.Persona)
}

// fallbackModels are shared backup models appended to every chain
var fallbackModels = []string{
	"x-ai/grok-4.1-fast:free",
	"anthropic/claude-haiku-4.5",
	"openai/gpt-5-nano",
}

// SynthesisChain returns the model chain for the synthesis step,
// primary synthesis model first.
func SynthesisChain() []string {
	return chain("anthropic/claude-opus-4.5")
}

// chain builds a fallback chain from a primary model plus the shared
// fallback list, deduplicated and order-preserving.
func chain(primary string) []string {
	models := []string{primary}
	for _, m := range fallbackModels {
		if m != primary {
			models = append(models, m)
		}
	}
	return models
}

// Set returns the reviewer specs for a built-in set ID in declared order
func Set(id string) ([]ReviewerSpec, error) {
	switch id {
	case SetStandard:
		return build(standardReviewers), nil
	case SetPlus:
		return build(append(append([]seed{}, standardReviewers...), plusReviewers...)), nil
	default:
		return nil, &ErrUnknownSet{ID: id}
	}
}

// seed is the compact form the built-in rosters are declared in
type seed struct {
	id         string
	name       string
	model      string
	persona    string
	specialist bool
}

// build expands seeds into full specs with fallback chains
func build(seeds []seed) []ReviewerSpec {
	specs := make([]ReviewerSpec, 0, len(seeds))
	for _, s := range seeds {
		specs = append(specs, ReviewerSpec{
			ID:         s.id,
			Name:       s.name,
			Persona:    s.persona,
			Specialist: s.specialist,
			Models:     chain(s.model),
		})
	}
	return specs
}

// registryFile is the shape of a YAML registry file
type registryFile struct {
	Reviewers []ReviewerSpec `yaml:"reviewers"`
}

// Load reads reviewer specs from a YAML file. Specs without an explicit
// model chain get the shared fallback chain appended to nothing, which is
// invalid; every reviewer must name at least a primary model.
func Load(path string) ([]ReviewerSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	if err := validate(f.Reviewers); err != nil {
		return nil, err
	}

	return f.Reviewers, nil
}

// validate checks a loaded roster for configuration errors
func validate(specs []ReviewerSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("registry contains no reviewers")
	}

	seen := make(map[string]bool, len(specs))
	for i, s := range specs {
		if s.ID == "" {
			return fmt.Errorf("reviewer %d: missing id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("reviewer %q: duplicate id", s.ID)
		}
		seen[s.ID] = true

		if s.Persona == "" {
			return fmt.Errorf("reviewer %q: missing persona", s.ID)
		}
		if len(s.Models) == 0 {
			return fmt.Errorf("reviewer %q: missing model chain", s.ID)
		}
	}

	return nil
}
