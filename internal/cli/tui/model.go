package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eden-eldith/trialhex/internal/registry"
)

// Reviewer phase values shown on the board
const (
	PhasePending  = "pending"
	PhaseTrying   = "trying"
	PhaseFallback = "fallback"
	PhaseSuccess  = "success"
	PhaseFailed   = "failed"
)

// ReviewerState tracks one reviewer's progress on the board
type ReviewerState struct {
	ID       string
	Name     string
	Model    string // model currently being tried, or the one that answered
	Phase    string
	Attempts int
	Error    string
}

// Model is the bubbletea model for the live review board
type Model struct {
	// Configuration
	Document    string
	Concurrency int
	Styles      Styles

	// State: board rows keep registry order
	Reviewers []*ReviewerState
	byID      map[string]*ReviewerState
	Synthesis string // "", "running", "done", "skipped", "failed"
	StartTime time.Time
	Width     int
	Height    int

	// Control
	Quitting bool
	Done     bool
}

// NewModel creates a board with one pending row per reviewer
func NewModel(document string, specs []registry.ReviewerSpec, concurrency int) *Model {
	m := &Model{
		Document:    document,
		Concurrency: concurrency,
		Styles:      DefaultStyles(),
		byID:        make(map[string]*ReviewerState, len(specs)),
		StartTime:   time.Now(),
	}
	for _, s := range specs {
		state := &ReviewerState{ID: s.ID, Name: s.Name, Phase: PhasePending}
		m.Reviewers = append(m.Reviewers, state)
		m.byID[s.ID] = state
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// TickMsg is sent every second to update the timer
type TickMsg time.Time

// tickCmd returns a command that sends TickMsg every second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// DoneMsg signals the TUI should exit
type DoneMsg struct{}

// QuitMsg signals the user requested quit (q or Ctrl+C)
type QuitMsg struct{}

// ReviewerStartedMsg indicates a reviewer began its chain
type ReviewerStartedMsg struct {
	ReviewerID string
	Model      string
}

// ReviewerFallbackMsg indicates a reviewer moved to a backup model
type ReviewerFallbackMsg struct {
	ReviewerID string
	Model      string
}

// ReviewerAttemptMsg indicates one model invocation
type ReviewerAttemptMsg struct {
	ReviewerID string
	Model      string
}

// ReviewerCompletedMsg indicates a reviewer got an answer
type ReviewerCompletedMsg struct {
	ReviewerID string
	Model      string
}

// ReviewerFailedMsg indicates a reviewer exhausted its chain or timed out
type ReviewerFailedMsg struct {
	ReviewerID string
	Error      string
}

// SynthesisMsg indicates a synthesis phase change
type SynthesisMsg struct {
	Phase string // "running", "done", "skipped", "failed"
}
