package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eden-eldith/trialhex/internal/events"
)

// Bridge connects the event bus to the bubbletea program
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a new bridge for the given program
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{
		program: program,
	}
}

// Handler returns an event handler function for the event bus
func (b *Bridge) Handler() events.Handler {
	return func(evt events.Event) {
		msg := eventToMsg(evt)
		if msg != nil {
			b.program.Send(msg)
		}
	}
}

// eventToMsg converts an events.Event to a tea.Msg
func eventToMsg(evt events.Event) tea.Msg {
	switch evt.Type {
	case events.ReviewerStarted:
		return ReviewerStartedMsg{ReviewerID: evt.Reviewer, Model: evt.Model}

	case events.ReviewerFallback:
		return ReviewerFallbackMsg{ReviewerID: evt.Reviewer, Model: evt.Model}

	case events.ReviewerAttempt:
		return ReviewerAttemptMsg{ReviewerID: evt.Reviewer, Model: evt.Model}

	case events.ReviewerCompleted:
		return ReviewerCompletedMsg{ReviewerID: evt.Reviewer, Model: evt.Model}

	case events.ReviewerFailed:
		return ReviewerFailedMsg{ReviewerID: evt.Reviewer, Error: evt.Error}

	case events.SynthesisStarted:
		return SynthesisMsg{Phase: "running"}

	case events.SynthesisCompleted:
		return SynthesisMsg{Phase: "done"}

	case events.SynthesisSkipped:
		return SynthesisMsg{Phase: "skipped"}

	case events.SynthesisFailed:
		return SynthesisMsg{Phase: "failed"}

	default:
		return nil
	}
}

// SendDone sends a DoneMsg to the program
func (b *Bridge) SendDone() {
	b.program.Send(DoneMsg{})
}

// SendQuit sends a QuitMsg to the program
func (b *Bridge) SendQuit() {
	b.program.Send(QuitMsg{})
}
