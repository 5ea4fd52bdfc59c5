package tui

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TickMsg:
		// Continue ticking for timer updates
		return m, tickCmd()

	case DoneMsg:
		m.Done = true
		return m, tea.Quit

	case QuitMsg:
		m.Quitting = true
		return m, tea.Quit

	case ReviewerStartedMsg:
		if r, ok := m.byID[msg.ReviewerID]; ok {
			r.Phase = PhaseTrying
			r.Model = msg.Model
		}

	case ReviewerFallbackMsg:
		if r, ok := m.byID[msg.ReviewerID]; ok {
			r.Phase = PhaseFallback
			r.Model = msg.Model
		}

	case ReviewerAttemptMsg:
		if r, ok := m.byID[msg.ReviewerID]; ok {
			r.Attempts++
			r.Model = msg.Model
		}

	case ReviewerCompletedMsg:
		if r, ok := m.byID[msg.ReviewerID]; ok {
			r.Phase = PhaseSuccess
			r.Model = msg.Model
		}

	case ReviewerFailedMsg:
		if r, ok := m.byID[msg.ReviewerID]; ok {
			r.Phase = PhaseFailed
			r.Error = msg.Error
		}

	case SynthesisMsg:
		m.Synthesis = msg.Phase
	}

	return m, nil
}
