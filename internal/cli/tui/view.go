package tui

import (
	"fmt"
	"strings"
	"time"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Done || m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	for _, r := range m.Reviewers {
		b.WriteString(m.renderReviewer(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	if line := m.renderSynthesisLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with timer and concurrency
func (m *Model) renderHeader() string {
	elapsed := time.Since(m.StartTime).Round(time.Second)
	timer := fmt.Sprintf("[%s]", formatDuration(elapsed))
	concurrency := fmt.Sprintf("Concurrency: %d", m.Concurrency)

	return fmt.Sprintf("%s  %s  %s  %s",
		m.Styles.Title.Render("Trial by Hex"),
		m.Styles.Timer.Render(m.Document),
		m.Styles.Timer.Render(timer),
		m.Styles.Concurrency.Render(concurrency),
	)
}

// renderReviewer renders one board row:
//
//	✓ Methodology Reviewer        anthropic/claude-sonnet-4.5
//	↪ Harsh Skeptic               x-ai/grok-4.1-fast:free (attempt 3)
func (m *Model) renderReviewer(r *ReviewerState) string {
	var icon, name string

	switch r.Phase {
	case PhasePending:
		icon = m.Styles.ReviewerPending.Render(IconPending)
		name = m.Styles.ReviewerPending.Render(r.Name)
	case PhaseTrying:
		icon = m.Styles.ReviewerActive.Render(IconActive)
		name = m.Styles.ReviewerName.Render(r.Name)
	case PhaseFallback:
		icon = m.Styles.ReviewerActive.Render(IconFallback)
		name = m.Styles.ReviewerName.Render(r.Name)
	case PhaseSuccess:
		icon = m.Styles.ReviewerDone.Render(IconComplete)
		name = m.Styles.ReviewerName.Render(r.Name)
	case PhaseFailed:
		icon = m.Styles.ReviewerFailed.Render(IconFailed)
		name = m.Styles.ReviewerName.Render(r.Name)
	}

	detail := ""
	switch {
	case r.Phase == PhaseFailed:
		detail = m.Styles.ReviewerFailed.Render("no review")
	case r.Model != "":
		detail = m.Styles.ModelName.Render(r.Model)
		if r.Attempts > 1 {
			detail += m.Styles.Timer.Render(fmt.Sprintf(" (attempt %d)", r.Attempts))
		}
	}

	return fmt.Sprintf("  %s %-34s %s", icon, name, detail)
}

// renderStatusLine renders the summary status line
func (m *Model) renderStatusLine() string {
	var done, failed, active int
	for _, r := range m.Reviewers {
		switch r.Phase {
		case PhaseSuccess:
			done++
		case PhaseFailed:
			failed++
		case PhaseTrying, PhaseFallback:
			active++
		}
	}

	return fmt.Sprintf("  Reviews: %d/%d %s | %s | %s",
		done+failed,
		len(m.Reviewers),
		m.Styles.StatusComplete.Render(fmt.Sprintf("%d complete", done)),
		m.Styles.StatusFailed.Render(fmt.Sprintf("%d failed", failed)),
		m.Styles.StatusActive.Render(fmt.Sprintf("%d active", active)),
	)
}

// renderSynthesisLine renders the synthesis phase when it is underway
func (m *Model) renderSynthesisLine() string {
	switch m.Synthesis {
	case "running":
		return m.Styles.Synthesis.Render("  Synthesizing consensus...")
	case "done":
		return m.Styles.Synthesis.Render("  Synthesis complete")
	case "skipped":
		return m.Styles.ReviewerFailed.Render("  Synthesis skipped (quorum not met)")
	case "failed":
		return m.Styles.ReviewerFailed.Render("  Synthesis failed")
	}
	return ""
}

// renderFooter renders the help text
func (m *Model) renderFooter() string {
	key := m.Styles.FooterKey.Render("q")
	return m.Styles.Footer.Render(fmt.Sprintf("  Press %s to quit", key))
}

// formatDuration formats a duration as HH:MM:SS
func formatDuration(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
