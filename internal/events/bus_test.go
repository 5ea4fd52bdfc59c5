package events

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus(16)

	var got []EventType
	bus.Subscribe(func(e Event) {
		got = append(got, e.Type)
	})

	bus.Emit(NewEvent(RunStarted, ""))
	bus.Emit(NewEvent(ReviewerStarted, "skeptic"))
	bus.Emit(NewEvent(ReviewerCompleted, "skeptic"))
	require.NoError(t, bus.Close())

	assert.Equal(t, []EventType{RunStarted, ReviewerStarted, ReviewerCompleted}, got)
}

func TestBusStampsTime(t *testing.T) {
	bus := NewBus(1)

	var got Event
	bus.Subscribe(func(e Event) { got = e })

	bus.Emit(NewEvent(ReviewerQueued, "logic"))
	require.NoError(t, bus.Close())

	assert.False(t, got.Time.IsZero())
}

func TestEventString(t *testing.T) {
	e := NewEvent(ReviewerFailed, "ethics").
		WithModel("openai/gpt-5.1").
		WithError(errors.New("chain exhausted"))

	s := e.String()
	assert.Contains(t, s, "[reviewer.failed]")
	assert.Contains(t, s, "ethics")
	assert.Contains(t, s, "model=openai/gpt-5.1")
	assert.Contains(t, s, `error="chain exhausted"`)
}

func TestEventIsFailure(t *testing.T) {
	assert.True(t, NewEvent(ReviewerFailed, "x").IsFailure())
	assert.True(t, NewEvent(SynthesisFailed, "").IsFailure())
	assert.False(t, NewEvent(ReviewerCompleted, "x").IsFailure())
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := LogHandler(LogConfig{Writer: &buf, IncludePayload: true})

	h(NewEvent(ReviewerAttempt, "systems").WithModel("google/gemini-3-pro-preview").WithPayload(map[string]any{"attempt": 2}))

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[reviewer.attempt] systems"))
	assert.Contains(t, line, "payload=")
}
