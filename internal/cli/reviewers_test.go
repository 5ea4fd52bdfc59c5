package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := New()
	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetErr(&out)
	app.rootCmd.SetArgs(args)
	err := app.rootCmd.Execute()
	return out.String(), err
}

func TestReviewersCmd_StandardSet(t *testing.T) {
	out, err := runCommand(t, "reviewers")
	require.NoError(t, err)

	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, " 6. ")
	assert.NotContains(t, out, " 7. ")
	assert.Contains(t, out, "anthropic/claude-sonnet-4.5")
	assert.Contains(t, out, "fallbacks:")
}

func TestReviewersCmd_PlusSet(t *testing.T) {
	out, err := runCommand(t, "reviewers", "--set", "plus")
	require.NoError(t, err)

	assert.Contains(t, out, "12. ")
	assert.Contains(t, out, "Steel Man Advocate")
}

func TestReviewersCmd_UnknownSet(t *testing.T) {
	_, err := runCommand(t, "reviewers", "--set", "deluxe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reviewer set")
}

func TestTruncatePersona(t *testing.T) {
	assert.Equal(t, "short", truncatePersona("short", 100))
	assert.Equal(t, "first line...", truncatePersona("first line\nsecond line", 100))
	assert.Equal(t, "aaaaa...", truncatePersona("aaaaaaaaaa", 5))
}
