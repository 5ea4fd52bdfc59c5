package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Defaults(t *testing.T) {
	app := New()
	cmd := NewVersionCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	assert.Contains(t, out.String(), "trialhex version dev")
	assert.Contains(t, out.String(), "commit: unknown")
	assert.Contains(t, out.String(), "built: unknown")
}

func TestVersionCmd_SetVersion(t *testing.T) {
	app := New()
	app.SetVersion("1.2.3", "abc1234", "2026-08-24")
	cmd := NewVersionCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	assert.Contains(t, out.String(), "trialhex version 1.2.3")
	assert.Contains(t, out.String(), "commit: abc1234")
	assert.Contains(t, out.String(), "built: 2026-08-24")
}
