package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers questions from a fixed list and records what was asked.
type scriptedPrompter struct {
	answers []string
	asked   []string
	closed  bool
}

func (p *scriptedPrompter) Ask(question string) (string, error) {
	p.asked = append(p.asked, question)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Close() error {
	p.closed = true
	return nil
}

func stdinFrom(t *testing.T, input string) *os.File {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	t.Cleanup(func() { r.Close() })
	return r
}

func TestTerminalPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(stdinFrom(t, "  first answer \nsecond"), &out)

	got, err := p.Ask("One? ")
	require.NoError(t, err)
	assert.Equal(t, "first answer", got)

	got, err = p.Ask("Two? ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	got, err = p.Ask("Three? ")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, "One? Two? Three? ", out.String())
}

func TestTerminalPrompter_AskSecretWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(stdinFrom(t, "dG9rZW4=\n"), &out)

	got, err := askSecret(p, "Token? ")
	require.NoError(t, err)
	assert.Equal(t, "dG9rZW4=", got)
}

func TestTerminalPrompter_Close(t *testing.T) {
	p := NewTerminalPrompter(stdinFrom(t, "x\n"), &bytes.Buffer{})
	require.NoError(t, p.Close())

	_, err := p.Ask("Anything? ")
	assert.ErrorIs(t, err, errPrompterClosed)
}
