// Package testutil provides testing utilities.
package testutil

import (
	"bytes"
	"strings"
	"testing"

	"tasker/internal/commands"
	"tasker/internal/config"
	"tasker/internal/input"
	"tasker/internal/logger"
	"tasker/internal/output"
	"tasker/internal/task"
)

// Session is a commands.Env wired to scripted input and a captured output
// buffer, with colors disabled and logs discarded.
type Session struct {
	Env *commands.Env
	Out *bytes.Buffer
}

// NewSession creates a Session whose input is script and whose task list
// is pre-filled with descriptions.
func NewSession(t testing.TB, script string, descriptions ...string) *Session {
	t.Helper()

	list := task.NewList()
	for _, d := range descriptions {
		list.Add(d)
	}

	reader := input.NewReader(strings.NewReader(script))
	t.Cleanup(reader.Close)

	out := &bytes.Buffer{}
	return &Session{
		Env: &commands.Env{
			Tasks:  list,
			In:     reader,
			Out:    out,
			Styler: output.Plain(),
			Config: config.Default(),
			Log:    logger.Discard(),
		},
		Out: out,
	}
}

// Script joins lines into newline-terminated input.
func Script(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Statuses returns the status of every task in order.
func Statuses(l *task.List) []task.Status {
	var out []task.Status
	for _, e := range l.Entries() {
		out = append(out, e.Status)
	}
	return out
}
