// Package commands provides the menu action interface and implementations.
package commands

import (
	"context"
	"io"

	"tasker/internal/config"
	"tasker/internal/logger"
	"tasker/internal/output"
	"tasker/internal/task"
)

// Outcome tells the loop what to do after an action.
type Outcome int

const (
	// Continue redisplays the menu.
	Continue Outcome = iota

	// Exit ends the session.
	Exit
)

// Action defines the interface for menu actions.
type Action interface {
	// Choice returns the menu number that selects the action.
	Choice() int

	// Name returns the action name used in logs.
	Name() string

	// Label returns the menu text.
	Label() string

	// Run executes the action against env.
	Run(ctx context.Context, env *Env) Outcome
}

// LineReader supplies lines of user input.
type LineReader interface {
	// ReadLine returns the next trimmed line. ok is false when no more
	// input is available.
	ReadLine(ctx context.Context) (line string, ok bool)
}

// Env is the state an action runs against. One Env is owned by one session.
type Env struct {
	Tasks  *task.List
	In     LineReader
	Out    io.Writer
	Styler *output.Styler
	Config *config.Config
	Log    *logger.Logger
}

// confirm prints msg unless quiet mode is on.
func (e *Env) confirm(tone output.Tone, msg string) {
	if e.Config != nil && e.Config.Quiet {
		return
	}
	output.Println(e.Out, e.Styler, tone, msg)
}
