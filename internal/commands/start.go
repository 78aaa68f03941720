package commands

import (
	"context"

	"tasker/internal/output"
	"tasker/internal/task"
)

func init() {
	Register(&StartCmd{})
}

// StartCmd implements the action that marks a task in progress.
type StartCmd struct{}

func (c *StartCmd) Choice() int   { return 3 }
func (c *StartCmd) Name() string  { return "start" }
func (c *StartCmd) Label() string { return "Mark task in progress" }

func (c *StartCmd) Run(ctx context.Context, env *Env) Outcome {
	return runIndexed(ctx, env, indexedAction{
		name:    c.Name(),
		prompt:  "Task number to mark in progress: ",
		tone:    output.ToneInfo,
		success: "Task marked in progress.",
		apply:   (*task.List).InProgress,
	})
}
