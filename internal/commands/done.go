package commands

import (
	"context"

	"tasker/internal/output"
	"tasker/internal/task"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the action that marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Choice() int   { return 4 }
func (c *DoneCmd) Name() string  { return "complete" }
func (c *DoneCmd) Label() string { return "Mark task completed" }

func (c *DoneCmd) Run(ctx context.Context, env *Env) Outcome {
	return runIndexed(ctx, env, indexedAction{
		name:    c.Name(),
		prompt:  "Enter the number of the task to mark completed: ",
		tone:    output.ToneSuccess,
		success: "Task completed!",
		apply:   (*task.List).Complete,
	})
}
