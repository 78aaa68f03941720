package commands

import (
	"context"

	"tasker/internal/output"
	"tasker/internal/task"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the remove action.
type RmCmd struct{}

func (c *RmCmd) Choice() int   { return 5 }
func (c *RmCmd) Name() string  { return "remove" }
func (c *RmCmd) Label() string { return "Remove task" }

func (c *RmCmd) Run(ctx context.Context, env *Env) Outcome {
	return runIndexed(ctx, env, indexedAction{
		name:    c.Name(),
		prompt:  "Enter the number of the task to remove: ",
		tone:    output.ToneDanger,
		success: "Task removed!",
		apply:   (*task.List).Remove,
	})
}
