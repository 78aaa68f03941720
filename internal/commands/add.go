package commands

import (
	"context"

	"tasker/internal/output"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add action.
type AddCmd struct{}

func (c *AddCmd) Choice() int   { return 1 }
func (c *AddCmd) Name() string  { return "add" }
func (c *AddCmd) Label() string { return "Add task" }

func (c *AddCmd) Run(ctx context.Context, env *Env) Outcome {
	output.Prompt(env.Out, env.Styler, output.ToneInfo, "Enter task description: ")
	// EOF reads as an empty description, which is accepted.
	description, _ := env.In.ReadLine(ctx)
	if ctx.Err() != nil {
		return Continue
	}

	index := env.Tasks.Add(description)
	env.Log.Debug(ctx, "task added", "index", index)

	env.confirm(output.ToneInfo, "Task added!")
	return Continue
}
