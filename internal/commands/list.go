package commands

import (
	"context"

	"tasker/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list action.
type ListCmd struct{}

func (c *ListCmd) Choice() int   { return 2 }
func (c *ListCmd) Name() string  { return "list" }
func (c *ListCmd) Label() string { return "List tasks" }

func (c *ListCmd) Run(ctx context.Context, env *Env) Outcome {
	output.FormatList(env.Out, env.Styler, env.Tasks.Entries())
	return Continue
}
