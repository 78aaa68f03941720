package commands

import (
	"context"

	"tasker/internal/output"
)

// Farewell is printed when the session ends.
const Farewell = "Good luck! Wishing you happiness, health and success!"

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the exit action.
type ExitCmd struct{}

func (c *ExitCmd) Choice() int   { return 6 }
func (c *ExitCmd) Name() string  { return "exit" }
func (c *ExitCmd) Label() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, env *Env) Outcome {
	output.Println(env.Out, env.Styler, output.ToneNotice, Farewell)
	return Exit
}
