package commands

import (
	"context"
	"errors"

	"tasker/internal/output"
	"tasker/internal/task"
)

// InvalidInputMessage is printed when a task number does not address a task.
const InvalidInputMessage = "Invalid input"

// indexedAction describes an action that lists tasks, asks for a task number
// and applies an operation at that position.
type indexedAction struct {
	name    string
	prompt  string
	tone    output.Tone
	success string
	apply   func(l *task.List, index int) error
}

// runIndexed is the shared implementation for start, complete and remove.
func runIndexed(ctx context.Context, env *Env, a indexedAction) Outcome {
	output.FormatList(env.Out, env.Styler, env.Tasks.Entries())
	output.Prompt(env.Out, env.Styler, a.tone, a.prompt)

	input, _ := env.In.ReadLine(ctx)
	index, err := ParseTaskNumber(input)
	if err == nil {
		err = a.apply(env.Tasks, index)
	}

	if err != nil {
		if !errors.Is(err, task.ErrInvalidIndex) {
			env.Log.Error(ctx, "unexpected action error", "action", a.name, "error", err)
		}
		env.Log.Debug(ctx, "invalid task number", "action", a.name, "input", input)
		output.Println(env.Out, env.Styler, output.ToneDanger, InvalidInputMessage)
		return Continue
	}

	env.Log.Debug(ctx, "task updated", "action", a.name, "index", index)
	env.confirm(a.tone, a.success)
	return Continue
}
