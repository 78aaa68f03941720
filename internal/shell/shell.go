// Package shell runs the interactive menu loop.
package shell

import (
	"context"
	"fmt"

	"tasker/internal/commands"
	"tasker/internal/output"
)

const (
	choicePrompt  = "Choose an option: "
	invalidChoice = "Invalid choice, please try again."
)

// Shell repeatedly shows the menu, reads a choice and runs the matching
// action until an action asks to exit, input ends, or ctx is cancelled.
type Shell struct {
	registry *commands.Registry
	env      *commands.Env
}

// New creates a Shell dispatching to registry with env.
func New(registry *commands.Registry, env *commands.Env) *Shell {
	return &Shell{registry: registry, env: env}
}

// Run executes the loop. It returns ctx.Err() when cancelled and nil
// otherwise.
func (s *Shell) Run(ctx context.Context) error {
	log := s.env.Log.With("component", "shell")

	for {
		if err := ctx.Err(); err != nil {
			log.Debug(ctx, "session cancelled")
			return err
		}

		s.printMenu()
		output.Prompt(s.env.Out, s.env.Styler, output.ToneSuccess, choicePrompt)

		line, ok := s.env.In.ReadLine(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				log.Debug(ctx, "session cancelled")
				return err
			}
			log.Debug(ctx, "end of input")
			fmt.Fprintln(s.env.Out)
			s.exit(ctx)
			return nil
		}

		choice := commands.ParseChoice(line)
		action, found := s.registry.Find(choice)
		if !found {
			log.Debug(ctx, "unrecognized choice", "input", line)
			output.Println(s.env.Out, s.env.Styler, output.ToneWarning, invalidChoice)
			continue
		}

		log.Debug(ctx, "dispatch", "choice", choice, "action", action.Name())
		if action.Run(ctx, s.env) == commands.Exit {
			log.Debug(ctx, "session ended", "tasks", s.env.Tasks.Len())
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.env.Out)
	for _, a := range s.registry.All() {
		fmt.Fprintf(s.env.Out, "%d. %s\n", a.Choice(), a.Label())
	}
}

// exit runs the registered exit action, if any, so end of input says
// goodbye the same way choosing Exit does.
func (s *Shell) exit(ctx context.Context) {
	if a, ok := s.registry.FindByName("exit"); ok {
		a.Run(ctx, s.env)
	}
}
