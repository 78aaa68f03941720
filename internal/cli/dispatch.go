package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tasker/internal/commands"
	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/input"
	"tasker/internal/logger"
	"tasker/internal/output"
	"tasker/internal/shell"
	"tasker/internal/task"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// Dispatcher handles command-line parsing and starts the session.
type Dispatcher struct {
	registry *commands.Registry
}

// NewDispatcher creates a new dispatcher with the given action registry.
func NewDispatcher(registry *commands.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Run parses arguments and dispatches. With no command the interactive
// session runs on in. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmdName := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmdName = args[0]
		args = args[1:]
	}

	switch cmdName {
	case "", "help", "version":
	default:
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	opts, code, ok := parseFlags(cmdName, args, errOut)
	if !ok {
		return code
	}

	switch cmdName {
	case "help":
		fmt.Fprint(out, helpText)
		return exitcode.Success
	case "version":
		fmt.Fprintf(out, "tasker %s\n", Version)
		return exitcode.Success
	}

	cfg, err := opts.config(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}

	return d.session(ctx, cfg, in, out, errOut)
}

func (d *Dispatcher) session(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) int {
	log := logger.New(errOut, logger.ParseLevel(cfg.EffectiveLogLevel()))
	if cfg.Path != "" {
		log.Debug(ctx, "config loaded", "path", cfg.Path)
	}

	outFile, _ := out.(*os.File)
	styler := output.NewStyler(output.ColorEnabled(cfg.Color, outFile))

	reader := input.NewReader(in)
	defer reader.Close()

	env := &commands.Env{
		Tasks:  task.NewList(),
		In:     reader,
		Out:    out,
		Styler: styler,
		Config: cfg,
		Log:    log,
	}

	if err := shell.New(d.registry, env).Run(ctx); err != nil {
		fmt.Fprintln(out)
		return exitcode.Interrupted
	}
	if err := reader.Err(); err != nil {
		log.Warn(ctx, "input ended with error", "error", err)
	}
	return exitcode.Success
}

// options holds parsed common flags.
type options struct {
	configPath string
	quiet      bool
	debug      bool
	color      string
}

func (o options) config(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, o.configPath)
	if err != nil {
		return nil, err
	}
	if o.quiet {
		cfg.Quiet = true
	}
	cfg.Debug = o.debug
	if o.color != "" {
		cfg.Color = o.color
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func parseFlags(name string, args []string, errOut io.Writer) (options, int, bool) {
	if name == "" {
		name = config.AppName
	}
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "")
	fs.BoolVar(&opts.quiet, "quiet", false, "")
	fs.BoolVar(&opts.debug, "debug", false, "")
	fs.StringVar(&opts.color, "color", "", "")

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return opts, exitcode.UserError, false
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return opts, exitcode.UserError, false
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return opts, exitcode.UserError, false
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return opts, exitcode.UserError, false
	}

	return opts, exitcode.Success, true
}

const helpText = `Usage:
  tasker [common flags]     Start the interactive task menu
  tasker help               Print usage
  tasker version            Print version

Common flags:
  --config <file>           Read settings from this YAML file
  --quiet                   Suppress confirmation messages
  --debug                   Print debug logs to stderr
  --color auto|always|never Control terminal colors

Menu:
  1. Add task
  2. List tasks
  3. Mark task in progress
  4. Mark task completed
  5. Remove task
  6. Exit
`
