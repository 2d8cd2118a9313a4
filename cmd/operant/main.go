package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/operant/internal/agent"
	"github.com/abdul-hamid-achik/operant/internal/command"
	"github.com/abdul-hamid-achik/operant/internal/commands"
	"github.com/abdul-hamid-achik/operant/internal/config"
	"github.com/abdul-hamid-achik/operant/internal/inference"
	"github.com/abdul-hamid-achik/operant/internal/logging"
	"github.com/abdul-hamid-achik/operant/internal/schedule"
	"github.com/abdul-hamid-achik/operant/internal/store"
	"github.com/abdul-hamid-achik/operant/internal/tui"
)

var Version = "dev"

func main() {
	defer logging.Close()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	// Version and help answer before logging so they never touch the log dir.
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-v" || args[0] == "version") {
		fmt.Printf("operant version %s\n", Version)
		return nil
	}
	if len(args) > 0 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		printHelp()
		return nil
	}

	mode := "run"
	if len(args) > 0 {
		mode = args[0]
		args = args[1:]
	}

	verbose := false
	for i := 0; i < len(args); i++ {
		if args[i] == "--verbose" {
			verbose = true
			args = append(args[:i], args[i+1:]...)
			i--
		}
	}

	log, err := logging.Init(logging.ConfigFromEnv().WithVerbose(verbose))
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	log.Debug("starting", logging.F("mode", mode), logging.F("version", Version))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug("config loaded", logging.Path(cfg.ConfigPath()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.Store.Path, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	client := inference.NewClient(cfg, log)
	var collab inference.Collaborator = client
	if cfg.RateLimit.EnableRateLimiting {
		collab = inference.NewRateLimited(collab, &cfg.RateLimit, log)
	}

	disp, err := buildDispatcher(cfg, st, client, log)
	if err != nil {
		return err
	}

	loop := agent.New(collab, disp, st, cfg.Agent, log)

	switch mode {
	case "run":
		return runConsole(ctx, loop)
	case "watch":
		return tui.Run(ctx, loop, cfg.Model.Name, cfg.Agent.MaxActions)
	case "serve":
		return runServe(ctx, cfg, loop, log)
	case "once":
		return runOnce(ctx, disp, args)
	default:
		return fmt.Errorf("unknown mode %q, see \"operant help\"", mode)
	}
}

// buildDispatcher assembles the command registry with every built-in
// command and the dispatch pipeline over it.
func buildDispatcher(cfg *config.Config, st *store.Store, prompter commands.Prompter, log *logging.Logger) (*command.Dispatcher, error) {
	reg := command.NewRegistry()

	defs := []*command.Definition{
		commands.Status(st, time.Now()),
		commands.Notes(st),
		commands.Query(prompter),
		commands.Sleep(),
		commands.Help(reg),
	}

	if err := reg.Register(defs...); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	exec := command.NewExecutor(log)
	exec.Timeout = cfg.Agent.HandlerTimeout
	return command.NewDispatcher(reg, exec, log), nil
}

// runConsole runs one session, printing each cycle to stdout.
func runConsole(ctx context.Context, loop *agent.Loop) error {
	loop.Subscribe(agent.SubscriberFuncs{
		OnIteration: func(assistantText, userText string) {
			fmt.Println(assistantText)
			fmt.Println(userText)
			fmt.Println()
		},
		OnMaxActionsReached: func(history []string) {
			fmt.Printf("Session finished, %d entries in history.\n", len(history))
		},
	})
	return loop.RunSession(ctx)
}

// runServe runs sessions on the configured cron schedule until interrupted.
func runServe(ctx context.Context, cfg *config.Config, loop *agent.Loop, log *logging.Logger) error {
	if !cfg.Schedule.Enabled {
		return fmt.Errorf("schedule is disabled, enable it in %s", cfg.ConfigPath())
	}

	sched := schedule.New(cfg.Schedule, loop, log)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	fmt.Printf("Serving sessions on schedule %q, ctrl+c to stop.\n", cfg.Schedule.Spec)
	<-ctx.Done()
	return nil
}

// runOnce dispatches a single command line and prints its result.
func runOnce(ctx context.Context, disp *command.Dispatcher, args []string) error {
	line := strings.Join(args, " ")
	result := disp.Dispatch(ctx, line)
	fmt.Println(result.Output)
	return nil
}

func printHelp() {
	fmt.Print(`operant - autonomous terminal agent

Usage:
  operant [mode] [flags]

Modes:
  run            Run one agent session, printing progress (default)
  watch          Run one agent session under a live view
  serve          Run sessions on the configured cron schedule
  once <cmd...>  Dispatch a single command and print the result
  version        Print the version
  help           Print this help

Flags:
  --verbose      Mirror debug logging to the console

Environment:
  ANTHROPIC_API_KEY   Required API key
  OPERANT_LOG_LEVEL   debug, info, warn, or error
  OPERANT_LOG_DIR     Log directory (default .operant/logs)
`)
}
