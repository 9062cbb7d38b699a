package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrianJOC/coco/config"
	"github.com/BrianJOC/coco/logger"
	"github.com/BrianJOC/coco/pkg/cocoapp"
	"github.com/BrianJOC/coco/state"
	"github.com/BrianJOC/coco/utils/gitcli"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	cmd := newRootCmd(runtimeDeps{
		runner: gitcli.New(),
		load:   config.Load,
		start: func(ctx context.Context, app *cocoapp.App) error {
			return app.Start(ctx)
		},
	})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command execution failed: %v", err)
		os.Exit(1)
	}
}

// runtimeDeps are the collaborators the root command drives.
type runtimeDeps struct {
	runner gitcli.Runner
	load   func() (*config.Config, error)
	start  func(context.Context, *cocoapp.App) error
}

func newRootCmd(deps runtimeDeps) *cobra.Command {
	var noStageCheck bool

	cmd := &cobra.Command{
		Use:           "coco",
		Short:         "Write conventional commits from an interactive wizard",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), deps, !noStageCheck)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.Flags().BoolVar(&noStageCheck, "no-stage-check", false, "run even when nothing is staged")
	return cmd
}

func run(ctx context.Context, out io.Writer, deps runtimeDeps, stageCheck bool) error {
	cfg, err := deps.load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Default.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	staged, err := deps.runner.ListStaged(ctx, dir)
	if err != nil {
		fmt.Fprintf(out, "Error listing staged files: %v\n", err)
		return nil
	}
	if stageCheck && len(staged) == 0 {
		fmt.Fprintln(out, "Nothing to commit! Stage your changes first ('git add .')")
		return nil
	}
	logger.Info("%d staged file(s) in %s", len(staged), dir)

	st := state.New(cfg)
	app, err := cocoapp.New(
		cocoapp.WithState(st),
		cocoapp.WithRunner(deps.runner),
		cocoapp.WithWorkDir(dir),
	)
	if err != nil {
		return err
	}
	if err := deps.start(ctx, app); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}

	if _, ok := st.CommitResult(); ok {
		fmt.Fprintln(out, st.Message().String())
	}
	return nil
}
