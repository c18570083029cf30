package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/egandro/set-slice/pkg/config"
	"github.com/egandro/set-slice/pkg/logger"
	"github.com/egandro/set-slice/pkg/privilege"
	"github.com/egandro/set-slice/pkg/report"
	"github.com/egandro/set-slice/pkg/scheduler"
)

func newRootCmd(setter scheduler.SliceSetter, rep *report.Reporter, exitCode *int) *cobra.Command {
	var preserve bool
	var dryRun bool
	var logLevel string
	var configFile string

	cmd := &cobra.Command{
		Use:   config.ConstantProgramName + " <PID> <SLICE_MS>",
		Short: "Set a custom EEVDF slice (sched_runtime) for a task",
		Long: `Set a custom EEVDF slice (sched_runtime) for a single process or thread
using sched_setattr(2).

By default the task is switched to SCHED_NORMAL with nice 0, which resets
any previous nice value. Use --preserve to keep policy, nice and priority.`,
		Example:       "  " + config.ConstantProgramName + " 1234 20   # 20ms slice for TID 1234",
		Args:          func(cmd *cobra.Command, args []string) error { return validateArgCount(args) },
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, sliceMS, err := parseArgs(args)
			if err != nil {
				*exitCode = rep.Report(nil, err)
				return nil
			}

			cfg, err := config.Load(configFile)
			if err != nil {
				*exitCode = rep.Report(nil, err)
				return nil
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("preserve") {
				cfg.Preserve = preserve
			}

			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v, defaulting to WARN\n", err)
			}
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), level, config.ConstantProgramName))

			res, err := setter.SetSlice(cmd.Context(), scheduler.Request{
				PID:      pid,
				SliceMS:  sliceMS,
				Preserve: cfg.Preserve,
				DryRun:   dryRun,
			})
			*exitCode = rep.Report(res, err)
			return nil
		},
	}

	cmd.SetUsageFunc(printUsage)
	cmd.Flags().BoolVar(&preserve, "preserve", config.DefaultPreserve, "Keep the current policy, nice and priority (reads sched_getattr first)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the attribute record without calling the kernel")
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level for diagnostics on stderr (debug, info, warn, error)")
	cmd.Flags().StringVar(&configFile, "config", "", "Optional defaults file (SET_SLICE_LOG_LEVEL, SET_SLICE_PRESERVE)")
	return cmd
}

// printUsage writes the usage text to stdout.
func printUsage(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] <PID> <SLICE_MS>\n", cmd.Name())
	_, _ = fmt.Fprintln(out, "  PID: Task ID to update")
	_, _ = fmt.Fprintln(out, "  SLICE_MS: Slice in milliseconds (e.g. 10)")
	_, _ = fmt.Fprintln(out, "\nUse -- before a negative PID.")
	if cmd.Example != "" {
		_, _ = fmt.Fprintf(out, "\nExample:\n%s\n", cmd.Example)
	}
	_, _ = fmt.Fprintf(out, "\nFlags:\n%s", cmd.LocalFlags().FlagUsages())
	return nil
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer,
	setter scheduler.SliceSetter, caps privilege.CapabilityChecker) int {
	rep := report.New(stdout, stderr)
	rep.Caps = caps

	exitCode := report.ExitOK
	cmd := newRootCmd(setter, rep, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUsage) {
			// flag parsing errors
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		_ = cmd.Usage()
		return report.ExitFailure
	}
	return exitCode
}
