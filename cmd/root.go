// Package cmd provides the entry point for the setdisplayresolution application.
// It switches the primary display's resolution for the lifetime of a child process.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/fiffeek/setdisplayresolution/internal/backends"
	"github.com/fiffeek/setdisplayresolution/internal/config"
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/fiffeek/setdisplayresolution/internal/signal"
	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	Version    = "dev"
	Commit     = "none"
	BuildDate  = "unknown"
	BinaryName = "setdisplayresolution"
)

const (
	exitFailure       = 1
	exitArgumentError = 2
)

var (
	debug                bool
	verbose              bool
	enableJSONLogsFormat bool
	configPath           string
	backendName          string
	// exitCode is the child's exit code, set by the run command
	exitCode int
	rootCmd  = &cobra.Command{
		Use:              BinaryName,
		Short:            "Temporarily change the display resolution while a program runs",
		Long:             "setdisplayresolution switches the primary display to the requested resolution, keeping color depth and refresh rate, runs a program and restores the original mode once it exits.",
		Version:          fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Args:             cobra.ArbitraryArgs,
		PersistentPreRun: setupLogger,
		SilenceErrors:    true,
		SilenceUsage:     true,
	}
)

func Execute() {
	cmd, _, err := rootCmd.Find(os.Args[1:])

	if err == nil && cmd.Use == rootCmd.Use && !errors.Is(cmd.Flags().Parse(os.Args[1:]), pflag.ErrHelp) &&
		!slices.Contains(os.Args[1:], "--version") && !slices.Contains(os.Args[1:], "-v") {
		args := append([]string{runCmd.Name()}, os.Args[1:]...)
		rootCmd.SetArgs(args)
	}

	executed, err := rootCmd.ExecuteC()
	if err != nil {
		os.Exit(exitStatus(err, executed, os.Stderr))
	}
	logrus.WithField("exit_code", exitCode).Debug("Exiting...")
	os.Exit(exitCode)
}

// exitStatus reports err to the user and maps it to the process exit status.
func exitStatus(err error, cmd *cobra.Command, stderr io.Writer) int {
	var argumentErr *errs.ArgumentError
	if errors.As(err, &argumentErr) {
		fmt.Fprintf(stderr, "Error: %s\n", argumentErr.Reason)
		if cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitArgumentError
	}

	var notFound *errs.ModeNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(stderr, notFound.Error())
		return exitFailure
	}

	var interrupted *signal.Interrupted
	if errors.As(err, &interrupted) {
		logrus.WithError(err).Info("Interrupted, original display mode restored")
		return interrupted.ExitCode()
	}

	var launchErr *errs.ProcessLaunchError
	if errors.As(err, &launchErr) {
		logrus.WithError(err).Error("Child process could not be started")
		return exitFailure
	}

	logrus.WithError(err).Error("Command failed")
	return exitFailure
}

func setupLogger(cmd *cobra.Command, args []string) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if verbose {
		logrus.SetReportCaller(true)
	}

	if enableJSONLogsFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: false,
			TimestampFormat:  time.RFC3339Nano,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: false,
			DisableColors:    false,
			TimestampFormat:  time.RFC3339Nano,
			FullTimestamp:    true,
			ForceQuote:       true,
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				fn := filepath.Base(f.Function)
				file := fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
				return fn, file
			},
		})
	}
}

// loadConfig reads the config file. Only a file passed explicitly has to exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.NewConfig(configPath, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("backend") {
		backend, err := config.ParseBackendType(backendName)
		if err != nil {
			return nil, errs.NewArgumentError("invalid --backend %q, expected one of %s", backendName,
				utils.FormatEnumTypes(config.AllBackendTypes()))
		}
		cfg.General.Backend = &backend
	}

	return cfg, nil
}

func openPlatform(cfg *config.Config, dryRun bool) (display.Platform, error) {
	platform, err := backends.Open(*cfg.General.Backend, dryRun)
	if err != nil {
		return nil, fmt.Errorf("cant initialize the display backend: %w", err)
	}
	return platform, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		config.DefaultPath,
		"Path to configuration file",
	)
	rootCmd.PersistentFlags().BoolVar(&enableJSONLogsFormat, "enable-json-logs-format", false, "Enable structured logging")
	rootCmd.PersistentFlags().StringVar(
		&backendName,
		"backend",
		config.Auto.Value(),
		"Display backend, overrides the config file: "+utils.FormatEnumTypes(config.AllBackendTypes()),
	)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &errs.ArgumentError{Reason: err.Error()}
	})
}
