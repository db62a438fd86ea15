package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/fiffeek/setdisplayresolution/internal/app"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dryRun       bool
	splitCommand bool
	workdir      string
)

var runCmd = &cobra.Command{
	Use:   "run WIDTH HEIGHT COMMAND [-- ARGS...]",
	Short: "Switch the resolution, run a command and restore the resolution",
	Long: `Switch the primary display to WIDTH x HEIGHT at the current color depth and refresh rate,
run COMMAND until it exits and restore the original display mode. Arguments after -- are passed to COMMAND.

Exit status:
  N        COMMAND's own exit status
  1        no mode matched WIDTH x HEIGHT, COMMAND could not be started or the display failed
  2        invalid arguments, usage is printed
  128+SIG  interrupted by signal SIG, the original mode is restored first`,
	Example: `  setdisplayresolution 1920 1080 /usr/bin/game
  setdisplayresolution run --dry-run 1280 720 game -- --fullscreen`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.WithField("version", Version).Debug("Starting setdisplayresolution")
		req, err := parseRequest(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"width": req.Width, "height": req.Height, "command": req.CommandLine, "args": req.Args,
		}).Debug("Parsed request")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("split-command") {
			cfg.Launch.SplitCommand = &splitCommand
		}
		if cmd.Flags().Changed("workdir") {
			cfg.Launch.WorkingDir = &workdir
			if err := cfg.Launch.Validate(); err != nil {
				return errs.NewArgumentError("invalid --workdir: %v", err)
			}
		}

		platform, err := openPlatform(cfg, dryRun)
		if err != nil {
			return err
		}
		application := app.NewApplication(cfg, platform)
		defer func() {
			if err := application.Close(); err != nil {
				logrus.WithError(err).Warn("Cant close the display backend")
			}
		}()

		code, err := application.Run(context.Background(), req)
		if err != nil {
			return err
		}
		exitCode = code
		return nil
	},
}

// parseRequest reads WIDTH HEIGHT COMMAND, everything after a dash is passed
// to the child.
func parseRequest(args []string, argsLenAtDash int) (app.Request, error) {
	positional, extra := args, []string(nil)
	if argsLenAtDash >= 0 {
		positional, extra = args[:argsLenAtDash], args[argsLenAtDash:]
	}

	if len(positional) != 3 {
		return app.Request{}, errs.NewArgumentError("expected WIDTH HEIGHT COMMAND, got %d argument(s)", len(positional))
	}

	width, err := parseDimension("width", positional[0])
	if err != nil {
		return app.Request{}, err
	}
	height, err := parseDimension("height", positional[1])
	if err != nil {
		return app.Request{}, err
	}
	if strings.TrimSpace(positional[2]) == "" {
		return app.Request{}, errs.NewArgumentError("command cant be empty")
	}

	return app.Request{
		Width:       width,
		Height:      height,
		CommandLine: positional[2],
		Args:        extra,
	}, nil
}

func parseDimension(name, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, errs.NewArgumentError("invalid %s %q, expected a positive integer", name, value)
	}
	return parsed, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Show what would be done without changing the display mode",
	)
	runCmd.Flags().BoolVar(
		&splitCommand,
		"split-command",
		false,
		"Split COMMAND with shell quoting rules instead of treating it as a single program path",
	)
	runCmd.Flags().StringVar(
		&workdir,
		"workdir",
		"",
		"Working directory of the child process",
	)
}
