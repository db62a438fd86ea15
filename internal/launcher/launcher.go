// Package launcher starts the child process and waits for it to exit.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/fiffeek/setdisplayresolution/internal/signal"
	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Spec describes the child to run.
type Spec struct {
	// CommandLine is the program to run, or a full shell-quoted command
	// line when SplitCommand is set.
	CommandLine  string
	Args         []string
	SplitCommand bool
	WorkingDir   string

	// Stdio defaults to the current process' streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s Spec) argv() ([]string, error) {
	argv := []string{s.CommandLine}
	if s.SplitCommand {
		split, err := shlex.Split(s.CommandLine)
		if err != nil {
			return nil, fmt.Errorf("cant split command line: %w", err)
		}
		argv = split
	}
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("empty command")
	}
	return append(argv, s.Args...), nil
}

type Launcher struct {
	signals *signal.Handler
}

func NewLauncher(signals *signal.Handler) *Launcher {
	return &Launcher{signals: signals}
}

// Run starts the child and blocks until it exits, relaying termination
// signals to it meanwhile. A non-zero exit is reported through the exit code.
func (l *Launcher) Run(ctx context.Context, spec Spec) (int, error) {
	argv, err := spec.argv()
	if err != nil {
		return 0, &errs.ProcessLaunchError{Command: spec.CommandLine, Err: err}
	}

	//nolint:gosec
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = spec.WorkingDir
	cmd.Env = os.Environ()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin
	}
	if spec.Stdout != nil {
		cmd.Stdout = spec.Stdout
	}
	if spec.Stderr != nil {
		cmd.Stderr = spec.Stderr
	}

	if err := cmd.Start(); err != nil {
		return 0, &errs.ProcessLaunchError{Command: spec.CommandLine, Err: err}
	}

	fields := utils.NewLogrusCustomFields(map[string]interface{}{
		"pid":     cmd.Process.Pid,
		"command": argv,
		"dir":     spec.WorkingDir,
	})
	logrus.WithFields(fields.WithLogID(utils.ChildStartedLogID)).Info("Child process started")

	relayCtx, stopRelay := context.WithCancel(context.WithoutCancel(ctx))
	var waitErr error
	var eg errgroup.Group
	eg.Go(func() error {
		defer stopRelay()
		waitErr = cmd.Wait()
		return nil
	})
	eg.Go(func() error {
		l.signals.Relay(relayCtx, cmd.Process)
		return nil
	})
	_ = eg.Wait()

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return 0, fmt.Errorf("waiting for %s failed: %w", spec.CommandLine, waitErr)
	}

	exitCode := cmd.ProcessState.ExitCode()
	status, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		interrupted := &signal.Interrupted{Signal: status.Signal()}
		exitCode = interrupted.ExitCode()
		if l.signals.Received() != nil {
			logChildExited(cmd.Process.Pid, exitCode)
			return exitCode, interrupted
		}
	}

	logChildExited(cmd.Process.Pid, exitCode)
	return exitCode, nil
}

func logChildExited(pid, exitCode int) {
	fields := utils.NewLogrusCustomFields(map[string]interface{}{
		"pid":       pid,
		"exit_code": exitCode,
	})
	logrus.WithFields(fields.WithLogID(utils.ChildExitedLogID)).Info("Child process exited")
}
