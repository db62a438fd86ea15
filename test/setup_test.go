package test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	binaryPathEnvVar = "SDR_BINARY_PATH"
)

var (
	_, b, _, _ = runtime.Caller(0)
	basepath   = filepath.Dir(filepath.Dir(b))
	binaryPath = ""
	debug      = flag.Bool("debug", false, "pass --debug to the binary")
)

func binary() string {
	if filepath.IsAbs(binaryPath) {
		return binaryPath
	}
	return filepath.Join(basepath, binaryPath)
}

func prepBinaryRun(ctx context.Context, args []string) *exec.Cmd {
	if *debug {
		args = append([]string{"--debug"}, args...)
	}
	// nolint:gosec
	cmd := exec.CommandContext(ctx, binary(), args...)
	cmd.Env = append(os.Environ(), "GOCOVERDIR=.coverdata")
	return cmd
}

// runBinary returns the combined output and the exit code of the binary.
func runBinary(ctx context.Context, args []string) ([]byte, int, error) {
	out, err := prepBinaryRun(ctx, args).CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, exitErr.ExitCode(), nil
	}
	// nolint:wrapcheck
	return out, 0, err
}

func find(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(s string, d fs.DirEntry, e error) error {
		if e != nil {
			return e
		}
		if filepath.Ext(d.Name()) == ext {
			files = append(files, s)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cant walk dir: %w", err)
	}
	return files, nil
}

func TestMain(m *testing.M) {
	flag.Parse()
	binaryPath = os.Getenv(binaryPathEnvVar)
	if binaryPath == "" {
		fmt.Printf("no binary provided in %s, skipping binary tests\n", binaryPathEnvVar)
		os.Exit(0)
	}

	os.Exit(m.Run())
}
