package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFileContents reads a file the child process wrote and compares it.
func AssertFileContents(t *testing.T, path, expected string) {
	// nolint:gosec
	content, err := os.ReadFile(path)
	require.NoError(t, err, "should be able to read %s", path)
	assert.Equal(t, expected, string(content))
}
