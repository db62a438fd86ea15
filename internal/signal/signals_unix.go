//go:build unix

package signal

import (
	"os"

	"golang.org/x/sys/unix"
)

var terminationSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}

// relaysToChild skips SIGINT, the terminal already sends it to the whole
// foreground process group, child included.
func relaysToChild(sig os.Signal) bool {
	return sig != unix.SIGINT
}
