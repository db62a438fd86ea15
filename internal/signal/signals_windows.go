//go:build windows

package signal

import (
	"os"
)

// console control events already reach every process attached to the console
var terminationSignals = []os.Signal{os.Interrupt}

func relaysToChild(os.Signal) bool {
	return false
}
