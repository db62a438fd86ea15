// Package signal provides signal handling functionality.
package signal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
)

// Interrupted is returned when a termination signal ended the run.
type Interrupted struct {
	Signal os.Signal
}

func (e *Interrupted) Error() string {
	return fmt.Sprintf("interrupted by %s", e.Signal)
}

// ExitCode follows the shell convention of 128 plus the signal number.
func (e *Interrupted) ExitCode() int {
	if sig, ok := e.Signal.(syscall.Signal); ok {
		return 128 + int(sig)
	}
	return 128 + int(syscall.SIGINT)
}

// Target receives relayed signals, *os.Process satisfies it.
type Target interface {
	Signal(os.Signal) error
}

type Handler struct {
	sigChan  chan os.Signal
	mu       sync.Mutex
	received os.Signal
}

func NewHandler() *Handler {
	return &Handler{
		sigChan: make(chan os.Signal, 1),
	}
}

func (h *Handler) Start() {
	signal.Notify(h.sigChan, terminationSignals...)
	logrus.WithField("signals", terminationSignals).Debug("Signal notifications registered")
}

func (h *Handler) Stop() {
	signal.Stop(h.sigChan)
}

// Poll consumes a pending signal without blocking and returns the last
// signal seen, if any.
func (h *Handler) Poll() os.Signal {
	select {
	case sig := <-h.sigChan:
		h.record(sig)
	default:
	}
	return h.Received()
}

// Received returns the last signal seen or nil.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

func (h *Handler) record(sig os.Signal) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = sig
}

// Relay forwards incoming signals to target until ctx is done.
func (h *Handler) Relay(ctx context.Context, target Target) {
	logrus.Debug("Signal relay started")
	for {
		select {
		case sig := <-h.sigChan:
			h.record(sig)
			fields := utils.NewLogrusCustomFields(map[string]interface{}{"signal": sig})
			logrus.WithFields(fields.WithLogID(utils.SignalRelayedLogID)).Info(
				"Received termination signal, waiting for the child to exit")
			if !relaysToChild(sig) {
				continue
			}
			if err := target.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
				logrus.WithError(err).WithField("signal", sig).Warn("Cant relay signal to the child")
			}
		case <-ctx.Done():
			logrus.Debug("Signal relay done")
			return
		}
	}
}
