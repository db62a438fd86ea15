package testutils

import (
	"context"
	"sync"

	"github.com/fiffeek/setdisplayresolution/internal/display"
)

// FakeNative is the opaque payload FakePlatform attaches to its modes.
type FakeNative struct {
	DeviceName string
	Index      int
}

// FakePlatform is an in-memory display.Platform. Applying a mode makes it the
// current one, the way a real display would.
type FakePlatform struct {
	mu          sync.Mutex
	current     display.Mode
	modes       []display.Mode
	applied     []display.Mode
	modeAtCalls int
	closed      bool

	CurrentErr error
	// ModeErrAt makes ModeAt fail at that index when ModeErr is set.
	ModeErrAt int
	ModeErr   error
	// ApplyErrs are returned by successive Apply calls, nil entries succeed.
	ApplyErrs []error
}

func NewFakePlatform(current display.Mode, modes ...display.Mode) *FakePlatform {
	return &FakePlatform{current: current, modes: modes}
}

// FakeMode builds a mode carrying a FakeNative payload.
func FakeMode(width, height, bpp, refresh int, deviceName string) display.Mode {
	return display.NewMode(width, height, bpp, refresh, FakeNative{DeviceName: deviceName})
}

func (f *FakePlatform) Name() string {
	return "fake"
}

func (f *FakePlatform) Current(_ context.Context) (display.Mode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CurrentErr != nil {
		return display.Mode{}, f.CurrentErr
	}
	return f.current, nil
}

func (f *FakePlatform) ModeAt(_ context.Context, index int) (display.Mode, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modeAtCalls++
	if f.ModeErr != nil && index == f.ModeErrAt {
		return display.Mode{}, false, f.ModeErr
	}
	if index >= len(f.modes) {
		return display.Mode{}, false, nil
	}
	return f.modes[index], true, nil
}

func (f *FakePlatform) Apply(_ context.Context, mode display.Mode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := len(f.applied)
	f.applied = append(f.applied, mode)
	if call < len(f.ApplyErrs) && f.ApplyErrs[call] != nil {
		return f.ApplyErrs[call]
	}
	f.current = mode
	return nil
}

func (f *FakePlatform) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Applied returns every mode passed to Apply, failed calls included.
func (f *FakePlatform) Applied() []display.Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]display.Mode{}, f.applied...)
}

func (f *FakePlatform) ModeAtCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.modeAtCalls
}

func (f *FakePlatform) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
