package testutils

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fiffeek/setdisplayresolution/internal/hypr"
	"github.com/stretchr/testify/require"
)

func SetupHyprEnvVars(t *testing.T) (string, string) {
	// unix socket paths are limited in length, t.TempDir() can be too deep
	tempDir, err := os.MkdirTemp("", "sdr")
	require.NoError(t, err, "failed to create temp dir")
	t.Cleanup(func() { _ = os.RemoveAll(tempDir) })

	signature := "test_signature"
	hyprDir := filepath.Join(tempDir, "hypr", signature)
	//nolint:gosec
	err = os.MkdirAll(hyprDir, 0o755)
	require.NoError(t, err, "failed to create hypr directory")

	t.Setenv("XDG_RUNTIME_DIR", tempDir)
	t.Setenv(hypr.InstanceSignatureEnv, signature)
	return tempDir, signature
}

func SetupHyprSocket(ctx context.Context, t *testing.T, xdgRuntimeDir, signature string,
	hyprSocketFun func(string, string) string,
) (net.Listener, func()) {
	socketPath := hyprSocketFun(xdgRuntimeDir, signature)
	lc := &net.ListenConfig{}
	listener, err := lc.Listen(ctx, "unix", socketPath)
	require.NoError(t, err, "failed to create a test socket %s", socketPath)
	return listener, func() {
		_ = listener.Close()
	}
}

// FakeHyprServer answers `j/monitors` and `keyword monitor` requests on the
// Hyprland command socket. Accepted monitor rules update the served state.
type FakeHyprServer struct {
	t            *testing.T
	listener     net.Listener
	mu           sync.Mutex
	monitors     hypr.MonitorSpecs
	commands     []string
	keywordReply string
	done         chan struct{}
}

func StartFakeHyprServer(ctx context.Context, t *testing.T, monitors hypr.MonitorSpecs) *FakeHyprServer {
	xdg, signature := SetupHyprEnvVars(t)
	listener, teardown := SetupHyprSocket(ctx, t, xdg, signature, hypr.GetHyprSocket)

	server := &FakeHyprServer{
		t:            t,
		listener:     listener,
		monitors:     monitors,
		keywordReply: "ok",
		done:         make(chan struct{}),
	}
	go server.serve()
	t.Cleanup(func() {
		teardown()
		<-server.done
	})
	return server
}

// LoadMonitorsFromJSON loads monitor specifications from a JSON file.
func LoadMonitorsFromJSON(t *testing.T, filename string) hypr.MonitorSpecs {
	//nolint:gosec
	data, err := os.ReadFile(filename)
	require.NoError(t, err, "cant read %s", filename)

	var monitors hypr.MonitorSpecs
	require.NoError(t, json.Unmarshal(data, &monitors), "cant parse %s", filename)
	return monitors
}

func (f *FakeHyprServer) serve() {
	defer close(f.done)
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		f.handle(conn)
	}
}

func (f *FakeHyprServer) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	buf := make([]byte, 64*1024)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}
	command := string(buf[:n])

	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)

	switch {
	case strings.HasPrefix(command, "j/monitors"):
		payload, err := json.Marshal(f.monitors)
		if err != nil {
			f.t.Errorf("cant marshal monitors: %v", err)
			return
		}
		_, _ = conn.Write(payload)
	case strings.HasPrefix(command, "keyword monitor "):
		if f.keywordReply == "ok" {
			f.applyRule(strings.TrimPrefix(command, "keyword monitor "))
		}
		_, _ = conn.Write([]byte(f.keywordReply))
	default:
		_, _ = conn.Write([]byte("unknown request"))
	}
}

func (f *FakeHyprServer) applyRule(rule string) {
	parts := strings.Split(rule, ",")
	if len(parts) < 2 {
		return
	}
	mode, err := hypr.ParseMode(parts[1])
	if err != nil {
		f.t.Errorf("fake hypr got an invalid rule %s: %v", rule, err)
		return
	}
	for _, monitor := range f.monitors {
		if monitor.Name == parts[0] {
			monitor.Width = mode.Width
			monitor.Height = mode.Height
			monitor.RefreshRate = float64(mode.Hz)
		}
	}
}

// Commands returns every request received so far.
func (f *FakeHyprServer) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.commands...)
}

// Keywords returns the `keyword ...` requests received so far.
func (f *FakeHyprServer) Keywords() []string {
	var keywords []string
	for _, command := range f.Commands() {
		if strings.HasPrefix(command, "keyword ") {
			keywords = append(keywords, command)
		}
	}
	return keywords
}

func (f *FakeHyprServer) SetKeywordReply(reply string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywordReply = reply
}
