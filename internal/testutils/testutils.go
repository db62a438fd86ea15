// Package testutils provides utils for testing
// should not be imported by any other app packages
package testutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/fiffeek/setdisplayresolution/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	cfg     *config.Config
	t       *testing.T
	cfgFile *string
}

func NewTestConfig(t *testing.T) *TestConfig {
	return &TestConfig{cfg: &config.Config{}, t: t}
}

func (t *TestConfig) WithGeneral(g *config.GeneralSection) *TestConfig {
	t.cfg.General = g
	return t
}

func (t *TestConfig) WithLaunch(l *config.LaunchSection) *TestConfig {
	t.cfg.Launch = l
	return t
}

func (t *TestConfig) WithNotifications(n *config.NotificationsSection) *TestConfig {
	t.cfg.Notifications = n
	return t
}

func (t *TestConfig) WithConfigDir(dir string) *TestConfig {
	require.NoError(t.t, os.MkdirAll(dir, 0o750))
	cfgFile := filepath.Join(dir, "config.toml")
	t.cfgFile = &cfgFile
	return t
}

func (t *TestConfig) WithConfigPath(path string) *TestConfig {
	t.cfgFile = &path
	return t
}

func (t *TestConfig) SaveToFile() *TestConfig {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(t.cfg); err != nil {
		t.t.Fatalf("cant encode config: %v", err)
	}
	require.NotNil(t.t, t.cfgFile, "cfgFile cant be nil")
	//nolint:gosec
	if err := os.WriteFile(*t.cfgFile, buf.Bytes(), 0o644); err != nil {
		t.t.Fatalf("cant write config: %v", err)
	}
	return t
}

func (t *TestConfig) createConfig() *config.Config {
	logrus.WithFields(logrus.Fields{"path": *t.cfgFile}).Debug("Creating config")
	cfg, err := config.NewConfig(*t.cfgFile, true)
	require.NoError(t.t, err, "cant create config")
	return cfg
}

func (t *TestConfig) FillDefaults() *TestConfig {
	if t.cfgFile == nil {
		t = t.WithConfigDir(t.t.TempDir())
	}
	return t
}

// Path writes the config and returns its location, for binary tests.
func (t *TestConfig) Path() string {
	t.FillDefaults().SaveToFile()
	return *t.cfgFile
}

func (t *TestConfig) Get() *config.Config {
	return t.FillDefaults().SaveToFile().createConfig()
}
