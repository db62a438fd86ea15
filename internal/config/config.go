// Package config handles loading and validation of TOML and YAML configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "$HOME/.config/setdisplayresolution/config.toml"

type Config struct {
	configPath    string
	General       *GeneralSection       `toml:"general" yaml:"general"`
	Launch        *LaunchSection        `toml:"launch" yaml:"launch"`
	Notifications *NotificationsSection `toml:"notifications" yaml:"notifications"`
}

type GeneralSection struct {
	Backend *BackendType `toml:"backend" yaml:"backend"`
}

type LaunchSection struct {
	SplitCommand       *bool   `toml:"split_command" yaml:"split_command"`
	WorkingDir         *string `toml:"working_dir" yaml:"working_dir"`
	InhibitScreensaver *bool   `toml:"inhibit_screensaver" yaml:"inhibit_screensaver"`
}

type NotificationsSection struct {
	Disabled  *bool  `toml:"disabled" yaml:"disabled"`
	TimeoutMs *int32 `toml:"timeout_ms" yaml:"timeout_ms"`
}

// NewConfig loads the configuration at configPath. A missing file yields the
// defaults unless mustExist is set.
func NewConfig(configPath string, mustExist bool) (*Config, error) {
	configPath = os.ExpandEnv(configPath)

	var config Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if mustExist {
			return nil, fmt.Errorf("configuration file %s not found", configPath)
		}
		logrus.WithField("path", configPath).Debug("No configuration file, using defaults")
		config.configPath = configPath
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid default configuration: %w", err)
		}
		return &config, nil
	}

	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("cant convert config path to abs %w", err)
	}
	config.configPath = absConfig

	if err := decode(absConfig, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.WithField("path", absConfig).Debug("Configuration loaded")
	return &config, nil
}

// Default returns a validated configuration with every default filled in.
func Default() *Config {
	var config Config
	// defaults always validate
	_ = config.Validate()
	return &config
}

func decode(path string, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		//nolint:gosec
		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cant read %s: %w", path, err)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(contents))
		decoder.KnownFields(true)
		if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		meta, err := toml.DecodeFile(path, config)
		if err != nil {
			return fmt.Errorf("failed to decode TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown configuration keys: %v", undecoded)
		}
	}
	return nil
}

func (c *Config) ConfigPath() string {
	return c.configPath
}

func (c *Config) Validate() error {
	if c.General == nil {
		c.General = &GeneralSection{}
	}
	if err := c.General.Validate(); err != nil {
		return fmt.Errorf("general section validation failed: %w", err)
	}

	if c.Launch == nil {
		c.Launch = &LaunchSection{}
	}
	if err := c.Launch.Validate(); err != nil {
		return fmt.Errorf("launch section validation failed: %w", err)
	}

	if c.Notifications == nil {
		c.Notifications = &NotificationsSection{}
	}
	if err := c.Notifications.Validate(); err != nil {
		return fmt.Errorf("notifications section validation failed: %w", err)
	}

	return nil
}

func (g *GeneralSection) Validate() error {
	if g.Backend == nil {
		g.Backend = utils.JustPtr(Auto)
	}
	return nil
}

func (l *LaunchSection) Validate() error {
	if l.SplitCommand == nil {
		l.SplitCommand = utils.BoolPtr(false)
	}
	if l.InhibitScreensaver == nil {
		l.InhibitScreensaver = utils.BoolPtr(false)
	}
	if l.WorkingDir == nil {
		l.WorkingDir = utils.StringPtr("")
	}

	dir := os.ExpandEnv(*l.WorkingDir)
	l.WorkingDir = &dir
	if dir == "" {
		return nil
	}

	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("working_dir %s not accessible: %w", dir, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("working_dir %s is not a directory", dir)
	}

	return nil
}

func (n *NotificationsSection) Validate() error {
	if n.Disabled == nil {
		n.Disabled = utils.BoolPtr(true)
	}
	if n.TimeoutMs == nil {
		n.TimeoutMs = utils.JustPtr(int32(3000))
	}
	if *n.TimeoutMs < 0 {
		return errors.New("timeout_ms cant be negative")
	}
	return nil
}
