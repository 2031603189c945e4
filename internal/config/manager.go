package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/kickstart-dev/kickstart/internal/defs"
)

const configType = "yaml"

// Manager loads and edits the settings stored in a kickstart home directory.
// It is safe for concurrent use.
type Manager struct {
	dir     string
	envFile string
	logger  *slog.Logger

	mu       sync.RWMutex
	v        *viper.Viper
	settings *Settings
}

// Option configures a Manager.
type Option func(*Manager)

// WithEnvFile loads path as a .env file before reading the environment.
func WithEnvFile(path string) Option {
	return func(m *Manager) {
		m.envFile = path
	}
}

// NewManager creates a Manager for the home directory dir.
// If logger is nil, a no-op logger is used.
func NewManager(dir string, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Manager{dir: filepath.Clean(dir), logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the kickstart home directory.
func (m *Manager) Dir() string {
	return m.dir
}

// FilePath returns the settings file location.
func (m *Manager) FilePath() string {
	return filepath.Join(m.dir, defs.ConfigYAML)
}

// Load merges defaults, the settings file, the .env file and KICKSTART_*
// environment variables, in increasing priority, then validates the result.
func (m *Manager) Load() (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := loadEnvFile(m.envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaultValues(m.dir) {
		v.SetDefault(key, value)
	}
	v.SetConfigFile(m.FilePath())
	v.SetConfigType(configType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if _, err := os.Stat(m.FilePath()); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, m.FilePath(), err)
		}
		m.logger.Debug("settings file loaded", "path", m.FilePath())
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", m.FilePath(), err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.TemplatesDir = expandHome(s.TemplatesDir)
	s.ProjectsFile = expandHome(s.ProjectsFile)

	if err := Validate(&s); err != nil {
		return nil, err
	}

	m.v = v
	m.settings = &s
	return m.cloneSettings(), nil
}

// Settings returns the loaded settings, or the defaults before Load.
func (m *Manager) Settings() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return NewDefaultSettings(m.dir)
	}
	return m.cloneSettings()
}

// Get returns the effective value of key as a string.
func (m *Manager) Get(key string) (string, error) {
	if _, err := parseValue(key, "true"); errors.Is(err, ErrUnknownKey) {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.v == nil {
		return fmt.Sprint(defaultValues(m.dir)[key]), nil
	}
	return m.v.GetString(key), nil
}

// List returns every key with its effective value.
func (m *Manager) List() []Entry {
	entries := make([]Entry, 0, len(Keys()))
	for _, key := range Keys() {
		value, _ := m.Get(key)
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries
}

// Set validates value for key and persists it to the settings file. Only
// the file's own contents are written back; defaults and environment
// overrides are not.
func (m *Manager) Set(key, value string) error {
	typed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create %s: %w", m.dir, err)
	}

	file := viper.New()
	file.SetConfigFile(m.FilePath())
	file.SetConfigType(configType)
	if _, err := os.Stat(m.FilePath()); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidYAML, m.FilePath(), err)
		}
	}
	file.Set(key, typed)
	if err := file.WriteConfigAs(m.FilePath()); err != nil {
		return fmt.Errorf("write %s: %w", m.FilePath(), err)
	}

	if m.v != nil {
		m.v.Set(key, typed)
	}
	m.logger.Info("setting updated", "key", key, "path", m.FilePath())
	return nil
}

func (m *Manager) cloneSettings() *Settings {
	s := *m.settings
	return &s
}
