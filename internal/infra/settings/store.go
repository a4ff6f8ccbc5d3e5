// Package settings persists the user configuration as TOML under the
// XDG config directory.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/qretaio/tasq/internal/domain"
)

// Ensure Store implements domain.SettingsStore.
var _ domain.SettingsStore = (*Store)(nil)

// FileName is the settings file name inside the config directory.
const FileName = "settings.toml"

// DefaultRoot is the scan root configured on first use.
const DefaultRoot = "~/src"

// settingsFile is the on-disk TOML shape.
type settingsFile struct {
	Roots      []string                  `toml:"roots"`
	Assistants map[string]assistantTable `toml:"assistants,omitempty"`
	Log        logTable                  `toml:"log,omitempty"`
}

type assistantTable struct {
	Command string `toml:"command,omitempty"`
	Args    string `toml:"args,omitempty"`
}

type logTable struct {
	Level string `toml:"level,omitempty"`
}

// Store loads and saves settings.
type Store struct {
	filePath string
}

// NewStore creates a store at the default XDG config location.
func NewStore() *Store {
	return &Store{filePath: filepath.Join(DefaultConfigDir(), FileName)}
}

// NewStoreAt creates a store with an explicit file path. Used in tests.
func NewStoreAt(filePath string) *Store {
	return &Store{filePath: filePath}
}

// DefaultConfigDir returns the tasq config directory, honoring
// XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasq")
}

// DefaultStateDir returns the tasq state directory, honoring
// XDG_STATE_HOME. Prompt transcripts live here.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "tasq")
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads the settings file, returning defaults (a single ~/src
// root) when it does not exist yet.
func (s *Store) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var file settingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if len(file.Roots) == 0 {
		file.Roots = []string{DefaultRoot}
	}

	out := &domain.Settings{
		Roots:      dedupe(file.Roots),
		Assistants: make(map[string]domain.AssistantConfig, len(file.Assistants)),
		Log:        domain.LogConfig{Level: file.Log.Level},
	}
	for name, a := range file.Assistants {
		out.Assistants[name] = domain.AssistantConfig{Command: a.Command, Args: a.Args}
	}
	return out, nil
}

// AddRoot appends a scan root, deduplicated on insertion.
func (s *Store) AddRoot(path string) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	normalized := normalizeRoot(path)
	for _, r := range current.Roots {
		if r == normalized {
			return fmt.Errorf("%w: %s", domain.ErrRootExists, normalized)
		}
	}
	current.Roots = append(current.Roots, normalized)
	return s.save(current)
}

// RemoveRoot removes a scan root.
func (s *Store) RemoveRoot(path string) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	normalized := normalizeRoot(path)
	kept := make([]string, 0, len(current.Roots))
	found := false
	for _, r := range current.Roots {
		if r == normalized {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrRootNotFound, normalized)
	}
	current.Roots = kept
	return s.save(current)
}

// save writes the settings file, creating the config directory on
// first use.
func (s *Store) save(settings *domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file := settingsFile{
		Roots:      settings.Roots,
		Assistants: make(map[string]assistantTable, len(settings.Assistants)),
		Log:        logTable{Level: settings.Log.Level},
	}
	for name, a := range settings.Assistants {
		file.Assistants[name] = assistantTable{Command: a.Command, Args: a.Args}
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func defaultSettings() *domain.Settings {
	return &domain.Settings{
		Roots:      []string{DefaultRoot},
		Assistants: map[string]domain.AssistantConfig{},
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// normalizeRoot cleans a root path, preserving the "~" shorthand so
// the stored form stays portable across machines.
func normalizeRoot(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Clean(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(path)
}

// dedupe removes duplicate roots, keeping the first occurrence.
func dedupe(roots []string) []string {
	seen := make(map[string]bool, len(roots))
	result := make([]string, 0, len(roots))
	for _, r := range roots {
		if !seen[r] {
			seen[r] = true
			result = append(result, r)
		}
	}
	return result
}
