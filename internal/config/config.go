package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/logger"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.seqtools)
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile is the JSON keybinding override file
	KeybindsFile string

	// LogFile is the default log destination
	LogFile string
)

// Settings is the content of config.yaml
type Settings struct {
	Viewer ViewerSettings `yaml:"viewer"`
	Output OutputSettings `yaml:"output"`
	Log    LogSettings    `yaml:"log"`
}

// ViewerSettings are the initial values handed to the alignment viewer
type ViewerSettings struct {
	TickMS              int  `yaml:"tick_ms"`
	Dark                bool `yaml:"dark"`
	HighlightBackground bool `yaml:"highlight_background"`
}

// OutputSettings control how records are written by the streaming commands
type OutputSettings struct {
	LineWidth int `yaml:"line_width"` // FASTA wrap width, 0 = single line
}

// LogSettings select the log level and file
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Defaults returns the settings used when config.yaml is absent
func Defaults() Settings {
	return Settings{
		Viewer: ViewerSettings{
			TickMS:              1000,
			Dark:                true,
			HighlightBackground: true,
		},
		Log: LogSettings{Level: "info"},
	}
}

// TickInterval returns the viewer redraw interval
func (v ViewerSettings) TickInterval() time.Duration {
	if v.TickMS <= 0 {
		return time.Second
	}
	return time.Duration(v.TickMS) * time.Millisecond
}

// Initialize sets up the configuration directory
// It creates ~/.seqtools/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".seqtools"))
}

// InitializeAt sets the global paths relative to dir and creates it
func InitializeAt(dir string) error {
	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "seqtools.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}
	return nil
}

// Load reads settings from path. A missing file yields Defaults().
// Keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, errors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, errors.ConfigLoadFailed(path, err)
	}
	if _, err := logger.ParseLevel(settings.Log.Level); err != nil {
		return settings, errors.ConfigLoadFailed(path, err)
	}
	if settings.Output.LineWidth < 0 {
		return settings, errors.ConfigLoadFailed(path, fmt.Errorf("output.line_width must not be negative"))
	}

	return settings, nil
}

// LogPath returns the configured log file, falling back to LogFile
func (s Settings) LogPath() string {
	if s.Log.File != "" {
		return s.Log.File
	}
	return LogFile
}
