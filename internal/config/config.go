package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version" validate:"gte=1"`
	Table      TableSettings `toml:"table"`
	UISettings UISettings    `toml:"ui"`
	Log        LogSettings   `toml:"log"`
}

// TableSettings controls how the data table is built
type TableSettings struct {
	Selectable bool `toml:"selectable"`
	ShowRowIDs bool `toml:"show_row_ids"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CheckedGlyph       string `toml:"checked_glyph" validate:"required"`
	UncheckedGlyph     string `toml:"unchecked_glyph" validate:"required"`
	IndeterminateGlyph string `toml:"indeterminate_glyph" validate:"required"`
	ShowHelpBar        bool   `toml:"show_help_bar"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
	validate *validator.Validate
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return NewConfigServiceAt(filepath.Join(configDir, "tablesel", "config.toml"))
}

// NewConfigServiceAt creates a config service whose Load and Save use path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{
		filePath: path,
		validate: validator.New(),
	}
}

// Load loads the configuration, returning defaults if the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cs.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := cs.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Table: TableSettings{
			Selectable: true,
		},
		UISettings: UISettings{
			CheckedGlyph:       "[x]",
			UncheckedGlyph:     "[ ]",
			IndeterminateGlyph: "[-]",
			ShowHelpBar:        true,
		},
		Log: LogSettings{
			Level: "info",
			File:  "tablesel.log",
		},
	}
}
