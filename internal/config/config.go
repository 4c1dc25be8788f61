package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the unified application configuration
type Config struct {
	DataDir  string
	Backend  string
	Slot     string
	PrintDir string
}

// Settings represents the config file structure
type Settings struct {
	DataDir  string `yaml:"data_dir"`
	Backend  string `yaml:"backend,omitempty"`
	Slot     string `yaml:"slot,omitempty"`
	PrintDir string `yaml:"print_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir string
	Backend string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Backend: BackendFile,
		Slot:    "memo",
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.DataDir != "" {
				cfg.DataDir = expandPath(fileConfig.DataDir)
			}
			if fileConfig.Backend != "" {
				cfg.Backend = fileConfig.Backend
			}
			if fileConfig.Slot != "" {
				cfg.Slot = fileConfig.Slot
			}
			if fileConfig.PrintDir != "" {
				cfg.PrintDir = expandPath(fileConfig.PrintDir)
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envDir := os.Getenv("MEMOCAL_DIR"); envDir != "" {
		cfg.DataDir = expandPath(envDir)
	}
	if envBackend := os.Getenv("MEMOCAL_BACKEND"); envBackend != "" {
		cfg.Backend = envBackend
	}

	// Priority 1: CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}

	if cfg.DataDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = defaultDir
	}
	if cfg.PrintDir == "" {
		cfg.PrintDir = filepath.Join(cfg.DataDir, "print")
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, BackendFile, BackendSQLite)
	}

	return cfg, nil
}

// GetDefaultDir returns the default data directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "memocal"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "memocal", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDataDir ensures the data directory exists
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// DatabasePath returns the sqlite database path used by the sqlite backend
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "memocal.db")
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir: defaultDir,
		Backend: BackendFile,
		Slot:    "memo",
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
