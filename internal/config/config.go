package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultURL          = "/"
	DefaultLogLevel     = "info"
	DefaultDayTimezone  = "UTC"
	DefaultToastSeconds = 3
)

// Config holds the unified application configuration
type Config struct {
	SeedFile     string
	InitialURL   string
	LogDir       string
	LogLevel     string
	DayTimezone  string
	ToastSeconds int
	ConfigPath   string
}

// Settings represents the config file structure
type Settings struct {
	SeedFile     string `toml:"seed_file,omitempty"`
	InitialURL   string `toml:"initial_url,omitempty"`
	LogDir       string `toml:"log_dir,omitempty"`
	LogLevel     string `toml:"log_level,omitempty"`
	DayTimezone  string `toml:"day_timezone,omitempty"`
	ToastSeconds int    `toml:"toast_seconds,omitempty"`
}

// CLIFlags holds parsed CLI flags. Empty values are not applied.
type CLIFlags struct {
	ConfigPath  string
	SeedFile    string
	InitialURL  string
	LogDir      string
	LogLevel    string
	DayTimezone string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		InitialURL:   DefaultURL,
		LogLevel:     DefaultLogLevel,
		DayTimezone:  DefaultDayTimezone,
		ToastSeconds: DefaultToastSeconds,
	}

	if logDir, err := GetDefaultLogDir(); err == nil {
		cfg.LogDir = logDir
	}

	configPath := flags.ConfigPath
	if configPath == "" {
		if p, err := getConfigPath(); err == nil {
			configPath = p
		}
	}
	cfg.ConfigPath = configPath

	// Priority 3: config file
	if configPath != "" {
		fileConfig, err := loadConfigFile(configPath)
		switch {
		case err == nil:
			cfg.applySettings(fileConfig)
		case os.IsNotExist(err) && flags.ConfigPath == "":
			// no config file yet; defaults apply
		default:
			return nil, fmt.Errorf("error loading config %s: %w", configPath, err)
		}
	}

	// Priority 2: Environment variables override config file
	cfg.applySettings(&Settings{
		SeedFile:    os.Getenv("TASKTRACK_SEED"),
		InitialURL:  os.Getenv("TASKTRACK_URL"),
		LogDir:      os.Getenv("TASKTRACK_LOG_DIR"),
		LogLevel:    os.Getenv("TASKTRACK_LOG_LEVEL"),
		DayTimezone: os.Getenv("TASKTRACK_DAY_TIMEZONE"),
	})
	if v := os.Getenv("TASKTRACK_TOAST_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid TASKTRACK_TOAST_SECONDS %q", v)
		}
		cfg.ToastSeconds = n
	}

	// Priority 1: CLI flags override everything
	cfg.applySettings(&Settings{
		SeedFile:    flags.SeedFile,
		InitialURL:  flags.InitialURL,
		LogDir:      flags.LogDir,
		LogLevel:    flags.LogLevel,
		DayTimezone: flags.DayTimezone,
	})

	if _, err := cfg.DayLocation(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applySettings(s *Settings) {
	if s.SeedFile != "" {
		c.SeedFile = expandPath(s.SeedFile)
	}
	if s.InitialURL != "" {
		c.InitialURL = s.InitialURL
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
	if s.LogLevel != "" {
		c.LogLevel = strings.ToLower(s.LogLevel)
	}
	if s.DayTimezone != "" {
		c.DayTimezone = s.DayTimezone
	}
	if s.ToastSeconds > 0 {
		c.ToastSeconds = s.ToastSeconds
	}
}

// DayLocation resolves DayTimezone. "Local" means the system zone.
func (c *Config) DayLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid day_timezone %q: %w", c.DayTimezone, err)
	}
	return loc, nil
}

// ToastDuration returns how long a notification stays on screen.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

// GetDefaultLogDir returns the directory debug.log is written to by default
func GetDefaultLogDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "tasktrack"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tasktrack", "config.toml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile(configPath string) error {
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		InitialURL:   DefaultURL,
		LogLevel:     DefaultLogLevel,
		DayTimezone:  DefaultDayTimezone,
		ToastSeconds: DefaultToastSeconds,
	}

	data, err := toml.Marshal(settings)
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
