// quickmemo/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ViniZap4/quickmemo/domain"
)

const dataDirName = ".quick-memo"

type Config struct {
	DataDir          string        `yaml:"data_dir"`
	AutoSaveInterval time.Duration `yaml:"autosave_interval"`
	DefaultTitle     string        `yaml:"default_title"`
	LogLevel         string        `yaml:"log_level"`
	Server           ServerConfig  `yaml:"server"`
	DatabaseURL      string        `yaml:"database_url"`
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when nothing else is set. The data
// directory lives under the user's home.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return &Config{
		DataDir:          filepath.Join(home, dataDirName),
		AutoSaveInterval: 2 * time.Second,
		DefaultTitle:     domain.DefaultTitle,
		LogLevel:         "info",
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}, nil
}

// Load layers defaults, an optional .env file, an optional YAML file and the
// environment, in that order. An empty path means <data_dir>/config.yaml.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()

	if dir := os.Getenv("QUICKMEMO_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("QUICKMEMO_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("QUICKMEMO_AUTOSAVE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid QUICKMEMO_AUTOSAVE_INTERVAL: %w", err)
		}
		c.AutoSaveInterval = d
	}
	if v := os.Getenv("QUICKMEMO_DEFAULT_TITLE"); v != "" {
		c.DefaultTitle = v
	}
	if v := os.Getenv("QUICKMEMO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("QUICKMEMO_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("QUICKMEMO_PASSWORD"); v != "" {
		c.Server.Password = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.AutoSaveInterval <= 0 {
		return fmt.Errorf("autosave_interval must be positive, got %v", c.AutoSaveInterval)
	}
	if c.DefaultTitle == "" {
		c.DefaultTitle = domain.DefaultTitle
	}
	return nil
}

func (c *Config) MemoDir() string {
	return filepath.Join(c.DataDir, "memos")
}

func (c *Config) AutoSavePath() string {
	return filepath.Join(c.DataDir, "autosave.txt")
}

func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "quickmemo.log")
}
