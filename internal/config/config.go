package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Host    string `yaml:"host" json:"host"`
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"dataDir"`
	} `yaml:"app" json:"app"`

	// Catalog.Path optionally names a YAML catalog used to seed an empty store
	// instead of the bundled sample.
	Catalog struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"catalog" json:"catalog"`

	Sessions struct {
		TTLSeconds   int `yaml:"ttl_seconds" json:"ttlSeconds"`
		SweepSeconds int `yaml:"sweep_seconds" json:"sweepSeconds"`
		Max          int `yaml:"max" json:"max"`
	} `yaml:"sessions" json:"sessions"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requestsPerSecond"`
		Burst             int     `yaml:"burst" json:"burst"`
	} `yaml:"rate_limit" json:"rateLimit"`
}

func Default() Config {
	var cfg Config
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 38471
	cfg.Sessions.TTLSeconds = 1800
	cfg.Sessions.SweepSeconds = 60
	cfg.Sessions.Max = 1000
	cfg.RateLimit.RequestsPerSecond = 20
	cfg.RateLimit.Burst = 40
	return cfg
}

// Load reads path over the defaults, so a partial file keeps every unset value.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// LoadDotEnv copies the variables in path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv lets JOBBOARD_* variables override the file. Unparseable numbers
// are ignored.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("JOBBOARD_HOST")); v != "" {
		cfg.App.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("JOBBOARD_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := strings.TrimSpace(os.Getenv("JOBBOARD_CATALOG")); v != "" {
		cfg.Catalog.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("JOBBOARD_SESSION_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sessions.TTLSeconds = n
		}
	}
}

// DataDirFromEnv returns JOBBOARD_DATA_DIR, or "." when unset.
func DataDirFromEnv() string {
	if d := strings.TrimSpace(os.Getenv("JOBBOARD_DATA_DIR")); d != "" {
		return d
	}
	return "."
}
