package config

import (
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "strings"
    "time"

    "github.com/goccy/go-yaml"
    "github.com/pelletier/go-toml/v2"
    "go.uber.org/multierr"
)

type Config struct {
    Port      string `yaml:"port" toml:"port"`
    ModelPath string `yaml:"model_path" toml:"model_path"`
    // ProgressDelay is the cosmetic pause before a form result is shown, as a
    // Go duration string. "0s" disables it.
    ProgressDelay  string   `yaml:"progress_delay" toml:"progress_delay"`
    LogFile        string   `yaml:"log_file" toml:"log_file"`
    GinMode        string   `yaml:"gin_mode" toml:"gin_mode"`
    AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins"`
    Chart          bool     `yaml:"chart" toml:"chart"`
}

func Default() *Config {
    return &Config{
        Port:           "8080",
        ModelPath:      filepath.Join("models", "heart_disease_model.gob"),
        ProgressDelay:  "1.5s",
        GinMode:        "release",
        AllowedOrigins: []string{"*"},
        Chart:          true,
    }
}

// Load builds the configuration from defaults, then the optional file at
// path (.yaml, .yml or .toml), then the environment.
func Load(path string) (*Config, error) {
    cfg := Default()
    if path != "" {
        if err := cfg.readFile(path); err != nil { return nil, err }
    }
    if err := cfg.applyEnv(); err != nil { return nil, err }
    if err := cfg.Validate(); err != nil { return nil, err }
    return cfg, nil
}

func (c *Config) readFile(path string) error {
    raw, err := os.ReadFile(path)
    if err != nil { return fmt.Errorf("read config: %w", err) }
    switch strings.ToLower(filepath.Ext(path)) {
    case ".yaml", ".yml":
        err = yaml.Unmarshal(raw, c)
    case ".toml":
        err = toml.Unmarshal(raw, c)
    default:
        return fmt.Errorf("config %s: unsupported extension", path)
    }
    if err != nil { return fmt.Errorf("parse config %s: %w", path, err) }
    return nil
}

func (c *Config) applyEnv() error {
    c.Port = getEnv("PORT", c.Port)
    c.ModelPath = getEnv("MODEL_PATH", c.ModelPath)
    c.ProgressDelay = getEnv("PROGRESS_DELAY", c.ProgressDelay)
    c.LogFile = getEnv("LOG_FILE", c.LogFile)
    c.GinMode = getEnv("GIN_MODE", c.GinMode)
    if v := os.Getenv("CORS_ORIGINS"); v != "" {
        origins := []string{}
        for _, o := range strings.Split(v, ",") {
            if o = strings.TrimSpace(o); o != "" { origins = append(origins, o) }
        }
        c.AllowedOrigins = origins
    }
    if v := os.Getenv("CHART"); v != "" {
        b, err := strconv.ParseBool(v)
        if err != nil { return fmt.Errorf("CHART: %w", err) }
        c.Chart = b
    }
    return nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
    var err error
    if p, perr := strconv.Atoi(c.Port); perr != nil || p <= 0 || p > 65535 {
        err = multierr.Append(err, fmt.Errorf("port %q is not a valid TCP port", c.Port))
    }
    if c.ModelPath == "" {
        err = multierr.Append(err, fmt.Errorf("model_path is empty"))
    }
    if d, derr := time.ParseDuration(c.ProgressDelay); derr != nil {
        err = multierr.Append(err, fmt.Errorf("progress_delay: %w", derr))
    } else if d < 0 {
        err = multierr.Append(err, fmt.Errorf("progress_delay must not be negative"))
    }
    switch c.GinMode {
    case "debug", "release", "test":
    default:
        err = multierr.Append(err, fmt.Errorf("gin_mode %q is not one of debug, release, test", c.GinMode))
    }
    if len(c.AllowedOrigins) == 0 {
        err = multierr.Append(err, fmt.Errorf("allowed_origins is empty"))
    }
    return err
}

// Delay returns ProgressDelay parsed. Call after Validate.
func (c *Config) Delay() time.Duration {
    d, _ := time.ParseDuration(c.ProgressDelay)
    return d
}

func (c *Config) Addr() string { return ":" + c.Port }

func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}
