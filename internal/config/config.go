// Package config carries the daemon configuration: defaults, an
// optional YAML file, and environment overrides applied in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Redis points the daemon at the user-dictionary store. An empty Addr
// disables Redis and keeps user words in memory only.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// Config is the spellerd configuration.
type Config struct {
	Listen        string   `yaml:"listen"`
	Dictionary    string   `yaml:"dictionary"`
	DataDir       string   `yaml:"data_dir"`
	Languages     []string `yaml:"languages"`
	EditDistance  int      `yaml:"edit_distance"`
	CaseSensitive bool     `yaml:"case_sensitive"`
	LengthMargin  int      `yaml:"length_margin"`
	Threshold     int64    `yaml:"threshold"`
	Redis         Redis    `yaml:"redis"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		Listen:       ":8080",
		DataDir:      "data",
		Languages:    []string{"en"},
		EditDistance: 2,
		LengthMargin: 3,
		Redis: Redis{
			Addr: "localhost:6379",
		},
	}
}

// Load reads a YAML file over the defaults, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Listen = GetEnv("SPELLERD_LISTEN", c.Listen)
	c.Dictionary = GetEnv("SPELLERD_DICTIONARY", c.Dictionary)
	c.DataDir = GetEnv("SPELLERD_DATA_DIR", c.DataDir)
	if v := os.Getenv("SPELLERD_LANGUAGES"); v != "" {
		c.Languages = SplitList(v)
	}
	c.EditDistance = GetEnvInt("SPELLERD_EDIT_DISTANCE", c.EditDistance)
	c.CaseSensitive = GetEnvBool("SPELLERD_CASE_SENSITIVE", c.CaseSensitive)
	c.LengthMargin = GetEnvInt("SPELLERD_LENGTH_MARGIN", c.LengthMargin)
	c.Threshold = GetEnvInt64("SPELLERD_THRESHOLD", c.Threshold)
	c.Redis.Addr = GetEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = GetEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = GetEnvInt("REDIS_DB", c.Redis.DB)
	c.Redis.Key = GetEnv("REDIS_KEY", c.Redis.Key)
}

// SplitList parses a comma-separated list, dropping empty items.
func SplitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
