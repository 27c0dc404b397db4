// Package config resolves memscope settings from defaults, an optional YAML
// file, and MEMSCOPE_* environment variables, in that precedence order.
// Command-line flags are layered on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all memscope configuration.
type Config struct {
	Outfile  string   `yaml:"outfile"`   // output image path; empty = derive from input
	LogScale bool     `yaml:"log_scale"` // logarithmic y axis
	Limit    int      `yaml:"limit"`     // number of top series to render
	Exclude  []string `yaml:"exclude"`   // scope names to drop before ranking
	Summary  bool     `yaml:"summary"`   // print the peak table
	Check    bool     `yaml:"check"`     // report unfreed memory, fail when found
	LogLevel string   `yaml:"log_level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limit:    15,
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from MEMSCOPE_* environment variables.
func (c *Config) applyEnv() {
	c.Outfile = getenv("MEMSCOPE_OUTFILE", c.Outfile)
	c.LogScale = getenvBool("MEMSCOPE_LOG_SCALE", c.LogScale)
	c.Limit = getenvInt("MEMSCOPE_LIMIT", c.Limit)
	c.LogLevel = getenv("MEMSCOPE_LOG_LEVEL", c.LogLevel)
	if v := os.Getenv("MEMSCOPE_EXCLUDE"); v != "" {
		c.Exclude = splitList(v)
	}
}

// ExcludeSet returns the exclusion list as a set for exact-name lookups.
func (c Config) ExcludeSet() map[string]struct{} {
	if len(c.Exclude) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Exclude))
	for _, name := range c.Exclude {
		set[name] = struct{}{}
	}
	return set
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
