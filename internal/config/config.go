// Package config loads command line defaults from the environment.
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds build settings. Command line flags override these values.
type Config struct {
	Content  []string // globs of files to scan
	Output   string   // CSS output path, "-" for stdout
	Theme    string   // TOML theme path
	Cache    string   // build cache path
	Workers  int
	Minify   bool
	LogLevel string
}

// Load reads settings from the environment after loading a .env file from
// the working directory, if there is one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg := &Config{
		Content:  splitList(getEnvOrDefault("TAILCSS_CONTENT", "")),
		Output:   getEnvOrDefault("TAILCSS_OUTPUT", "-"),
		Theme:    getEnvOrDefault("TAILCSS_THEME", ""),
		Cache:    getEnvOrDefault("TAILCSS_CACHE", ""),
		LogLevel: getEnvOrDefault("TAILCSS_LOG_LEVEL", "info"),
	}

	workers, err := strconv.Atoi(getEnvOrDefault("TAILCSS_WORKERS", strconv.Itoa(runtime.GOMAXPROCS(0))))
	if err != nil || workers < 1 {
		return nil, errors.Errorf("TAILCSS_WORKERS must be a positive integer")
	}
	cfg.Workers = workers

	if cfg.Minify, err = strconv.ParseBool(getEnvOrDefault("TAILCSS_MINIFY", "false")); err != nil {
		return nil, errors.Errorf("TAILCSS_MINIFY must be a boolean")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var a []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			a = append(a, v)
		}
	}
	return a
}
