package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/entro314-labs/filedeck/internal/browse"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix       = "FILEDECK_"
	defaultDebounce = 300 * time.Millisecond
)

type Config struct {
	GlobalRoot string        `koanf:"global_root"`
	Debounce   time.Duration `koanf:"debounce"`
	Confirm    bool          `koanf:"confirm"`
	Skip       []string      `koanf:"skip"`
	Depth      int           `koanf:"depth"`
	Hidden     bool          `koanf:"hidden"`
	Match      string        `koanf:"match"`
	MatchField string        `koanf:"match_field"`
	LogFile    string        `koanf:"log_file"`
	LogLevel   string        `koanf:"log_level"`
	Verbose    bool          `koanf:"verbose"`
}

func defaultConfigMap() map[string]any {
	return map[string]any{
		"global_root": "",
		"debounce":    defaultDebounce.String(),
		"confirm":     true,
		"skip":        []string{},
		"depth":       0,
		"hidden":      true,
		"match":       string(browse.MatchSubstring),
		"match_field": "name",
		"log_file":    "",
		"log_level":   "info",
		"verbose":     false,
	}
}

// loadConfig layers defaults, the config file, FILEDECK_* variables and explicitly set
// flags, in increasing priority. It returns the config file used, if any.
func loadConfig(explicit string, flags *pflag.FlagSet) (Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultConfigMap(), "."), nil); err != nil {
		return Config{}, "", fmt.Errorf("load defaults: %w", err)
	}

	path, ok, err := resolveConfigPath(explicit)
	if err != nil {
		return Config{}, "", err
	}
	if ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, "", fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		path = ""
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, "", fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "no_confirm" {
				noConfirm, _ := flags.GetBool(f.Name)
				return "confirm", !noConfirm
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, "", fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, "", fmt.Errorf("decode config: %w", err)
	}
	cfg, err = normalizeConfig(cfg)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func resolveConfigPath(explicit string) (string, bool, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", false, fmt.Errorf("config file %s not found", explicit)
		}
		return explicit, true, nil
	}
	for _, candidate := range defaultConfigPaths() {
		if fileExists(candidate) {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func defaultConfigPaths() []string {
	paths := []string{".filedeck.yaml"}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "filedeck", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "filedeck", "config.yaml"))
	}
	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.Depth < 0 {
		return Config{}, errors.New("config: depth must be >= 0")
	}
	if cfg.Debounce < 0 {
		return Config{}, errors.New("config: debounce must be >= 0")
	}
	mode, err := browse.ParseMatchMode(cfg.Match)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.Match = string(mode)
	if _, err := browse.ParseField(cfg.MatchField); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.GlobalRoot != "" {
		abs, err := filepath.Abs(cfg.GlobalRoot)
		if err != nil {
			return Config{}, fmt.Errorf("config: global_root: %w", err)
		}
		cfg.GlobalRoot = abs
	}
	return cfg, nil
}

// globalRootFor is the folder a global search enumerates.
func (c Config) globalRootFor(folder string) string {
	if c.GlobalRoot != "" {
		return c.GlobalRoot
	}
	return browse.FilesystemRoot(folder)
}

func (c Config) listOptions() browse.ListOptions {
	return browse.ListOptions{
		SkipDirs: browse.MergeSkipDirs(browse.DefaultSkipDirs(), c.Skip),
		MaxDepth: c.Depth,
		Hidden:   c.Hidden,
	}
}

func (c Config) newSearch() *browse.Search {
	field, _ := browse.ParseField(c.MatchField)
	return browse.NewSearch(browse.MatchMode(c.Match), field)
}
