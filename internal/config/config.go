package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration keys.
const (
	KeyLabels  = "labels"
	KeyPrefix  = "prefix"
	KeySources = "sources"
)

// ResolverConfig configures the hierarchical config resolver.
type ResolverConfig struct {
	// EnvPrefix is prepended to key names for environment variable lookup.
	// For example, with EnvPrefix "GITHOOKS_", key "labels" maps to
	// GITHOOKS_LABELS.
	EnvPrefix string

	// GlobalConfigDir is the name of the directory under ~/.config/
	// where the global config is stored.
	GlobalConfigDir string

	// GlobalConfigFile is the filename for global config.
	// Defaults to "config.yaml" if empty.
	GlobalConfigFile string

	// LocalConfigName is the filename for local config in the git root.
	LocalConfigName string

	// Defaults provides the default values for configuration keys.
	Defaults map[string]string

	// GitRootFinder is a function that finds the git root directory.
	// If nil, uses a simple .git directory walk.
	GitRootFinder func(startDir string) (string, error)

	// ErrWriter is where warnings are written.
	// Defaults to os.Stderr if nil.
	ErrWriter io.Writer
}

func (c ResolverConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// Resolver handles hierarchical configuration resolution.
type Resolver struct {
	config     ResolverConfig
	globalPath string
	localPath  string

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// NewResolver creates a new configuration resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	resolver := &Resolver{
		config: cfg,
	}

	if cfg.ErrWriter == nil {
		resolver.config.ErrWriter = os.Stderr
	}

	if cfg.LocalConfigName != "" {
		var root string
		if cfg.GitRootFinder != nil {
			if found, err := cfg.GitRootFinder("."); err == nil {
				root = found
			}
		} else {
			root = findGitRoot(".")
		}
		if root != "" {
			resolver.localPath = filepath.Join(root, cfg.LocalConfigName)
		}
	}

	if cfg.GlobalConfigDir != "" {
		if home, err := os.UserHomeDir(); err == nil {
			resolver.globalPath = filepath.Join(
				home, ".config", cfg.GlobalConfigDir, cfg.globalConfigFile(),
			)
		}
	}

	return resolver
}

// NewResolverWithPaths creates a resolver with explicit global and local
// paths. This is useful for testing or when paths are known ahead of time.
func NewResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	resolver := &Resolver{
		config:     cfg,
		globalPath: globalPath,
		localPath:  localPath,
	}

	if cfg.ErrWriter == nil {
		resolver.config.ErrWriter = os.Stderr
	}

	return resolver
}

// warn adds a warning and optionally prints it.
func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.config.ErrWriter != nil {
		fmt.Fprintf(r.config.ErrWriter, "Warning: %s\n", msg)
	}
}

// Resolved holds the final merged configuration.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns the source of a key's value.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns both the value and its source.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// Resolve builds the final config by merging all sources.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	// 1. Apply defaults (lowest priority)
	for key, value := range r.config.Defaults {
		cfg.values[key] = value
		cfg.sources[key] = SourceDefault
	}

	// 2. Apply global config
	r.applyFile(cfg, r.globalPath, SourceGlobal)

	// 3. Apply local config
	r.applyFile(cfg, r.localPath, SourceLocal)

	// 4. Apply environment variables (highest priority)
	r.applyEnv(cfg)

	return cfg
}

func (r *Resolver) applyFile(cfg *Resolved, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist - not an error
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return
	}

	for key, value := range parsed {
		if strVal := toString(value); strVal != "" {
			cfg.values[key] = strVal
			cfg.sources[key] = source
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	if r.config.EnvPrefix == "" {
		return
	}

	allKeys := make(map[string]bool)
	for k := range r.config.Defaults {
		allKeys[k] = true
	}
	for k := range cfg.values {
		allKeys[k] = true
	}

	for key := range allKeys {
		envKey := r.config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if value := os.Getenv(envKey); value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceEnv
		}
	}
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// findGitRoot walks up from startDir looking for a .git entry.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []interface{}:
		// YAML lists collapse to comma-separated values so list-valued
		// keys (labels, sources) can also be written as sequences.
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := toString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
