package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts file operations so loader tests can stub them.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// osFileSystem implements FileSystem with real file operations.
type osFileSystem struct{}

func (osFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // explicit config file path (optional)
	EnvFile    string // explicit .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Defaulter applies default values in place.
type Defaulter interface {
	ApplyDefaults()
}

// Validator reports whether a configuration is usable.
type Validator interface {
	Validate() error
}

// Load populates cfg for the named tool. It searches standard
// locations for config.yml and .env unless explicit paths are given,
// binds environment variables over the file values, then applies
// defaults and validates if cfg implements those interfaces.
func Load(toolName string, cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = osFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(lc.FileSystem, configSearchPaths(toolName))
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(lc.FileSystem, envSearchPaths(toolName))
	}

	v := viper.New()

	// YAML file first: the base layer.
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	// Environment on top. .env is loaded before the re-bind so its
	// variables participate too.
	v.AutomaticEnv()
	bindEnviron(v)
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load %s: %v\n", envFile, err)
		} else {
			bindEnviron(v)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", toolName, err)
	}

	if d, ok := cfg.(Defaulter); ok {
		d.ApplyDefaults()
	}
	if val, ok := cfg.(Validator); ok {
		if err := val.Validate(); err != nil {
			return fmt.Errorf("invalid config for %s: %w", toolName, err)
		}
	}
	return nil
}

func findFirst(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

func configSearchPaths(toolName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", toolName),
		fmt.Sprintf("../cmd/%s/config.yml", toolName),
		"./config/config.yml",
		"./config.yml",
	}
}

func envSearchPaths(toolName string) []string {
	return []string{
		fmt.Sprintf(".env.%s", toolName),
		fmt.Sprintf("./cmd/%s/.env", toolName),
		"./.env",
		"../.env",
	}
}

// bindEnviron sets every current environment variable into viper under
// each plausible nested-key spelling, so RUN_DRAWS=500 reaches run.draws
// without per-field BindEnv calls.
func bindEnviron(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range envKeyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants expands an env var name into the nested viper keys it
// could address. RUN_DRAWS -> [run_draws, run.draws]; for longer names
// every split point between nesting and a flat tail is generated, so
// OBSERVABILITY_SAMPLE_RATE also yields observability.sample_rate.
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}

	seen := make(map[string]bool, len(variants))
	unique := variants[:0]
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique
}
