package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts how Load resolves its inputs.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a different YAML directory. Tests use this
// to read fixtures instead of the checked-in configs/ tree.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load assembles the configuration for the named profile, later layers
// overriding earlier ones:
//
//  1. Built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. Platform environment passthroughs (NEO4J_BOLT_URL, OPENAI_API_KEY, ...)
//  5. APP_-prefixed environment variables
//
// An APP_ variable maps onto the koanf key already present in the lower
// layers, so underscores inside a field name survive the translation:
//
//	APP_SERVER_READ_TIMEOUT   -> server.read_timeout
//	APP_NEO4J_URI             -> neo4j.uri
//	APP_LLM_API_KEY           -> llm.api_key
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Built-in defaults.
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Layer 2: Base config (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	// Layer 3: Profile-specific config.
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
	}

	// Layer 4: Platform environment passthroughs. These are the variables
	// the deployment platform injects without the APP_ prefix; an explicit
	// APP_ override in layer 5 still wins.
	if err := applyEnvPassthroughs(k); err != nil {
		return nil, fmt.Errorf("applying env passthroughs: %w", err)
	}

	// Layer 5: Environment variables with APP_ prefix. The reverse lookup
	// over already-loaded keys keeps APP_SERVER_READ_TIMEOUT resolving to
	// "server.read_timeout" rather than "server.read.timeout".
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct.
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// envPassthroughs maps platform-injected variables onto koanf keys, in
// precedence order: later entries override earlier ones when both are set.
var envPassthroughs = []struct {
	envVar   string
	koanfKey string
}{
	{"NEO4J_BOLT_URL", "neo4j.uri"},
	{"LLM_GATEWAY_URL", "llm.base_url"},
	{"OPENAI_API_KEY", "llm.api_key"},
	{"LLM_GATEWAY_API_KEY", "llm.api_key"},
}

func applyEnvPassthroughs(k *koanf.Koanf) error {
	for _, p := range envPassthroughs {
		if v := os.Getenv(p.envVar); v != "" {
			if err := k.Set(p.koanfKey, v); err != nil {
				return fmt.Errorf("setting %s from %s: %w", p.koanfKey, p.envVar, err)
			}
		}
	}
	return nil
}

// validateProfile rejects names that would escape the config directory
// when joined into a file path.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup indexes every known koanf key by its env-var spelling,
// dots flattened to underscores. "server.read_timeout" is findable as
// "server_read_timeout", so the env transform never has to guess which
// underscores are separators.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
