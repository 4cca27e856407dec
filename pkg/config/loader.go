package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"nixup/pkg/errors"
	"nixup/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides,
// e.g. NIXUP_FLAKE_REF=~/dotfiles.
const EnvPrefix = "NIXUP_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load builds Settings from the default user config location.
func Load() (*Settings, error) {
	return LoadFrom(paths.UserConfigPath())
}

// LoadFrom builds Settings, merging in order: runtime-derived defaults,
// embedded defaults, the config file at configPath (if it exists; TOML
// or YAML by extension), then NIXUP_* environment variables.
func LoadFrom(configPath string) (*Settings, error) {
	k := koanf.New(".")

	// 1. Runtime-derived defaults, then embedded defaults
	runtimeDefaults := map[string]interface{}{
		"nix_conf_path": paths.NixConfPath(),
	}
	if err := k.Load(confmap.Provider(runtimeDefaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load base defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User config file, when present
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			parser := parserFor(configPath)
			if err := k.Load(file.Provider(configPath), parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", configPath)
			}
		}
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &settings, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return ktoml.Parser()
	}
}
