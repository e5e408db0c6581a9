package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultFile is looked up in the working directory, then under the
	// XDG config directory.
	DefaultFile = "config.yaml"

	// EnvPrefix marks environment overrides. Nested keys use a double
	// underscore: OPSLINE_KUBE__CRITICAL_CONTEXTS.
	EnvPrefix = "OPSLINE_"
	envNested = "__"
)

//go:embed embedded/defaults.yaml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// Path is an explicit config file. It must exist. When empty the
	// default locations are tried and a missing file is not an error.
	Path string
	// Flags contributes the flags the user actually set.
	Flags *pflag.FlagSet
}

// Load merges, in increasing priority, the embedded defaults, the config
// file, OPSLINE_ environment variables and changed flags.
func Load(opts LoadOptions) (*Config, error) {
	// 1. Defaults
	k, err := defaultsKoanf()
	if err != nil {
		return nil, err
	}

	// 2. Config file
	path, err := configPath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if opts.Flags != nil {
		if err := k.Load(confmap.Provider(changedFlags(opts.Flags), "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	return unmarshal(k)
}

func defaultsKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	return k, nil
}

func configPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}
	if p, err := xdg.SearchConfigFile(filepath.Join("opsline", DefaultFile)); err == nil {
		return p, nil
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey turns OPSLINE_KUBE__CRITICAL_CONTEXTS into kube.critical_contexts.
// OPSLINE_LOG belongs to the logger and is skipped.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if key == "LOG" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key), envNested, ".")
}

func changedFlags(fs *pflag.FlagSet) map[string]interface{} {
	out := make(map[string]interface{})
	fs.Visit(func(f *pflag.Flag) {
		if key, ok := FlagKeys[f.Name]; ok {
			out[key] = f.Value.String()
		}
	})
	return out
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				stringToContextAliasHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// A section is present when its key exists at all, even empty.
	if !k.Exists("kube") {
		cfg.Kube = nil
	} else if cfg.Kube == nil {
		cfg.Kube = &KubeConfig{}
	}
	if !k.Exists("containers") {
		cfg.Containers = nil
	} else if cfg.Containers == nil {
		cfg.Containers = &ContainersConfig{}
	}
	if !k.Exists("terraform") {
		cfg.Terraform = nil
	} else if cfg.Terraform == nil {
		cfg.Terraform = &TerraformConfig{}
	}

	return &cfg, nil
}

var (
	contextAliasType  = reflect.TypeOf(ContextAlias{})
	contextAliasSlice = reflect.SliceOf(contextAliasType)
)

// stringToContextAliasHookFunc decodes "context:alias" and comma
// separated lists of them. Text without a colon decodes to a ContextAlias
// with no alias so validation can report it with the offending entry.
func stringToContextAliasHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t {
		case contextAliasType:
			return parseContextAlias(data.(string)), nil
		case contextAliasSlice:
			raw := strings.TrimSpace(data.(string))
			if raw == "" {
				return []ContextAlias{}, nil
			}
			parts := strings.Split(raw, ",")
			out := make([]ContextAlias, len(parts))
			for i, p := range parts {
				out[i] = parseContextAlias(p)
			}
			return out, nil
		}
		return data, nil
	}
}

// parseContextAlias splits on the last colon; context names such as EKS
// ARNs contain colons themselves.
func parseContextAlias(s string) ContextAlias {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return ContextAlias{Context: strings.TrimSpace(s)}
	}
	return ContextAlias{Context: strings.TrimSpace(s[:i]), Alias: strings.TrimSpace(s[i+1:])}
}
