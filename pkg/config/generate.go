package config

import (
	"bytes"
	"strings"
	"time"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts yaml, yml and toml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "unsupported config format %q", s)
}

// Filename returns the conventional file name for the format.
func (f Format) Filename() string {
	if f == FormatTOML {
		return "config.toml"
	}
	return DefaultFile
}

// Marshal serializes cfg so that Load reads back the same configuration.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	return encode(cfg, format)
}

func encode(v interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "encode yaml")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "encode toml")
		}
		return data, nil
	}
	return nil, errors.Newf(errors.ErrConfigValid, "unsupported config format %q", format)
}

// Defaults returns the configuration built from the embedded defaults
// alone.
func Defaults() (*Config, error) {
	k, err := defaultsKoanf()
	if err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// optionalSections holds the sections that enable a segment by being
// present.
type optionalSections struct {
	Kube       *KubeConfig       `yaml:"kube" toml:"kube"`
	Containers *ContainersConfig `yaml:"containers" toml:"containers"`
	Terraform  *TerraformConfig  `yaml:"terraform" toml:"terraform"`
}

// example fills every optional section so generated files document them.
func example() optionalSections {
	return optionalSections{
		Kube: &KubeConfig{
			CriticalContexts: []string{"prod"},
			ContextAliases:   []ContextAlias{{Context: "arn:aws:eks:eu-west-1:123456789012:cluster/prod", Alias: "prod"}},
		},
		Containers: &ContainersConfig{
			URL:     "unix:/var/run/docker.sock",
			Timeout: 500 * time.Millisecond,
		},
		Terraform: &TerraformConfig{
			CriticalWorkspaces: []string{"prod"},
		},
	}
}

// GenerateConfigContent returns a starter config file. The defaults are
// active; the optional sections are present but commented out so they
// stay disabled until edited.
func GenerateConfigContent(format Format) (string, error) {
	cfg, err := Defaults()
	if err != nil {
		return "", err
	}
	cfg.Shell = "auto"

	active, err := Marshal(cfg, format)
	if err != nil {
		return "", err
	}

	optional, err := encode(example(), format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# opsline configuration\n")
	b.WriteString("# Segments: cwd, root, git, kube, containers, ssh, readonly, terraform, newline\n\n")
	b.Write(active)
	b.WriteString("\n# Optional sections. Uncomment to enable the matching segment.\n")
	b.WriteString(commentOutConfigValues(string(optional)))
	return b.String(), nil
}

// commentOutConfigValues comments out every non-comment, non-blank line,
// section headers included.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
