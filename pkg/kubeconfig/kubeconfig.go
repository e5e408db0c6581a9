// Package kubeconfig reads the current context from Kubernetes client
// configuration files.
package kubeconfig

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/filesystem"
	"gopkg.in/yaml.v3"
)

// EnvKubeconfig lists kubeconfig files separated by the OS list separator.
const EnvKubeconfig = "KUBECONFIG"

// Config is the merged view of one or more kubeconfig files. Only the
// fields a prompt needs are decoded.
type Config struct {
	CurrentContext string         `yaml:"current-context"`
	Contexts       []NamedContext `yaml:"contexts"`
}

// NamedContext is one entry of the contexts list.
type NamedContext struct {
	Name    string   `yaml:"name"`
	Context *Context `yaml:"context"`
}

// Context holds the settings of a context.
type Context struct {
	Cluster   string `yaml:"cluster"`
	User      string `yaml:"user"`
	Namespace string `yaml:"namespace"`
}

// Paths returns the files to read: the $KUBECONFIG list when set,
// otherwise ~/.kube/config.
func Paths(getenv func(string) string, home string) []string {
	if v := getenv(EnvKubeconfig); v != "" {
		var paths []string
		for _, p := range filepath.SplitList(v) {
			if p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}
	if home == "" {
		return nil
	}
	return []string{filepath.Join(home, ".kube", "config")}
}

// Load reads and merges paths. Missing files are skipped; a nil config
// with a nil error means none of them exist. Merging follows kubectl:
// the first file that sets current-context wins, and the first
// definition of a context name wins.
func Load(fsys filesystem.FS, paths []string) (*Config, error) {
	var (
		merged *Config
		seen   = make(map[string]bool)
	)
	for _, path := range paths {
		data, err := fsys.ReadFile(path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrap(err, errors.ErrProbeFailed, "read kubeconfig").
				WithDetail("path", path)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrDecode, "parse kubeconfig").
				WithDetail("path", path)
		}

		if merged == nil {
			merged = &Config{}
		}
		if merged.CurrentContext == "" {
			merged.CurrentContext = strings.TrimSpace(cfg.CurrentContext)
		}
		for _, nc := range cfg.Contexts {
			if seen[nc.Name] {
				continue
			}
			seen[nc.Name] = true
			merged.Contexts = append(merged.Contexts, nc)
		}
	}
	return merged, nil
}

// Current returns the current context. ok is false when no current
// context is set or it names a context that is not defined.
func (c *Config) Current() (name string, ctx *Context, ok bool) {
	if c == nil || c.CurrentContext == "" {
		return "", nil, false
	}
	for _, nc := range c.Contexts {
		if nc.Name == c.CurrentContext {
			if nc.Context == nil {
				return "", nil, false
			}
			return nc.Name, nc.Context, true
		}
	}
	return "", nil, false
}
