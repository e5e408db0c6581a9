package config

import (
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/segments"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/samber/lo"
)

// Resolved is a validated configuration ready for rendering.
type Resolved struct {
	Shell   shell.Shell
	Theme   *theme.Theme
	Order   []segments.Kind
	Options segments.Options
}

// Resolve validates cfg. getenv supplies $SHELL when the shell is auto.
// Every error it returns is fatal.
func (c *Config) Resolve(getenv func(string) string) (*Resolved, error) {
	sh, err := c.resolveShell(getenv)
	if err != nil {
		return nil, err
	}

	th, err := theme.Lookup(c.Theme)
	if err != nil {
		return nil, err
	}

	order, err := ParseSegments(c.Segments)
	if err != nil {
		return nil, err
	}

	opts := segments.Options{CwdDirOnly: c.Cwd.DirOnly}
	if c.Kube != nil {
		aliases, err := aliasMap(c.Kube.ContextAliases)
		if err != nil {
			return nil, err
		}
		opts.Kube = &segments.KubeOptions{
			CriticalContexts: cleanList(c.Kube.CriticalContexts),
			Aliases:          aliases,
		}
	}
	if c.Containers != nil {
		if strings.TrimSpace(c.Containers.URL) == "" {
			return nil, errors.New(errors.ErrConfigValid, "containers section requires a url")
		}
		if c.Containers.Timeout < 0 {
			return nil, errors.Newf(errors.ErrConfigValid, "containers timeout must not be negative, got %s", c.Containers.Timeout)
		}
		opts.Containers = &segments.ContainersOptions{
			URL:     strings.TrimSpace(c.Containers.URL),
			Timeout: c.Containers.Timeout,
		}
	}
	if c.Terraform != nil {
		opts.Terraform = &segments.TerraformOptions{
			CriticalWorkspaces: cleanList(c.Terraform.CriticalWorkspaces),
		}
	}

	return &Resolved{Shell: sh, Theme: th, Order: order, Options: opts}, nil
}

func (c *Config) resolveShell(getenv func(string) string) (shell.Shell, error) {
	name := strings.TrimSpace(c.Shell)
	switch {
	case name == "":
		return shell.Bash, errors.New(errors.ErrInvalidShell, "no shell specified; pass --shell or set shell in the config file")
	case strings.EqualFold(name, shell.Auto):
		return shell.Detect(getenv("SHELL"))
	}
	return shell.Parse(name)
}

// ParseSegments validates a segment order. Unknown and repeated names
// are errors.
func ParseSegments(names []string) ([]segments.Kind, error) {
	order := make([]segments.Kind, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := segments.ParseKind(name)
		if err != nil {
			return nil, err
		}
		order = append(order, k)
	}
	if dups := lo.FindDuplicates(order); len(dups) > 0 {
		return nil, errors.Newf(errors.ErrDuplicateSegment, "segment %q listed more than once", dups[0]).
			WithDetail("duplicates", dups)
	}
	return order, nil
}

func aliasMap(aliases []ContextAlias) (map[string]string, error) {
	out := make(map[string]string, len(aliases))
	for _, a := range aliases {
		if a.Context == "" || a.Alias == "" {
			return nil, errors.Newf(errors.ErrAliasFormat, "invalid context alias %q, expected context:alias", a.Context+":"+a.Alias).
				WithDetail("context", a.Context).
				WithDetail("alias", a.Alias)
		}
		if _, ok := out[a.Context]; !ok {
			out[a.Context] = a.Alias
		}
	}
	return out, nil
}

func cleanList(items []string) []string {
	return lo.Compact(lo.Map(items, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
