// Package theme holds the named color palettes used to paint prompt segments.
package theme

import (
	"sort"

	"github.com/arthur-debert/opsline/pkg/errors"
)

// Theme maps each segment role to its color pair. Themes are process-wide
// constants; callers get a copy and never mutate the registered value.
type Theme struct {
	Name string

	Cwd       Pair
	Root      Pair
	SSH       Pair
	Readonly  Pair
	Container Pair
	Terraform Pair

	GitBranch     Pair
	GitAhead      Pair
	GitBehind     Pair
	GitStaged     Pair
	GitModified   Pair
	GitUntracked  Pair
	GitConflicted Pair

	KubeContext   Pair
	KubeNamespace Pair
}

// Default is the theme used when none is configured.
const Default = "default"

var themes = map[string]Theme{
	Default:   defaultTheme,
	"gruvbox": gruvboxTheme,
}

// Lookup returns the theme registered under name.
func Lookup(name string) (*Theme, error) {
	if name == "" {
		name = Default
	}
	t, ok := themes[name]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidTheme, "unknown theme %q", name).
			WithDetail("available", Names())
	}
	return &t, nil
}

// Names lists the registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Role is one named entry of a theme, used for previews.
type Role struct {
	Name string
	Pair Pair
}

// Roles returns the theme's color pairs in display order.
func (t *Theme) Roles() []Role {
	return []Role{
		{"cwd", t.Cwd},
		{"root", t.Root},
		{"git branch", t.GitBranch},
		{"git ahead", t.GitAhead},
		{"git behind", t.GitBehind},
		{"git staged", t.GitStaged},
		{"git modified", t.GitModified},
		{"git untracked", t.GitUntracked},
		{"git conflicted", t.GitConflicted},
		{"kube context", t.KubeContext},
		{"kube namespace", t.KubeNamespace},
		{"containers", t.Container},
		{"ssh", t.SSH},
		{"readonly", t.Readonly},
		{"terraform", t.Terraform},
	}
}
