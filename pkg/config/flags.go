package config

import (
	"strings"

	"github.com/arthur-debert/opsline/pkg/segments"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"shell":                         "shell",
	"theme":                         "theme",
	"segments":                      "segments",
	"cwd-dironly":                   "cwd.dironly",
	"kube-critical-contexts":        "kube.critical_contexts",
	"kube-context-aliases":          "kube.context_aliases",
	"containers-url":                "containers.url",
	"containers-timeout":            "containers.timeout",
	"terraform-critical-workspaces": "terraform.critical_workspaces",
}

// AddFlags defines the flags that mirror configuration keys. Only flags
// the user sets override the file; the zero defaults here are never read.
func AddFlags(fs *pflag.FlagSet) {
	kinds := lo.Map(segments.Kinds(), func(k segments.Kind, _ int) string { return string(k) })

	fs.String("shell", "", "Target shell: "+strings.Join(append(shell.Names(), shell.Auto), ", "))
	fs.String("theme", "", "Color theme: "+strings.Join(theme.Names(), ", "))
	fs.String("segments", "", "Comma separated segment order from: "+strings.Join(kinds, ", "))
	fs.Bool("cwd-dironly", false, "Show only the last directory component")
	fs.String("kube-critical-contexts", "", "Comma separated substrings marking critical cluster contexts")
	fs.String("kube-context-aliases", "", "Comma separated context:alias pairs")
	fs.String("containers-url", "", "Container API endpoint, http(s)://host or unix:/path/to.sock")
	fs.Duration("containers-timeout", 0, "Container API timeout (default 500ms)")
	fs.String("terraform-critical-workspaces", "", "Comma separated critical workspace names")
}
