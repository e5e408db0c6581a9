// Package shell models the target shell dialects: how color, blink and
// reset control codes are written, how dynamic text is quoted, and the
// hook snippet that installs the prompt.
package shell

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
)

// Shell is the target dialect. It is selected once and passed by value.
type Shell int

const (
	// Bash wraps control codes in \[ \] so readline can measure the prompt.
	Bash Shell = iota
	// Zsh wraps control codes in %{ %}.
	Zsh
	// Bare emits raw ANSI sequences with no zero-width markers.
	Bare
)

// Auto is accepted on the command line and resolved from $SHELL.
const Auto = "auto"

func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Bare:
		return "bare"
	}
	return "unknown"
}

// Names lists the dialects accepted by Parse.
func Names() []string {
	return []string{"bash", "zsh", "bare"}
}

// Parse resolves a dialect name.
func Parse(name string) (Shell, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "bare":
		return Bare, nil
	case "":
		return Bash, errors.New(errors.ErrInvalidShell, "no shell specified")
	}
	return Bash, errors.Newf(errors.ErrInvalidShell, "unknown shell %q", name).
		WithDetail("available", Names())
}

// Detect resolves the dialect from a login shell path such as $SHELL.
func Detect(shellPath string) (Shell, error) {
	if shellPath == "" {
		return Bash, errors.New(errors.ErrInvalidShell, "cannot detect shell: SHELL is not set")
	}
	return Parse(filepath.Base(shellPath))
}
