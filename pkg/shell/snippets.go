package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
)

const bashSnippet = `_opsline_prompt() {
    PS1="$(%s 2>/dev/null)"
}
if [[ ! "$PROMPT_COMMAND" == *_opsline_prompt* ]]; then
    PROMPT_COMMAND="_opsline_prompt${PROMPT_COMMAND:+; $PROMPT_COMMAND}"
fi
`

const zshSnippet = `_opsline_precmd() {
    PROMPT="$(%s 2>/dev/null)"
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd _opsline_precmd
`

// Snippet returns the code to eval in an interactive shell so the prompt is
// regenerated before each command line. exe is the opsline binary and args
// are extra flags forwarded on every invocation.
func Snippet(s Shell, exe string, args []string) (string, error) {
	words := append([]string{quote(exe), "--shell", s.String()}, quoteAll(args)...)
	cmdline := strings.Join(words, " ")

	switch s {
	case Bash:
		return fmt.Sprintf(bashSnippet, cmdline), nil
	case Zsh:
		return fmt.Sprintf(zshSnippet, cmdline), nil
	}
	return "", errors.Newf(errors.ErrInvalidShell, "no prompt hook for shell %s", s)
}

func quoteAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = quote(a)
	}
	return out
}

// quote single-quotes a word for POSIX shells unless it is made only of
// characters that never need quoting.
func quote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("/-_.,:=", r):
		return false
	}
	return true
}
