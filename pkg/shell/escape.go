package shell

import (
	"strings"

	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/muesli/termenv"
)

// wrap turns an SGR parameter list into a control code for the dialect.
func (s Shell) wrap(seq string) string {
	switch s {
	case Bash:
		return `\[\e[` + seq + `m\]`
	case Zsh:
		return "%{" + termenv.CSI + seq + "m%}"
	default:
		return termenv.CSI + seq + "m"
	}
}

// Foreground sets the 256-color text color.
func (s Shell) Foreground(c theme.Foreground) string {
	return s.wrap(termenv.ANSI256Color(c).Sequence(false))
}

// Background sets the 256-color fill color.
func (s Shell) Background(c theme.Background) string {
	return s.wrap(termenv.ANSI256Color(c).Sequence(true))
}

// Blink starts blinking text.
func (s Shell) Blink() string {
	return s.wrap(termenv.BlinkSeq)
}

// Reset clears all attributes.
func (s Shell) Reset() string {
	return s.wrap(termenv.ResetSeq)
}

// Bash decodes prompt backslash escapes first and then runs parameter
// expansion and command substitution on the result, so each special
// character needs one backslash surviving the first pass. A single `\$`
// would decode to the privilege marker.
var bashText = strings.NewReplacer(`\`, `\\\\`, `$`, `\\$`, "`", "\\\\`")

// Zsh without prompt_subst only expands % sequences.
var zshText = strings.NewReplacer(`%`, `%%`)

// EscapeText quotes text that comes from the environment (branch names,
// context names) so the shell prints it literally instead of expanding it.
func (s Shell) EscapeText(text string) string {
	switch s {
	case Bash:
		return bashText.Replace(text)
	case Zsh:
		return zshText.Replace(text)
	}
	return text
}
