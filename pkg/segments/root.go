package segments

import (
	"context"

	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
)

// Root shows the privilege marker: # for root, $ otherwise.
type Root struct {
	env *Env
}

// NewRoot creates the prompt character generator.
func NewRoot(env *Env) *Root {
	return &Root{env: env}
}

func (r *Root) Kind() Kind { return KindRoot }

func (r *Root) Generate(_ context.Context, sh shell.Shell, th *theme.Theme) ([]Segment, error) {
	var text string
	switch sh {
	case shell.Bash:
		text = `\$`
	case shell.Zsh:
		text = "%#"
	default:
		text = "$"
		if r.env.Euid == 0 {
			text = "#"
		}
	}
	return []Segment{chunk(KindRoot, " "+text+" ", th.Root)}, nil
}
