package segments

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
)

// Cwd shows the working directory. Bash and zsh expand it themselves at
// display time; bare output prints the path with $HOME shortened to ~.
type Cwd struct {
	DirOnly bool
	env     *Env
}

// NewCwd creates the working directory generator.
func NewCwd(dirOnly bool, env *Env) *Cwd {
	return &Cwd{DirOnly: dirOnly, env: env}
}

func (c *Cwd) Kind() Kind { return KindCwd }

func (c *Cwd) Generate(_ context.Context, sh shell.Shell, th *theme.Theme) ([]Segment, error) {
	var text string
	switch sh {
	case shell.Bash:
		text = `\w`
		if c.DirOnly {
			text = `\W`
		}
	case shell.Zsh:
		text = "%d"
		if c.DirOnly {
			text = "%1d"
		}
	default:
		text = sh.EscapeText(displayPath(c.env.Dir, c.env.Home, c.DirOnly))
	}
	return []Segment{chunk(KindCwd, " "+text+" ", th.Cwd)}, nil
}

func displayPath(dir, home string, dirOnly bool) string {
	dir = filepath.Clean(dir)
	if home != "" {
		home = filepath.Clean(home)
		switch {
		case dir == home:
			return "~"
		case home != "/" && strings.HasPrefix(dir, home+string(filepath.Separator)):
			dir = "~" + dir[len(home):]
		}
	}
	if dirOnly {
		return filepath.Base(dir)
	}
	return dir
}
