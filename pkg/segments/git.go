package segments

import (
	"context"
	"strconv"

	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
)

// Git shows the branch and one chunk per non-zero counter.
type Git struct {
	env *Env
}

// NewGit creates the git status generator.
func NewGit(env *Env) *Git {
	return &Git{env: env}
}

func (g *Git) Kind() Kind { return KindGit }

func (g *Git) Generate(ctx context.Context, sh shell.Shell, th *theme.Theme) ([]Segment, error) {
	st, err := g.env.Git.Status(ctx, g.env.Dir)
	if err != nil || st == nil {
		return nil, err
	}
	head := st.Head()
	if head == "" {
		return nil, nil
	}

	out := []Segment{chunk(KindGit, " "+glyphs.Branch+" "+sh.EscapeText(head)+" ", th.GitBranch)}

	counters := []struct {
		n     int
		glyph string
		pair  theme.Pair
	}{
		{st.Ahead, glyphs.Ahead, th.GitAhead},
		{st.Behind, glyphs.Behind, th.GitBehind},
		{st.Staged, glyphs.Staged, th.GitStaged},
		{st.Modified, glyphs.Modified, th.GitModified},
		{st.Untracked, glyphs.Untracked, th.GitUntracked},
		{st.Conflicted, glyphs.Conflicted, th.GitConflicted},
	}
	for _, c := range counters {
		if c.n > 0 {
			out = append(out, chunk(KindGit, strconv.Itoa(c.n)+c.glyph+" ", c.pair))
		}
	}
	return out, nil
}
