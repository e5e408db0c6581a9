package segments

import (
	"context"

	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
)

// Readonly shows a lock when the working directory is not writable.
type Readonly struct {
	env *Env
}

// NewReadonly creates the write-access generator.
func NewReadonly(env *Env) *Readonly {
	return &Readonly{env: env}
}

func (r *Readonly) Kind() Kind { return KindReadonly }

func (r *Readonly) Generate(_ context.Context, _ shell.Shell, th *theme.Theme) ([]Segment, error) {
	if r.env.FS.Writable(r.env.Dir) {
		return nil, nil
	}
	return []Segment{chunk(KindReadonly, " "+glyphs.Lock+" ", th.Readonly)}, nil
}
