package segments

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/samber/lo"
)

// TerraformOptions configures the workspace segment.
type TerraformOptions struct {
	// CriticalWorkspaces are matched exactly.
	CriticalWorkspaces []string
}

// Terraform shows the selected workspace of the project in the working
// directory.
type Terraform struct {
	opts TerraformOptions
	env  *Env
}

// NewTerraform creates the Terraform workspace generator.
func NewTerraform(opts TerraformOptions, env *Env) *Terraform {
	return &Terraform{opts: opts, env: env}
}

func (t *Terraform) Kind() Kind { return KindTerraform }

// Workspace reads the workspace marker. An empty name means there is none.
func (t *Terraform) Workspace() (string, error) {
	path := filepath.Join(t.env.Dir, ".terraform", "environment")
	data, err := t.env.FS.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.ErrProbeFailed, "read terraform workspace").
			WithDetail("path", path)
	}
	return strings.TrimSpace(string(data)), nil
}

func (t *Terraform) Generate(_ context.Context, sh shell.Shell, th *theme.Theme) ([]Segment, error) {
	ws, err := t.Workspace()
	if err != nil || ws == "" {
		return nil, err
	}

	out := []Segment{chunk(KindTerraform, " "+glyphs.Terraform+" ", th.Terraform)}
	if lo.Contains(t.opts.CriticalWorkspaces, ws) {
		out = append(out, warning(KindTerraform, th.Terraform.BG))
	}
	out = append(out, chunk(KindTerraform, sh.EscapeText(ws)+" ", th.Terraform))
	return out, nil
}
