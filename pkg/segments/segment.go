// Package segments holds the prompt probes. Each generator inspects one
// part of the environment and returns zero or more colored chunks.
//
// A generator returns (nil, nil) when its integration does not apply
// here, such as git outside a repository. A non-nil error means the probe
// itself failed. The renderer shows nothing in both cases but logs the
// failure.
package segments

import (
	"context"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/samber/lo"
)

// Segment is one colored chunk of prompt text.
type Segment struct {
	// Name is the kind of the generator that produced the chunk.
	Name  string
	Text  string
	FG    theme.Foreground
	BG    theme.Background
	Blink bool
	// Break marks a line break. It carries no colors and ends the
	// current divider chain.
	Break bool
}

// Generator produces the segments for one integration.
type Generator interface {
	Kind() Kind
	Generate(ctx context.Context, sh shell.Shell, th *theme.Theme) ([]Segment, error)
}

// Kind names a generator. The set is closed.
type Kind string

const (
	KindCwd        Kind = "cwd"
	KindRoot       Kind = "root"
	KindGit        Kind = "git"
	KindKube       Kind = "kube"
	KindContainers Kind = "containers"
	KindSSH        Kind = "ssh"
	KindReadonly   Kind = "readonly"
	KindTerraform  Kind = "terraform"
	KindNewline    Kind = "newline"
)

var kinds = []Kind{
	KindCwd, KindRoot, KindGit, KindKube, KindContainers,
	KindSSH, KindReadonly, KindTerraform, KindNewline,
}

// Kinds lists every generator kind.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind validates a segment name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.TrimSpace(name))
	if !lo.Contains(kinds, k) {
		return "", errors.Newf(errors.ErrUnknownSegment, "unknown segment %q", name).
			WithDetail("available", Kinds())
	}
	return k, nil
}

func chunk(kind Kind, text string, pair theme.Pair) Segment {
	return Segment{Name: string(kind), Text: text, FG: pair.FG, BG: pair.BG}
}

// warning is the blinking chunk shown for critical contexts and workspaces.
func warning(kind Kind, bg theme.Background) Segment {
	return Segment{
		Name:  string(kind),
		Text:  " " + glyphs.Warning + " ",
		FG:    theme.Warning,
		BG:    bg,
		Blink: true,
	}
}
