package segments

import (
	"context"

	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
)

// Newline breaks the prompt onto a new line.
type Newline struct{}

func (Newline) Kind() Kind { return KindNewline }

func (Newline) Generate(context.Context, shell.Shell, *theme.Theme) ([]Segment, error) {
	return []Segment{{Name: string(KindNewline), Text: "\n", Break: true}}, nil
}
