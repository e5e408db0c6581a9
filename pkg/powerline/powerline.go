// Package powerline composes generator output into one escaped prompt
// string.
package powerline

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/logging"
	"github.com/arthur-debert/opsline/pkg/segments"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/rs/zerolog"
)

// Powerline renders an ordered list of generators.
type Powerline struct {
	shell      shell.Shell
	theme      *theme.Theme
	generators []segments.Generator
	logger     zerolog.Logger
}

// Option configures a Powerline.
type Option func(*Powerline)

// WithLogger sets the logger used for generator diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Powerline) {
		p.logger = logger
	}
}

// New creates an empty powerline rendering for sh with colors from th.
func New(sh shell.Shell, th *theme.Theme, opts ...Option) *Powerline {
	p := &Powerline{
		shell:  sh,
		theme:  th,
		logger: logging.GetLogger("powerline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends a generator. Output follows the order of Add calls.
func (p *Powerline) Add(g segments.Generator) {
	p.generators = append(p.generators, g)
}

// Render runs every generator once and serializes the result. A
// generator that fails or panics contributes nothing.
func (p *Powerline) Render(ctx context.Context) string {
	done := logging.LogOperationStart(p.logger, "render")
	defer done()

	var all []segments.Segment
	for _, g := range p.generators {
		segs, err := p.generate(ctx, g)
		if err != nil {
			p.logger.Info().
				Err(err).
				Str("segment", string(g.Kind())).
				Str("code", string(errors.GetErrorCode(err))).
				Msg("segment skipped")
			continue
		}
		p.logger.Debug().Str("segment", string(g.Kind())).Int("chunks", len(segs)).Msg("segment generated")
		all = append(all, segs...)
	}
	return RenderSegments(p.shell, all)
}

func (p *Powerline) generate(ctx context.Context, g segments.Generator) (segs []segments.Segment, err error) {
	defer func() {
		if r := recover(); r != nil {
			segs = nil
			err = errors.Newf(errors.ErrInternal, "segment %s panicked: %v", g.Kind(), r)
		}
	}()
	return g.Generate(ctx, p.shell, p.theme)
}

// RenderSegments serializes segs for sh. Each record becomes a color
// block followed by a divider. The divider takes the record's background
// as its foreground and the next record's background as its own; the
// last record of a run gets an open divider and a trailing space. Line
// breaks are written verbatim and start a new run.
func RenderSegments(sh shell.Shell, segs []segments.Segment) string {
	var b strings.Builder
	b.Grow(64 * len(segs))

	for i, s := range segs {
		if s.Break {
			b.WriteString(s.Text)
			b.WriteString(sh.Reset())
			continue
		}

		b.WriteString(sh.Foreground(s.FG))
		b.WriteString(sh.Background(s.BG))
		if s.Blink {
			b.WriteString(sh.Blink())
		}
		b.WriteString(s.Text)
		b.WriteString(sh.Reset())

		b.WriteString(sh.Foreground(theme.DividerForeground(s.BG)))
		if i+1 < len(segs) && !segs[i+1].Break {
			b.WriteString(sh.Background(segs[i+1].BG))
			b.WriteString(glyphs.LeftHardDivider)
			b.WriteString(sh.Reset())
		} else {
			b.WriteString(glyphs.LeftHardDivider)
			b.WriteString(sh.Reset())
			b.WriteString(" ")
		}
	}
	return b.String()
}

// String describes the configured pipeline.
func (p *Powerline) String() string {
	kinds := make([]string, len(p.generators))
	for i, g := range p.generators {
		kinds[i] = string(g.Kind())
	}
	return fmt.Sprintf("powerline(%s, %s, [%s])", p.shell, p.theme.Name, strings.Join(kinds, " "))
}
