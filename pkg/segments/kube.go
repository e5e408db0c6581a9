package segments

import (
	"context"
	"strings"

	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/samber/lo"
)

// KubeOptions configures the cluster context segment.
type KubeOptions struct {
	// CriticalContexts are substrings; a context containing any of them
	// gets a blinking warning.
	CriticalContexts []string
	// Aliases maps context names to display names.
	Aliases map[string]string
}

// Kube shows the current cluster context and its namespace.
type Kube struct {
	opts KubeOptions
	env  *Env
}

// NewKube creates the Kubernetes context generator.
func NewKube(opts KubeOptions, env *Env) *Kube {
	return &Kube{opts: opts, env: env}
}

func (k *Kube) Kind() Kind { return KindKube }

func (k *Kube) Generate(_ context.Context, sh shell.Shell, th *theme.Theme) ([]Segment, error) {
	cfg, err := k.env.Kube()
	if err != nil || cfg == nil {
		return nil, err
	}
	name, kctx, ok := cfg.Current()
	if !ok {
		return nil, nil
	}

	out := []Segment{chunk(KindKube, " "+glyphs.ShipWheel+" ", th.KubeContext)}
	if k.Critical(name) {
		out = append(out, warning(KindKube, th.KubeContext.BG))
	}

	display := name
	if alias, ok := k.opts.Aliases[name]; ok {
		display = alias
	}
	out = append(out, chunk(KindKube, sh.EscapeText(display)+" ", th.KubeContext))

	if kctx.Namespace != "" {
		out = append(out, chunk(KindKube, " "+sh.EscapeText(kctx.Namespace)+" ", th.KubeNamespace))
	}
	return out, nil
}

// Critical reports whether context contains any critical substring.
func (k *Kube) Critical(context string) bool {
	return lo.SomeBy(k.opts.CriticalContexts, func(s string) bool {
		return s != "" && strings.Contains(context, s)
	})
}
