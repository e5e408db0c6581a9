package segments

import (
	"context"

	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
)

// EnvSSHClient is set by sshd for remote sessions.
const EnvSSHClient = "SSH_CLIENT"

// SSH marks remote sessions.
type SSH struct {
	env *Env
}

// NewSSH creates the SSH session generator.
func NewSSH(env *Env) *SSH {
	return &SSH{env: env}
}

func (s *SSH) Kind() Kind { return KindSSH }

func (s *SSH) Generate(_ context.Context, _ shell.Shell, th *theme.Theme) ([]Segment, error) {
	if s.env.Getenv(EnvSSHClient) == "" {
		return nil, nil
	}
	return []Segment{chunk(KindSSH, " "+glyphs.SSH+" ", th.SSH)}, nil
}
