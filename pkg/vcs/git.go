package vcs

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/rs/zerolog"
)

// Reader returns the status of the repository containing dir. A nil
// status with a nil error means dir is not inside a repository.
type Reader interface {
	Status(ctx context.Context, dir string) (*Status, error)
}

// GitCLI reads status by running the git binary.
type GitCLI struct {
	Binary string
	Logger zerolog.Logger
}

// NewGitCLI returns a reader that uses git from PATH.
func NewGitCLI(logger zerolog.Logger) *GitCLI {
	return &GitCLI{Binary: "git", Logger: logger}
}

func (g *GitCLI) Status(ctx context.Context, dir string) (*Status, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, g.Binary, "status", "--porcelain=v2", "--branch", "--untracked-files=normal")
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(cmd.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) && strings.Contains(stderr.String(), "not a git repository") {
			g.Logger.Debug().Str("dir", dir).Msg("not a git repository")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrProbeFailed, "git status").
			WithDetail("dir", dir).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	st, err := Parse(&stdout)
	if err != nil {
		return nil, err
	}
	g.Logger.Debug().
		Str("dir", dir).
		Str("head", st.Head()).
		Int("ahead", st.Ahead).
		Int("behind", st.Behind).
		Msg("git status read")
	return st, nil
}
