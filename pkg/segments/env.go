package segments

import (
	"os"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/filesystem"
	"github.com/arthur-debert/opsline/pkg/kubeconfig"
	"github.com/arthur-debert/opsline/pkg/logging"
	"github.com/arthur-debert/opsline/pkg/vcs"
	"github.com/rs/zerolog"
)

// Env is everything the generators read from the outside world.
type Env struct {
	Dir    string
	Home   string
	Euid   int
	Getenv func(string) string
	FS     filesystem.FS
	Git    vcs.Reader
	Kube   func() (*kubeconfig.Config, error)
	Logger zerolog.Logger
}

// NewEnv describes the running process.
func NewEnv() (*Env, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "get working directory")
	}
	home, _ := os.UserHomeDir()
	fsys := filesystem.NewOS()

	return &Env{
		Dir:    dir,
		Home:   home,
		Euid:   os.Geteuid(),
		Getenv: os.Getenv,
		FS:     fsys,
		Git:    vcs.NewGitCLI(logging.GetLogger("vcs")),
		Kube: func() (*kubeconfig.Config, error) {
			return kubeconfig.Load(fsys, kubeconfig.Paths(os.Getenv, home))
		},
		Logger: logging.GetLogger("segments"),
	}, nil
}
