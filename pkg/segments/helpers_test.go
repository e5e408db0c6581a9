package segments

import (
	"context"
	"testing"

	"github.com/arthur-debert/opsline/pkg/filesystem"
	"github.com/arthur-debert/opsline/pkg/kubeconfig"
	"github.com/arthur-debert/opsline/pkg/testutil"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/arthur-debert/opsline/pkg/vcs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeGit struct {
	status *vcs.Status
	err    error
}

func (f fakeGit) Status(context.Context, string) (*vcs.Status, error) {
	return f.status, f.err
}

// testEnv returns an environment rooted at /work on an in-memory
// filesystem holding files.
func testEnv(t *testing.T, files map[string]string) *Env {
	t.Helper()

	if files == nil {
		files = map[string]string{}
	}
	files["/work/.keep"] = ""
	vars := map[string]string{}

	return &Env{
		Dir:    "/work",
		Home:   "/home/user",
		Euid:   1000,
		Getenv: func(k string) string { return vars[k] },
		FS:     filesystem.NewAferoFS(testutil.MemFS(t, files)),
		Git:    fakeGit{},
		Kube:   func() (*kubeconfig.Config, error) { return nil, nil },
		Logger: zerolog.Nop(),
	}
}

func defaultTheme(t *testing.T) *theme.Theme {
	t.Helper()
	th, err := theme.Lookup(theme.Default)
	require.NoError(t, err)
	return th
}

func texts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}
