package segments

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/filesystem"
	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/kubeconfig"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/testutil"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadonly(t *testing.T) {
	th := defaultTheme(t)
	env := testEnv(t, nil)

	segs, err := NewReadonly(env).Generate(context.Background(), shell.Bash, th)
	require.NoError(t, err)
	assert.Empty(t, segs)

	env.FS = filesystem.NewAferoFS(afero.NewReadOnlyFs(testutil.MemFS(t, map[string]string{"/work/.keep": ""})))
	segs, err = NewReadonly(env).Generate(context.Background(), shell.Bash, th)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, " "+glyphs.Lock+" ", segs[0].Text)
	assert.Equal(t, th.Readonly.BG, segs[0].BG)
}

func TestTerraform(t *testing.T) {
	th := defaultTheme(t)
	ctx := context.Background()
	opts := TerraformOptions{CriticalWorkspaces: []string{"prod"}}

	t.Run("no marker file", func(t *testing.T) {
		segs, err := NewTerraform(opts, testEnv(t, nil)).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("regular workspace", func(t *testing.T) {
		env := testEnv(t, map[string]string{"/work/.terraform/environment": "staging\n"})
		segs, err := NewTerraform(opts, env).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Equal(t, []string{" " + glyphs.Terraform + " ", "staging "}, texts(segs))
	})

	t.Run("critical workspace blinks", func(t *testing.T) {
		env := testEnv(t, map[string]string{"/work/.terraform/environment": "prod"})
		segs, err := NewTerraform(opts, env).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		require.Len(t, segs, 3)
		assert.True(t, segs[1].Blink)
		assert.Equal(t, theme.Warning, segs[1].FG)
		assert.Equal(t, th.Terraform.BG, segs[1].BG)
		assert.Equal(t, "prod ", segs[2].Text)
	})

	t.Run("unreadable marker is a probe failure", func(t *testing.T) {
		env := testEnv(t, map[string]string{"/work/.terraform/environment/.keep": ""})
		segs, err := NewTerraform(opts, env).Generate(ctx, shell.Bash, th)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProbeFailed))
		assert.Empty(t, segs)
	})
}

func kubeEnv(t *testing.T, current string) *Env {
	env := testEnv(t, nil)
	env.Kube = func() (*kubeconfig.Config, error) {
		return &kubeconfig.Config{
			CurrentContext: current,
			Contexts: []kubeconfig.NamedContext{
				{Name: "prod-eu-1", Context: &kubeconfig.Context{Namespace: "payments"}},
				{Name: "dev", Context: &kubeconfig.Context{}},
			},
		}, nil
	}
	return env
}

func TestKube(t *testing.T) {
	th := defaultTheme(t)
	ctx := context.Background()
	opts := KubeOptions{
		CriticalContexts: []string{"prod"},
		Aliases:          map[string]string{"dev": "sandbox"},
	}

	t.Run("no kubeconfig", func(t *testing.T) {
		segs, err := NewKube(opts, testEnv(t, nil)).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("undefined current context", func(t *testing.T) {
		segs, err := NewKube(opts, kubeEnv(t, "ghost")).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("critical context renders wheel, warning, name, then namespace", func(t *testing.T) {
		segs, err := NewKube(opts, kubeEnv(t, "prod-eu-1")).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		require.Len(t, segs, 4)

		assert.Equal(t, " "+glyphs.ShipWheel+" ", segs[0].Text)
		assert.True(t, segs[1].Blink)
		assert.Equal(t, theme.Warning, segs[1].FG)
		assert.Equal(t, th.KubeContext.BG, segs[1].BG)
		assert.Equal(t, "prod-eu-1 ", segs[2].Text)
		assert.False(t, segs[2].Blink)
		assert.Equal(t, " payments ", segs[3].Text)
		assert.Equal(t, th.KubeNamespace.BG, segs[3].BG)
	})

	t.Run("alias without namespace", func(t *testing.T) {
		segs, err := NewKube(opts, kubeEnv(t, "dev")).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Equal(t, []string{" " + glyphs.ShipWheel + " ", "sandbox "}, texts(segs))
	})

	t.Run("empty critical entries never match", func(t *testing.T) {
		k := NewKube(KubeOptions{CriticalContexts: []string{""}}, testEnv(t, nil))
		assert.False(t, k.Critical("dev"))
	})
}

func TestContainers(t *testing.T) {
	th := defaultTheme(t)
	ctx := context.Background()

	t.Run("unix socket", func(t *testing.T) {
		path := testutil.FakeDaemon(t, testutil.ContainersHandler(`[{"State":"running"},{"State":"exited"}]`))
		gen := NewContainers(ContainersOptions{URL: "unix:" + path, Timeout: time.Second}, zerolog.Nop())

		segs, err := gen.Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, " "+glyphs.Docker+"  "+glyphs.Running+" 1 "+glyphs.Exited+" 1 ", segs[0].Text)
		assert.Equal(t, th.Container, theme.Pair{FG: segs[0].FG, BG: segs[0].BG})
	})

	t.Run("all states", func(t *testing.T) {
		body := `[{"State":"running"},{"State":"running"},{"State":"paused"},{"State":"exited"},{"State":"restarting"},{"State":"dead"}]`
		path := testutil.FakeDaemon(t, testutil.ContainersHandler(body))
		gen := NewContainers(ContainersOptions{URL: "unix:" + path}, zerolog.Nop())

		segs, err := gen.Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, " "+glyphs.Docker+"  "+glyphs.Running+" 2 "+glyphs.Paused+" 1 "+
			glyphs.Exited+" 1 "+glyphs.Restarting+" 1 ", segs[0].Text)
	})

	t.Run("no counted containers", func(t *testing.T) {
		path := testutil.FakeDaemon(t, testutil.ContainersHandler(`[{"State":"created"}]`))
		gen := NewContainers(ContainersOptions{URL: "unix:" + path}, zerolog.Nop())

		segs, err := gen.Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("unreachable daemon", func(t *testing.T) {
		gen := NewContainers(ContainersOptions{URL: "unix:" + testutil.SocketPath(t)}, zerolog.Nop())

		segs, err := gen.Generate(ctx, shell.Bash, th)
		assert.Error(t, err)
		assert.Empty(t, segs)
	})

	t.Run("slow daemon times out", func(t *testing.T) {
		path, _ := testutil.HangingSocket(t)
		gen := NewContainers(ContainersOptions{URL: "unix:" + path, Timeout: 50 * time.Millisecond}, zerolog.Nop())

		start := time.Now()
		segs, err := gen.Generate(ctx, shell.Bash, th)
		assert.Error(t, err)
		assert.Empty(t, segs)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("error status", func(t *testing.T) {
		path := testutil.FakeDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		gen := NewContainers(ContainersOptions{URL: "unix:" + path}, zerolog.Nop())

		_, err := gen.Generate(ctx, shell.Bash, th)
		assert.True(t, errors.IsErrorCode(err, errors.ErrHTTPStatus))
	})

	t.Run("invalid body", func(t *testing.T) {
		path := testutil.FakeDaemon(t, testutil.ContainersHandler(`{"message":"not a list"}`))
		gen := NewContainers(ContainersOptions{URL: "unix:" + path}, zerolog.Nop())

		_, err := gen.Generate(ctx, shell.Bash, th)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
	})
}
