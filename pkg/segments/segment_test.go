package segments

import (
	"context"
	"testing"
	"time"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/glyphs"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" git ")
	require.NoError(t, err)
	assert.Equal(t, KindGit, got)

	_, err = ParseKind("battery")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownSegment))
}

func TestBuild(t *testing.T) {
	env := testEnv(t, nil)
	order := []Kind{KindCwd, KindKube, KindContainers, KindTerraform, KindNewline, KindRoot}

	t.Run("absent sections disable their generators", func(t *testing.T) {
		gens := Build(order, Options{}, env)
		var got []Kind
		for _, g := range gens {
			got = append(got, g.Kind())
		}
		assert.Equal(t, []Kind{KindCwd, KindNewline, KindRoot}, got)
	})

	t.Run("present sections keep configured order", func(t *testing.T) {
		gens := Build(order, Options{
			Kube:       &KubeOptions{},
			Containers: &ContainersOptions{URL: "unix:/run/docker.sock"},
			Terraform:  &TerraformOptions{},
		}, env)
		var got []Kind
		for _, g := range gens {
			got = append(got, g.Kind())
		}
		assert.Equal(t, order, got)
	})

	t.Run("containers timeout defaults", func(t *testing.T) {
		gens := Build([]Kind{KindContainers}, Options{Containers: &ContainersOptions{URL: "http://localhost"}}, env)
		require.Len(t, gens, 1)
		assert.Equal(t, DefaultContainersTimeout, gens[0].(*Containers).opts.Timeout)

		gens = Build([]Kind{KindContainers}, Options{Containers: &ContainersOptions{URL: "http://localhost", Timeout: time.Second}}, env)
		assert.Equal(t, time.Second, gens[0].(*Containers).opts.Timeout)
	})
}

func TestCwd(t *testing.T) {
	th := defaultTheme(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		sh      shell.Shell
		dirOnly bool
		dir     string
		want    string
	}{
		{"bash full", shell.Bash, false, "/work", ` \w `},
		{"bash dironly", shell.Bash, true, "/work", ` \W `},
		{"zsh full", shell.Zsh, false, "/work", " %d "},
		{"zsh dironly", shell.Zsh, true, "/work", " %1d "},
		{"bare outside home", shell.Bare, false, "/srv/app", " /srv/app "},
		{"bare under home", shell.Bare, false, "/home/user/src/opsline", " ~/src/opsline "},
		{"bare at home", shell.Bare, true, "/home/user", " ~ "},
		{"bare dironly", shell.Bare, true, "/home/user/src/opsline", " opsline "},
		{"bare home prefix is not home", shell.Bare, false, "/home/username", " /home/username "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv(t, nil)
			env.Dir = tt.dir

			segs, err := NewCwd(tt.dirOnly, env).Generate(ctx, tt.sh, th)
			require.NoError(t, err)
			require.Len(t, segs, 1)
			assert.Equal(t, tt.want, segs[0].Text)
			assert.Equal(t, th.Cwd.BG, segs[0].BG)
			assert.Equal(t, th.Cwd.FG, segs[0].FG)
		})
	}
}

func TestRoot(t *testing.T) {
	th := defaultTheme(t)
	env := testEnv(t, nil)
	gen := NewRoot(env)

	segs, _ := gen.Generate(context.Background(), shell.Bash, th)
	assert.Equal(t, ` \$ `, segs[0].Text)

	segs, _ = gen.Generate(context.Background(), shell.Zsh, th)
	assert.Equal(t, " %# ", segs[0].Text)

	segs, _ = gen.Generate(context.Background(), shell.Bare, th)
	assert.Equal(t, " $ ", segs[0].Text)

	env.Euid = 0
	segs, _ = gen.Generate(context.Background(), shell.Bare, th)
	assert.Equal(t, " # ", segs[0].Text)
}

func TestGit(t *testing.T) {
	th := defaultTheme(t)
	ctx := context.Background()

	t.Run("outside a repository", func(t *testing.T) {
		env := testEnv(t, nil)
		segs, err := NewGit(env).Generate(ctx, shell.Bash, th)
		assert.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("probe failure is reported", func(t *testing.T) {
		env := testEnv(t, nil)
		env.Git = fakeGit{err: errors.New(errors.ErrProbeFailed, "git exploded")}
		segs, err := NewGit(env).Generate(ctx, shell.Bash, th)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProbeFailed))
		assert.Empty(t, segs)
	})

	t.Run("branch ahead with one modified file", func(t *testing.T) {
		env := testEnv(t, nil)
		env.Git = fakeGit{status: &vcs.Status{Branch: "main", HasUpstream: true, Ahead: 2, Modified: 1}}

		segs, err := NewGit(env).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Equal(t, []string{
			" " + glyphs.Branch + " main ",
			"2" + glyphs.Ahead + " ",
			"1" + glyphs.Modified + " ",
		}, texts(segs))
		assert.Equal(t, th.GitBranch.BG, segs[0].BG)
		assert.Equal(t, th.GitAhead.BG, segs[1].BG)
		assert.Equal(t, th.GitModified.BG, segs[2].BG)
	})

	t.Run("every counter in order", func(t *testing.T) {
		env := testEnv(t, nil)
		env.Git = fakeGit{status: &vcs.Status{
			Branch: "dev", Ahead: 1, Behind: 2, Staged: 3, Modified: 4, Untracked: 5, Conflicted: 6,
		}}

		segs, err := NewGit(env).Generate(ctx, shell.Zsh, th)
		require.NoError(t, err)
		assert.Equal(t, []string{
			" " + glyphs.Branch + " dev ",
			"1" + glyphs.Ahead + " ",
			"2" + glyphs.Behind + " ",
			"3" + glyphs.Staged + " ",
			"4" + glyphs.Modified + " ",
			"5" + glyphs.Untracked + " ",
			"6" + glyphs.Conflicted + " ",
		}, texts(segs))
	})

	t.Run("detached head shows short commit", func(t *testing.T) {
		env := testEnv(t, nil)
		env.Git = fakeGit{status: &vcs.Status{Commit: "4b825dc642cb6eb9a060", Detached: true}}

		segs, err := NewGit(env).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Equal(t, []string{" " + glyphs.Branch + " 4b825dc "}, texts(segs))
	})

	t.Run("branch names are escaped", func(t *testing.T) {
		env := testEnv(t, nil)
		env.Git = fakeGit{status: &vcs.Status{Branch: "x$(reboot)"}}

		segs, err := NewGit(env).Generate(ctx, shell.Bash, th)
		require.NoError(t, err)
		assert.Equal(t, " "+glyphs.Branch+` x\\$(reboot) `, segs[0].Text)

		segs, err = NewGit(env).Generate(ctx, shell.Zsh, th)
		require.NoError(t, err)
		assert.Equal(t, " "+glyphs.Branch+" x$(reboot) ", segs[0].Text)
	})
}

func TestSSH(t *testing.T) {
	th := defaultTheme(t)
	env := testEnv(t, nil)

	segs, err := NewSSH(env).Generate(context.Background(), shell.Bash, th)
	require.NoError(t, err)
	assert.Empty(t, segs)

	env.Getenv = func(k string) string {
		if k == EnvSSHClient {
			return "10.0.0.1 51234 22"
		}
		return ""
	}
	segs, err = NewSSH(env).Generate(context.Background(), shell.Bash, th)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, " "+glyphs.SSH+" ", segs[0].Text)
	assert.Equal(t, th.SSH.BG, segs[0].BG)
}

func TestNewline(t *testing.T) {
	segs, err := Newline{}.Generate(context.Background(), shell.Bash, defaultTheme(t))
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].Break)
	assert.Equal(t, "\n", segs[0].Text)
}
