package kubeconfig

import (
	"testing"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/filesystem"
	"github.com/arthur-debert/opsline/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prodConfig = `apiVersion: v1
kind: Config
current-context: prod-eu
contexts:
  - name: prod-eu
    context:
      cluster: prod
      user: admin
      namespace: payments
  - name: dev
    context:
      cluster: dev
      user: dev
`

const devConfig = `apiVersion: v1
kind: Config
current-context: dev
contexts:
  - name: dev
    context:
      cluster: other
      namespace: shadowed
  - name: staging
    context:
      cluster: staging
`

func TestPaths(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, []string{"/home/u/.kube/config"}, Paths(getenv, "/home/u"))
	assert.Nil(t, Paths(getenv, ""))

	env[EnvKubeconfig] = "/a/config::/b/config"
	assert.Equal(t, []string{"/a/config", "/b/config"}, Paths(getenv, "/home/u"))
}

func TestLoad(t *testing.T) {
	fsys := filesystem.NewAferoFS(testutil.MemFS(t, map[string]string{
		"/a/config": prodConfig,
		"/b/config": devConfig,
		"/bad":      "contexts: [unclosed",
	}))

	t.Run("single file", func(t *testing.T) {
		cfg, err := Load(fsys, []string{"/a/config"})
		require.NoError(t, err)

		name, ctx, ok := cfg.Current()
		require.True(t, ok)
		assert.Equal(t, "prod-eu", name)
		assert.Equal(t, "payments", ctx.Namespace)
	})

	t.Run("first current-context and first definition win", func(t *testing.T) {
		cfg, err := Load(fsys, []string{"/b/config", "/a/config"})
		require.NoError(t, err)

		name, ctx, ok := cfg.Current()
		require.True(t, ok)
		assert.Equal(t, "dev", name)
		assert.Equal(t, "other", ctx.Cluster)
		assert.Equal(t, "shadowed", ctx.Namespace)
		assert.Len(t, cfg.Contexts, 3)
	})

	t.Run("missing files are skipped", func(t *testing.T) {
		cfg, err := Load(fsys, []string{"/nope", "/a/config"})
		require.NoError(t, err)
		assert.Equal(t, "prod-eu", cfg.CurrentContext)

		cfg, err = Load(fsys, []string{"/nope"})
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(fsys, []string{"/bad"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
	})
}

func TestCurrent(t *testing.T) {
	var nilCfg *Config
	_, _, ok := nilCfg.Current()
	assert.False(t, ok)

	_, _, ok = (&Config{CurrentContext: "ghost"}).Current()
	assert.False(t, ok)

	_, _, ok = (&Config{
		CurrentContext: "empty",
		Contexts:       []NamedContext{{Name: "empty"}},
	}).Current()
	assert.False(t, ok)
}
