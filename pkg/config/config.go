package config

import "time"

// Config is the decoded configuration. A nil section pointer means the
// section is absent and its segment is disabled.
type Config struct {
	Shell      string            `koanf:"shell" yaml:"shell,omitempty" toml:"shell,omitempty"`
	Theme      string            `koanf:"theme" yaml:"theme,omitempty" toml:"theme,omitempty"`
	Segments   []string          `koanf:"segments" yaml:"segments" toml:"segments"`
	Cwd        CwdConfig         `koanf:"cwd" yaml:"cwd" toml:"cwd"`
	Kube       *KubeConfig       `koanf:"kube" yaml:"kube,omitempty" toml:"kube,omitempty"`
	Containers *ContainersConfig `koanf:"containers" yaml:"containers,omitempty" toml:"containers,omitempty"`
	Terraform  *TerraformConfig  `koanf:"terraform" yaml:"terraform,omitempty" toml:"terraform,omitempty"`
}

type CwdConfig struct {
	DirOnly bool `koanf:"dironly" yaml:"dironly" toml:"dironly"`
}

type KubeConfig struct {
	CriticalContexts []string       `koanf:"critical_contexts" yaml:"critical_contexts,omitempty" toml:"critical_contexts,omitempty"`
	ContextAliases   []ContextAlias `koanf:"context_aliases" yaml:"context_aliases,omitempty" toml:"context_aliases,omitempty"`
}

// ContextAlias renames a cluster context in the prompt. On the command
// line and in the environment it is written context:alias.
type ContextAlias struct {
	Context string `koanf:"context" yaml:"context" toml:"context"`
	Alias   string `koanf:"alias" yaml:"alias" toml:"alias"`
}

type ContainersConfig struct {
	URL     string        `koanf:"url" yaml:"url" toml:"url"`
	Timeout time.Duration `koanf:"timeout" yaml:"timeout,omitempty" toml:"timeout,omitempty"`
}

type TerraformConfig struct {
	CriticalWorkspaces []string `koanf:"critical_workspaces" yaml:"critical_workspaces,omitempty" toml:"critical_workspaces,omitempty"`
}
