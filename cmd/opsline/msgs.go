package opsline

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A powerline prompt for ops work"
	MsgInitShort       = "Print the shell hook that installs the prompt"
	MsgGenConfigShort  = "Generate a configuration file"
	MsgThemesShort     = "Preview the color themes"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s\n"
	MsgThemeHeader   = "%s\n"
	MsgVersionFormat = "opsline version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrConfigExists = "config file %s already exists"
	MsgErrWriteConfig  = "failed to write config file %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file, yaml or toml (default config.yaml, then $XDG_CONFIG_HOME/opsline/config.yaml)"
	MsgFlagFormat  = "Config file format: yaml or toml"
	MsgFlagWrite   = "Write the config to $XDG_CONFIG_HOME/opsline instead of stdout"
)

// Long messages
const (
	MsgRootLong = `opsline prints a powerline style prompt for bash or zsh.

Each segment probes one part of the environment: the working directory,
git state, the current Kubernetes context, containers on the local
daemon, the Terraform workspace, SSH sessions and write access. Segments
that do not apply are left out, and a slow or failing probe never blocks
the prompt.

Settings come from the embedded defaults, the config file, OPSLINE_*
environment variables and flags, in increasing priority.`

	MsgRootExample = `  opsline --shell bash
  opsline --shell zsh --segments cwd,git,kube,newline,root
  opsline --shell bash --kube-critical-contexts prod --kube-context-aliases arn:aws:eks:eu-west-1:1:cluster/prod:prod`

	MsgInitLong = `Print the code that regenerates the prompt before every command.
Arguments after -- are passed to opsline on every invocation.

Add it to your shell startup file:

  bash: eval "$(opsline init bash)"
  zsh:  eval "$(opsline init zsh)"`

	MsgInitExample = `  eval "$(opsline init bash)"
  eval "$(opsline init zsh -- --theme gruvbox --segments cwd,git,root)"`

	MsgGenConfigLong = `Output a starter configuration to stdout, or write it with -w.

The defaults are active. The kube, containers and terraform sections are
included commented out; a section must be present to enable its segment.`

	MsgGenConfigExample = `  opsline gen-config                 # YAML to stdout
  opsline gen-config --format toml   # TOML to stdout
  opsline gen-config -w              # Write $XDG_CONFIG_HOME/opsline/config.yaml`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(opsline completion bash)

Zsh:
  $ opsline completion zsh > "${fpath[1]}/_opsline"

Fish:
  $ opsline completion fish | source
`
)
