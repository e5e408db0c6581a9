package opsline

import (
	"fmt"
	"os"

	"github.com/arthur-debert/opsline/internal/version"
	"github.com/arthur-debert/opsline/pkg/config"
	"github.com/arthur-debert/opsline/pkg/logging"
	"github.com/arthur-debert/opsline/pkg/powerline"
	"github.com/arthur-debert/opsline/pkg/segments"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "opsline",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, configPath)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Prompt flags
	rootCmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	config.AddFlags(rootCmd.Flags())

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runPrompt resolves the configuration and prints the prompt. Any error
// here is a configuration error and aborts before rendering.
func runPrompt(cmd *cobra.Command, configPath string) error {
	logger := logging.GetLogger("cmd.prompt")

	cfg, err := config.Load(config.LoadOptions{Path: configPath, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	resolved, err := cfg.Resolve(os.Getenv)
	if err != nil {
		return err
	}

	env, err := segments.NewEnv()
	if err != nil {
		return err
	}

	p := powerline.New(resolved.Shell, resolved.Theme)
	for _, g := range segments.Build(resolved.Order, resolved.Options, env) {
		p.Add(g)
	}
	logger.Debug().Stringer("pipeline", p).Msg("Rendering prompt")

	_, err = fmt.Fprint(cmd.OutOrStdout(), p.Render(cmd.Context()))
	return err
}
