package opsline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/opsline/internal/version"
	"github.com/arthur-debert/opsline/pkg/config"
	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/arthur-debert/opsline/pkg/shell"
	"github.com/arthur-debert/opsline/pkg/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "init <bash|zsh> [-- flags...]",
		Short:     MsgInitShort,
		Long:      MsgInitLong,
		Example:   MsgInitExample,
		ValidArgs: []string{"bash", "zsh"},
		Args:      cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.Parse(args[0])
			if err != nil {
				return err
			}

			exe, err := os.Executable()
			if err != nil {
				log.Debug().Err(err).Msg("Cannot locate executable, relying on PATH")
				exe = "opsline"
			}

			snippet, err := shell.Snippet(sh, exe, args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var (
		formatName string
		write      bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(formatName)
			if err != nil {
				return err
			}
			content, err := config.GenerateConfigContent(format)
			if err != nil {
				return err
			}

			if !write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := filepath.Join(xdg.ConfigHome, "opsline", format.Filename())
			if err := writeNewFile(path, content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", string(config.FormatYAML), MsgFlagFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

// writeNewFile refuses to replace an existing file.
func writeNewFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigValid, MsgErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, MsgErrWriteConfig, path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, MsgErrWriteConfig, path)
	}
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: MsgThemesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				th, err := theme.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgThemeHeader, lipgloss.NewStyle().Bold(true).Render(name))
				fmt.Fprintln(cmd.OutOrStdout(), renderSwatches(th))
			}
			return nil
		},
	}
}

// renderSwatches draws each role in its own colors, wrapped a few per
// line.
func renderSwatches(th *theme.Theme) string {
	const perLine = 5

	var lines, row []string
	for i, role := range th.Roles() {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(role.Pair.FG.String())).
			Background(lipgloss.Color(role.Pair.BG.String())).
			Padding(0, 1)
		row = append(row, style.Render(role.Name))
		if (i+1)%perLine == 0 {
			lines = append(lines, "  "+lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		lines = append(lines, "  "+lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(lines, "\n")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
