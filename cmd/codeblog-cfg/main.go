// Codeblog-cfg prints and checks the blog's static site configuration.
//
// It shows the site identity (author contact, title, subtitle, GitHub link)
// and the vendor link table in several formats, and validates that every
// value is well formed.
//
// Usage:
//
//	codeblog-cfg [command] [flags]
//
// Running without arguments shows both records.
// See 'codeblog-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/based-ghost/codeblog/internal/logging"
	"github.com/based-ghost/codeblog/internal/version"
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Root command flags
var (
	logLevel string
	noColor  bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codeblog-cfg",
		Short: "code-blog site configuration utility",
		Long: `Print and validate the static configuration of code-blog.

Shows the site identity (contact email, GitHub profile, title, subtitle)
and the vendor links table used by the front end.

If no command is specified, both records are shown.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Initialize(logLevel); err != nil {
				return err
			}
			logging.LogCommand(cmd.CommandPath(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, []string{scopeAll})
		},
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, json, yaml); defaults to preferences")

	root.AddCommand(newShowCmd())
	root.AddCommand(newLinkCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newPrefsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "codeblog-cfg %s\n", version.Full())
		},
	}
}
