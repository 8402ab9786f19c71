// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines verbose/quiet/format flags shared by all commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 ██████╗ ██████╗ ███╗   ██╗ ██████╗██╗███████╗██████╗  ██████╗ ███████╗
██╔════╝██╔═══██╗████╗  ██║██╔════╝██║██╔════╝██╔══██╗██╔════╝ ██╔════╝
██║     ██║   ██║██╔██╗ ██║██║     ██║█████╗  ██████╔╝██║  ███╗█████╗
██║     ██║   ██║██║╚██╗██║██║     ██║██╔══╝  ██╔══██╗██║   ██║██╔══╝
╚██████╗╚██████╔╝██║ ╚████║╚██████╗██║███████╗██║  ██║╚██████╔╝███████╗
 ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concierge",
		Short: "Study Concierge - guarded RAG chat over course materials",
		Long: banner + `
Study Concierge answers questions about course notebooks using
retrieval-augmented generation, with guardrails, a deterministic
study planner, and a weather lookup built in.

Index your notebooks once, then chat or ask one-shot questions.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, json, table)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewIndexCmd(),
		NewChatCmd(),
		NewAskCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
