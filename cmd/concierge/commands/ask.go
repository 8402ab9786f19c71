// ABOUTME: Ask command answers a single question and exits
// ABOUTME: Runs one message through the guarded router without a session loop
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/study-concierge/internal/models"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask a single question",
		Long: `Ask the Study Concierge a single question and print the reply.

The message goes through the same guardrails and intent routing as
the interactive chat.

Examples:
  concierge ask "What does the longer context lab cover?"
  concierge ask "What's the weather in Vancouver?"
  concierge ask "Plan my study for transformers, 90-minute session"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	_, reply := p.router.Handle(cmd.Context(), args[0], models.SessionHistory{})
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
