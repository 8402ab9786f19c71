// ABOUTME: Chat command runs the interactive guarded chat loop
// ABOUTME: Reads stdin, routes each message, and keeps bounded session history
package commands

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harper/study-concierge/internal/models"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with the Study Concierge.

Messages are checked by the guardrails, then routed to the weather
service, the study planner, or retrieval over the indexed course
materials. Type 'exit' or 'quit' to leave.`,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	userPrompt := color.New(color.FgGreen, color.Bold)
	assistantLabel := color.New(color.FgCyan, color.Bold)

	sessionID := uuid.New().String()[:8]
	if verbose {
		log.Printf("[Chat] session %s started", sessionID)
	}

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintln(out, "Study Concierge")
		fmt.Fprintln(out, "Ask me about the labs or course materials. Type 'exit' to quit.")
		fmt.Fprintln(out)
	}

	history := models.SessionHistory{}
	scanner := bufio.NewScanner(os.Stdin)

	for {
		userPrompt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		var reply string
		history, reply = p.router.Handle(cmd.Context(), message, history)

		assistantLabel.Fprint(out, "Concierge: ")
		fmt.Fprintln(out, reply)
		fmt.Fprintln(out)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if !quiet {
		fmt.Fprintln(out, "Goodbye!")
	}
	return nil
}
