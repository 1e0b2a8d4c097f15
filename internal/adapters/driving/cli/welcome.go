package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var welcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Show the backend greeting",
	Long:  `Fetches the greeting, the available domains and the suggested opening questions.`,
	RunE:  runWelcome,
}

func init() {
	rootCmd.AddCommand(welcomeCmd)
}

func runWelcome(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	welcome, err := chatService.Welcome(context.Background())
	if err != nil {
		return fmt.Errorf("welcome failed: %w", err)
	}

	if welcome.Message != "" {
		cmd.Println(welcome.Message)
	}

	if len(welcome.AvailableDomains) > 0 {
		cmd.Println()
		cmd.Println("Domains:")
		for _, d := range welcome.AvailableDomains {
			cmd.Printf("  %s\n", d)
		}
	}

	if len(welcome.Suggestions) > 0 {
		cmd.Println()
		cmd.Println("Try asking:")
		for i, s := range welcome.Suggestions {
			cmd.Printf("  [%d] %s\n", i+1, s)
		}
	}
	return nil
}
