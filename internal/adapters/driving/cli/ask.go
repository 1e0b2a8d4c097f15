package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askDomain string
	askJSON   bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot question",
	Long: `Sends one question to the backend, scoped to a knowledge domain,
and prints the answer with its source citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askDomain, "domain", "d", "general_info", "knowledge domain to ask")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the reply as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	reply, err := chatService.Send(context.Background(), askDomain, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reply: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(reply.Content)
	if len(reply.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i := range reply.Sources {
			cmd.Printf("  [%d] %s\n", i+1, reply.Sources[i].Label(i+1))
		}
	}
	return nil
}
