package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

var (
	historyDomain string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent chat exchanges",
	Long: `Prints recent locally recorded chat exchanges, oldest first.
History is stored on this machine only and is never sent anywhere.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyDomain, "domain", "d", "", "filter by knowledge domain")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	recs, err := chatService.History(context.Background(), historyDomain, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(recs) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for i := range recs {
		who := "you"
		if recs[i].Role == domain.RoleBot {
			who = "bot"
		}
		cmd.Printf("[%s] %s (%s): %s\n",
			recs[i].CreatedAt.Local().Format("2006-01-02 15:04"),
			who, recs[i].Domain, recs[i].Content)
	}
	return nil
}
