package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var createDescription string

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Manage knowledge domains",
	Long:  `List, create, delete, or reset the document stores behind the chat domains.`,
}

var domainsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all domains",
	RunE:  runDomainsList,
}

var domainsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsCreate,
}

var domainsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a domain and all its documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsDelete,
}

var domainsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all domains and recreate the predefined set",
	Long: `Deletes every store, then recreates the predefined set
(general_info, hours, locations, services). The delete step is
irreversible and requires confirmation.`,
	RunE: runDomainsReset,
}

var domainsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the predefined domain set",
	Long: `Creates the predefined set (general_info, hours, locations,
services) without deleting anything. Stores that already exist are
left alone.`,
	RunE: runDomainsSeed,
}

func init() {
	domainsCreateCmd.Flags().StringVar(&createDescription, "description", "", "store description")
	domainsDeleteCmd.Flags().BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")
	domainsResetCmd.Flags().BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")

	domainsCmd.AddCommand(domainsListCmd)
	domainsCmd.AddCommand(domainsCreateCmd)
	domainsCmd.AddCommand(domainsDeleteCmd)
	domainsCmd.AddCommand(domainsResetCmd)
	domainsCmd.AddCommand(domainsSeedCmd)
	rootCmd.AddCommand(domainsCmd)
}

func runDomainsList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	stores, err := adminService.Stores(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	if len(stores) == 0 {
		cmd.Println("No domains found.")
		return nil
	}

	for i := range stores {
		cmd.Printf("  %s  (%d documents)\n", stores[i].Name(), stores[i].DocumentCount)
		if stores[i].DisplayName != "" && stores[i].DisplayName != stores[i].Domain {
			cmd.Printf("    ID: %s\n", stores[i].Domain)
		}
	}
	cmd.Printf("Total: %d domains\n", len(stores))
	return nil
}

func runDomainsCreate(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	result, err := adminService.CreateStore(context.Background(), args[0], createDescription)
	if err != nil {
		return fmt.Errorf("failed to create domain: %w", err)
	}

	cmd.Printf("Created domain %s\n", result.Domain)
	if result.Message != "" {
		cmd.Println(result.Message)
	}
	return nil
}

func runDomainsDelete(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	name := args[0]
	if err := confirm(cmd, fmt.Sprintf("Delete domain %q and all its documents?", name)); err != nil {
		return err
	}

	if err := adminService.DeleteStore(context.Background(), name); err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}

	cmd.Printf("Deleted domain %s\n", name)
	return nil
}

func runDomainsReset(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	if err := confirm(cmd, "Delete ALL domains and recreate the predefined set?"); err != nil {
		return err
	}

	ctx := context.Background()
	deleted, err := adminService.DeleteAllStores(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete domains: %w", err)
	}
	cmd.Printf("Deleted %d domains\n", len(deleted.Deleted))

	created, err := adminService.CreatePredefinedStores(ctx)
	if err != nil {
		return fmt.Errorf("failed to recreate predefined domains: %w", err)
	}
	cmd.Printf("Recreated %d domains:\n", len(created.Stores))
	for i := range created.Stores {
		cmd.Printf("  %s\n", created.Stores[i].Name())
	}
	return nil
}

func runDomainsSeed(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	created, err := adminService.CreatePredefinedStores(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create predefined domains: %w", err)
	}

	cmd.Printf("Created %d domains:\n", len(created.Stores))
	for i := range created.Stores {
		cmd.Printf("  %s\n", created.Stores[i].Name())
	}
	return nil
}
