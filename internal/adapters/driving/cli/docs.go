package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/kiosklabs/ragchat-cli/internal/core/services"
)

var docsDomain string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage documents within a domain",
	Long:  `List, upload, delete, or auto-upload documents in a knowledge domain.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in a domain",
	RunE:  runDocsList,
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload [file...]",
	Short: "Upload documents to a domain",
	Long: `Uploads one or more local files, in order. The first failure stops
the batch; files uploaded before it stay uploaded.
Accepted extensions: .pdf .md .txt .docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocsUpload,
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a document from a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDelete,
}

var docsWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and upload new documents",
	Long: `Watches a directory and uploads newly created supported files to the
domain as they appear. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocsWatch,
}

func init() {
	docsCmd.PersistentFlags().StringVarP(&docsDomain, "domain", "d", "", "knowledge domain (required)")

	docsDeleteCmd.Flags().BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsUploadCmd)
	docsCmd.AddCommand(docsDeleteCmd)
	docsCmd.AddCommand(docsWatchCmd)
	rootCmd.AddCommand(docsCmd)
}

func requireDomain() error {
	if strings.TrimSpace(docsDomain) == "" {
		return errors.New("--domain is required")
	}
	return nil
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	if err := requireDomain(); err != nil {
		return err
	}

	docs, err := adminService.Documents(context.Background(), docsDomain)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents in domain %s.\n", docsDomain)
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].Title())
		if docs[i].DisplayName != "" && docs[i].DisplayName != docs[i].Name {
			cmd.Printf("    Name: %s\n", docs[i].Name)
		}
	}
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocsUpload(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	if err := requireDomain(); err != nil {
		return err
	}

	uploaded, err := adminService.UploadAll(context.Background(), docsDomain, args)
	for _, name := range uploaded {
		cmd.Printf("Uploaded %s\n", name)
	}
	if err != nil {
		return fmt.Errorf("upload stopped after %d file(s): %w", len(uploaded), err)
	}

	cmd.Printf("Uploaded %d file(s) to %s\n", len(uploaded), docsDomain)
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	if err := requireDomain(); err != nil {
		return err
	}

	name := args[0]
	if err := confirm(cmd, fmt.Sprintf("Delete document %q from %s?", name, docsDomain)); err != nil {
		return err
	}

	if err := adminService.DeleteDocument(context.Background(), docsDomain, name); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted %s\n", name)
	return nil
}

// watchUploadInterval caps the upload rate so dropping a folder of
// files does not flood the backend.
const watchUploadInterval = 2 * time.Second

// settleDelay gives the writer time to finish before the file is read.
const settleDelay = 500 * time.Millisecond

func runDocsWatch(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	if err := requireDomain(); err != nil {
		return err
	}

	dir := args[0]
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx := cmd.Context()
	limiter := rate.NewLimiter(rate.Every(watchUploadInterval), 1)

	cmd.Printf("Watching %s; uploading new documents to %s (ctrl+c to stop)\n", dir, docsDomain)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !services.SupportedUpload(event.Name) {
				continue
			}

			time.Sleep(settleDelay)
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}

			if _, err := adminService.Upload(ctx, docsDomain, event.Name); err != nil {
				cmd.Printf("Upload failed for %s: %v\n", filepath.Base(event.Name), err)
				continue
			}
			cmd.Printf("Uploaded %s\n", filepath.Base(event.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.Printf("Watch error: %v\n", err)
		}
	}
}
