package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage uploaded application documents",
	Long:  `Upload, list, or delete the documents available for assembly.`,
}

var documentUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document",
	Long: `Stores a document under its canonical slot, e.g. PAY_STUB_1_2025.
Uploading to an occupied slot replaces the previous content.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentUpload,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete an uploaded document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// Flags for the upload command.
var (
	uploadType string
	uploadYear int
)

func init() {
	documentUploadCmd.Flags().StringVarP(&uploadType, "type", "t", "", "Document type, e.g. \"PAY STUB 1\" or pay_stub_1")
	documentUploadCmd.Flags().IntVarP(&uploadYear, "year", "y", 0, "Document year (defaults to the current year)")
	_ = documentUploadCmd.MarkFlagRequired("type")

	documentCmd.AddCommand(documentUploadCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

// parseDocumentType accepts both the display form ("PAY STUB 1") and the
// slug form ("pay_stub_1").
func parseDocumentType(s string) (domain.DocumentType, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
	t := domain.DocumentType(normalized)
	if !t.IsValid() {
		names := make([]string, 0, len(domain.DocumentTypes()))
		for _, known := range domain.DocumentTypes() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unknown document type %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return t, nil
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	profile, err := currentProfile(ctx)
	if err != nil {
		return err
	}

	docType, err := parseDocumentType(uploadType)
	if err != nil {
		return err
	}

	year := uploadYear
	if year == 0 {
		year = time.Now().Year()
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := documentService.Upload(ctx, profile.ID, docType, year, path, data)
	if err != nil {
		return fmt.Errorf("failed to upload document: %w", err)
	}

	cmd.Printf("Uploaded %s (%s)\n", doc.Filename, doc.ID)
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	profile, err := currentProfile(ctx)
	if err != nil {
		return err
	}

	docs, err := documentService.ListByProfile(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents uploaded yet.")
		return nil
	}

	cmd.Println("Uploaded documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Name:     %s\n", docs[i].Filename)
		cmd.Printf("    Uploaded: %s\n", docs[i].UpdatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	profile, err := currentProfile(ctx)
	if err != nil {
		return err
	}

	docID := args[0]
	if err := documentService.Delete(ctx, profile.ID, docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", docID)
	return nil
}
