package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/logger"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble [doc-id]...",
	Short: "Assemble an application packet",
	Long: `Merges the selected documents, in the order given, behind a synthesized
cover page and writes the packet to a timestamped PDF. The lease terms are
recorded under the apartment's address for later reference.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAssemble,
}

// Flags for the assemble command.
var (
	assembleAddress    string
	assembleApt        string
	assembleLeaseStart string
	assembleRent       string
	assembleOutputDir  string
)

func init() {
	assembleCmd.Flags().StringVar(&assembleAddress, "address", "", "Building street address")
	assembleCmd.Flags().StringVar(&assembleApt, "apt", "", "Apartment number (optional)")
	assembleCmd.Flags().StringVar(&assembleLeaseStart, "lease-start", "", "Lease start date, e.g. 2026-09-01")
	assembleCmd.Flags().StringVar(&assembleRent, "rent", "", "Offered monthly rent, e.g. 2200")
	assembleCmd.Flags().StringVarP(&assembleOutputDir, "output", "o", ".", "Directory to write the packet to")
	_ = assembleCmd.MarkFlagRequired("address")
	_ = assembleCmd.MarkFlagRequired("lease-start")
	_ = assembleCmd.MarkFlagRequired("rent")

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, args []string) error {
	if assemblyService == nil {
		return errors.New("assembly service not configured")
	}

	ctx := context.Background()

	profile, err := currentProfile(ctx)
	if err != nil {
		return err
	}

	meta := domain.ApplicationMetadata{
		BuildingAddress: assembleAddress,
		ApartmentNo:     assembleApt,
		LeaseStartDate:  assembleLeaseStart,
		OfferedRent:     assembleRent,
	}

	logger.Section("Assembly")
	logger.Info("assembling %d documents for %s", len(args), meta.BuildingAddress)

	outcome, err := assemblyService.Assemble(ctx, profile.ID, args, profile.Applicant(), meta)
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	outPath := filepath.Join(assembleOutputDir, outcome.Result.Filename)
	if err := os.WriteFile(outPath, outcome.Result.Bytes, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	cmd.Printf("Wrote %s\n", outPath)

	switch outcome.Reconciliation {
	case domain.ReconcileCreated:
		cmd.Printf("Saved apartment: %s\n", displayAddress(meta))
	case domain.ReconcileUpdated:
		cmd.Printf("Updated apartment: %s\n", displayAddress(meta))
	}
	if outcome.ReconcileErr != nil {
		cmd.PrintErrf("Warning: apartment record not saved: %v\n", outcome.ReconcileErr)
	}

	return nil
}

func displayAddress(meta domain.ApplicationMetadata) string {
	record := domain.ApartmentRecord{
		BuildingAddress: domain.NormalizeAddress(meta.BuildingAddress),
		ApartmentNo:     meta.ApartmentNo,
	}
	return record.DisplayName()
}
