package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var apartmentCmd = &cobra.Command{
	Use:   "apartment",
	Short: "Manage saved apartments",
	Long:  `List or delete the apartments recorded from past assemblies.`,
}

var apartmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved apartments",
	Args:  cobra.NoArgs,
	RunE:  runApartmentList,
}

var apartmentDeleteCmd = &cobra.Command{
	Use:   "delete [apartment-id]",
	Short: "Delete a saved apartment",
	Args:  cobra.ExactArgs(1),
	RunE:  runApartmentDelete,
}

func init() {
	apartmentCmd.AddCommand(apartmentListCmd)
	apartmentCmd.AddCommand(apartmentDeleteCmd)
	rootCmd.AddCommand(apartmentCmd)
}

func runApartmentList(cmd *cobra.Command, _ []string) error {
	if apartmentService == nil {
		return errors.New("apartment service not configured")
	}

	ctx := context.Background()

	profile, err := currentProfile(ctx)
	if err != nil {
		return err
	}

	apartments, err := apartmentService.ListByProfile(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to list apartments: %w", err)
	}

	if len(apartments) == 0 {
		cmd.Println("No apartments saved yet.")
		return nil
	}

	cmd.Println("Saved apartments:")
	cmd.Println()
	for i := range apartments {
		cmd.Printf("  %s\n", apartments[i].ID)
		cmd.Printf("    Address:     %s\n", apartments[i].DisplayName())
		cmd.Printf("    Lease start: %s\n", apartments[i].LeaseStartDate)
		cmd.Printf("    Rent:        $%s\n", apartments[i].OfferedRent)
		cmd.Println()
	}

	cmd.Printf("Total: %d apartments\n", len(apartments))
	return nil
}

func runApartmentDelete(cmd *cobra.Command, args []string) error {
	if apartmentService == nil {
		return errors.New("apartment service not configured")
	}

	ctx := context.Background()

	profile, err := currentProfile(ctx)
	if err != nil {
		return err
	}

	apartmentID := args[0]
	if err := apartmentService.Delete(ctx, profile.ID, apartmentID); err != nil {
		return fmt.Errorf("failed to delete apartment: %w", err)
	}

	cmd.Printf("Apartment %s deleted.\n", apartmentID)
	return nil
}
