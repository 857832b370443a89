package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the applicant profile",
	Long:  `View or edit the contact details rendered on every cover page.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileSet,
}

// Flags for the set command.
var (
	profileFirstName string
	profileLastName  string
	profileEmail     string
	profilePhone     string
)

func init() {
	profileSetCmd.Flags().StringVar(&profileFirstName, "first-name", "", "Given name")
	profileSetCmd.Flags().StringVar(&profileLastName, "last-name", "", "Family name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	profileSetCmd.Flags().StringVar(&profilePhone, "phone", "", "Contact phone (optional)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	ctx := context.Background()

	profile, err := profileService.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No profile saved yet. Run 'rentfolio profile set' to create one.")
			return nil
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	cmd.Printf("Profile: %s\n\n", profile.Applicant().FullName())
	cmd.Printf("  Email:   %s\n", profile.Email)
	if profile.Phone != "" {
		cmd.Printf("  Phone:   %s\n", profile.Phone)
	}
	cmd.Printf("  Updated: %s\n", profile.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	ctx := context.Background()

	profile, err := profileService.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = &domain.Profile{}
	}

	if cmd.Flags().Changed("first-name") {
		profile.FirstName = profileFirstName
	}
	if cmd.Flags().Changed("last-name") {
		profile.LastName = profileLastName
	}
	if cmd.Flags().Changed("email") {
		profile.Email = profileEmail
	}
	if cmd.Flags().Changed("phone") {
		profile.Phone = profilePhone
	}

	if err := profileService.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	cmd.Printf("Profile saved for %s.\n", profile.Applicant().FullName())
	return nil
}

// currentProfile loads the saved profile, required by every command that
// operates on profile-scoped data.
func currentProfile(ctx context.Context) (*domain.Profile, error) {
	if profileService == nil {
		return nil, errors.New("profile service not configured")
	}

	profile, err := profileService.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("no profile saved yet; run 'rentfolio profile set' first")
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}
