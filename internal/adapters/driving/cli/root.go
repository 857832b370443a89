// Package cli provides the command-line interface for rentfolio.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rentfolio/rentfolio-cli/internal/adapters/driven/blob/filesystem"
	"github.com/rentfolio/rentfolio-cli/internal/adapters/driven/config/file"
	"github.com/rentfolio/rentfolio-cli/internal/adapters/driven/storage/sqlite"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driving"
	"github.com/rentfolio/rentfolio-cli/internal/core/services"
	"github.com/rentfolio/rentfolio-cli/internal/logger"
	"github.com/rentfolio/rentfolio-cli/internal/pdf/cover"
	"github.com/rentfolio/rentfolio-cli/internal/pdf/merge"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Wired lazily on first run so tests can
// substitute their own instances.
var (
	assemblyService  driving.AssemblyService
	documentService  driving.DocumentService
	apartmentService driving.ApartmentService
	profileService   driving.ProfileService
)

// Persistent flags.
var (
	verboseFlag bool
	dataDirFlag string
)

// store is the open metadata store, closed after Execute returns.
var store *sqlite.Store

var rootCmd = &cobra.Command{
	Use:   "rentfolio",
	Short: "Assemble apartment application packets",
	Long: `Rentfolio keeps your application documents in one place and assembles
them into a single PDF packet: a synthesized cover page with your contact
details and the lease terms, followed by the documents you select, in order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Data directory (default ~/.rentfolio)")
}

// initServices wires the real adapters behind the service vars.
// A no-op when services are already set (tests install their own).
func initServices() error {
	if assemblyService != nil && documentService != nil &&
		apartmentService != nil && profileService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(dataDirFlag)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	dataDir := dataDirFlag
	if dataDir == "" {
		dataDir = cfg.GetString("data_dir")
	}
	logger.Debug("using data directory %q", dataDir)

	store, err = sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open metadata store: %w", err)
	}

	var blobDir string
	if dataDir != "" {
		blobDir = filepath.Join(dataDir, "documents")
	}
	blobs, err := filesystem.NewBlobStore(blobDir)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	reconciler := services.NewReconciler(store.ApartmentStore())
	assemblyService = services.NewAssemblyService(
		store.DocumentStore(), blobs, cover.New(), merge.New(), reconciler)
	documentService = services.NewDocumentService(store.DocumentStore(), blobs)
	apartmentService = services.NewApartmentService(store.ApartmentStore())
	profileService = services.NewProfileService(store.ProfileStore())

	return nil
}

// Execute runs the root command and releases held resources.
func Execute() error {
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()
	return rootCmd.Execute()
}
