package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio-cli/internal/adapters/driven/storage/memory"
	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/services"
	"github.com/rentfolio/rentfolio-cli/internal/pdf/cover"
	"github.com/rentfolio/rentfolio-cli/internal/pdf/merge"
)

// Document ids seeded by setupTestServices, in upload order.
var seededDocIDs []string

// makePDF renders a minimal valid single-page PDF for seeding blobs.
func makePDF(t *testing.T, text string) []byte {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, 100, text)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}

// setupTestServices wires the commands to in-memory stores seeded with a
// profile and two documents. Returns a cleanup that restores the previous
// services.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldAssembly := assemblyService
	oldDocument := documentService
	oldApartment := apartmentService
	oldProfile := profileService

	docStore := memory.NewDocumentStore()
	blobs := memory.NewBlobStore()
	apartments := memory.NewApartmentStore()
	profiles := memory.NewProfileStore()

	reconciler := services.NewReconciler(apartments)
	assemblyService = services.NewAssemblyService(docStore, blobs, cover.New(), merge.New(), reconciler)
	documentService = services.NewDocumentService(docStore, blobs)
	apartmentService = services.NewApartmentService(apartments)
	profileService = services.NewProfileService(profiles)

	ctx := context.Background()

	profile := &domain.Profile{
		FirstName: "Casey",
		LastName:  "Lee",
		Email:     "casey@example.com",
		Phone:     "555-0134",
	}
	require.NoError(t, profileService.Save(ctx, profile))

	seededDocIDs = nil
	seeds := []struct {
		docType domain.DocumentType
		year    int
		text    string
	}{
		{domain.DocTypePayStub1, 2025, "pay stub"},
		{domain.DocTypePhotoID, 2025, "photo id"},
	}
	for _, seed := range seeds {
		doc, err := documentService.Upload(ctx, profile.ID, seed.docType, seed.year,
			"upload.pdf", makePDF(t, seed.text))
		require.NoError(t, err)
		seededDocIDs = append(seededDocIDs, doc.ID)
	}

	return func() {
		assemblyService = oldAssembly
		documentService = oldDocument
		apartmentService = oldApartment
		profileService = oldProfile
		seededDocIDs = nil
	}
}
