package domain

import (
	"fmt"
	"strings"
	"time"
)

// SourceDocument represents an uploaded application document owned by a profile.
// The record holds metadata only; the content lives in the blob store under Path.
// Documents are immutable once uploaded - the pipeline references them, never
// duplicates or rewrites them.
type SourceDocument struct {
	// ID is the unique identifier for the document.
	ID string

	// ProfileID links to the owning profile.
	ProfileID string

	// Filename is the display name (e.g. "PAY_STUB_1_2025").
	Filename string

	// Path is the opaque blob store location of the content.
	Path string

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time

	// UpdatedAt is when the record was last touched.
	UpdatedAt time.Time
}

// DocumentType identifies what an uploaded document is.
type DocumentType string

// Document types accepted for upload.
const (
	DocTypeBankStatement1    DocumentType = "BANK STATEMENT 1"
	DocTypeBankStatement2    DocumentType = "BANK STATEMENT 2"
	DocTypeBankStatement3    DocumentType = "BANK STATEMENT 3"
	DocTypePayStub1          DocumentType = "PAY STUB 1"
	DocTypePayStub2          DocumentType = "PAY STUB 2"
	DocTypePayStub3          DocumentType = "PAY STUB 3"
	DocTypePhotoID           DocumentType = "PHOTO ID"
	DocTypeLandlordReference DocumentType = "LANDLORD REFERENCE"
	DocTypeProofOfPayment    DocumentType = "PROOF OF PAYMENT"
	DocType1040              DocumentType = "1040"
	DocTypeW2                DocumentType = "W-2"
)

// DocumentTypes lists every accepted document type in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocTypeBankStatement1,
		DocTypeBankStatement2,
		DocTypeBankStatement3,
		DocTypePayStub1,
		DocTypePayStub2,
		DocTypePayStub3,
		DocTypePhotoID,
		DocTypeLandlordReference,
		DocTypeProofOfPayment,
		DocType1040,
		DocTypeW2,
	}
}

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	for _, known := range DocumentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Slug returns the type in filename form, with spaces replaced by underscores.
func (t DocumentType) Slug() string {
	return strings.ReplaceAll(string(t), " ", "_")
}

// DocumentName builds the canonical display name for an upload,
// e.g. ("PAY STUB 1", 2025) -> "PAY_STUB_1_2025".
func DocumentName(t DocumentType, year int) string {
	return fmt.Sprintf("%s_%d", t.Slug(), year)
}

// ValidateUploadYear checks the tax/statement year attached to an upload.
// Years before 2000 or after the current year are rejected.
func ValidateUploadYear(year int, now time.Time) error {
	if year < 2000 || year > now.Year() {
		return fmt.Errorf("%w: year %d out of range 2000-%d", ErrInvalidInput, year, now.Year())
	}
	return nil
}
