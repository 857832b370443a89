package domain

import (
	"fmt"
	"time"
)

// Applicant is the identity rendered onto the cover page.
type Applicant struct {
	// FirstName is the applicant's given name.
	FirstName string

	// LastName is the applicant's family name.
	LastName string

	// Email is the applicant's contact email.
	Email string

	// Phone is the applicant's contact phone. Optional; when empty the
	// cover page omits the phone line entirely instead of rendering a blank.
	Phone string
}

// FullName returns "First Last".
func (a Applicant) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

// Profile is the locally stored applicant identity, editable via the CLI and
// used to pre-fill the Applicant for each assembly.
type Profile struct {
	// ID is the unique identifier for the profile.
	ID string

	// FirstName is the applicant's given name.
	FirstName string

	// LastName is the applicant's family name.
	LastName string

	// Email is the contact email.
	Email string

	// Phone is the contact phone. Optional.
	Phone string

	// CreatedAt is when the profile was created.
	CreatedAt time.Time

	// UpdatedAt is when the profile was last edited.
	UpdatedAt time.Time
}

// Applicant converts the profile into the identity rendered on cover pages.
func (p *Profile) Applicant() Applicant {
	return Applicant{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

// PageFragment is an in-memory, already-decoded unit of one or more pages
// ready to be appended to an output document. Fragments come from parsing a
// fetched SourceDocument or from the cover page renderer, and are consumed
// exactly once by the merger, in the order supplied.
type PageFragment struct {
	// Bytes is the fragment's self-contained page-document content.
	Bytes []byte

	// PageCount is the number of pages the fragment contributes.
	PageCount int
}

// AssemblyResult is the merged application document handed to the caller for
// download. It is ephemeral: nothing in it is persisted by the pipeline.
type AssemblyResult struct {
	// Bytes is the merged page-document.
	Bytes []byte

	// Filename is the generated download name, "YYYYMMDD_HHMMSS.pdf" from
	// the assembly's completion timestamp in local time. Two assemblies
	// within the same second may collide; last write wins at the caller.
	Filename string

	// GeneratedAt is the assembly completion timestamp.
	GeneratedAt time.Time
}

// AssemblyFilename formats the download name for a completion timestamp.
func AssemblyFilename(completedAt time.Time) string {
	return completedAt.Format("20060102_150405") + ".pdf"
}
