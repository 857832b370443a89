package driven

import "github.com/rentfolio/rentfolio-cli/internal/core/domain"

// CoverRenderer synthesizes the application cover page.
// Pure function of its inputs; no side effects.
type CoverRenderer interface {
	// Render produces exactly one fixed-size (A4) page carrying the applicant
	// identity and lease terms. A malformed lease date reports
	// domain.ErrSynthesis rather than rendering a garbage date.
	Render(applicant domain.Applicant, meta domain.ApplicationMetadata) (*domain.PageFragment, error)
}
