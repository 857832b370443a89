package driving

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// AssemblyService runs the application assembly pipeline end to end:
// selection validation, fetch, cover synthesis, merge, naming, reconciliation.
type AssemblyService interface {
	// Assemble merges the selected documents, in selection order, behind a
	// synthesized cover page and reconciles the lease terms into the known
	// apartments store.
	//
	// The merge is all-or-nothing: any unknown id, failed fetch, or
	// unparseable document aborts the run with no partial output.
	// Reconciliation is lenient: its failure does not withhold the file and
	// is reported on the outcome instead.
	Assemble(ctx context.Context, profileID string, documentIDs []string,
		applicant domain.Applicant, meta domain.ApplicationMetadata) (*AssemblyOutcome, error)
}

// AssemblyOutcome is what a successful assembly hands back to the caller.
type AssemblyOutcome struct {
	// Result holds the merged bytes, generated filename, and timestamp.
	Result domain.AssemblyResult

	// Reconciliation reports what happened to the apartment record.
	Reconciliation domain.ReconcileOutcome

	// ReconcileErr is non-nil when the record could not be persisted.
	// The assembled file in Result is still valid.
	ReconcileErr error
}
