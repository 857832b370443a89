package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the caller does not own the requested entity.
	ErrUnauthorized = errors.New("unauthorized")

	// Assembly pipeline errors.

	// ErrEmptySelection indicates an assembly was requested with no documents
	// selected. Caller-preventable; a no-op rather than a user-facing failure.
	ErrEmptySelection = errors.New("no documents selected")

	// ErrUnknownDocument indicates a selected document id is not fetchable or
	// not owned by the caller's profile. Aborts the whole run.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrSynthesis indicates the cover page could not be rendered because the
	// metadata is malformed (unparseable date, non-numeric rent). Aborts.
	ErrSynthesis = errors.New("cover page synthesis failed")

	// ErrMerge indicates a source fragment could not be parsed or the merged
	// output could not be produced. Aborts; no partial output is returned.
	ErrMerge = errors.New("page merge failed")

	// ErrReconciliation indicates the apartment record could not be persisted.
	// The assembled file is still returned; the failure surfaces as a warning.
	ErrReconciliation = errors.New("apartment reconciliation failed")

	// ErrTransientIO indicates a retryable network/storage failure from an
	// external collaborator. The pipeline does not retry; it distinguishes
	// this from permanent failures so the caller can.
	ErrTransientIO = errors.New("transient I/O failure")
)
