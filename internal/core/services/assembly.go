package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driving"
	"github.com/rentfolio/rentfolio-cli/internal/logger"
)

// Ensure AssemblyService implements the interface.
var _ driving.AssemblyService = (*AssemblyService)(nil)

// maxConcurrentFetches caps in-flight blob fetches per assembly to bound
// memory. Page order never depends on fetch completion order.
const maxConcurrentFetches = 8

// AssemblyService coordinates one assembly run: selection validation,
// concurrent fragment retrieval, cover synthesis, merge, naming, and the
// apartment-record reconciliation step.
type AssemblyService struct {
	docStore   driven.DocumentStore
	blobs      driven.BlobStore
	renderer   driven.CoverRenderer
	merger     driven.PageMerger
	reconciler *Reconciler
}

// NewAssemblyService creates a new assembly service.
func NewAssemblyService(
	docStore driven.DocumentStore,
	blobs driven.BlobStore,
	renderer driven.CoverRenderer,
	merger driven.PageMerger,
	reconciler *Reconciler,
) *AssemblyService {
	return &AssemblyService{
		docStore:   docStore,
		blobs:      blobs,
		renderer:   renderer,
		merger:     merger,
		reconciler: reconciler,
	}
}

// Assemble merges the selected documents, in selection order, behind a
// synthesized cover page. The merge is all-or-nothing: any unknown id, failed
// fetch, or unparseable document aborts the run with no partial output.
// Reconciliation runs after a successful merge and is lenient - its failure
// is reported on the outcome, never by withholding the file.
func (s *AssemblyService) Assemble(ctx context.Context, profileID string, documentIDs []string,
	applicant domain.Applicant, meta domain.ApplicationMetadata) (*driving.AssemblyOutcome, error) {

	if len(documentIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}

	// 1. Resolve every id to an owned document before fetching anything.
	docs, err := s.resolveSelection(ctx, profileID, documentIDs)
	if err != nil {
		return nil, err
	}

	// 2. Fetch content concurrently; results land by selection index.
	buffers, err := s.fetchAll(ctx, docs)
	if err != nil {
		return nil, err
	}

	// 3. Parse fetched bytes into fragments, still in selection order.
	fragments := make([]domain.PageFragment, 0, len(docs)+1)

	cover, err := s.renderer.Render(applicant, meta)
	if err != nil {
		return nil, err
	}
	fragments = append(fragments, *cover)

	for i, doc := range docs {
		frag, err := s.merger.Load(buffers[i])
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", doc.Filename, err)
		}
		fragments = append(fragments, *frag)
	}

	// 4. Merge: cover first, then sources in selection order.
	merged, err := s.merger.Merge(fragments)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	outcome := &driving.AssemblyOutcome{
		Result: domain.AssemblyResult{
			Bytes:       merged.Bytes,
			Filename:    domain.AssemblyFilename(completedAt),
			GeneratedAt: completedAt,
		},
	}

	logger.Info("Assembled %d pages into %s", merged.PageCount, outcome.Result.Filename)

	// 5. Reconcile the lease terms into the known apartments store.
	outcome.Reconciliation, outcome.ReconcileErr = s.reconciler.Reconcile(ctx, profileID, meta)
	if outcome.ReconcileErr != nil {
		logger.Warn("Apartment record not saved: %v", outcome.ReconcileErr)
	}

	return outcome, nil
}

// resolveSelection maps ids to document records, verifying ownership.
// Any id that does not resolve to a document of the caller's profile aborts
// the run; selection order is preserved in the result.
func (s *AssemblyService) resolveSelection(ctx context.Context, profileID string, ids []string) ([]domain.SourceDocument, error) {
	docs := make([]domain.SourceDocument, 0, len(ids))
	for _, id := range ids {
		doc, err := s.docStore.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDocument, id)
			}
			return nil, fmt.Errorf("resolving document %s: %w", id, err)
		}
		if doc.ProfileID != profileID {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDocument, id)
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// fetchAll retrieves content for every document, at most maxConcurrentFetches
// in flight. Buffers are placed by selection index, so the gather preserves
// selection order regardless of completion order. The first failure cancels
// the remaining fetches and aborts the run.
func (s *AssemblyService) fetchAll(ctx context.Context, docs []domain.SourceDocument) ([][]byte, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type fetchResult struct {
		idx int
		err error
	}

	buffers := make([][]byte, len(docs))
	sem := make(chan struct{}, maxConcurrentFetches)
	results := make(chan fetchResult, len(docs))

	for i, doc := range docs {
		go func(i int, doc domain.SourceDocument) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results <- fetchResult{i, ctx.Err()}
				return
			}
			defer func() { <-sem }()

			data, err := s.blobs.Fetch(ctx, doc.Path)
			if err != nil {
				results <- fetchResult{i, s.classifyFetchError(doc, err)}
				return
			}
			buffers[i] = data
			results <- fetchResult{i, nil}
		}(i, doc)
	}

	var firstErr error
	for range docs {
		res := <-results
		if res.err != nil && firstErr == nil {
			firstErr = res.err
			cancel()
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return buffers, nil
}

// classifyFetchError maps blob store failures onto the pipeline taxonomy.
// A missing or unauthorized path means the selected id is not usable; anything
// transient keeps its ErrTransientIO identity for the caller.
func (s *AssemblyService) classifyFetchError(doc domain.SourceDocument, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownDocument, doc.ID)
	}
	return fmt.Errorf("fetching %s: %w", doc.Filename, err)
}
