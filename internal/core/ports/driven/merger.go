package driven

import "github.com/rentfolio/rentfolio-cli/internal/core/domain"

// PageMerger parses fetched document bytes into page fragments and
// concatenates fragments into one self-contained page-document.
type PageMerger interface {
	// Load parses raw document bytes into a fragment, resolving its page
	// count. Unreadable or blocked-encrypted content reports domain.ErrMerge.
	// Protection flags that do not block content extraction are tolerated.
	Load(data []byte) (*domain.PageFragment, error)

	// Merge concatenates the fragments into one page-document, preserving
	// the given order exactly: all of fragment i's pages precede all of
	// fragment i+1's, in their original internal order.
	Merge(fragments []domain.PageFragment) (*domain.PageFragment, error)
}
