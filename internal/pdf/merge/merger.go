// Package merge parses source documents into page fragments and
// concatenates fragments into one self-contained PDF.
package merge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure Merger implements the interface.
var _ driven.PageMerger = (*Merger)(nil)

// Merger is a pdfcpu-backed page merger.
// Stateless apart from its configuration; safe for concurrent use.
type Merger struct {
	conf *model.Configuration
}

// New creates a page merger.
// Validation is relaxed so documents whose internal structure requests
// content protection that does not block extraction still parse.
func New() *Merger {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Merger{conf: conf}
}

// Load parses raw document bytes into a fragment and resolves its page count.
// Anything pdfcpu cannot read reports domain.ErrMerge; the caller attaches
// which document failed.
func (m *Merger) Load(data []byte) (*domain.PageFragment, error) {
	count, err := api.PageCount(bytes.NewReader(data), m.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMerge, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: document has no pages", domain.ErrMerge)
	}
	return &domain.PageFragment{Bytes: data, PageCount: count}, nil
}

// Merge concatenates the fragments, in order, into one self-contained PDF.
// Fragment 0's pages come first; each fragment's pages stay contiguous and in
// their original internal order.
func (m *Merger) Merge(fragments []domain.PageFragment) (*domain.PageFragment, error) {
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%w: nothing to merge", domain.ErrMerge)
	}

	total := 0
	readers := make([]io.ReadSeeker, len(fragments))
	for i, frag := range fragments {
		readers[i] = bytes.NewReader(frag.Bytes)
		total += frag.PageCount
	}

	if len(fragments) == 1 {
		return &domain.PageFragment{Bytes: fragments[0].Bytes, PageCount: total}, nil
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, m.conf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMerge, err)
	}

	return &domain.PageFragment{Bytes: buf.Bytes(), PageCount: total}, nil
}
