// Package cover synthesizes the application cover page.
package cover

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.CoverRenderer = (*Renderer)(nil)

// A4 in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// Font sizes and layout. Vertical positions are multiples of the title size
// measured from the top of the page.
const (
	titleSize    = 24.0
	subtitleSize = 16.0
	bodySize     = 12.0
	bodyX        = 50.0
)

// Renderer produces the one-page application cover as a PDF fragment.
// Stateless; a single Renderer is safe for concurrent use.
type Renderer struct{}

// New creates a cover page renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render synthesizes exactly one A4 page: centred title and address subtitle,
// then the applicant's contact block and the lease terms. The phone line is
// omitted entirely when the applicant has no phone. Pure function of its
// inputs.
func (r *Renderer) Render(applicant domain.Applicant, meta domain.ApplicationMetadata) (*domain.PageFragment, error) {
	leaseStart, err := meta.ParseLeaseStart()
	if err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	title := "Apartment Application"
	pdf.SetFont("Helvetica", "", titleSize)
	pdf.Text(centredX(title, titleSize), 4*titleSize, title)

	subtitle := meta.BuildingAddress
	if meta.ApartmentNo != "" {
		subtitle += ", Apt " + meta.ApartmentNo
	}
	pdf.SetFont("Helvetica", "", subtitleSize)
	pdf.Text(centredX(subtitle, subtitleSize), 5.5*titleSize, subtitle)

	pdf.SetFont("Helvetica", "", bodySize)
	pdf.Text(bodyX, 7*titleSize, fmt.Sprintf("Email: %s", applicant.Email))
	if applicant.Phone != "" {
		pdf.Text(bodyX, 8*titleSize, fmt.Sprintf("Phone: %s", applicant.Phone))
	}
	pdf.Text(bodyX, 9*titleSize, fmt.Sprintf("Name: %s", applicant.FullName()))
	pdf.Text(bodyX, 11*titleSize, fmt.Sprintf("Start Date: %s", leaseStart.Format("January 2, 2006")))
	pdf.Text(bodyX, 12*titleSize, fmt.Sprintf("Offered Rent: $%s", meta.OfferedRent))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: rendering cover page: %v", domain.ErrSynthesis, err)
	}

	return &domain.PageFragment{Bytes: buf.Bytes(), PageCount: 1}, nil
}

// centredX returns the x origin that visually centres s at the given font
// size, estimating text width as size * len / 2. Exact glyph metrics are
// deliberately not used; centring only needs to be consistent, not
// pixel-perfect.
func centredX(s string, size float64) float64 {
	width := size * float64(len(s)) / 2
	return (pageWidth - width) / 2
}
