package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/pdf/merge"
)

var testApplicant = domain.Applicant{
	FirstName: "Jane",
	LastName:  "Doe",
	Email:     "jane@x.com",
	Phone:     "555-0100",
}

var testMetadata = domain.ApplicationMetadata{
	BuildingAddress: "123 Main St, Apt 4",
	ApartmentNo:     "4",
	LeaseStartDate:  "2025-06-01",
	OfferedRent:     "2200",
}

func TestNew(t *testing.T) {
	renderer := New()
	require.NotNil(t, renderer)
}

func TestRender_SinglePage(t *testing.T) {
	renderer := New()

	frag, err := renderer.Render(testApplicant, testMetadata)
	require.NoError(t, err)
	require.NotNil(t, frag)

	assert.Equal(t, 1, frag.PageCount)
	require.Greater(t, len(frag.Bytes), 4)
	assert.Equal(t, "%PDF", string(frag.Bytes[:4]))

	// The output must parse as a standalone one-page document.
	loaded, err := merge.New().Load(frag.Bytes)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.PageCount)
}

func TestRender_MalformedDate(t *testing.T) {
	renderer := New()

	meta := testMetadata
	meta.LeaseStartDate = "June 1st, 2025"

	frag, err := renderer.Render(testApplicant, meta)
	assert.ErrorIs(t, err, domain.ErrSynthesis)
	assert.Nil(t, frag)
}

func TestRender_PhoneOmitted(t *testing.T) {
	renderer := New()

	withPhone, err := renderer.Render(testApplicant, testMetadata)
	require.NoError(t, err)

	noPhone := testApplicant
	noPhone.Phone = ""
	withoutPhone, err := renderer.Render(noPhone, testMetadata)
	require.NoError(t, err)

	// The phone line is dropped, not rendered blank, so the content differs.
	assert.NotEqual(t, withPhone.Bytes, withoutPhone.Bytes)
	assert.Equal(t, 1, withoutPhone.PageCount)
}

func TestRender_NoApartmentNo(t *testing.T) {
	renderer := New()

	meta := testMetadata
	meta.ApartmentNo = ""

	frag, err := renderer.Render(testApplicant, meta)
	require.NoError(t, err)
	assert.Equal(t, 1, frag.PageCount)
}

func TestRender_Deterministic(t *testing.T) {
	renderer := New()

	first, err := renderer.Render(testApplicant, testMetadata)
	require.NoError(t, err)
	second, err := renderer.Render(testApplicant, testMetadata)
	require.NoError(t, err)

	// Same inputs, same page - rendering has no hidden state.
	assert.Equal(t, first.PageCount, second.PageCount)
}
