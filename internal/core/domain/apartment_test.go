package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses spaces after comma",
			input: "123 Main St,   Apt 4",
			want:  "123 Main St, Apt 4",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  1 Elm St  ",
			want:  "1 Elm St",
		},
		{
			name:  "multiple commas",
			input: "1 Elm St,  Brooklyn,\tNY",
			want:  "1 Elm St, Brooklyn, NY",
		},
		{
			name:  "already normalized is a no-op",
			input: "123 Main St, Apt 4",
			want:  "123 Main St, Apt 4",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddress(tt.input))
		})
	}
}

func TestNormalizeAddress_Idempotent(t *testing.T) {
	once := NormalizeAddress("  9 Oak Ave,    Unit 2B, Queens ")
	twice := NormalizeAddress(once)
	assert.Equal(t, once, twice)
}

func TestApplicationMetadata_Validate(t *testing.T) {
	tests := []struct {
		name    string
		meta    ApplicationMetadata
		wantErr error
	}{
		{
			name: "valid",
			meta: ApplicationMetadata{LeaseStartDate: "2025-06-01", OfferedRent: "2200"},
		},
		{
			name: "valid decimal rent",
			meta: ApplicationMetadata{LeaseStartDate: "2025-06-01", OfferedRent: "2200.50"},
		},
		{
			name: "empty rent allowed",
			meta: ApplicationMetadata{LeaseStartDate: "2025-06-01"},
		},
		{
			name:    "malformed date",
			meta:    ApplicationMetadata{LeaseStartDate: "June 1st", OfferedRent: "2200"},
			wantErr: ErrSynthesis,
		},
		{
			name:    "empty date",
			meta:    ApplicationMetadata{OfferedRent: "2200"},
			wantErr: ErrSynthesis,
		},
		{
			name:    "non-numeric rent",
			meta:    ApplicationMetadata{LeaseStartDate: "2025-06-01", OfferedRent: "lots"},
			wantErr: ErrSynthesis,
		},
		{
			name:    "negative rent",
			meta:    ApplicationMetadata{LeaseStartDate: "2025-06-01", OfferedRent: "-5"},
			wantErr: ErrSynthesis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApplicationMetadata_ParseLeaseStart(t *testing.T) {
	meta := ApplicationMetadata{LeaseStartDate: "2025-01-05"}
	parsed, err := meta.ParseLeaseStart()
	require.NoError(t, err)
	assert.Equal(t, "January 5, 2025", parsed.Format("January 2, 2006"))
}

func TestApartmentRecord_DisplayName(t *testing.T) {
	withUnit := &ApartmentRecord{BuildingAddress: "123 Main St", ApartmentNo: "4"}
	assert.Equal(t, "123 Main St, Apt 4", withUnit.DisplayName())

	noUnit := &ApartmentRecord{BuildingAddress: "123 Main St"}
	assert.Equal(t, "123 Main St", noUnit.DisplayName())
}

func TestApartmentRecord_SameIdentity(t *testing.T) {
	rec := &ApartmentRecord{BuildingAddress: "123 Main St", ApartmentNo: "4B"}

	assert.True(t, rec.SameIdentity("123 main st", "4b"))
	assert.True(t, rec.SameIdentity("123 Main St", "4B"))
	assert.False(t, rec.SameIdentity("123 Main St", "5"))
	assert.False(t, rec.SameIdentity("124 Main St", "4B"))
}
