package handler

import (
	"testing"
	"time"

	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2026-03-04", want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{in: "2026-03-04T08:15", want: time.Date(2026, 3, 4, 8, 15, 0, 0, time.UTC)},
		{in: "2026-03-04T08:15:30.250", want: time.Date(2026, 3, 4, 8, 15, 30, 250000000, time.UTC)},
		{in: "2026-03-04 08:15:30", want: time.Date(2026, 3, 4, 8, 15, 30, 0, time.UTC)},
		{in: "2026-03-04T08:15:30+05:30", want: time.Date(2026, 3, 4, 2, 45, 30, 0, time.UTC)},
		{in: " 2026-03-04Z ", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.want.IsZero() {
				var verr *repository.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestOptionalDate(t *testing.T) {
	got, err := optionalDate(nil, "start_date")
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := "  "
	got, err = optionalDate(&blank, "start_date")
	require.NoError(t, err)
	assert.Nil(t, got)

	bad := "next week"
	_, err = optionalDate(&bad, "end_date")
	var verr *repository.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_date", verr.Field)
}

func TestRequestValidatorReportsJSONNames(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(&inventoryRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warehouse_id")
}
