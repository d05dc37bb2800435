package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boukir/internal/core/apperror"
	"boukir/internal/domain/documents"
)

func TestOptions_Validate(t *testing.T) {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	dayWest := time.Date(2025, 1, 11, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	dayEast := time.Date(2025, 1, 11, 0, 0, 0, 0, time.FixedZone("UTC+1", 3600))

	tests := []struct {
		name     string
		mutate   func(*Options)
		wantCode string
	}{
		{"defaults", func(*Options) {}, ""},
		{"no group", func(o *Options) { o.Groups = documents.Groups{} }, apperror.CodeNoGroupEnabled},
		{"inverted period", func(o *Options) { o.Period = documents.Period{From: &from, To: &to} }, apperror.CodeValidation},
		{"same day across zones", func(o *Options) { o.Period = documents.Period{From: &dayWest, To: &dayEast} }, ""},
		{"negative top", func(o *Options) { o.TopN = -1 }, apperror.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperror.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestOptions_Toggle(t *testing.T) {
	opts := DefaultOptions()

	opts, err := opts.Toggle(documents.GroupSales)
	require.NoError(t, err)
	opts, err = opts.Toggle(documents.GroupCredits)
	require.NoError(t, err)
	assert.Equal(t, "Purchase orders", opts.Label())

	same, err := opts.Toggle(documents.GroupPurchaseOrders)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoGroupEnabled))
	assert.Equal(t, opts, same)

	opts, err = opts.Toggle(documents.GroupSales)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales", "Purchase orders"}, opts.Labels())
	assert.Equal(t, "Sales + Purchase orders", opts.Label())

	_, err = opts.Toggle(documents.Group("bogus"))
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}
