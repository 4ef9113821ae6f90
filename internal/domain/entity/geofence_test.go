package entity

import (
	"testing"
	"time"

	domainerrors "geoo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirationFromMillis(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want time.Duration
	}{
		{name: "negative never expires", ms: -1, want: NeverExpire},
		{name: "zero", ms: 0, want: 0},
		{name: "one minute", ms: 60000, want: time.Minute},
		{name: "largest representable", ms: MaxExpirationMs, want: time.Duration(MaxExpirationMs) * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpirationFromMillis(tt.ms)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpirationFromMillis_Overflow(t *testing.T) {
	_, err := ExpirationFromMillis(MaxExpirationMs + 1)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRegion)
}
