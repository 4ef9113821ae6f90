package context

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDOrNew(t *testing.T) {
	assert.Equal(t, "req-42", RequestIDOrNew("req-42"))
	assert.Equal(t, "req-42", RequestIDOrNew(" req-42\n"))
	assert.Equal(t, strings.Repeat("a", maxRequestIDLength), RequestIDOrNew(strings.Repeat("a", maxRequestIDLength)))

	for _, candidate := range []string{"", "req\t42", "réq-42", strings.Repeat("a", maxRequestIDLength+1)} {
		requestID := RequestIDOrNew(candidate)
		_, err := uuid.Parse(requestID)
		require.NoError(t, err, "candidate %q", candidate)
	}
}
