package dbretry

import (
	"context"
	"errors"
	"testing"

	"github.com/reputo/reputo/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"sentinel lookup failure", types.ErrEventNotFound, false},
		{"plain application error", errors.New("duplicate key value"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryableError(tt.err))
		})
	}
}

func TestOperationPreservesSentinelError(t *testing.T) {
	// A not-found lookup must come back unchanged in the error chain so
	// callers can match it with errors.Is, and must not be retried.
	calls := 0

	_, err := Operation(context.Background(), func(context.Context) (uint64, error) {
		calls++
		return 0, types.ErrEventNotFound
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrEventNotFound)
	assert.Equal(t, 1, calls)
}

func TestOperationReturnsResultOnSuccess(t *testing.T) {
	calls := 0

	result, err := Operation(context.Background(), func(context.Context) (int64, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result)
	assert.Equal(t, 1, calls)
}
