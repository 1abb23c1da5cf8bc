package repository

import (
	"context"
	"errors"
	"testing"

	"go-warehouse-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_BusinessErrorNotRetried(t *testing.T) {
	calls := 0
	businessErr := apperr.InsufficientStock("insufficient stock")
	err := withRetry(context.Background(), func() error {
		calls++
		return businessErr
	})

	assert.Equal(t, businessErr, err)
	assert.Equal(t, 1, calls, "business errors must surface verbatim without retry")
}

func TestWithRetry_StorageErrorRetriedOnce(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls == 1 {
			return errors.New("connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_SecondStorageFailureSurfacesAsUnavailable(t *testing.T) {
	calls := 0
	cause := errors.New("connection reset")
	err := withRetry(context.Background(), func() error {
		calls++
		return cause
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, apperr.CodeStorageUnavailable, apperr.CodeOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestWithRetry_ExpiredContextNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := withRetry(ctx, func() error {
		calls++
		return errors.New("canceling statement due to user request")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, apperr.CodeStorageUnavailable, apperr.CodeOf(err))
}

func TestWithRetry_BusinessErrorOnSecondAttempt(t *testing.T) {
	calls := 0
	businessErr := apperr.NotFound("product not found")
	err := withRetry(context.Background(), func() error {
		calls++
		if calls == 1 {
			return errors.New("lock timeout")
		}
		return businessErr
	})

	assert.Equal(t, businessErr, err)
	assert.Equal(t, 2, calls)
}
