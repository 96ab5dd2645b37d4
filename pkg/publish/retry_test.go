package publish

import (
	"context"
	"errors"
	"testing"
)

var errNotFound = errors.New("not found")

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(errNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != errNetwork.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), errNetwork.Error())
	}
	if !errors.Is(err, errNetwork) {
		t.Error("wrapped error should unwrap to the cause")
	}
	if IsRetryable(errNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	calls := 0
	if err := RetryWithBackoff(ctx, 3, func() error { calls++; return nil }); err != nil {
		t.Errorf("first try error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	calls = 0
	err := RetryWithBackoff(ctx, 3, func() error { calls++; return errNotFound })
	if err != errNotFound {
		t.Errorf("error = %v, want %v", err, errNotFound)
	}
	if calls != 1 {
		t.Errorf("non-retryable calls = %d, want 1", calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, 3, func() error {
		calls++
		if calls < 2 {
			return Retryable(errNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("error after retry = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, 3, func() error { calls++; return Retryable(errNetwork) })
	if !IsRetryable(err) {
		t.Errorf("exhausted error = %v, want retryable", err)
	}
	if calls != 3 {
		t.Errorf("exhausted calls = %d, want 3", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, 3, func() error { return Retryable(errNetwork) })
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
