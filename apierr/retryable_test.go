package apierr_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/10d3/pressmatic/apierr"
)

// mock net.Error
type mockNetErr struct {
	msg     string
	timeout bool
}

func (m mockNetErr) Error() string { return m.msg }
func (m mockNetErr) Timeout() bool { return m.timeout }

func TestIsRetryable_NetError(t *testing.T) {
	timeoutErr := mockNetErr{msg: "i/o timeout", timeout: true}
	nonTimeoutErr := mockNetErr{msg: "conn refused", timeout: false}

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"net timeout", timeoutErr, true},
		{"wrapped net timeout", fmt.Errorf("wrap: %w", timeoutErr), true},
		{"net non-timeout", nonTimeoutErr, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := apierr.IsRetryable(tc.err)
			if got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsRetryable_APIStatuses(t *testing.T) {
	retryables := []int{
		http.StatusRequestTimeout,      // 408
		http.StatusTooManyRequests,     // 429
		http.StatusInternalServerError, // 500
		http.StatusBadGateway,          // 502
		http.StatusServiceUnavailable,  // 503
		http.StatusGatewayTimeout,      // 504
	}
	for _, st := range retryables {
		t.Run(fmt.Sprintf("status_%d_retryable", st), func(t *testing.T) {
			err := &apierr.APIError{Status: st, Message: "boom"}
			if !apierr.IsRetryable(err) {
				t.Fatalf("IsRetryable(%d) = false, want true", st)
			}
			// wrapped
			if !apierr.IsRetryable(fmt.Errorf("wrap: %w", err)) {
				t.Fatalf("IsRetryable(wrapped %d) = false, want true", st)
			}
		})
	}

	nonRetryables := []int{
		http.StatusBadRequest,          // 400
		http.StatusUnauthorized,        // 401
		http.StatusForbidden,           // 403
		http.StatusNotFound,            // 404
		http.StatusUnprocessableEntity, // 422
	}
	for _, st := range nonRetryables {
		t.Run(fmt.Sprintf("status_%d_nonretryable", st), func(t *testing.T) {
			err := &apierr.APIError{Status: st}
			if apierr.IsRetryable(err) {
				t.Fatalf("IsRetryable(%d) = true, want false", st)
			}
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	err429 := &apierr.APIError{Status: http.StatusTooManyRequests, Message: "rate limited"}
	if !apierr.IsRateLimited(err429) {
		t.Fatalf("IsRateLimited(429) = false, want true")
	}
	if !apierr.IsRateLimited(fmt.Errorf("wrap: %w", err429)) {
		t.Fatalf("IsRateLimited(wrapped 429) = false, want true")
	}

	other := &apierr.APIError{Status: http.StatusServiceUnavailable}
	if apierr.IsRateLimited(other) {
		t.Fatalf("IsRateLimited(503) = true, want false")
	}
}

func TestIsRetryable_NilAndUnknownErrors(t *testing.T) {
	if apierr.IsRetryable(nil) {
		t.Fatalf("IsRetryable(nil) = true, want false")
	}
	if apierr.IsRetryable(errors.New("some build error")) {
		t.Fatalf("IsRetryable(plain error) = true, want false")
	}
}

func TestJitteredBackoff_Bounds(t *testing.T) {
	base := 200 * time.Millisecond
	for i := 0; i < 100; i++ {
		d := apierr.JitteredBackoff(base)
		if d < base/2 || d >= base/2+base {
			t.Fatalf("JitteredBackoff out of bounds: %v", d)
		}
	}
	// zero base falls back to the default
	if d := apierr.JitteredBackoff(0); d <= 0 {
		t.Fatalf("JitteredBackoff(0) = %v, want positive", d)
	}
}
