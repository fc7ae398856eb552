package scan

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/smithy-go"
)

func apiError(code string) error {
	return fmt.Errorf("operation error: %w", &smithy.GenericAPIError{
		Code:    code,
		Message: "synthetic",
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantOutcome   Outcome
		wantCode      string
		wantDropped   bool
		wantThrottled bool
	}{
		{
			name:        "nil error succeeds",
			err:         nil,
			wantOutcome: Succeeded,
		},
		{
			name:        "missing args never reached auth",
			err:         &MissingArgsError{Key: "Bucket", Reason: "no injected value"},
			wantOutcome: Errored,
		},
		{
			name:        "wrapped missing args",
			err:         fmt.Errorf("invoking: %w", &MissingArgsError{Key: "Name"}),
			wantOutcome: Errored,
		},
		{
			name:        "access denied",
			err:         apiError("AccessDenied"),
			wantOutcome: Failed,
			wantCode:    "AccessDenied",
		},
		{
			name:        "unauthorized operation",
			err:         apiError("UnauthorizedOperation"),
			wantOutcome: Failed,
			wantCode:    "UnauthorizedOperation",
		},
		{
			name:        "validation error",
			err:         apiError("ValidationException"),
			wantOutcome: Errored,
			wantCode:    "ValidationException",
		},
		{
			name:        "missing credentials on the call",
			err:         apiError("UnrecognizedClientException"),
			wantOutcome: Errored,
			wantCode:    "UnrecognizedClientException",
		},
		{
			name:          "throttling",
			err:           apiError("ThrottlingException"),
			wantOutcome:   Errored,
			wantCode:      "ThrottlingException",
			wantThrottled: true,
		},
		{
			name:        "post-auth business error proves the permission",
			err:         apiError("ResourceNotFoundException"),
			wantOutcome: Succeeded,
			wantCode:    "ResourceNotFoundException",
		},
		{
			name:        "bucket missing still proves the permission",
			err:         apiError("NoSuchBucket"),
			wantOutcome: Succeeded,
			wantCode:    "NoSuchBucket",
		},
		{
			name:        "deadline exceeded is dropped",
			err:         fmt.Errorf("request: %w", context.DeadlineExceeded),
			wantDropped: true,
		},
		{
			name:        "dns failure is dropped",
			err:         &net.DNSError{Err: "no such host", Name: "api.example"},
			wantDropped: true,
		},
		{
			name:        "dial failure is dropped",
			err:         &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			wantDropped: true,
		},
		{
			name:        "unknown error kind is errored",
			err:         errors.New("something odd from the sdk"),
			wantOutcome: Errored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Dropped != tt.wantDropped {
				t.Fatalf("Dropped = %v, want %v", got.Dropped, tt.wantDropped)
			}
			if got.Dropped {
				return
			}
			if got.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %v, want %v", got.Outcome, tt.wantOutcome)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Throttled != tt.wantThrottled {
				t.Errorf("Throttled = %v, want %v", got.Throttled, tt.wantThrottled)
			}
		})
	}
}

func TestClassifyUnrecognizedFlag(t *testing.T) {
	got := Classify(errors.New("novel failure"))
	if !got.Unrecognized {
		t.Error("expected Unrecognized for an unmodeled error kind")
	}

	got = Classify(&MissingArgsError{Key: "Bucket"})
	if got.Unrecognized {
		t.Error("missing args is a modeled error kind")
	}
}
