package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
		wantSilent  bool
	}{
		{
			name:        "user error",
			err:         NewUserError("project name is required"),
			wantCode:    ExitUserError,
			wantMessage: "project name is required",
		},
		{
			name:        "system error",
			err:         NewSystemError("git not found"),
			wantCode:    ExitSystemError,
			wantMessage: "git not found",
		},
		{
			name:        "silent error",
			err:         NewSilentError(errors.New("menu exited")),
			wantCode:    ExitUserError,
			wantMessage: "menu exited",
			wantSilent:  true,
		},
		{
			name:        "silent error without cause",
			err:         NewSilentError(nil),
			wantCode:    ExitUserError,
			wantMessage: "canceled",
			wantSilent:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
			if IsSilent(tt.err) != tt.wantSilent {
				t.Errorf("IsSilent() = %v, want %v", IsSilent(tt.err), tt.wantSilent)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewSystemErrorWithCause("downloading archive", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
	if err.Error() != "downloading archive: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"ExitError user", NewUserError("bad input"), ExitUserError},
		{"ExitError system", NewSystemError("git failed"), ExitSystemError},
		{"wrapped ExitError", fmt.Errorf("create: %w", NewSystemError("fetch failed")), ExitSystemError},
		{"regular error defaults to user error", errors.New("some error"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestIsSilent_Wrapped(t *testing.T) {
	err := fmt.Errorf("run: %w", NewSilentError(nil))
	if !IsSilent(err) {
		t.Error("IsSilent should see through wrapping")
	}
	if IsSilent(errors.New("plain")) {
		t.Error("plain errors are not silent")
	}
}
