package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "user error", err: NewUserError("bad flag"), want: ExitUserError},
		{name: "system error", err: NewSystemError("fetch failed"), want: ExitSystemError},
		{name: "data error", err: NewDataError("unknown exercise"), want: ExitDataError},
		{name: "untyped error", err: errors.New("something"), want: ExitUserError},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("context: %w", NewSystemError("io failure")),
			want: ExitSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSystemErrorWithCause("fetching index", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Error() != "fetching index" {
		t.Errorf("Error() = %q, want %q", err.Error(), "fetching index")
	}
}
