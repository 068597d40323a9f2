package cl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Op: "clBuildProgram", Code: BuildProgramFailure}
	want := "clBuildProgram: CL_BUILD_PROGRAM_FAILURE (-11)"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	unknown := &StatusError{Op: "clFoo", Code: -4242}
	if !strings.Contains(unknown.Error(), UnknownError) {
		t.Errorf("expected unknown message, got %q", unknown.Error())
	}
}

func TestStatusErrorIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("build: %w", &StatusError{Op: "clBuildProgram", Code: BuildProgramFailure})

	if !errors.Is(err, &StatusError{Code: BuildProgramFailure}) {
		t.Error("expected match on equal code")
	}
	if errors.Is(err, &StatusError{Code: InvalidValue}) {
		t.Error("unexpected match on different code")
	}
}

func TestStatus(t *testing.T) {
	if err := Status("op", Success); err != nil {
		t.Errorf("expected nil for success, got %v", err)
	}
	var se *StatusError
	if err := Status("op", DeviceNotFound); !errors.As(err, &se) || se.Code != DeviceNotFound {
		t.Errorf("expected StatusError with code -1, got %v", err)
	}
}

func TestBuildErrorIncludesLogs(t *testing.T) {
	err := &BuildError{
		Err: &StatusError{Op: "clBuildProgram", Code: BuildProgramFailure},
		Logs: []DeviceLog{
			{Device: 0x10, Log: "kernel.cl:3:1: error: expected ';'\n"},
			{Device: 0x20, Log: "   "},
		},
	}

	msg := err.Error()
	if !strings.Contains(msg, "CL_BUILD_PROGRAM_FAILURE") {
		t.Errorf("missing status in %q", msg)
	}
	if !strings.Contains(msg, "expected ';'") {
		t.Errorf("missing build log in %q", msg)
	}
	if strings.Contains(msg, "0x20") {
		t.Errorf("blank log should be skipped: %q", msg)
	}
	if !errors.Is(err, &StatusError{Code: BuildProgramFailure}) {
		t.Error("BuildError should unwrap to its status")
	}
}

func TestKindOf(t *testing.T) {
	_, openErr := os.Open("/definitely/not/here")
	var pathErr *fs.PathError
	if !errors.As(openErr, &pathErr) {
		t.Fatalf("expected *fs.PathError, got %T", openErr)
	}

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"usage", UsageError("no input file"), KindUsage},
		{"no platform", fmt.Errorf("resolve: %w", ErrNoPlatform), KindEmpty},
		{"no device", ErrNoDevice, KindEmpty},
		{"no program", ErrNoBuiltProgram, KindEmpty},
		{"status", &StatusError{Op: "x", Code: -5}, KindRuntime},
		{"build", &BuildError{Err: &StatusError{Op: "x", Code: -11}}, KindRuntime},
		{"io", fmt.Errorf("load: %w", openErr), KindIO},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}
