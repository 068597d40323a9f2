package cl

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrNotBuilt indicates the binary was built without the native binding.
	ErrNotBuilt = errors.New("opencl support requires building with '-tags gpu'")
	// ErrNoPlatform indicates the host exposes no OpenCL platform.
	ErrNoPlatform = errors.New("no platform on system")
	// ErrNoDevice indicates no device was found where one was required.
	ErrNoDevice = errors.New("no device on system")
	// ErrNoBuiltProgram indicates a build finished without any device program.
	ErrNoBuiltProgram = errors.New("no device specific program built")
)

// StatusError is a non-success status returned by a runtime call.
// errors.Is matches any *StatusError carrying the same code.
type StatusError struct {
	Op   string
	Code int32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Op, ErrorMessage(e.Code), int(e.Code))
}

func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && t.Code == e.Code
}

// Status builds a *StatusError for op, or nil when code is Success.
func Status(op string, code int32) error {
	if code == Success {
		return nil
	}
	return &StatusError{Op: op, Code: code}
}

// DeviceLog is the build log one device produced.
type DeviceLog struct {
	Device DeviceID
	Log    string
}

// BuildError is a failed program build along with every device's build log.
type BuildError struct {
	Err  error
	Logs []DeviceLog
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	for _, l := range e.Logs {
		text := strings.TrimSpace(l.Log)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- build log (device %#x)\n%s", uintptr(l.Device), text)
	}
	return b.String()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Kind is the coarse category of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage
	KindIO
	KindRuntime
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindIO:
		return "io"
	case KindRuntime:
		return "runtime"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// usageError marks errors caused by invalid command input.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// UsageError returns an error of KindUsage with the given message.
func UsageError(msg string) error {
	return &usageError{msg: msg}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	var (
		statusErr *StatusError
		pathErr   *fs.PathError
		usageErr  *usageError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &usageErr):
		return KindUsage
	case errors.Is(err, ErrNoPlatform), errors.Is(err, ErrNoDevice), errors.Is(err, ErrNoBuiltProgram):
		return KindEmpty
	case errors.As(err, &statusErr):
		return KindRuntime
	case errors.As(err, &pathErr):
		return KindIO
	default:
		return KindUnknown
	}
}
