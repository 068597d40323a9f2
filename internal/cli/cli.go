package cli

import (
	"fmt"
	"strings"
)

// Version is reported by -V/--version of both tools.
const Version = "1.0"

// VersionLine formats the version output of the named tool.
func VersionLine(name string) string {
	return fmt.Sprintf("%s version %s", name, Version)
}

// Diagnostic renders err for the terminal. Build failures keep their
// per-device logs on the following lines.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimRight(err.Error(), "\n")
}
