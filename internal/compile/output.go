package compile

import (
	"log/slog"
	"os"
)

// WriteBinary writes data to path, truncating whatever file is there. The
// path is opened, not replaced: a symlink writes through to its target,
// device nodes and FIFOs receive the bytes, and an existing file keeps its
// mode. New files are created 0644 before umask.
func WriteBinary(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &IOError{Path: path, Err: err}
	}

	slog.Debug("Binary written", "path", path, "bytes", len(data))
	return nil
}
