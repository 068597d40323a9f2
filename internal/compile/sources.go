// Package compile builds OpenCL C sources into device binaries.
package compile

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// Source is one kernel source file, loaded verbatim.
type Source struct {
	Path string
	Data []byte
}

// IOError reports a failed read or write of Path. It renders as the system
// description followed by the path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	var pe *fs.PathError
	if errors.As(e.Err, &pe) {
		return pe.Err.Error() + ": " + e.Path
	}
	return e.Err.Error() + ": " + e.Path
}

func (e *IOError) Unwrap() error { return e.Err }

// LoadSources reads every file in order. The first unreadable file aborts.
func LoadSources(paths []string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
		slog.Debug("Loaded source", "path", path, "bytes", len(data))
		sources = append(sources, Source{Path: path, Data: data})
	}
	return sources, nil
}
