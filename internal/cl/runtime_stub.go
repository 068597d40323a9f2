//go:build !gpu

package cl

// Open reports ErrNotBuilt when the native binding is not compiled in.
func Open() (Runtime, error) {
	return nil, ErrNotBuilt
}
