package cl

// terminated returns a copy of src followed by a NUL byte. A source unit
// passed to the runtime is then valid both as a counted buffer and as a C
// string, which is how a zero length is read.
func terminated(src []byte) []byte {
	out := make([]byte, len(src)+1)
	copy(out, src)
	return out
}
