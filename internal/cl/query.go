package cl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

// SizeOfSize is the width of size_t and of handles on this host.
const SizeOfSize = int(unsafe.Sizeof(uintptr(0)))

// FetchVariable runs the two-call size discovery for a variable-length
// attribute. query is called with nil to learn the size; a reported size of
// zero yields an empty result and no error. Otherwise a buffer of size+1 is
// filled by a second call and its first size bytes are returned.
func FetchVariable(query func(buf []byte) (int, error)) ([]byte, error) {
	size, err := query(nil)
	if size == 0 {
		return []byte{}, nil
	}
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size+1)
	n, err := query(buf[:size])
	if err != nil {
		return nil, err
	}
	if n > 0 && n < size {
		size = n
	}
	return buf[:size], nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// PlatformString reads a string-valued platform attribute.
func PlatformString(rt Runtime, id PlatformID, param PlatformParam) (string, error) {
	b, err := FetchVariable(func(buf []byte) (int, error) {
		return rt.PlatformInfo(id, param, buf)
	})
	if err != nil {
		return "", err
	}
	return cString(b), nil
}

// DeviceString reads a string-valued device attribute.
func DeviceString(rt Runtime, id DeviceID, param DeviceParam) (string, error) {
	b, err := FetchVariable(func(buf []byte) (int, error) {
		return rt.DeviceInfo(id, param, buf)
	})
	if err != nil {
		return "", err
	}
	return cString(b), nil
}

// BuildLog reads the build log a program produced for device.
func BuildLog(p Program, device DeviceID) (string, error) {
	b, err := FetchVariable(func(buf []byte) (int, error) {
		return p.BuildInfo(device, ProgramBuildLog, buf)
	})
	if err != nil {
		return "", err
	}
	return cString(b), nil
}

// deviceFixed fills a buffer of exactly width bytes. The size the runtime
// reports is trusted and not compared to width.
func deviceFixed(rt Runtime, id DeviceID, param DeviceParam, width int) ([]byte, error) {
	buf := make([]byte, width)
	if _, err := rt.DeviceInfo(id, param, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DeviceUint32 reads a cl_uint (or cl_bool, or 32-bit enum) attribute.
func DeviceUint32(rt Runtime, id DeviceID, param DeviceParam) (uint32, error) {
	buf, err := deviceFixed(rt, id, param, 4)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(buf), nil
}

// DeviceUint64 reads a cl_ulong or cl_bitfield attribute.
func DeviceUint64(rt Runtime, id DeviceID, param DeviceParam) (uint64, error) {
	buf, err := deviceFixed(rt, id, param, 8)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint64(buf), nil
}

// DeviceBool reads a cl_bool attribute.
func DeviceBool(rt Runtime, id DeviceID, param DeviceParam) (bool, error) {
	v, err := DeviceUint32(rt, id, param)
	return v != 0, err
}

// DeviceSize reads a size_t attribute.
func DeviceSize(rt Runtime, id DeviceID, param DeviceParam) (uint64, error) {
	buf, err := deviceFixed(rt, id, param, SizeOfSize)
	if err != nil {
		return 0, err
	}
	return decodeSize(buf), nil
}

// DevicePointer reads a handle-valued attribute such as CL_DEVICE_PLATFORM.
func DevicePointer(rt Runtime, id DeviceID, param DeviceParam) (uintptr, error) {
	v, err := DeviceSize(rt, id, param)
	return uintptr(v), err
}

// DeviceSizes reads a size_t[n] attribute. n == 0 returns an empty slice
// without querying.
func DeviceSizes(rt Runtime, id DeviceID, param DeviceParam, n int) ([]uint64, error) {
	if n == 0 {
		return []uint64{}, nil
	}
	buf, err := deviceFixed(rt, id, param, n*SizeOfSize)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = decodeSize(buf[i*SizeOfSize : (i+1)*SizeOfSize])
	}
	return out, nil
}

func decodeSize(b []byte) uint64 {
	switch len(b) {
	case 4:
		return uint64(binary.NativeEndian.Uint32(b))
	case 8:
		return binary.NativeEndian.Uint64(b)
	default:
		panic(fmt.Sprintf("cl: unsupported size_t width %d", len(b)))
	}
}

// EncodeSize writes v as a native size_t. Used by bindings and fakes that
// answer size-valued queries.
func EncodeSize(b []byte, v uint64) {
	switch len(b) {
	case 4:
		binary.NativeEndian.PutUint32(b, uint32(v))
	case 8:
		binary.NativeEndian.PutUint64(b, v)
	default:
		panic(fmt.Sprintf("cl: unsupported size_t width %d", len(b)))
	}
}
