package cl

import (
	"encoding/binary"
	"errors"
	"testing"
)

// scripted answers DeviceInfo queries from a single attribute value.
type scripted struct {
	Runtime
	value    []byte
	sizeErr  error
	fillErr  error
	calls    int
	lastBufs []int
}

func (s *scripted) query(buf []byte) (int, error) {
	s.calls++
	s.lastBufs = append(s.lastBufs, len(buf))
	if buf == nil {
		return len(s.value), s.sizeErr
	}
	if s.fillErr != nil {
		return 0, s.fillErr
	}
	return copy(buf, s.value), nil
}

func (s *scripted) DeviceInfo(_ DeviceID, _ DeviceParam, buf []byte) (int, error) {
	return s.query(buf)
}

func (s *scripted) PlatformInfo(_ PlatformID, _ PlatformParam, buf []byte) (int, error) {
	return s.query(buf)
}

func TestFetchVariableZeroSizeIsEmpty(t *testing.T) {
	s := &scripted{}
	got, err := FetchVariable(s.query)
	if err != nil {
		t.Fatalf("FetchVariable returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %q", got)
	}
	if s.calls != 1 {
		t.Errorf("expected only the size query, got %d calls", s.calls)
	}
}

func TestFetchVariableZeroSizeIgnoresSizeError(t *testing.T) {
	s := &scripted{sizeErr: &StatusError{Op: "size", Code: InvalidValue}}
	got, err := FetchVariable(s.query)
	if err != nil {
		t.Fatalf("expected no error for zero size, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %q", got)
	}
}

func TestFetchVariableSizeErrorWithSize(t *testing.T) {
	want := &StatusError{Op: "size", Code: -33}
	s := &scripted{value: []byte("abc\x00"), sizeErr: want}
	if _, err := FetchVariable(s.query); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestFetchVariableTwoCalls(t *testing.T) {
	s := &scripted{value: []byte("Fake Platform\x00")}
	got, err := FetchVariable(s.query)
	if err != nil {
		t.Fatalf("FetchVariable returned error: %v", err)
	}
	if string(got) != "Fake Platform\x00" {
		t.Errorf("got %q", got)
	}
	if s.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", s.calls)
	}
	if s.lastBufs[0] != 0 || s.lastBufs[1] != len(s.value) {
		t.Errorf("unexpected buffer sizes %v", s.lastBufs)
	}
}

func TestFetchVariableFillError(t *testing.T) {
	want := &StatusError{Op: "fill", Code: -5}
	s := &scripted{value: []byte("x\x00"), fillErr: want}
	if _, err := FetchVariable(s.query); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestDeviceStringCutsAtNul(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  string
	}{
		{"terminated", []byte("GeForce\x00"), "GeForce"},
		{"unterminated", []byte("GeForce"), "GeForce"},
		{"embedded", []byte("Ge\x00Force\x00"), "Ge"},
		{"only nul", []byte{0}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scripted{value: tt.value}
			got, err := DeviceString(s, 1, DeviceName)
			if err != nil {
				t.Fatalf("DeviceString returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatformString(t *testing.T) {
	s := &scripted{value: []byte("FULL_PROFILE\x00")}
	got, err := PlatformString(s, 1, PlatformProfile)
	if err != nil {
		t.Fatalf("PlatformString returned error: %v", err)
	}
	if got != "FULL_PROFILE" {
		t.Errorf("got %q", got)
	}
}

func TestFixedSizeReaders(t *testing.T) {
	u32 := make([]byte, 4)
	binary.NativeEndian.PutUint32(u32, 0x10de)
	if v, err := DeviceUint32(&scripted{value: u32}, 1, DeviceVendorID); err != nil || v != 0x10de {
		t.Errorf("DeviceUint32 = %#x, %v", v, err)
	}

	u64 := make([]byte, 8)
	binary.NativeEndian.PutUint64(u64, 4<<30)
	if v, err := DeviceUint64(&scripted{value: u64}, 1, DeviceGlobalMemSize); err != nil || v != 4<<30 {
		t.Errorf("DeviceUint64 = %d, %v", v, err)
	}

	size := make([]byte, SizeOfSize)
	EncodeSize(size, 1024)
	if v, err := DeviceSize(&scripted{value: size}, 1, DeviceMaxWorkGroupSize); err != nil || v != 1024 {
		t.Errorf("DeviceSize = %d, %v", v, err)
	}

	if v, err := DeviceBool(&scripted{value: u32}, 1, DeviceAvailable); err != nil || !v {
		t.Errorf("DeviceBool = %v, %v", v, err)
	}
}

func TestFixedSizeReaderPassesExactWidth(t *testing.T) {
	s := &scripted{value: make([]byte, 4)}
	if _, err := DeviceUint64(s, 1, DeviceGlobalMemSize); err != nil {
		t.Fatalf("DeviceUint64 returned error: %v", err)
	}
	if len(s.lastBufs) != 1 || s.lastBufs[0] != 8 {
		t.Errorf("expected one 8-byte query, got %v", s.lastBufs)
	}
}

func TestDeviceSizes(t *testing.T) {
	buf := make([]byte, 3*SizeOfSize)
	for i, v := range []uint64{1024, 512, 64} {
		EncodeSize(buf[i*SizeOfSize:(i+1)*SizeOfSize], v)
	}
	got, err := DeviceSizes(&scripted{value: buf}, 1, DeviceMaxWorkItemSizes, 3)
	if err != nil {
		t.Fatalf("DeviceSizes returned error: %v", err)
	}
	want := []uint64{1024, 512, 64}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}

	s := &scripted{}
	got, err = DeviceSizes(s, 1, DeviceMaxWorkItemSizes, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("DeviceSizes(0) = %v, %v", got, err)
	}
	if s.calls != 0 {
		t.Errorf("expected no query for zero dimensions, got %d", s.calls)
	}
}

func TestFixedSizeReaderError(t *testing.T) {
	want := &StatusError{Op: "clGetDeviceInfo", Code: -33}
	s := &scripted{value: make([]byte, 4), fillErr: want}
	if _, err := DeviceUint32(s, 1, DeviceMaxComputeUnits); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}
