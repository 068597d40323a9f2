//go:build gpu

package cl

/*
#cgo !darwin LDFLAGS: -lOpenCL
#cgo darwin LDFLAGS: -framework OpenCL
#define CL_TARGET_OPENCL_VERSION 120
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS
#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"
)

type nativeRuntime struct{}

// Open returns the runtime backed by the system OpenCL library.
func Open() (Runtime, error) {
	return nativeRuntime{}, nil
}

// Handles are C-owned pointers from the runtime, never Go pointers.
func toPlatform(id PlatformID) C.cl_platform_id {
	return C.cl_platform_id(unsafe.Pointer(id))
}

func toDevice(id DeviceID) C.cl_device_id {
	return C.cl_device_id(unsafe.Pointer(id))
}

func bufPtr(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

func (nativeRuntime) Platforms() ([]PlatformID, error) {
	var count C.cl_uint
	status := int32(C.clGetPlatformIDs(0, nil, &count))
	if status == PlatformNotFoundKHR {
		return []PlatformID{}, nil
	}
	if err := Status("clGetPlatformIDs(count)", status); err != nil {
		return nil, err
	}
	if count == 0 {
		return []PlatformID{}, nil
	}

	ids := make([]C.cl_platform_id, int(count))
	status = int32(C.clGetPlatformIDs(count, &ids[0], &count))
	if err := Status("clGetPlatformIDs(list)", status); err != nil {
		return nil, err
	}

	out := make([]PlatformID, int(count))
	for i := range out {
		out[i] = PlatformID(unsafe.Pointer(ids[i]))
	}
	return out, nil
}

func (nativeRuntime) Devices(platform PlatformID) ([]DeviceID, error) {
	var count C.cl_uint
	status := int32(C.clGetDeviceIDs(toPlatform(platform), C.CL_DEVICE_TYPE_ALL, 0, nil, &count))
	if status == DeviceNotFound {
		return []DeviceID{}, nil
	}
	if err := Status("clGetDeviceIDs(count)", status); err != nil {
		return nil, err
	}
	if count == 0 {
		return []DeviceID{}, nil
	}

	ids := make([]C.cl_device_id, int(count))
	status = int32(C.clGetDeviceIDs(toPlatform(platform), C.CL_DEVICE_TYPE_ALL, count, &ids[0], &count))
	if err := Status("clGetDeviceIDs(list)", status); err != nil {
		return nil, err
	}

	out := make([]DeviceID, int(count))
	for i := range out {
		out[i] = DeviceID(unsafe.Pointer(ids[i]))
	}
	return out, nil
}

func (nativeRuntime) PlatformInfo(platform PlatformID, param PlatformParam, buf []byte) (int, error) {
	var size C.size_t
	status := int32(C.clGetPlatformInfo(toPlatform(platform), C.cl_platform_info(param),
		C.size_t(len(buf)), bufPtr(buf), &size))
	return int(size), Status("clGetPlatformInfo", status)
}

func (nativeRuntime) DeviceInfo(device DeviceID, param DeviceParam, buf []byte) (int, error) {
	var size C.size_t
	status := int32(C.clGetDeviceInfo(toDevice(device), C.cl_device_info(param),
		C.size_t(len(buf)), bufPtr(buf), &size))
	return int(size), Status("clGetDeviceInfo", status)
}

func (nativeRuntime) CreateContext(devices []DeviceID) (Context, error) {
	if len(devices) == 0 {
		return nil, ErrNoDevice
	}
	ids := make([]C.cl_device_id, len(devices))
	for i, d := range devices {
		ids[i] = toDevice(d)
	}

	var status C.cl_int
	ctx := C.clCreateContext(nil, C.cl_uint(len(ids)), &ids[0], nil, nil, &status)
	if err := Status("clCreateContext", int32(status)); err != nil {
		return nil, err
	}
	return &nativeContext{ctx: ctx}, nil
}

type nativeContext struct {
	ctx C.cl_context
}

func (c *nativeContext) CreateProgram(sources [][]byte) (Program, error) {
	if len(sources) == 0 {
		return nil, Status("clCreateProgramWithSource", InvalidValue)
	}

	// The pointer array lives in Go memory but only holds C pointers. Each
	// unit carries a trailing NUL so an empty one is a valid "" string.
	ptrs := make([]*C.char, len(sources))
	lengths := make([]C.size_t, len(sources))
	for i, src := range sources {
		ptrs[i] = (*C.char)(C.CBytes(terminated(src)))
		lengths[i] = C.size_t(len(src))
	}
	defer func() {
		for _, p := range ptrs {
			C.free(unsafe.Pointer(p))
		}
	}()

	var status C.cl_int
	prog := C.clCreateProgramWithSource(c.ctx, C.cl_uint(len(ptrs)), &ptrs[0], &lengths[0], &status)
	if err := Status("clCreateProgramWithSource", int32(status)); err != nil {
		return nil, err
	}
	return &nativeProgram{prog: prog}, nil
}

func (c *nativeContext) Release() {
	if c.ctx != nil {
		C.clReleaseContext(c.ctx)
		c.ctx = nil
	}
}

type nativeProgram struct {
	prog C.cl_program
}

func (p *nativeProgram) Build(options string) error {
	var opts *C.char
	if options != "" {
		opts = C.CString(options)
		defer C.free(unsafe.Pointer(opts))
	}
	status := C.clBuildProgram(p.prog, 0, nil, opts, nil, nil)
	return Status("clBuildProgram", int32(status))
}

func (p *nativeProgram) BuildInfo(device DeviceID, param BuildParam, buf []byte) (int, error) {
	var size C.size_t
	status := int32(C.clGetProgramBuildInfo(p.prog, toDevice(device), C.cl_program_build_info(param),
		C.size_t(len(buf)), bufPtr(buf), &size))
	return int(size), Status("clGetProgramBuildInfo", status)
}

func (p *nativeProgram) NumDevices() (int, error) {
	var n C.cl_uint
	status := int32(C.clGetProgramInfo(p.prog, C.CL_PROGRAM_NUM_DEVICES,
		C.size_t(unsafe.Sizeof(n)), unsafe.Pointer(&n), nil))
	if err := Status("clGetProgramInfo(num devices)", status); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (p *nativeProgram) BinarySizes(n int) ([]int, error) {
	if n == 0 {
		return []int{}, nil
	}
	sizes := make([]C.size_t, n)
	status := int32(C.clGetProgramInfo(p.prog, C.CL_PROGRAM_BINARY_SIZES,
		C.size_t(uintptr(n)*unsafe.Sizeof(sizes[0])), unsafe.Pointer(&sizes[0]), nil))
	if err := Status("clGetProgramInfo(binary sizes)", status); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i, s := range sizes {
		out[i] = int(s)
	}
	return out, nil
}

func (p *nativeProgram) Binaries(bufs [][]byte) error {
	if len(bufs) == 0 {
		return nil
	}

	// The runtime writes through an array of pointers, so the targets are
	// C allocations copied back into bufs afterwards.
	ptrs := make([]*C.uchar, len(bufs))
	for i, b := range bufs {
		if len(b) > 0 {
			ptrs[i] = (*C.uchar)(C.malloc(C.size_t(len(b))))
		}
	}
	defer func() {
		for _, ptr := range ptrs {
			if ptr != nil {
				C.free(unsafe.Pointer(ptr))
			}
		}
	}()

	status := int32(C.clGetProgramInfo(p.prog, C.CL_PROGRAM_BINARIES,
		C.size_t(uintptr(len(ptrs))*unsafe.Sizeof(ptrs[0])), unsafe.Pointer(&ptrs[0]), nil))
	if err := Status("clGetProgramInfo(binaries)", status); err != nil {
		return err
	}

	for i, b := range bufs {
		if ptrs[i] != nil {
			copy(b, unsafe.Slice((*byte)(unsafe.Pointer(ptrs[i])), len(b)))
		}
	}
	return nil
}

func (p *nativeProgram) Release() {
	if p.prog != nil {
		C.clReleaseProgram(p.prog)
		p.prog = nil
	}
}
