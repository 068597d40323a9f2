// Package cltest provides an in-memory cl.Runtime for tests.
package cltest

import (
	"encoding/binary"
	"fmt"

	"github.com/cwbudde/ocltools/internal/cl"
)

// Operation names accepted as keys of Runtime.Errors.
const (
	OpPlatforms     = "Platforms"
	OpDevices       = "Devices"
	OpCreateContext = "CreateContext"
	OpCreateProgram = "CreateProgram"
	OpNumDevices    = "NumDevices"
	OpBinarySizes   = "BinarySizes"
	OpBinaries      = "Binaries"
)

// Platform is a fake platform with raw attribute values.
type Platform struct {
	ID      cl.PlatformID
	Info    map[cl.PlatformParam][]byte
	Devices []*Device
}

// Device is a fake device with raw attribute values. InfoErrors makes a
// query for the given attribute fail with that status code.
type Device struct {
	ID         cl.DeviceID
	Info       map[cl.DeviceParam][]byte
	InfoErrors map[cl.DeviceParam]int32
	BuildLog   string
	Binary     []byte
}

// Runtime implements cl.Runtime in memory.
type Runtime struct {
	PlatformList []*Platform
	// Errors injects a failure status per operation name.
	Errors map[string]int32
	// BuildStatus is returned by Program.Build when non-zero.
	BuildStatus int32
	// BuiltDevices overrides the device count reported after a build.
	BuiltDevices *int

	BuildOptions     []string
	Sources          [][]byte
	ContextsCreated  int
	ContextsReleased int
	ProgramsCreated  int
	ProgramsReleased int

	contextDevices []*Device
}

var _ cl.Runtime = (*Runtime)(nil)

func (r *Runtime) fail(op string) error {
	if code, ok := r.Errors[op]; ok {
		return &cl.StatusError{Op: op, Code: code}
	}
	return nil
}

func (r *Runtime) Platforms() ([]cl.PlatformID, error) {
	if err := r.fail(OpPlatforms); err != nil {
		return nil, err
	}
	ids := make([]cl.PlatformID, len(r.PlatformList))
	for i, p := range r.PlatformList {
		ids[i] = p.ID
	}
	return ids, nil
}

func (r *Runtime) platform(id cl.PlatformID) *Platform {
	for _, p := range r.PlatformList {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Runtime) device(id cl.DeviceID) *Device {
	for _, p := range r.PlatformList {
		for _, d := range p.Devices {
			if d.ID == id {
				return d
			}
		}
	}
	return nil
}

func (r *Runtime) Devices(platform cl.PlatformID) ([]cl.DeviceID, error) {
	if err := r.fail(OpDevices); err != nil {
		return nil, err
	}
	p := r.platform(platform)
	if p == nil {
		return nil, &cl.StatusError{Op: OpDevices, Code: cl.InvalidPlatform}
	}
	ids := make([]cl.DeviceID, len(p.Devices))
	for i, d := range p.Devices {
		ids[i] = d.ID
	}
	return ids, nil
}

// answer copies value into buf the way the runtime does: a nil buf reports
// the size, a short buf is CL_INVALID_VALUE.
func answer(op string, value []byte, buf []byte) (int, error) {
	if buf == nil {
		return len(value), nil
	}
	if len(buf) < len(value) {
		return 0, &cl.StatusError{Op: op, Code: cl.InvalidValue}
	}
	copy(buf, value)
	return len(value), nil
}

func (r *Runtime) PlatformInfo(platform cl.PlatformID, param cl.PlatformParam, buf []byte) (int, error) {
	p := r.platform(platform)
	if p == nil {
		return 0, &cl.StatusError{Op: "clGetPlatformInfo", Code: cl.InvalidPlatform}
	}
	value, ok := p.Info[param]
	if !ok {
		return 0, &cl.StatusError{Op: "clGetPlatformInfo", Code: cl.InvalidValue}
	}
	return answer("clGetPlatformInfo", value, buf)
}

func (r *Runtime) DeviceInfo(device cl.DeviceID, param cl.DeviceParam, buf []byte) (int, error) {
	d := r.device(device)
	if d == nil {
		return 0, &cl.StatusError{Op: "clGetDeviceInfo", Code: cl.InvalidDevice}
	}
	if code, ok := d.InfoErrors[param]; ok {
		return 0, &cl.StatusError{Op: "clGetDeviceInfo", Code: code}
	}
	value, ok := d.Info[param]
	if !ok {
		return 0, &cl.StatusError{Op: "clGetDeviceInfo", Code: cl.InvalidValue}
	}
	return answer("clGetDeviceInfo", value, buf)
}

func (r *Runtime) CreateContext(devices []cl.DeviceID) (cl.Context, error) {
	if err := r.fail(OpCreateContext); err != nil {
		return nil, err
	}
	r.contextDevices = r.contextDevices[:0]
	for _, id := range devices {
		d := r.device(id)
		if d == nil {
			return nil, &cl.StatusError{Op: OpCreateContext, Code: cl.InvalidDevice}
		}
		r.contextDevices = append(r.contextDevices, d)
	}
	r.ContextsCreated++
	return &fakeContext{rt: r}, nil
}

type fakeContext struct {
	rt       *Runtime
	released bool
}

func (c *fakeContext) CreateProgram(sources [][]byte) (cl.Program, error) {
	if err := c.rt.fail(OpCreateProgram); err != nil {
		return nil, err
	}
	c.rt.Sources = append(c.rt.Sources[:0], sources...)
	c.rt.ProgramsCreated++
	return &fakeProgram{rt: c.rt}, nil
}

func (c *fakeContext) Release() {
	if !c.released {
		c.released = true
		c.rt.ContextsReleased++
	}
}

type fakeProgram struct {
	rt       *Runtime
	built    bool
	released bool
}

func (p *fakeProgram) Build(options string) error {
	p.rt.BuildOptions = append(p.rt.BuildOptions, options)
	if p.rt.BuildStatus != cl.Success {
		return &cl.StatusError{Op: "clBuildProgram", Code: p.rt.BuildStatus}
	}
	p.built = true
	return nil
}

func (p *fakeProgram) BuildInfo(device cl.DeviceID, param cl.BuildParam, buf []byte) (int, error) {
	if param != cl.ProgramBuildLog {
		return 0, &cl.StatusError{Op: "clGetProgramBuildInfo", Code: cl.InvalidValue}
	}
	for _, d := range p.rt.contextDevices {
		if d.ID == device {
			if d.BuildLog == "" {
				return 0, nil
			}
			return answer("clGetProgramBuildInfo", String(d.BuildLog), buf)
		}
	}
	return 0, &cl.StatusError{Op: "clGetProgramBuildInfo", Code: cl.InvalidDevice}
}

func (p *fakeProgram) NumDevices() (int, error) {
	if err := p.rt.fail(OpNumDevices); err != nil {
		return 0, err
	}
	if p.rt.BuiltDevices != nil {
		return *p.rt.BuiltDevices, nil
	}
	return len(p.rt.contextDevices), nil
}

func (p *fakeProgram) BinarySizes(n int) ([]int, error) {
	if err := p.rt.fail(OpBinarySizes); err != nil {
		return nil, err
	}
	if n > len(p.rt.contextDevices) {
		return nil, &cl.StatusError{Op: OpBinarySizes, Code: cl.InvalidValue}
	}
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = len(p.rt.contextDevices[i].Binary)
	}
	return sizes, nil
}

func (p *fakeProgram) Binaries(bufs [][]byte) error {
	if err := p.rt.fail(OpBinaries); err != nil {
		return err
	}
	if !p.built {
		return &cl.StatusError{Op: OpBinaries, Code: cl.InvalidProgramExecutable}
	}
	if len(bufs) > len(p.rt.contextDevices) {
		return &cl.StatusError{Op: OpBinaries, Code: cl.InvalidValue}
	}
	for i, b := range bufs {
		src := p.rt.contextDevices[i].Binary
		if len(b) < len(src) {
			return &cl.StatusError{Op: OpBinaries, Code: cl.InvalidValue}
		}
		copy(b, src)
	}
	return nil
}

func (p *fakeProgram) Release() {
	if !p.released {
		p.released = true
		p.rt.ProgramsReleased++
	}
}

// String encodes s as a NUL-terminated C string.
func String(s string) []byte {
	return append([]byte(s), 0)
}

// Uint32 encodes a cl_uint, cl_bool or 32-bit enum.
func Uint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, v)
	return b
}

// Uint64 encodes a cl_ulong or cl_bitfield.
func Uint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.NativeEndian.PutUint64(b, v)
	return b
}

// Size encodes one or more size_t values.
func Size(vs ...uint64) []byte {
	b := make([]byte, len(vs)*cl.SizeOfSize)
	for i, v := range vs {
		cl.EncodeSize(b[i*cl.SizeOfSize:(i+1)*cl.SizeOfSize], v)
	}
	return b
}

// Bool encodes a cl_bool.
func Bool(v bool) []byte {
	if v {
		return Uint32(1)
	}
	return Uint32(0)
}

// NewDevice returns a device answering every attribute the inspector reads
// with plausible values; tests override entries as needed.
func NewDevice(id cl.DeviceID, platform cl.PlatformID, name string) *Device {
	return &Device{
		ID: id,
		Info: map[cl.DeviceParam][]byte{
			cl.DeviceType:                       Uint64(uint64(cl.DeviceTypeGPU)),
			cl.DeviceVendorID:                   Uint32(0x10de),
			cl.DeviceMaxComputeUnits:            Uint32(16),
			cl.DevicePlatform:                   Size(uint64(platform)),
			cl.DeviceName:                       String(name),
			cl.DeviceVendor:                     String("Fake Vendor"),
			cl.DeviceVersion:                    String("OpenCL 1.2 fake"),
			cl.DeviceProfile:                    String("FULL_PROFILE"),
			cl.DeviceOpenCLCVersion:             String("OpenCL C 1.2"),
			cl.DriverVersion:                    String("1.0.0"),
			cl.DeviceExtensions:                 String("cl_khr_fp64 cl_khr_icd"),
			cl.DeviceMaxWorkItemDimensions:      Uint32(3),
			cl.DeviceMaxWorkItemSizes:           Size(1024, 1024, 64),
			cl.DeviceMaxWorkGroupSize:           Size(1024),
			cl.DevicePreferredVectorWidthChar:   Uint32(1),
			cl.DevicePreferredVectorWidthShort:  Uint32(1),
			cl.DevicePreferredVectorWidthInt:    Uint32(1),
			cl.DevicePreferredVectorWidthLong:   Uint32(1),
			cl.DevicePreferredVectorWidthFloat:  Uint32(1),
			cl.DevicePreferredVectorWidthDouble: Uint32(1),
			cl.DevicePreferredVectorWidthHalf:   Uint32(0),
			cl.DeviceNativeVectorWidthChar:      Uint32(1),
			cl.DeviceNativeVectorWidthShort:     Uint32(1),
			cl.DeviceNativeVectorWidthInt:       Uint32(1),
			cl.DeviceNativeVectorWidthLong:      Uint32(1),
			cl.DeviceNativeVectorWidthFloat:     Uint32(1),
			cl.DeviceNativeVectorWidthDouble:    Uint32(1),
			cl.DeviceNativeVectorWidthHalf:      Uint32(0),
			cl.DeviceMaxClockFrequency:          Uint32(1500),
			cl.DeviceAddressBits:                Uint32(64),
			cl.DeviceMaxMemAllocSize:            Uint64(1 << 30),
			cl.DeviceImageSupport:               Bool(true),
			cl.DeviceMaxReadImageArgs:           Uint32(128),
			cl.DeviceImage2DMaxWidth:            Size(16384),
			cl.DeviceImage2DMaxHeight:           Size(16384),
			cl.DeviceImage3DMaxWidth:            Size(2048),
			cl.DeviceImage3DMaxHeight:           Size(2048),
			cl.DeviceImage3DMaxDepth:            Size(2048),
			cl.DeviceMaxSamplers:                Uint32(16),
			cl.DeviceMaxParameterSize:           Size(4352),
			cl.DeviceMemBaseAddrAlign:           Uint32(4096),
			cl.DeviceMinDataTypeAlignSize:       Uint32(128),
			cl.DeviceSingleFPConfig:             Uint64(cl.FPDenorm | cl.FPInfNaN | cl.FPRoundToNearest | cl.FPFMA),
			cl.DeviceGlobalMemCacheType:         Uint32(cl.CacheReadWrite),
			cl.DeviceGlobalMemCachelineSize:     Uint32(128),
			cl.DeviceGlobalMemCacheSize:         Uint64(1 << 20),
			cl.DeviceGlobalMemSize:              Uint64(4 << 30),
			cl.DeviceMaxConstantBufferSize:      Uint64(64 << 10),
			cl.DeviceMaxConstantArgs:            Uint32(9),
			cl.DeviceLocalMemType:               Uint32(cl.LocalMemLocal),
			cl.DeviceLocalMemSize:               Uint64(48 << 10),
			cl.DeviceErrorCorrectionSupport:     Bool(false),
			cl.DeviceHostUnifiedMemory:          Bool(false),
			cl.DeviceProfilingTimerResolution:   Size(1000),
			cl.DeviceEndianLittle:               Bool(true),
			cl.DeviceAvailable:                  Bool(true),
			cl.DeviceCompilerAvailable:          Bool(true),
			cl.DeviceExecutionCapabilities:      Uint64(cl.ExecKernel),
			cl.DeviceQueueProperties:            Uint64(cl.QueueOutOfOrderExecModeEnable | cl.QueueProfilingEnable),
		},
		Binary: []byte(fmt.Sprintf("binary for %s", name)),
	}
}

// NewPlatform returns a platform with standard string attributes.
func NewPlatform(id cl.PlatformID, name string, devices ...*Device) *Platform {
	return &Platform{
		ID: id,
		Info: map[cl.PlatformParam][]byte{
			cl.PlatformProfile:    String("FULL_PROFILE"),
			cl.PlatformVersion:    String("OpenCL 1.2 fake"),
			cl.PlatformName:       String(name),
			cl.PlatformVendor:     String("Fake Vendor"),
			cl.PlatformExtensions: String("cl_khr_icd"),
		},
		Devices: devices,
	}
}

// New returns a runtime serving the given platforms.
func New(platforms ...*Platform) *Runtime {
	return &Runtime{PlatformList: platforms}
}
