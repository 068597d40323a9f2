/*
Package cl is the thin layer between the tools and the OpenCL runtime.

The Runtime, Context and Program interfaces mirror single runtime calls and
carry no policy; sequencing lives with the callers. The native binding is
compiled with '-tags gpu' and needs libOpenCL; without the tag Open returns
ErrNotBuilt. Handles returned by CreateContext and CreateProgram must be
released by the caller, normally with defer right after creation.
*/
package cl

// Runtime is the host-level entry point of the compute API.
type Runtime interface {
	// Platforms lists every platform. A host without platforms yields an
	// empty slice and no error.
	Platforms() ([]PlatformID, error)
	// Devices lists every device of a platform. A platform without devices
	// yields an empty slice and no error.
	Devices(platform PlatformID) ([]DeviceID, error)
	// PlatformInfo performs one clGetPlatformInfo call. A nil buf queries the
	// size only. The reported size is returned in both cases.
	PlatformInfo(platform PlatformID, param PlatformParam, buf []byte) (int, error)
	// DeviceInfo performs one clGetDeviceInfo call with the same contract as
	// PlatformInfo.
	DeviceInfo(device DeviceID, param DeviceParam, buf []byte) (int, error)
	// CreateContext creates a context spanning devices.
	CreateContext(devices []DeviceID) (Context, error)
}

// Context owns programs created against its devices.
type Context interface {
	// CreateProgram creates one program from several source units.
	CreateProgram(sources [][]byte) (Program, error)
	Release()
}

// Program is a program object created from source.
type Program interface {
	// Build compiles the program for every device of its context.
	Build(options string) error
	// BuildInfo performs one clGetProgramBuildInfo call.
	BuildInfo(device DeviceID, param BuildParam, buf []byte) (int, error)
	// NumDevices reports how many devices the program is associated with.
	NumDevices() (int, error)
	// BinarySizes reports the binary size of each of the n devices.
	BinarySizes(n int) ([]int, error)
	// Binaries fills bufs, one per device, in a single runtime call. Each
	// buffer must already have the length reported by BinarySizes.
	Binaries(bufs [][]byte) error
	Release()
}
