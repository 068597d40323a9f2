package cl

// PlatformID is an opaque handle to an OpenCL platform owned by the runtime.
type PlatformID uintptr

// DeviceID is an opaque handle to an OpenCL device owned by the runtime.
type DeviceID uintptr

// PlatformParam identifies a clGetPlatformInfo attribute.
type PlatformParam uint32

const (
	PlatformProfile    PlatformParam = 0x0900
	PlatformVersion    PlatformParam = 0x0901
	PlatformName       PlatformParam = 0x0902
	PlatformVendor     PlatformParam = 0x0903
	PlatformExtensions PlatformParam = 0x0904
)

// DeviceParam identifies a clGetDeviceInfo attribute.
type DeviceParam uint32

const (
	DeviceType                       DeviceParam = 0x1000
	DeviceVendorID                   DeviceParam = 0x1001
	DeviceMaxComputeUnits            DeviceParam = 0x1002
	DeviceMaxWorkItemDimensions      DeviceParam = 0x1003
	DeviceMaxWorkGroupSize           DeviceParam = 0x1004
	DeviceMaxWorkItemSizes           DeviceParam = 0x1005
	DevicePreferredVectorWidthChar   DeviceParam = 0x1006
	DevicePreferredVectorWidthShort  DeviceParam = 0x1007
	DevicePreferredVectorWidthInt    DeviceParam = 0x1008
	DevicePreferredVectorWidthLong   DeviceParam = 0x1009
	DevicePreferredVectorWidthFloat  DeviceParam = 0x100A
	DevicePreferredVectorWidthDouble DeviceParam = 0x100B
	DeviceMaxClockFrequency          DeviceParam = 0x100C
	DeviceAddressBits                DeviceParam = 0x100D
	DeviceMaxReadImageArgs           DeviceParam = 0x100E
	DeviceMaxWriteImageArgs          DeviceParam = 0x100F
	DeviceMaxMemAllocSize            DeviceParam = 0x1010
	DeviceImage2DMaxWidth            DeviceParam = 0x1011
	DeviceImage2DMaxHeight           DeviceParam = 0x1012
	DeviceImage3DMaxWidth            DeviceParam = 0x1013
	DeviceImage3DMaxHeight           DeviceParam = 0x1014
	DeviceImage3DMaxDepth            DeviceParam = 0x1015
	DeviceImageSupport               DeviceParam = 0x1016
	DeviceMaxParameterSize           DeviceParam = 0x1017
	DeviceMaxSamplers                DeviceParam = 0x1018
	DeviceMemBaseAddrAlign           DeviceParam = 0x1019
	DeviceMinDataTypeAlignSize       DeviceParam = 0x101A
	DeviceSingleFPConfig             DeviceParam = 0x101B
	DeviceGlobalMemCacheType         DeviceParam = 0x101C
	DeviceGlobalMemCachelineSize     DeviceParam = 0x101D
	DeviceGlobalMemCacheSize         DeviceParam = 0x101E
	DeviceGlobalMemSize              DeviceParam = 0x101F
	DeviceMaxConstantBufferSize      DeviceParam = 0x1020
	DeviceMaxConstantArgs            DeviceParam = 0x1021
	DeviceLocalMemType               DeviceParam = 0x1022
	DeviceLocalMemSize               DeviceParam = 0x1023
	DeviceErrorCorrectionSupport     DeviceParam = 0x1024
	DeviceProfilingTimerResolution   DeviceParam = 0x1025
	DeviceEndianLittle               DeviceParam = 0x1026
	DeviceAvailable                  DeviceParam = 0x1027
	DeviceCompilerAvailable          DeviceParam = 0x1028
	DeviceExecutionCapabilities      DeviceParam = 0x1029
	DeviceQueueProperties            DeviceParam = 0x102A
	DeviceName                       DeviceParam = 0x102B
	DeviceVendor                     DeviceParam = 0x102C
	DriverVersion                    DeviceParam = 0x102D
	DeviceProfile                    DeviceParam = 0x102E
	DeviceVersion                    DeviceParam = 0x102F
	DeviceExtensions                 DeviceParam = 0x1030
	DevicePlatform                   DeviceParam = 0x1031
	DevicePreferredVectorWidthHalf   DeviceParam = 0x1034
	DeviceHostUnifiedMemory          DeviceParam = 0x1035
	DeviceNativeVectorWidthChar      DeviceParam = 0x1036
	DeviceNativeVectorWidthShort     DeviceParam = 0x1037
	DeviceNativeVectorWidthInt       DeviceParam = 0x1038
	DeviceNativeVectorWidthLong      DeviceParam = 0x1039
	DeviceNativeVectorWidthFloat     DeviceParam = 0x103A
	DeviceNativeVectorWidthDouble    DeviceParam = 0x103B
	DeviceNativeVectorWidthHalf      DeviceParam = 0x103C
	DeviceOpenCLCVersion             DeviceParam = 0x103D
)

// ProgramParam identifies a clGetProgramInfo attribute.
type ProgramParam uint32

const (
	ProgramNumDevices  ProgramParam = 0x1162
	ProgramDevices     ProgramParam = 0x1163
	ProgramBinarySizes ProgramParam = 0x1165
	ProgramBinaries    ProgramParam = 0x1166
)

// BuildParam identifies a clGetProgramBuildInfo attribute.
type BuildParam uint32

const (
	ProgramBuildStatus  BuildParam = 0x1181
	ProgramBuildOptions BuildParam = 0x1182
	ProgramBuildLog     BuildParam = 0x1183
)

// DeviceTypeBits is the cl_device_type bitfield.
type DeviceTypeBits uint64

const (
	DeviceTypeDefault     DeviceTypeBits = 1 << 0
	DeviceTypeCPU         DeviceTypeBits = 1 << 1
	DeviceTypeGPU         DeviceTypeBits = 1 << 2
	DeviceTypeAccelerator DeviceTypeBits = 1 << 3
	DeviceTypeCustom      DeviceTypeBits = 1 << 4
	DeviceTypeAll         DeviceTypeBits = 0xFFFFFFFF
)

// cl_device_fp_config bits.
const (
	FPDenorm                     uint64 = 1 << 0
	FPInfNaN                     uint64 = 1 << 1
	FPRoundToNearest             uint64 = 1 << 2
	FPRoundToZero                uint64 = 1 << 3
	FPRoundToInf                 uint64 = 1 << 4
	FPFMA                        uint64 = 1 << 5
	FPSoftFloat                  uint64 = 1 << 6
	FPCorrectlyRoundedDivideSqrt uint64 = 1 << 7
)

// cl_device_mem_cache_type values.
const (
	CacheNone      uint32 = 0x0
	CacheReadOnly  uint32 = 0x1
	CacheReadWrite uint32 = 0x2
)

// cl_device_local_mem_type values.
const (
	LocalMemLocal  uint32 = 0x1
	LocalMemGlobal uint32 = 0x2
)

// cl_device_exec_capabilities bits.
const (
	ExecKernel       uint64 = 1 << 0
	ExecNativeKernel uint64 = 1 << 1
)

// cl_command_queue_properties bits.
const (
	QueueOutOfOrderExecModeEnable uint64 = 1 << 0
	QueueProfilingEnable          uint64 = 1 << 1
)
