package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/ocltools/internal/cl"
)

// formatter reads one device attribute and renders its value.
type formatter func(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error)

type platformAttribute struct {
	name  string
	param cl.PlatformParam
}

type deviceAttribute struct {
	name   string
	param  cl.DeviceParam
	format formatter
}

var platformAttributes = []platformAttribute{
	{"CL_PLATFORM_PROFILE", cl.PlatformProfile},
	{"CL_PLATFORM_VERSION", cl.PlatformVersion},
	{"CL_PLATFORM_NAME", cl.PlatformName},
	{"CL_PLATFORM_VENDOR", cl.PlatformVendor},
	{"CL_PLATFORM_EXTENSIONS", cl.PlatformExtensions},
}

// basicDeviceAttributes are printed for every device, after the ID line.
var basicDeviceAttributes = []deviceAttribute{
	{"CL_DEVICE_TYPE", cl.DeviceType, deviceTypeValue},
	{"CL_DEVICE_VENDOR_ID", cl.DeviceVendorID, hexUint32Value},
	{"CL_DEVICE_MAX_COMPUTE_UNITS", cl.DeviceMaxComputeUnits, uint32Value},
	{"CL_DEVICE_PLATFORM", cl.DevicePlatform, pointerValue},
	{"CL_DEVICE_NAME", cl.DeviceName, stringValue},
	{"CL_DEVICE_VENDOR", cl.DeviceVendor, stringValue},
	{"CL_DEVICE_VERSION", cl.DeviceVersion, stringValue},
	{"CL_DEVICE_PROFILE", cl.DeviceProfile, stringValue},
	{"CL_DEVICE_OPENCL_C_VERSION", cl.DeviceOpenCLCVersion, stringValue},
	{"CL_DRIVER_VERSION", cl.DriverVersion, stringValue},
	{"CL_DEVICE_EXTENSIONS", cl.DeviceExtensions, stringValue},
}

// verboseDeviceAttributes follow the basic set when verbose output is on.
var verboseDeviceAttributes = []deviceAttribute{
	{"CL_DEVICE_MAX_WORK_ITEM_DIMENSIONS", cl.DeviceMaxWorkItemDimensions, uint32Value},
	{"CL_DEVICE_MAX_WORK_ITEM_SIZES", cl.DeviceMaxWorkItemSizes, workItemSizesValue},
	{"CL_DEVICE_MAX_WORK_GROUP_SIZE", cl.DeviceMaxWorkGroupSize, sizeValue},

	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_CHAR", cl.DevicePreferredVectorWidthChar, uint32Value},
	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_SHORT", cl.DevicePreferredVectorWidthShort, uint32Value},
	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_INT", cl.DevicePreferredVectorWidthInt, uint32Value},
	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_LONG", cl.DevicePreferredVectorWidthLong, uint32Value},
	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_FLOAT", cl.DevicePreferredVectorWidthFloat, uint32Value},
	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_DOUBLE", cl.DevicePreferredVectorWidthDouble, uint32Value},
	{"CL_DEVICE_PREFERRED_VECTOR_WIDTH_HALF", cl.DevicePreferredVectorWidthHalf, uint32Value},

	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_CHAR", cl.DeviceNativeVectorWidthChar, uint32Value},
	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_SHORT", cl.DeviceNativeVectorWidthShort, uint32Value},
	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_INT", cl.DeviceNativeVectorWidthInt, uint32Value},
	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_LONG", cl.DeviceNativeVectorWidthLong, uint32Value},
	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_FLOAT", cl.DeviceNativeVectorWidthFloat, uint32Value},
	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_DOUBLE", cl.DeviceNativeVectorWidthDouble, uint32Value},
	{"CL_DEVICE_NATIVE_VECTOR_WIDTH_HALF", cl.DeviceNativeVectorWidthHalf, uint32Value},

	{"CL_DEVICE_MAX_CLOCK_FREQUENCY", cl.DeviceMaxClockFrequency, uint32Value},
	{"CL_DEVICE_ADDRESS_BITS", cl.DeviceAddressBits, uint32Value},
	{"CL_DEVICE_MAX_MEM_ALLOC_SIZE", cl.DeviceMaxMemAllocSize, uint64Value},
	{"CL_DEVICE_IMAGE_SUPPORT", cl.DeviceImageSupport, boolValue},
	{"CL_DEVICE_MAX_READ_IMAGE_ARGS", cl.DeviceMaxReadImageArgs, uint32Value},
	{"CL_DEVICE_IMAGE2D_MAX_WIDTH", cl.DeviceImage2DMaxWidth, sizeValue},
	{"CL_DEVICE_IMAGE2D_MAX_HEIGHT", cl.DeviceImage2DMaxHeight, sizeValue},
	{"CL_DEVICE_IMAGE3D_MAX_WIDTH", cl.DeviceImage3DMaxWidth, sizeValue},
	{"CL_DEVICE_IMAGE3D_MAX_HEIGHT", cl.DeviceImage3DMaxHeight, sizeValue},
	{"CL_DEVICE_IMAGE3D_MAX_DEPTH", cl.DeviceImage3DMaxDepth, sizeValue},
	{"CL_DEVICE_MAX_SAMPLERS", cl.DeviceMaxSamplers, uint32Value},
	{"CL_DEVICE_MAX_PARAMETER_SIZE", cl.DeviceMaxParameterSize, sizeValue},
	{"CL_DEVICE_MEM_BASE_ADDR_ALIGN", cl.DeviceMemBaseAddrAlign, uint32Value},
	{"CL_DEVICE_MIN_DATA_TYPE_ALIGN_SIZE", cl.DeviceMinDataTypeAlignSize, uint32Value},

	{"CL_DEVICE_SINGLE_FP_CONFIG", cl.DeviceSingleFPConfig, flagsValue(fpConfigFlags)},

	{"CL_DEVICE_GLOBAL_MEM_CACHE_TYPE", cl.DeviceGlobalMemCacheType, enumValue(cacheTypeNames)},
	{"CL_DEVICE_GLOBAL_MEM_CACHELINE_SIZE", cl.DeviceGlobalMemCachelineSize, uint32Value},
	{"CL_DEVICE_GLOBAL_MEM_CACHE_SIZE", cl.DeviceGlobalMemCacheSize, uint64Value},
	{"CL_DEVICE_GLOBAL_MEM_SIZE", cl.DeviceGlobalMemSize, uint64Value},

	{"CL_DEVICE_MAX_CONSTANT_BUFFER_SIZE", cl.DeviceMaxConstantBufferSize, uint64Value},
	{"CL_DEVICE_MAX_CONSTANT_ARGS", cl.DeviceMaxConstantArgs, uint32Value},

	{"CL_DEVICE_LOCAL_MEM_TYPE", cl.DeviceLocalMemType, enumValue(localMemTypeNames)},
	{"CL_DEVICE_LOCAL_MEM_SIZE", cl.DeviceLocalMemSize, uint64Value},

	{"CL_DEVICE_ERROR_CORRECTION_SUPPORT", cl.DeviceErrorCorrectionSupport, boolValue},
	{"CL_DEVICE_HOST_UNIFIED_MEMORY", cl.DeviceHostUnifiedMemory, boolValue},
	{"CL_DEVICE_PROFILING_TIMER_RESOLUTION", cl.DeviceProfilingTimerResolution, sizeValue},
	{"CL_DEVICE_ENDIAN_LITTLE", cl.DeviceEndianLittle, boolValue},
	{"CL_DEVICE_AVAILABLE", cl.DeviceAvailable, boolValue},
	{"CL_DEVICE_COMPILER_AVAILABLE", cl.DeviceCompilerAvailable, boolValue},

	{"CL_DEVICE_EXECUTION_CAPABILITIES", cl.DeviceExecutionCapabilities, flagsValue(execCapabilityFlags)},
	{"CL_DEVICE_QUEUE_PROPERTIES", cl.DeviceQueueProperties, flagsValue(queuePropertyFlags)},
}

type flagName struct {
	bit  uint64
	name string
}

var fpConfigFlags = []flagName{
	{cl.FPDenorm, "CL_FP_DENORM"},
	{cl.FPInfNaN, "CL_FP_INF_NAN"},
	{cl.FPRoundToNearest, "CL_FP_ROUND_TO_NEAREST"},
	{cl.FPRoundToZero, "CL_FP_ROUND_TO_ZERO"},
	{cl.FPRoundToInf, "CL_FP_ROUND_TO_INF"},
	{cl.FPFMA, "CL_FP_FMA"},
	{cl.FPSoftFloat, "CL_FP_SOFT_FLOAT"},
}

var execCapabilityFlags = []flagName{
	{cl.ExecKernel, "CL_EXEC_KERNEL"},
	{cl.ExecNativeKernel, "CL_EXEC_NATIVE_KERNEL"},
}

var queuePropertyFlags = []flagName{
	{cl.QueueOutOfOrderExecModeEnable, "CL_QUEUE_OUT_OF_ORDER_EXEC_MODE_ENABLE"},
	{cl.QueueProfilingEnable, "CL_QUEUE_PROFILING_ENABLE"},
}

var cacheTypeNames = map[uint32]string{
	cl.CacheNone:      "CL_NONE",
	cl.CacheReadOnly:  "CL_READ_ONLY_CACHE",
	cl.CacheReadWrite: "CL_READ_WRITE_CACHE",
}

var localMemTypeNames = map[uint32]string{
	cl.LocalMemLocal:  "CL_LOCAL",
	cl.LocalMemGlobal: "CL_GLOBAL",
}

func stringValue(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	return cl.DeviceString(rt, id, param)
}

func uint32Value(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DeviceUint32(rt, id, param)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(v), 10), nil
}

func hexUint32Value(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DeviceUint32(rt, id, param)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%#x", v), nil
}

func uint64Value(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DeviceUint64(rt, id, param)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(v, 10), nil
}

func sizeValue(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DeviceSize(rt, id, param)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(v, 10), nil
}

// boolValue prints the raw cl_bool, 0 or 1.
func boolValue(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DeviceBool(rt, id, param)
	if err != nil {
		return "", err
	}
	if v {
		return "1", nil
	}
	return "0", nil
}

func pointerValue(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DevicePointer(rt, id, param)
	if err != nil {
		return "", err
	}
	return formatHandle(v), nil
}

func deviceTypeValue(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	v, err := cl.DeviceUint64(rt, id, param)
	if err != nil {
		return "", err
	}
	return cl.DeviceTypeName(cl.DeviceTypeBits(v)), nil
}

// workItemSizesValue needs the dimension count to size its query.
func workItemSizesValue(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
	dims, err := cl.DeviceUint32(rt, id, cl.DeviceMaxWorkItemDimensions)
	if err != nil {
		return "", err
	}
	sizes, err := cl.DeviceSizes(rt, id, param, int(dims))
	if err != nil {
		return "", err
	}
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.FormatUint(s, 10)
	}
	return strings.Join(parts, " "), nil
}

func flagsValue(flags []flagName) formatter {
	return func(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
		v, err := cl.DeviceUint64(rt, id, param)
		if err != nil {
			return "", err
		}
		return formatFlags(v, flags), nil
	}
}

func enumValue(names map[uint32]string) formatter {
	return func(rt cl.Runtime, id cl.DeviceID, param cl.DeviceParam) (string, error) {
		v, err := cl.DeviceUint32(rt, id, param)
		if err != nil {
			return "", err
		}
		if name, ok := names[v]; ok {
			return name, nil
		}
		return "unknown", nil
	}
}

// formatFlags lists the names of the set bits, space separated, in table order.
func formatFlags(v uint64, flags []flagName) string {
	var names []string
	for _, f := range flags {
		if v&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, " ")
}

func formatHandle(v uintptr) string {
	return fmt.Sprintf("%#x", v)
}
