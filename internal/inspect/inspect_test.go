package inspect

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/ocltools/internal/cl"
	"github.com/cwbudde/ocltools/internal/cl/cltest"
)

func newFakeHost() *cltest.Runtime {
	return cltest.New(
		cltest.NewPlatform(0x1, "Fake Platform", cltest.NewDevice(0x100, 0x1, "Fake GPU")),
	)
}

func TestReportBasicOrder(t *testing.T) {
	var out bytes.Buffer
	in := &Inspector{Runtime: newFakeHost()}
	if err := in.Report(&out); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	want := strings.Join([]string{
		"---- platform",
		"ID: 0x1",
		"CL_PLATFORM_PROFILE: FULL_PROFILE",
		"CL_PLATFORM_VERSION: OpenCL 1.2 fake",
		"CL_PLATFORM_NAME: Fake Platform",
		"CL_PLATFORM_VENDOR: Fake Vendor",
		"CL_PLATFORM_EXTENSIONS: cl_khr_icd",
		"-- device",
		"ID: 0x100",
		"CL_DEVICE_TYPE: CL_DEVICE_TYPE_GPU",
		"CL_DEVICE_VENDOR_ID: 0x10de",
		"CL_DEVICE_MAX_COMPUTE_UNITS: 16",
		"CL_DEVICE_PLATFORM: 0x1",
		"CL_DEVICE_NAME: Fake GPU",
		"CL_DEVICE_VENDOR: Fake Vendor",
		"CL_DEVICE_VERSION: OpenCL 1.2 fake",
		"CL_DEVICE_PROFILE: FULL_PROFILE",
		"CL_DEVICE_OPENCL_C_VERSION: OpenCL C 1.2",
		"CL_DRIVER_VERSION: 1.0.0",
		"CL_DEVICE_EXTENSIONS: cl_khr_fp64 cl_khr_icd",
	}, "\n") + "\n"

	if out.String() != want {
		t.Errorf("unexpected report:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestReportVerbose(t *testing.T) {
	var out bytes.Buffer
	in := &Inspector{Runtime: newFakeHost(), Verbose: true}
	if err := in.Report(&out); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	report := out.String()

	for _, attr := range verboseDeviceAttributes {
		if n := strings.Count(report, "\n"+attr.name+":"); n != 1 {
			t.Errorf("%s appears %d times, want 1", attr.name, n)
		}
	}

	for _, line := range []string{
		"CL_DEVICE_MAX_WORK_ITEM_SIZES: 1024 1024 64",
		"CL_DEVICE_SINGLE_FP_CONFIG: CL_FP_DENORM CL_FP_INF_NAN CL_FP_ROUND_TO_NEAREST CL_FP_FMA",
		"CL_DEVICE_GLOBAL_MEM_CACHE_TYPE: CL_READ_WRITE_CACHE",
		"CL_DEVICE_LOCAL_MEM_TYPE: CL_LOCAL",
		"CL_DEVICE_IMAGE_SUPPORT: 1",
		"CL_DEVICE_ERROR_CORRECTION_SUPPORT: 0",
		"CL_DEVICE_EXECUTION_CAPABILITIES: CL_EXEC_KERNEL",
		"CL_DEVICE_QUEUE_PROPERTIES: CL_QUEUE_OUT_OF_ORDER_EXEC_MODE_ENABLE CL_QUEUE_PROFILING_ENABLE",
	} {
		if !strings.Contains(report, line+"\n") {
			t.Errorf("missing line %q", line)
		}
	}

	basicEnd := strings.Index(report, "CL_DEVICE_EXTENSIONS:")
	verboseStart := strings.Index(report, "CL_DEVICE_MAX_WORK_ITEM_DIMENSIONS:")
	if basicEnd < 0 || verboseStart < basicEnd {
		t.Error("verbose attributes should follow the basic set")
	}
}

func TestReportUnknownEnumValues(t *testing.T) {
	rt := newFakeHost()
	dev := rt.PlatformList[0].Devices[0]
	dev.Info[cl.DeviceType] = cltest.Uint64(uint64(cl.DeviceTypeCPU | cl.DeviceTypeGPU))
	dev.Info[cl.DeviceGlobalMemCacheType] = cltest.Uint32(7)

	var out bytes.Buffer
	if err := (&Inspector{Runtime: rt, Verbose: true}).Report(&out); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(out.String(), "CL_DEVICE_TYPE: unknown\n") {
		t.Error("combined type bits should print as unknown")
	}
	if !strings.Contains(out.String(), "CL_DEVICE_GLOBAL_MEM_CACHE_TYPE: unknown\n") {
		t.Error("out of range cache type should print as unknown")
	}
}

func TestReportEmptyString(t *testing.T) {
	rt := newFakeHost()
	rt.PlatformList[0].Info[cl.PlatformExtensions] = []byte{}

	var out bytes.Buffer
	if err := (&Inspector{Runtime: rt}).Report(&out); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(out.String(), "CL_PLATFORM_EXTENSIONS: \n") {
		t.Errorf("expected empty extensions line, got:\n%s", out.String())
	}
}

func TestReportQueryFailureWritesNothing(t *testing.T) {
	rt := newFakeHost()
	rt.PlatformList[0].Devices[0].InfoErrors = map[cl.DeviceParam]int32{
		cl.DeviceMaxComputeUnits: cl.InvalidValue,
	}

	var out bytes.Buffer
	err := (&Inspector{Runtime: rt}).Report(&out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "CL_DEVICE_MAX_COMPUTE_UNITS") {
		t.Errorf("error should name the attribute: %v", err)
	}
	if !errors.Is(err, &cl.StatusError{Code: cl.InvalidValue}) {
		t.Errorf("error should carry the status: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestReportNoPlatform(t *testing.T) {
	var out bytes.Buffer
	err := (&Inspector{Runtime: cltest.New()}).Report(&out)
	if !errors.Is(err, cl.ErrNoPlatform) {
		t.Errorf("expected ErrNoPlatform, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestReportNoDevice(t *testing.T) {
	rt := cltest.New(cltest.NewPlatform(0x1, "Empty"), cltest.NewPlatform(0x2, "Also Empty"))

	var out bytes.Buffer
	err := (&Inspector{Runtime: rt}).Report(&out)
	if !errors.Is(err, cl.ErrNoDevice) {
		t.Errorf("expected ErrNoDevice, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestReportPlatformWithoutDevices(t *testing.T) {
	rt := cltest.New(
		cltest.NewPlatform(0x1, "Empty"),
		cltest.NewPlatform(0x2, "Full", cltest.NewDevice(0x200, 0x2, "Fake CPU")),
	)

	var out bytes.Buffer
	if err := (&Inspector{Runtime: rt}).Report(&out); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	report := out.String()
	if n := strings.Count(report, "---- platform\n"); n != 2 {
		t.Errorf("expected 2 platform blocks, got %d", n)
	}
	if n := strings.Count(report, "-- device\n"); n != 1 {
		t.Errorf("expected 1 device block, got %d", n)
	}
	if strings.Index(report, "CL_PLATFORM_NAME: Empty") > strings.Index(report, "CL_PLATFORM_NAME: Full") {
		t.Error("platforms out of order")
	}
}

func TestReportEnumerationFailure(t *testing.T) {
	rt := newFakeHost()
	rt.Errors = map[string]int32{cltest.OpDevices: -6}

	err := (&Inspector{Runtime: rt}).Report(&bytes.Buffer{})
	if !errors.Is(err, &cl.StatusError{Code: -6}) {
		t.Errorf("expected CL_OUT_OF_HOST_MEMORY, got %v", err)
	}
}

func TestFormatFlags(t *testing.T) {
	tests := []struct {
		v    uint64
		want string
	}{
		{0, ""},
		{cl.FPSoftFloat, "CL_FP_SOFT_FLOAT"},
		{cl.FPRoundToZero | cl.FPRoundToInf, "CL_FP_ROUND_TO_ZERO CL_FP_ROUND_TO_INF"},
		{1 << 40, ""},
	}
	for _, tt := range tests {
		if got := formatFlags(tt.v, fpConfigFlags); got != tt.want {
			t.Errorf("formatFlags(%#x) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
