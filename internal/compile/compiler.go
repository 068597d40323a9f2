package compile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cwbudde/ocltools/internal/cl"
)

// Compiler builds sources for every device of the first platform.
type Compiler struct {
	Runtime cl.Runtime
	// Options is passed verbatim to the runtime build call.
	Options string
}

// Result holds one binary per device the program was built for.
type Result struct {
	Devices  []cl.DeviceID
	Binaries [][]byte
}

// First returns the binary of the first device. Only this one is written out.
func (r *Result) First() []byte {
	if r == nil || len(r.Binaries) == 0 {
		return nil
	}
	return r.Binaries[0]
}

// Build compiles sources and extracts the device binaries. The context and
// program are released on every return path.
func (c *Compiler) Build(sources []Source) (*Result, error) {
	platforms, err := c.Runtime.Platforms()
	if err != nil {
		return nil, fmt.Errorf("enumerate platforms: %w", err)
	}
	if len(platforms) == 0 {
		return nil, cl.ErrNoPlatform
	}
	platform := platforms[0]

	devices, err := c.Runtime.Devices(platform)
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	if len(devices) == 0 {
		return nil, cl.ErrNoDevice
	}
	slog.Debug("Selected platform", "platform", uintptr(platform), "devices", len(devices))

	ctx, err := c.Runtime.CreateContext(devices)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	defer ctx.Release()

	data := make([][]byte, len(sources))
	for i, src := range sources {
		data[i] = src.Data
	}
	program, err := ctx.CreateProgram(data)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	defer program.Release()
	slog.Debug("Program created", "sources", len(sources))

	if err := program.Build(c.Options); err != nil {
		return nil, &cl.BuildError{Err: err, Logs: collectLogs(program, devices)}
	}
	slog.Debug("Program built", "options", c.Options)

	n, err := program.NumDevices()
	if err != nil {
		return nil, fmt.Errorf("query program devices: %w", err)
	}
	if n == 0 {
		return nil, cl.ErrNoBuiltProgram
	}

	sizes, err := program.BinarySizes(n)
	if err != nil {
		return nil, fmt.Errorf("query binary sizes: %w", err)
	}
	binaries := make([][]byte, n)
	for i, size := range sizes {
		binaries[i] = make([]byte, size)
	}
	if err := program.Binaries(binaries); err != nil {
		return nil, fmt.Errorf("extract binaries: %w", err)
	}
	slog.Debug("Binaries extracted", "devices", n, "bytes", len(binaries[0]))

	built := devices
	if n < len(built) {
		built = built[:n]
	}
	return &Result{Devices: built, Binaries: binaries}, nil
}

// collectLogs gathers the non-empty build log of each device. Log query
// failures are skipped; the build error itself is what gets reported.
func collectLogs(program cl.Program, devices []cl.DeviceID) []cl.DeviceLog {
	var logs []cl.DeviceLog
	for _, device := range devices {
		log, err := cl.BuildLog(program, device)
		if err != nil {
			slog.Debug("Build log unavailable", "device", uintptr(device), "error", err)
			continue
		}
		if strings.TrimSpace(log) == "" {
			continue
		}
		logs = append(logs, cl.DeviceLog{Device: device, Log: log})
	}
	return logs
}
