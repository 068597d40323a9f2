// Package inspect enumerates OpenCL platforms and devices and renders their
// attributes.
package inspect

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/ocltools/internal/cl"
)

// Inspector renders the platform and device report.
type Inspector struct {
	Runtime cl.Runtime
	// Verbose adds the extended device attribute set.
	Verbose bool
}

// Report writes one block per platform with nested device blocks. Output is
// written only if every query succeeds.
func (in *Inspector) Report(w io.Writer) error {
	var buf bytes.Buffer

	err := in.walk(func(_ int, platform cl.PlatformID, devices []cl.DeviceID) error {
		if err := in.writePlatform(&buf, platform); err != nil {
			return err
		}
		for _, device := range devices {
			if err := in.writeDevice(&buf, device); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}

// walk visits every platform with its device list. It fails when the host
// has no platform, or when no platform has a device.
func (in *Inspector) walk(visit func(index int, platform cl.PlatformID, devices []cl.DeviceID) error) error {
	platforms, err := in.Runtime.Platforms()
	if err != nil {
		return fmt.Errorf("enumerate platforms: %w", err)
	}
	if len(platforms) == 0 {
		return cl.ErrNoPlatform
	}
	slog.Debug("Enumerated platforms", "platforms", len(platforms))

	total := 0
	for i, platform := range platforms {
		devices, err := in.Runtime.Devices(platform)
		if err != nil {
			return fmt.Errorf("enumerate devices of platform %s: %w", formatHandle(uintptr(platform)), err)
		}
		slog.Debug("Enumerated devices", "platform", i, "devices", len(devices))

		if err := visit(i, platform, devices); err != nil {
			return err
		}
		total += len(devices)
	}

	if total == 0 {
		return cl.ErrNoDevice
	}
	return nil
}

func (in *Inspector) writePlatform(buf *bytes.Buffer, platform cl.PlatformID) error {
	buf.WriteString("---- platform\n")
	writeLine(buf, "ID", formatHandle(uintptr(platform)))

	for _, attr := range platformAttributes {
		value, err := cl.PlatformString(in.Runtime, platform, attr.param)
		if err != nil {
			return fmt.Errorf("%s: %w", attr.name, err)
		}
		writeLine(buf, attr.name, value)
	}
	return nil
}

func (in *Inspector) writeDevice(buf *bytes.Buffer, device cl.DeviceID) error {
	buf.WriteString("-- device\n")
	writeLine(buf, "ID", formatHandle(uintptr(device)))

	if err := in.writeAttributes(buf, device, basicDeviceAttributes); err != nil {
		return err
	}
	if !in.Verbose {
		return nil
	}
	return in.writeAttributes(buf, device, verboseDeviceAttributes)
}

func (in *Inspector) writeAttributes(buf *bytes.Buffer, device cl.DeviceID, attrs []deviceAttribute) error {
	for _, attr := range attrs {
		value, err := attr.format(in.Runtime, device, attr.param)
		if err != nil {
			return fmt.Errorf("%s: %w", attr.name, err)
		}
		writeLine(buf, attr.name, value)
	}
	return nil
}

func writeLine(buf *bytes.Buffer, name, value string) {
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteByte('\n')
}
