package inspect

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/cwbudde/ocltools/internal/cl"
)

var summaryHeader = []string{"Platform", "Platform Name", "Device", "Type", "Name", "Vendor", "Version"}

// Summary writes one table row per device.
func (in *Inspector) Summary(w io.Writer) error {
	var rows [][]string

	err := in.walk(func(index int, platform cl.PlatformID, devices []cl.DeviceID) error {
		platformName, err := cl.PlatformString(in.Runtime, platform, cl.PlatformName)
		if err != nil {
			return fmt.Errorf("CL_PLATFORM_NAME: %w", err)
		}

		for i, device := range devices {
			row := []string{strconv.Itoa(index), platformName, strconv.Itoa(i)}
			for _, attr := range summaryAttributes {
				value, err := attr.format(in.Runtime, device, attr.param)
				if err != nil {
					return fmt.Errorf("%s: %w", attr.name, err)
				}
				row = append(row, value)
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(summaryHeader)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	_, err = buf.WriteTo(w)
	return err
}

var summaryAttributes = []deviceAttribute{
	{"CL_DEVICE_TYPE", cl.DeviceType, deviceTypeValue},
	{"CL_DEVICE_NAME", cl.DeviceName, stringValue},
	{"CL_DEVICE_VENDOR", cl.DeviceVendor, stringValue},
	{"CL_DEVICE_VERSION", cl.DeviceVersion, stringValue},
}
