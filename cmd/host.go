package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/host"
	"github.com/olekukonko/tablewriter"
)

// Log a summary of the host before a render starts.
func logHostInfo(workers int) {
	info, err := host.Detect()
	if err != nil {
		logger.Warningf("unable to query host information: %v", err)
	}
	if workers > 0 {
		info.Workers = workers
	}
	logger.Infof("host information\n%s", hostTable(info))
}

func hostTable(info host.Info) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"CPU", "Clock", "Logical cores", "Memory", "Render bands"})
	table.Append([]string{
		info.CPUModel,
		fmt.Sprintf("%.2f GHz", info.ClockGHz),
		fmt.Sprintf("%d", info.LogicalCores),
		fmt.Sprintf("%d GB", info.TotalMemoryGB),
		fmt.Sprintf("%d", info.Workers),
	})
	table.Render()
	return buf.String()
}
