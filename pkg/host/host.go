package host

import (
	"errors"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var errNoCPUInfo = errors.New("host: no CPU information available")

// Info summarizes the machine a render runs on
type Info struct {
	CPUModel      string  `json:"cpuModel"`
	ClockGHz      float64 `json:"clockGHz"`
	LogicalCores  int     `json:"logicalCores"`
	TotalMemoryGB uint64  `json:"totalMemoryGB"`
	Workers       int     `json:"workers"` // Default number of render bands
}

// Detect queries the CPU and memory of the current host
func Detect() (Info, error) {
	info := Info{Workers: runtime.GOMAXPROCS(0)}

	cpuInfo, err := cpu.Info()
	if err != nil {
		return info, err
	}
	if len(cpuInfo) == 0 {
		return info, errNoCPUInfo
	}
	info.CPUModel = cpuInfo[0].ModelName
	info.ClockGHz = cpuInfo[0].Mhz / 1000

	cores, err := cpu.Counts(true)
	if err != nil {
		return info, err
	}
	info.LogicalCores = cores

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return info, err
	}
	info.TotalMemoryGB = memInfo.Total / (1024 * 1024 * 1024)

	return info, nil
}
