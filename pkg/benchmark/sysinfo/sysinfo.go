// Package sysinfo gathers host facts for report metadata and diagnostics.
package sysinfo

import (
	"runtime"

	"cpubench/pkg/benchmark/types"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Collect probes the host best-effort. Probe failures leave the affected
// fields at their zero values; timing results never depend on any of this,
// so there is no error to surface.
func Collect() types.SystemInfo {
	info := types.SystemInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
		info.CPUMHz = cpus[0].Mhz
	}
	if count, err := cpu.Counts(true); err == nil {
		info.LogicalCores = count
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemoryTotal = vm.Total
	}

	return info
}
