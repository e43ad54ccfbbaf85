package sysinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	info := Collect()

	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Greater(t, info.NumCPU, 0)
}

func TestCollect_RuntimeFieldsStable(t *testing.T) {
	first := Collect()
	second := Collect()

	assert.Equal(t, first.OS, second.OS)
	assert.Equal(t, first.Arch, second.Arch)
	assert.Equal(t, first.NumCPU, second.NumCPU)
	assert.Equal(t, first.CPUModel, second.CPUModel)
}
