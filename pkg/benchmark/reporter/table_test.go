package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableReporter_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := NewTableReporter(buf, false)

	require.NoError(t, rep.Report(sampleResults()))
	output := buf.String()

	assert.Contains(t, output, "Benchmark Results")
	assert.Contains(t, output, "Workload")
	assert.Contains(t, output, "sum_xor")
	assert.Contains(t, output, "prime_trial")
	assert.Contains(t, output, "Workloads: 2")
	assert.Contains(t, output, "12.846 ms")
	assert.NotContains(t, output, "\033[", "colors disabled means no ANSI escapes")
}

func TestTableReporter_Colors(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := NewTableReporter(buf, true)

	require.NoError(t, rep.Report(sampleResults()))

	assert.Contains(t, buf.String(), colorCyan)
	assert.Contains(t, buf.String(), colorBold)
}

func TestTableReporter_EmptyResults(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := NewTableReporter(buf, false)

	require.NoError(t, rep.Report(nil))
	assert.Contains(t, buf.String(), "Workloads: 0")
}

func TestCenterString(t *testing.T) {
	assert.Equal(t, "  ab", centerString("ab", 6))
	assert.Equal(t, "abcdef", centerString("abcdef", 4))

	centered := centerString("title", 11)
	assert.Equal(t, 3, len(centered)-len(strings.TrimLeft(centered, " ")))
}
