package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vazpera/supermarket/internal/errors"
	"github.com/Vazpera/supermarket/internal/metrics"
)

func fakeSnapshot() *metrics.Snapshot {
	return &metrics.Snapshot{
		SystemName:    "Test OS",
		HostName:      "test-host",
		OSVersion:     "1.0",
		KernelVersion: "1.0.0",
		CoreCount:     4,
		TotalMemory:   1000,
		UsedMemory:    500,
		CPUPercent:    25.0,
		Processes: []metrics.ProcessInfo{
			{PID: 1, Name: "init", Memory: 100},
		},
	}
}

func TestFakeProvider_TracksAcquireCalls(t *testing.T) {
	provider := NewFakeProvider(fakeSnapshot())

	for i := 1; i <= 3; i++ {
		_, err := provider.Acquire()
		require.NoError(t, err)
		assert.Equal(t, i, provider.AcquireCalls)
	}
}

func TestFakeProvider_ReturnsFreshCopies(t *testing.T) {
	provider := NewFakeProvider(fakeSnapshot())

	first, err := provider.Acquire()
	require.NoError(t, err)
	second, err := provider.Acquire()
	require.NoError(t, err)

	require.NotSame(t, first, second)
	first.Processes[0].Name = "mutated"
	assert.Equal(t, "init", second.Processes[0].Name,
		"snapshots must not share process slices across cycles")
}

func TestFakeProvider_Err(t *testing.T) {
	provider := NewFakeProvider(fakeSnapshot())
	provider.Err = errors.New(errors.ErrProvider, "Host reported no kernel version", "")

	_, err := provider.Acquire()

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProvider))
}

func TestFakeProvider_FailAfter(t *testing.T) {
	provider := NewFakeProvider(fakeSnapshot())
	provider.Err = errors.New(errors.ErrProvider, "boom", "")
	provider.FailAfter = 2

	_, err := provider.Acquire()
	require.NoError(t, err)
	_, err = provider.Acquire()
	require.NoError(t, err)
	_, err = provider.Acquire()
	require.Error(t, err, "calls after FailAfter should fail")
}
