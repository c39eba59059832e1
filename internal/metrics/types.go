// Package metrics acquires point-in-time snapshots of host system metrics.
// A Snapshot is constructed fresh on every acquisition and never mutated
// afterwards; callers derive display values from it without sharing it
// across cycles.
package metrics

// ProcessInfo describes one running process at snapshot time.
type ProcessInfo struct {
	PID    int32  `json:"pid"`
	Name   string `json:"name"`
	Memory uint64 `json:"memory_bytes"` // resident set size in bytes
}

// Snapshot is one fully-populated read of all system metrics at a single
// instant. Identity fields are guaranteed non-empty and CoreCount positive:
// the provider fails the whole acquisition rather than return a partial
// snapshot.
type Snapshot struct {
	SystemName    string `json:"system_name"`
	HostName      string `json:"host_name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`

	CoreCount   int     `json:"core_count"`   // physical cores
	TotalMemory uint64  `json:"total_memory"` // bytes
	UsedMemory  uint64  `json:"used_memory"`  // bytes
	CPUPercent  float64 `json:"cpu_percent"`  // may transiently exceed 100 on multi-core bursts

	// Processes preserves the order the OS returned them in; display
	// ranking is imposed by the renderer, not here.
	Processes []ProcessInfo `json:"processes"`
}

// Provider acquires snapshots. Acquire blocks until the underlying OS query
// completes and must perform a full refresh of every subsystem on each call;
// nothing is cached between calls.
type Provider interface {
	Acquire() (*Snapshot, error)
}
