package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/Vazpera/supermarket/internal/errors"
	"github.com/Vazpera/supermarket/internal/logger"
)

// SystemProvider reads metrics from the local host via gopsutil.
// Every Acquire re-queries the OS from scratch.
type SystemProvider struct {
	log logger.Logger
}

// NewSystemProvider creates a provider for the local host.
func NewSystemProvider(log logger.Logger) *SystemProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &SystemProvider{log: log}
}

// Acquire queries CPU, memory, the process table, and host identity, and
// returns them as one snapshot. A missing identity field or zero core count
// fails the whole acquisition: the dashboard has no degraded display for
// partial identity, so a partial snapshot is worse than none.
func (p *SystemProvider) Acquire() (*Snapshot, error) {
	info, err := host.Info()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read host information",
			"Check that /proc is mounted and readable.")
	}

	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read CPU utilization", "")
	}

	cores, err := cpu.Counts(false)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read physical core count", "")
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read memory statistics", "")
	}

	procs, err := process.Processes()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Failed to read the process table", "")
	}

	snap := &Snapshot{
		SystemName:    info.Platform,
		HostName:      info.Hostname,
		OSVersion:     info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		CoreCount:     cores,
		TotalMemory:   vm.Total,
		UsedMemory:    vm.Used,
		CPUPercent:    percents[0],
		Processes:     make([]ProcessInfo, 0, len(procs)),
	}

	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			// Process exited between listing and inspection; the table
			// is a ranking, not an audit, so skip it.
			p.log.Debug("skipping pid %d: %v", proc.Pid, err)
			continue
		}
		memInfo, err := proc.MemoryInfo()
		if err != nil || memInfo == nil {
			p.log.Debug("skipping pid %d: no memory info", proc.Pid)
			continue
		}
		snap.Processes = append(snap.Processes, ProcessInfo{
			PID:    proc.Pid,
			Name:   name,
			Memory: memInfo.RSS,
		})
	}

	if err := Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Validate enforces the required-field policy: every identity string must be
// present and the core count positive. Absence is fatal, not a blank field.
func Validate(s *Snapshot) error {
	required := []struct {
		field string
		value string
	}{
		{"system name", s.SystemName},
		{"host name", s.HostName},
		{"OS version", s.OSVersion},
		{"kernel version", s.KernelVersion},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.New(errors.ErrProvider,
				fmt.Sprintf("Host reported no %s", r.field),
				"This host does not expose the identity fields the dashboard requires.")
		}
	}
	if s.CoreCount <= 0 {
		return errors.New(errors.ErrProvider,
			"Host reported no physical core count",
			"This host does not expose the identity fields the dashboard requires.")
	}
	return nil
}
