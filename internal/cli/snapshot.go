package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/Vazpera/supermarket/internal/dashboard"
	"github.com/Vazpera/supermarket/internal/errors"
	"github.com/Vazpera/supermarket/internal/logger"
	"github.com/Vazpera/supermarket/internal/metrics"
	"github.com/Vazpera/supermarket/internal/ui"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshotJSON controls whether snapshot output is JSON or plain text
var snapshotJSON bool

// snapshotCmd prints one metrics snapshot without entering the TUI
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one metrics snapshot and exit",
	Long: `Acquire a single metrics snapshot and print it to stdout.

This exercises the same acquisition path as the dashboard without taking
over the terminal, which makes it usable from scripts and pipes.

Examples:
  supermarket snapshot
  supermarket snapshot --json | jq .cpu_percent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd, snapshotJSON)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "Emit the snapshot as JSON")
}

// snapshotDoc is the stable JSON shape emitted by 'snapshot --json'.
type snapshotDoc struct {
	SystemName    string       `json:"system_name"`
	HostName      string       `json:"host_name"`
	OSVersion     string       `json:"os_version"`
	KernelVersion string       `json:"kernel_version"`
	CoreCount     int          `json:"core_count"`
	TotalMemory   uint64       `json:"total_memory"`
	UsedMemory    uint64       `json:"used_memory"`
	MemoryPercent int          `json:"memory_percent"`
	CPUPercent    float64      `json:"cpu_percent"`
	TopProcesses  []processDoc `json:"top_processes"`
}

// processDoc is one ranked process in the JSON document.
type processDoc struct {
	PID     int32  `json:"pid"`
	Name    string `json:"name"`
	Memory  uint64 `json:"memory_bytes"`
	Percent int    `json:"percent"`
}

func snapshotCommand(cmd *cobra.Command, asJSON bool) error {
	provider := metrics.NewSystemProvider(logger.NewEnvLogger("[metrics]"))
	snap, err := provider.Acquire()
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(buildSnapshotDoc(snap), "", "  ")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrProvider,
				"Failed to encode snapshot as JSON", "")
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Println(formatSnapshot(snap))
	return nil
}

// buildSnapshotDoc derives the JSON document from a snapshot, using the
// same ranking and percentage rules as the dashboard.
func buildSnapshotDoc(snap *metrics.Snapshot) snapshotDoc {
	ranked := dashboard.RankProcesses(snap.Processes)
	top := make([]processDoc, len(ranked))
	for i, p := range ranked {
		top[i] = processDoc{
			PID:     p.PID,
			Name:    p.Name,
			Memory:  p.Memory,
			Percent: dashboard.ProcessPercent(p.Memory, snap.TotalMemory),
		}
	}

	return snapshotDoc{
		SystemName:    snap.SystemName,
		HostName:      snap.HostName,
		OSVersion:     snap.OSVersion,
		KernelVersion: snap.KernelVersion,
		CoreCount:     snap.CoreCount,
		TotalMemory:   snap.TotalMemory,
		UsedMemory:    snap.UsedMemory,
		MemoryPercent: dashboard.MemoryPercent(snap.UsedMemory, snap.TotalMemory, logger.Noop()),
		CPUPercent:    snap.CPUPercent,
		TopProcesses:  top,
	}
}

// formatSnapshot renders the plain-text snapshot: identity lines, a
// core/RAM summary, and the top processes table.
func formatSnapshot(snap *metrics.Snapshot) string {
	memPct := dashboard.MemoryPercent(snap.UsedMemory, snap.TotalMemory, logger.NewEnvLogger("[metrics]"))

	out := fmt.Sprintf(`System Name:    %s
Host Name:      %s
OS Version:     %s
Kernel Version: %s
Core Count:     %d
Total RAM:      %s
Used Memory:    %s (%d%%)
CPU Usage:      %s
`,
		snap.SystemName,
		snap.HostName,
		snap.OSVersion,
		snap.KernelVersion,
		snap.CoreCount,
		humanize.IBytes(snap.TotalMemory),
		humanize.IBytes(snap.UsedMemory),
		memPct,
		dashboard.CPULabel(snap.CPUPercent),
	)

	ranked := dashboard.RankProcesses(snap.Processes)
	if len(ranked) == 0 {
		return out
	}

	rows := make([][]string, len(ranked))
	for i, p := range ranked {
		rows[i] = []string{
			strconv.Itoa(int(p.PID)),
			p.Name,
			humanize.IBytes(p.Memory),
			fmt.Sprintf("%d%%", dashboard.ProcessPercent(p.Memory, snap.TotalMemory)),
		}
	}

	columns := []ui.TableColumn{
		{Title: "PID", Width: 8},
		{Title: "Name", Width: 28},
		{Title: "Memory", Width: 12},
		{Title: "Usage", Width: 6},
	}

	return out + "\n" + ui.RenderSimpleTable(columns, rows)
}
