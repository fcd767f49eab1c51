package internal

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Status is a point-in-time snapshot of the running process, shown on the
// system status screen.
type Status struct {
	PID           int32
	State         string
	CPUPercent    float64
	MemoryPercent float32
	Uptime        time.Duration
}

// Snapshot inspects the current process.
func Snapshot() (Status, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcess(pid)
	if err != nil {
		return Status{}, err
	}
	state, err := p.Status()
	if err != nil {
		return Status{}, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return Status{}, err
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		return Status{}, err
	}
	created, err := p.CreateTime()
	if err != nil {
		return Status{}, err
	}
	return Status{
		PID:           pid,
		State:         state,
		CPUPercent:    cpu,
		MemoryPercent: ram,
		Uptime:        time.Since(time.UnixMilli(created)),
	}, nil
}
