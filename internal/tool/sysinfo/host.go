package sysinfo

import (
	"context"
	"os"
	"os/user"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CPU describes one logical processor.
type CPU struct {
	Model string
	// Mhz is the nominal clock rate in megahertz.
	Mhz float64
}

// HostInfo reports host environment facts.
type HostInfo interface {
	EOL() string
	CPUs(ctx context.Context) ([]CPU, error)
	HomeDir() (string, error)
	Username() (string, error)
	Architecture() string
}

// OSHostInfo reads host facts from the running system.
type OSHostInfo struct {
	goos   string
	goarch string
}

// NewOSHostInfo creates a new OSHostInfo for the running platform.
func NewOSHostInfo() *OSHostInfo {
	return &OSHostInfo{goos: runtime.GOOS, goarch: runtime.GOARCH}
}

// EOL returns the platform line terminator.
func (h *OSHostInfo) EOL() string {
	if h.goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// CPUs returns one entry per logical processor.
func (h *OSHostInfo) CPUs(ctx context.Context) ([]CPU, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil || logical <= 0 {
		logical = runtime.NumCPU()
	}

	// Some platforms report one entry per package with a core count
	cpus := make([]CPU, 0, logical)
	for _, info := range infos {
		cores := 1
		if len(infos) < logical && info.Cores > 1 {
			cores = int(info.Cores)
		}
		for range cores {
			cpus = append(cpus, CPU{Model: info.ModelName, Mhz: info.Mhz})
		}
	}
	if len(cpus) == 0 {
		for range logical {
			cpus = append(cpus, CPU{})
		}
	}
	return cpus, nil
}

func (h *OSHostInfo) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// Username returns the login name of the current OS user.
func (h *OSHostInfo) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Architecture returns the CPU architecture the binary was built for.
func (h *OSHostInfo) Architecture() string {
	return h.goarch
}
