// Package memsnap reports a breakdown of a process's memory footprint from
// the kernel's aggregated memory mapping rollup.
package memsnap

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/memsnap/memsnap/linux"
)

// Config carries the configuration used by NewWith to construct snapshots.
type Config struct {
	// Pid is the process being measured, defaulting to the current process.
	Pid int

	// Platform is the operating system the snapshot is taken on, defaulting
	// to runtime.GOOS. Exposed so tests can exercise the unsupported path.
	Platform string

	// ReadFile abstracts the file system access, defaulting to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

func setConfigDefaults(config Config) Config {
	if config.Pid == 0 {
		config.Pid = os.Getpid()
	}

	if config.Platform == "" {
		config.Platform = runtime.GOOS
	}

	if config.ReadFile == nil {
		config.ReadFile = os.ReadFile
	}

	return config
}

// Supported reports whether the running platform exposes the memory rollup
// this package reads. Snapshots can be constructed either way; on an
// unsupported platform every metric reports -1.
func Supported() bool {
	return supportedPlatform(runtime.GOOS)
}

func supportedPlatform(platform string) bool {
	return strings.EqualFold(platform, "linux")
}

// Snapshot is a point-in-time breakdown of one process's memory usage.
//
// A snapshot performs a single read of the kernel rollup when constructed and
// never touches the file system again; accessors are pure arithmetic over the
// parsed counters and are safe for concurrent use.
//
// On platforms without the rollup, construction succeeds but every metric
// reports the sentinel -1, so polling code can stay platform-oblivious and
// branch on a negative value instead of handling an error per iteration.
type Snapshot struct {
	pid         int
	fields      linux.ProcSmapsRollup
	unsupported bool
}

// New takes a snapshot of the current process.
func New() (*Snapshot, error) {
	return NewWith(Config{})
}

// NewForPid takes a snapshot of the process identified by pid.
func NewForPid(pid int) (*Snapshot, error) {
	return NewWith(Config{Pid: pid})
}

// NewWith takes a snapshot configured by config.
//
// A missing rollup file is not an error: a process that already exited simply
// reports zero memory. Any other read failure is returned as is.
func NewWith(config Config) (*Snapshot, error) {
	config = setConfigDefaults(config)
	snap := &Snapshot{pid: config.Pid}

	if !supportedPlatform(config.Platform) {
		snap.unsupported = true
		return snap, nil
	}

	b, err := config.ReadFile(linux.ProcPath(config.Pid, "smaps_rollup"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		snap.fields = linux.ProcSmapsRollup{}
		return snap, nil
	case err != nil:
		return nil, err
	}

	fields, err := linux.ParseProcSmapsRollup(string(b))
	if err != nil {
		return nil, err
	}

	snap.fields = fields
	return snap, nil
}

// Pid returns the pid of the process the snapshot was taken from.
func (s *Snapshot) Pid() int {
	return s.pid
}
