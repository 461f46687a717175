package memsnap_test

import (
	"os"
	"testing"
	"time"

	"github.com/memsnap/memsnap"
	"github.com/memsnap/memsnap/snaptest"
)

func TestCollector(t *testing.T) {
	h := &snaptest.Handler{}

	c := memsnap.NewCollectorWith(memsnap.CollectorConfig{
		Handler:         h,
		CollectInterval: 100 * time.Microsecond,
	})

	// Let the collector do a few runs.
	time.Sleep(10 * time.Millisecond)
	c.Stop()

	snapshots := h.Snapshots()

	if len(snapshots) == 0 {
		t.Error("no snapshots were reported by the collector")
	}

	for _, snap := range snapshots {
		if snap.Pid() != os.Getpid() {
			t.Error("bad pid on collected snapshot:", snap.Pid())
		}
	}
}

func TestCollectorSnapshotOverride(t *testing.T) {
	h := &snaptest.Handler{}

	c := memsnap.NewCollectorWith(memsnap.CollectorConfig{
		Handler:         h,
		Pid:             42,
		CollectInterval: 100 * time.Microsecond,
		Snapshot: func(pid int) (*memsnap.Snapshot, error) {
			return memsnap.NewWith(fixtureConfig(pid))
		},
	})

	time.Sleep(10 * time.Millisecond)
	c.Stop()

	for _, snap := range h.Snapshots() {
		if snap.Pid() != 42 {
			t.Error("bad pid on collected snapshot:", snap.Pid())
		}
		if snap.Total() != 1300*1024 {
			t.Error("bad total on collected snapshot:", snap.Total())
		}
	}
}

func TestCollectorStop(t *testing.T) {
	c := memsnap.NewCollector(nil)

	c.Stop()
	c.Stop()
}
