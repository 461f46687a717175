//go:build linux

package linux

import (
	"os"
	"testing"
)

func TestReadProcSmapsRollup(t *testing.T) {
	proc, err := ReadProcSmapsRollup(os.Getpid())

	if err != nil {
		t.Error("ReadProcSmapsRollup:", err)
		return
	}

	if proc["Rss"] == 0 {
		t.Error("ReadProcSmapsRollup: Rss cannot be zero for a live process")
	}
}
