//go:build darwin

package linux

import (
	"os"
	"testing"
)

func TestReadProcSmapsRollup(t *testing.T) {
	if _, err := ReadProcSmapsRollup(os.Getpid()); err == nil {
		t.Error("ReadProcSmapsRollup should have failed on Darwin")
	}
}
