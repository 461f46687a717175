package linux

import (
	"math"
	"strconv"
	"strings"
)

// ProcSmapsRollup holds the aggregated memory mapping counters exposed by
// /proc/<pid>/smaps_rollup, keyed by field name with values in bytes. Field
// names are taken verbatim from the kernel (Rss, Pss, Shared_Clean, ...);
// names this package does not know about are accumulated all the same.
type ProcSmapsRollup map[string]int64

// ReadProcSmapsRollup returns the parsed memory rollup and an error, if any,
// for a PID.
func ReadProcSmapsRollup(pid int) (proc ProcSmapsRollup, err error) {
	defer func() { err = convertPanicToError(recover()) }()
	proc = parseProcSmapsRollup(readProcFile(pid, "smaps_rollup"))
	return
}

// ParseProcSmapsRollup parses the text content of a smaps_rollup file.
func ParseProcSmapsRollup(s string) (proc ProcSmapsRollup, err error) {
	defer func() { err = convertPanicToError(recover()) }()
	proc = parseProcSmapsRollup(s)
	return
}

func parseProcSmapsRollup(s string) ProcSmapsRollup {
	proc := make(ProcSmapsRollup)

	forEachProperty(s, func(name, val string) {
		value, unit := split(val, ' ')

		// The mapping range header and blank or unit-less lines carry no
		// counter, recognized by the missing unit suffix.
		scale, ok := byteMultiplier(unit)
		if !ok {
			return
		}

		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return
		}

		// Kernel counters are never negative, a negative value means the
		// line is malformed and must not corrupt the sum.
		if n := int64(math.Round(v * float64(scale))); n >= 0 {
			proc[name] += n
		}
	})

	return proc
}

func byteMultiplier(unit string) (int64, bool) {
	switch strings.ToLower(unit) {
	case "bytes":
		return 1, true
	case "kilobytes", "kb", "k":
		return 1 << 10, true
	case "megabytes", "mb", "m":
		return 1 << 20, true
	case "gigabytes", "gb", "g":
		return 1 << 30, true
	}
	return 0, false
}
