package linux

import (
	"reflect"
	"testing"
)

func TestParseProcSmapsRollup(t *testing.T) {
	tests := []struct {
		name string
		text string
		proc ProcSmapsRollup
	}{
		{
			name: "empty input",
			text: "",
			proc: ProcSmapsRollup{},
		},
		{
			name: "typical rollup",
			text: `00400000-7ffd8bb55000 ---p 00000000 00:00 0                              [rollup]
Rss:             1200 kB
Pss:              653 kB
Shared_Clean:     844 kB
Shared_Dirty:      10 kB
Private_Clean:    216 kB
Private_Dirty:    140 kB
Referenced:      1100 kB
Swap:             100 kB
`,
			proc: ProcSmapsRollup{
				"Rss":           1200 * 1024,
				"Pss":           653 * 1024,
				"Shared_Clean":  844 * 1024,
				"Shared_Dirty":  10 * 1024,
				"Private_Clean": 216 * 1024,
				"Private_Dirty": 140 * 1024,
				"Referenced":    1100 * 1024,
				"Swap":          100 * 1024,
			},
		},
		{
			name: "repeated fields accumulate",
			text: "Rss: 1 kB\nRss: 2 kB\nRss: 3 kB",
			proc: ProcSmapsRollup{"Rss": 6 * 1024},
		},
		{
			name: "unit suffixes and case",
			text: "A: 1 bytes\nB: 1 KB\nC: 1 k\nD: 2 mB\nE: 1 megabytes\nF: 1 gb\nG: 1 G",
			proc: ProcSmapsRollup{
				"A": 1,
				"B": 1 << 10,
				"C": 1 << 10,
				"D": 2 << 20,
				"E": 1 << 20,
				"F": 1 << 30,
				"G": 1 << 30,
			},
		},
		{
			name: "decimal values round to bytes",
			text: "Rss: 0.5 kB\nPss: 1.2 kB",
			proc: ProcSmapsRollup{"Rss": 512, "Pss": 1229},
		},
		{
			name: "unknown fields are kept",
			text: "Pss_Dirty: 12 kB\nSomeFutureField: 4 kB",
			proc: ProcSmapsRollup{"Pss_Dirty": 12 * 1024, "SomeFutureField": 4 * 1024},
		},
		{
			name: "negative values are discarded",
			text: "Rss: -4 kB\nSwap: 8 kB",
			proc: ProcSmapsRollup{"Swap": 8 * 1024},
		},
		{
			name: "lines without a unit suffix are skipped",
			text: "THPeligible: 0\nVmFlags: rd ex mr\nRss: 4 kB",
			proc: ProcSmapsRollup{"Rss": 4 * 1024},
		},
		{
			name: "malformed values are skipped",
			text: "Rss: twelve kB\nSwap: 1 kB",
			proc: ProcSmapsRollup{"Swap": 1 * 1024},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			proc, err := ParseProcSmapsRollup(test.text)

			if err != nil {
				t.Error(err)
				return
			}

			if !reflect.DeepEqual(proc, test.proc) {
				t.Error(proc)
			}
		})
	}
}
