package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/memsnap/memsnap"
	"github.com/memsnap/memsnap/linux"
	"github.com/segmentio/encoding/json"
)

func main() {
	var (
		pid     int
		unit    string
		jsonOut bool
		watch   time.Duration
		delay   bool
	)

	flag.IntVar(&pid, "pid", 0, "Process to inspect, defaulting to memsnap itself")
	flag.StringVar(&unit, "unit", "bytes", "Unit used to report values (bytes, kb, mb, gb)")
	flag.BoolVar(&jsonOut, "json", false, "Report snapshots as JSON objects, one per line")
	flag.DurationVar(&watch, "watch", 0, "Keep reporting at the given interval instead of exiting")
	flag.BoolVar(&delay, "delay", false, "Include kernel delay accounting (needs CAP_NET_RAW)")
	flag.Parse()

	if _, err := memsnap.ParseUnit(unit); err != nil {
		errorf("%s", err)
	}

	if pid == 0 {
		pid = os.Getpid()
	}

	print := func(_ time.Time, snap *memsnap.Snapshot) {
		r := makeReport(snap, unit, delay)

		if jsonOut {
			if err := json.NewEncoder(os.Stdout).Encode(r); err != nil {
				errorf("%s", err)
			}
		} else {
			printText(os.Stdout, r)
		}
	}

	if watch == 0 {
		snap, err := memsnap.NewForPid(pid)
		if err != nil {
			errorf("%s", err)
		}
		print(time.Now(), snap)
		return
	}

	c := memsnap.NewCollectorWith(memsnap.CollectorConfig{
		Pid:             pid,
		CollectInterval: watch,
		Handler:         memsnap.HandlerFunc(print),
	})
	defer c.Stop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	<-sigs
}

type report struct {
	Pid          int     `json:"pid"`
	Unit         string  `json:"unit"`
	Total        float64 `json:"total"`
	Resident     float64 `json:"resident"`
	Proportional float64 `json:"proportional"`
	Unique       float64 `json:"unique"`
	Shared       float64 `json:"shared"`
	Swap         float64 `json:"swap"`
	Referenced   float64 `json:"referenced"`

	VirtualSize *float64 `json:"virtual_size,omitempty"`

	CPUDelay       string `json:"cpu_delay,omitempty"`
	BlockIODelay   string `json:"blockio_delay,omitempty"`
	SwapInDelay    string `json:"swapin_delay,omitempty"`
	FreePagesDelay string `json:"freepages_delay,omitempty"`
}

func makeReport(snap *memsnap.Snapshot, unit string, delay bool) report {
	r := report{
		Pid:          snap.Pid(),
		Unit:         unit,
		Total:        metric(snap.TotalIn, unit),
		Resident:     metric(snap.ResidentIn, unit),
		Proportional: metric(snap.ProportionalIn, unit),
		Unique:       metric(snap.UniqueIn, unit),
		Shared:       metric(snap.SharedIn, unit),
		Swap:         metric(snap.SwapIn, unit),
		Referenced:   metric(snap.ReferencedIn, unit),
	}

	if memsnap.Supported() {
		if statm, err := linux.ReadProcStatm(snap.Pid()); err == nil {
			u, _ := memsnap.ParseUnit(unit)
			size := float64(statm.Size*uint64(os.Getpagesize())) / float64(u)
			r.VirtualSize = &size
		}
	}

	if delay {
		if info, err := memsnap.CollectDelayInfo(snap.Pid()); err == nil {
			r.CPUDelay = info.CPUDelay.String()
			r.BlockIODelay = info.BlockIODelay.String()
			r.SwapInDelay = info.SwapInDelay.String()
			r.FreePagesDelay = info.FreePagesDelay.String()
		} else {
			fmt.Fprintln(os.Stderr, "memsnap:", err)
		}
	}

	return r
}

func metric(f func(string) (float64, error), unit string) float64 {
	v, err := f(unit)
	if err != nil {
		errorf("%s", err)
	}
	return v
}

func printText(w io.Writer, r report) {
	fmt.Fprintf(w, "pid:          %d\n", r.Pid)
	fmt.Fprintf(w, "total:        %s\n", value(r.Total, r.Unit))
	fmt.Fprintf(w, "resident:     %s\n", value(r.Resident, r.Unit))
	fmt.Fprintf(w, "proportional: %s\n", value(r.Proportional, r.Unit))
	fmt.Fprintf(w, "unique:       %s\n", value(r.Unique, r.Unit))
	fmt.Fprintf(w, "shared:       %s\n", value(r.Shared, r.Unit))
	fmt.Fprintf(w, "swap:         %s\n", value(r.Swap, r.Unit))
	fmt.Fprintf(w, "referenced:   %s\n", value(r.Referenced, r.Unit))

	if r.VirtualSize != nil {
		fmt.Fprintf(w, "virtual:      %s\n", value(*r.VirtualSize, r.Unit))
	}

	if r.SwapInDelay != "" {
		fmt.Fprintf(w, "cpu delay:       %s\n", r.CPUDelay)
		fmt.Fprintf(w, "blockio delay:   %s\n", r.BlockIODelay)
		fmt.Fprintf(w, "swapin delay:    %s\n", r.SwapInDelay)
		fmt.Fprintf(w, "freepages delay: %s\n", r.FreePagesDelay)
	}
}

func value(v float64, unit string) string {
	if strings.EqualFold(unit, "bytes") {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}

func errorf(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "memsnap: "+msg+"\n", args...)
	os.Exit(1)
}
