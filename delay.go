package memsnap

import "time"

// DelayInfo reports how long the kernel made a process wait on contended
// resources. SwapInDelay and FreePagesDelay are the memory-pressure signals;
// CPU and block I/O delays come with them from the same kernel interface.
type DelayInfo struct {
	CPUDelay       time.Duration
	BlockIODelay   time.Duration
	SwapInDelay    time.Duration
	FreePagesDelay time.Duration
}

// CollectDelayInfo returns delay accounting information for the process
// identified by pid. It requires Linux taskstats support and the privileges
// to open a Netlink socket.
func CollectDelayInfo(pid int) (DelayInfo, error) {
	return collectDelayInfo(pid)
}
