//go:build !linux

package memsnap

import "errors"

func collectDelayInfo(pid int) (DelayInfo, error) {
	return DelayInfo{}, errors.New("delay accounting requires the Linux taskstats interface")
}
