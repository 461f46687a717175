package memsnap

import "strings"

// Unit is a memory unit accepted by the snapshot accessors. Its numeric value
// is the number of bytes the unit represents.
type Unit float64

const (
	Bytes Unit = 1 << (10 * iota)
	Kilobytes
	Megabytes
	Gigabytes
)

// InvalidUnitError is the error returned when a caller requests a unit token
// this package does not know about.
type InvalidUnitError struct {
	Unit string
}

func (e *InvalidUnitError) Error() string {
	return "invalid memory unit: " + e.Unit
}

// ParseUnit maps a unit token to its Unit. Tokens are matched
// case-insensitively and accept the short aliases kb/k, mb/m and gb/g.
// Unknown tokens return an InvalidUnitError: unit selection is part of this
// package's contract with its callers and is validated strictly, unlike the
// parsing of kernel data which tolerates unknown input.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "bytes":
		return Bytes, nil
	case "kilobytes", "kb", "k":
		return Kilobytes, nil
	case "megabytes", "mb", "m":
		return Megabytes, nil
	case "gigabytes", "gb", "g":
		return Gigabytes, nil
	}
	return 0, &InvalidUnitError{Unit: s}
}
