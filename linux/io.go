package linux

import (
	"fmt"
	"os"
)

func readFile(path string) string {
	b, e := os.ReadFile(path)
	check(e)
	return string(b)
}

func readProcFile(who interface{}, what string) string {
	return readFile(ProcPath(who, what))
}

// ProcPath returns the path of a /proc entry for a process. The who argument
// is formatted into the path, so it accepts both a pid and a name like "self".
func ProcPath(who interface{}, what string) string {
	return fmt.Sprintf("/proc/%v/%s", who, what)
}
