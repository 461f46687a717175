package memsnap

// Total returns resident plus swapped memory, in bytes.
func (s *Snapshot) Total() int64 { return s.sum("Rss", "Swap") }

// Resident returns the resident set size (RSS), in bytes.
func (s *Snapshot) Resident() int64 { return s.sum("Rss") }

// Proportional returns the proportional set size (PSS), in bytes: resident
// memory with shared pages divided among the processes mapping them.
func (s *Snapshot) Proportional() int64 { return s.sum("Pss") }

// Unique returns the unique set size (USS), in bytes: resident memory not
// shared with any other process.
func (s *Snapshot) Unique() int64 { return s.sum("Private_Clean", "Private_Dirty") }

// Shared returns memory mapped by more than one process, in bytes.
func (s *Snapshot) Shared() int64 { return s.sum("Shared_Clean", "Shared_Dirty") }

// Swap returns memory paged out to backing store, in bytes.
func (s *Snapshot) Swap() int64 { return s.sum("Swap") }

// Referenced returns recently accessed memory, in bytes.
func (s *Snapshot) Referenced() int64 { return s.sum("Referenced") }

// Field returns the accumulated byte count of a raw rollup field, so callers
// can read counters that have no derived metric (e.g. "Anonymous"). Absent
// fields read as zero.
func (s *Snapshot) Field(name string) int64 { return s.sum(name) }

// TotalIn behaves like Total converted to unit.
func (s *Snapshot) TotalIn(unit string) (float64, error) { return s.convert(s.Total(), unit) }

// ResidentIn behaves like Resident converted to unit.
func (s *Snapshot) ResidentIn(unit string) (float64, error) { return s.convert(s.Resident(), unit) }

// ProportionalIn behaves like Proportional converted to unit.
func (s *Snapshot) ProportionalIn(unit string) (float64, error) {
	return s.convert(s.Proportional(), unit)
}

// UniqueIn behaves like Unique converted to unit.
func (s *Snapshot) UniqueIn(unit string) (float64, error) { return s.convert(s.Unique(), unit) }

// SharedIn behaves like Shared converted to unit.
func (s *Snapshot) SharedIn(unit string) (float64, error) { return s.convert(s.Shared(), unit) }

// SwapIn behaves like Swap converted to unit.
func (s *Snapshot) SwapIn(unit string) (float64, error) { return s.convert(s.Swap(), unit) }

// ReferencedIn behaves like Referenced converted to unit.
func (s *Snapshot) ReferencedIn(unit string) (float64, error) {
	return s.convert(s.Referenced(), unit)
}

func (s *Snapshot) sum(fields ...string) int64 {
	if s.unsupported {
		return -1
	}

	var total int64
	for _, name := range fields {
		total += s.fields[name]
	}
	return total
}

func (s *Snapshot) convert(value int64, unit string) (float64, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return 0, err
	}

	// The unsupported-platform sentinel passes through undivided.
	if value < 0 {
		return -1, nil
	}

	return float64(value) / float64(u), nil
}
