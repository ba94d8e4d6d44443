package bn

import "sync/atomic"

var (
	allocs      atomic.Int64
	frees       atomic.Int64
	doubleFrees atomic.Int64
)

// Stats is a snapshot of the process-wide allocation counters.
type Stats struct {
	Allocs      int64
	Frees       int64
	DoubleFrees int64
}

// ReadStats returns the current counters.
func ReadStats() Stats {
	return Stats{
		Allocs:      allocs.Load(),
		Frees:       frees.Load(),
		DoubleFrees: doubleFrees.Load(),
	}
}

// Since returns the counter movement between base and s.
func (s Stats) Since(base Stats) Stats {
	return Stats{
		Allocs:      s.Allocs - base.Allocs,
		Frees:       s.Frees - base.Frees,
		DoubleFrees: s.DoubleFrees - base.DoubleFrees,
	}
}

// Live returns the number of values allocated and not yet released.
func (s Stats) Live() int64 {
	return s.Allocs - s.Frees
}

func countAlloc()      { allocs.Add(1) }
func countFree()       { frees.Add(1) }
func countDoubleFree() { doubleFrees.Add(1) }
