package metrics

import "runtime"

// MemorySnapshot holds a point-in-time reading of the Go runtime. Big-number
// runs allocate per term, so the TUI surfaces these alongside system stats.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	Sys         uint64 // total bytes obtained from OS
	NumGC       uint32 // number of completed GC cycles
	HeapObjects uint64 // number of allocated heap objects
	Goroutines  int    // current goroutine count
}

// MemoryCollector reads runtime statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current runtime statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
		Goroutines:  runtime.NumGoroutine(),
	}
}

// HeapAllocMB returns the heap in megabytes for display.
func (s MemorySnapshot) HeapAllocMB() float64 {
	return float64(s.HeapAlloc) / (1024 * 1024)
}
