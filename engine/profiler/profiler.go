package profiler

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Stats summarizes the decode work recorded between Start and Stop.
type Stats struct {
	Models    int
	Triangles int
	Elapsed   time.Duration

	ModelsPerSecond    float64
	TrianglesPerSecond float64

	// HeapMB is the live heap at Stop; AllocMB is the cumulative allocation since Start.
	HeapMB  float64
	AllocMB float64

	// GCCount is the number of collections that ran since Start, MaxPause the longest of them.
	GCCount  uint32
	MaxPause time.Duration
}

// Profiler tracks decode throughput and memory statistics across a batch of model loads.
// Record is safe for concurrent use.
type Profiler struct {
	mu sync.Mutex

	models    int
	triangles int

	startTime       time.Time
	memStats        runtime.MemStats
	startGCCount    uint32
	startTotalAlloc uint64
}

// NewProfiler creates a new Profiler. The clock starts immediately; call Start to reset it.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	p := &Profiler{}
	p.Start()
	return p
}

// Start resets the counters and snapshots the memory statistics the batch is measured against.
func (p *Profiler) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	runtime.ReadMemStats(&p.memStats)
	p.models, p.triangles = 0, 0
	p.startGCCount = p.memStats.NumGC
	p.startTotalAlloc = p.memStats.TotalAlloc
	p.startTime = time.Now()
}

// Record adds completed work to the current batch.
//
// Parameters:
//   - models: the number of models decoded
//   - triangles: the number of triangles they produced
func (p *Profiler) Record(models, triangles int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.models += models
	p.triangles += triangles
}

// Stop computes the statistics of the batch since Start. The counters keep running,
// so Stop may be called repeatedly for cumulative figures.
//
// Returns:
//   - Stats: the batch statistics
func (p *Profiler) Stop() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Since(p.startTime)
	runtime.ReadMemStats(&p.memStats)

	s := Stats{
		Models:    p.models,
		Triangles: p.triangles,
		Elapsed:   elapsed,
		HeapMB:    float64(p.memStats.Alloc) / 1024 / 1024,
		AllocMB:   float64(p.memStats.TotalAlloc-p.startTotalAlloc) / 1024 / 1024,
		GCCount:   p.memStats.NumGC - p.startGCCount,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		s.ModelsPerSecond = float64(p.models) / secs
		s.TrianglesPerSecond = float64(p.triangles) / secs
	}

	// PauseNs is a circular buffer of the last 256 pauses.
	from := p.startGCCount
	if p.memStats.NumGC-from > 256 {
		from = p.memStats.NumGC - 256
	}
	for i := from; i < p.memStats.NumGC; i++ {
		if pause := time.Duration(p.memStats.PauseNs[i%256]); pause > s.MaxPause {
			s.MaxPause = pause
		}
	}
	return s
}

// Log writes the statistics as a single structured record.
//
// Parameters:
//   - logger: the destination logger
func (s Stats) Log(logger *slog.Logger) {
	logger.Info("decode profile",
		"models", s.Models,
		"triangles", s.Triangles,
		"elapsed", s.Elapsed,
		"models_per_sec", s.ModelsPerSecond,
		"triangles_per_sec", s.TrianglesPerSecond,
		"heap_mb", s.HeapMB,
		"alloc_mb", s.AllocMB,
		"gc", s.GCCount,
		"max_pause", s.MaxPause,
	)
}
