package main

import (
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	BoardWidth  int
	BoardHeight int
	Algorithm   string
	Fill        float64

	// Results
	TotalBoards    int64
	TotalSearches  int64
	TotalLandings  int64
	TotalTime      time.Duration
	SearchTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := make([]time.Duration, len(s.Samples))
	copy(sorted, s.Samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	s.P99 = sorted[len(sorted)*99/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Placement Search Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.BoardWidth}}x{{.BoardHeight}}
- **Algorithm:** {{.Algorithm}}
- **Garbage Fill:** {{.Fill}}

## Performance Results
- **Boards Generated:** {{.TotalBoards}}
- **Total Searches:** {{.TotalSearches}}
- **Total Landings Found:** {{.TotalLandings}}
- **Total Test Time:** {{.TotalTime}}
- **Search Time:**
  - **Avg:** {{.SearchTime.Avg}}
  - **Min:** {{.SearchTime.Min}}
  - **Max:** {{.SearchTime.Max}}
  - **P99:** {{.SearchTime.P99}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
