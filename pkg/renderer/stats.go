package renderer

import "time"

// RenderStats summarizes one completed frame
type RenderStats struct {
	TotalTiles   int
	TotalPixels  int
	TotalSamples int
	Workers      int
	RenderTime   time.Duration
}

// ReportCallbacks notifies the host about render progress. Increment is
// invoked once per completed tile from the collection loop, never
// concurrently. Any callback may be nil.
type ReportCallbacks struct {
	Start     func(totalWork int)
	Increment func(doneWork, totalWork int)
	Done      func()
}
