package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// tileTask is one tile rendering task for the worker pool
type tileTask struct {
	tile *Tile
}

// tileResult is the completion record for one tile
type tileResult struct {
	tileID  int
	samples int
}

// workerPool renders tiles in parallel. Each worker takes one tile at a
// time and processes it fully before taking the next; the scene is
// read-only during rendering, so tiles need no locks.
type workerPool struct {
	taskQueue   chan tileTask
	resultQueue chan tileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool sized to numWorkers (0 = CPU count)
func newWorkerPool(numWorkers, taskCount int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		taskQueue:   make(chan tileTask, taskCount),
		resultQueue: make(chan tileResult, taskCount),
		numWorkers:  numWorkers,
	}
}

// start launches the workers; renderTile runs once per task
func (wp *workerPool) start(renderTile func(tile *Tile, random *rand.Rand) int) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				// Per-tile deterministic seed keeps renders repeatable
				// regardless of scheduling order
				random := rand.New(rand.NewSource(int64(task.tile.ID) + 1))
				samples := renderTile(task.tile, random)
				wp.resultQueue <- tileResult{tileID: task.tile.ID, samples: samples}
			}
		}()
	}
}

// submit queues one tile
func (wp *workerPool) submit(tile *Tile) {
	wp.taskQueue <- tileTask{tile: tile}
}

// stop closes the task queue and waits for in-flight tiles to finish
func (wp *workerPool) stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}
