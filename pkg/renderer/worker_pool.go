package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/dquist/go-mesh-raytracer/pkg/core"
)

// rowTask represents one scanline of work for the worker pool
type rowTask struct {
	y      int         // Scanline index
	pixels []core.Vec3 // Destination row, owned exclusively by this task
}

// workerPool fans per-pixel computation out across a fixed set of
// goroutines. Workers share the raytracer's read-only camera, world and
// config and write into disjoint row buffers, so the computation phase needs
// no locking; the caller reassembles rows into scanline order after wait.
type workerPool struct {
	raytracer  *RayTracer
	tasks      chan rowTask
	numWorkers int
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers, or one
// per CPU when numWorkers <= 0
func newWorkerPool(rt *RayTracer, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		raytracer:  rt,
		tasks:      make(chan rowTask, rt.config.Height),
		numWorkers: numWorkers,
	}
}

// start launches the workers. Each worker owns its own random generator;
// no generator state is ever shared across goroutines.
func (wp *workerPool) start(seed int64) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(rand.New(rand.NewSource(seed + int64(i))))
	}
}

// run is the main worker loop
func (wp *workerPool) run(random *rand.Rand) {
	defer wp.wg.Done()

	for task := range wp.tasks {
		for x := range task.pixels {
			task.pixels[x] = wp.raytracer.generatePixel(x, task.y, random)
		}
	}
}

// submit queues one scanline for rendering
func (wp *workerPool) submit(task rowTask) {
	wp.tasks <- task
}

// wait closes the task queue and blocks until all workers drain it
func (wp *workerPool) wait() {
	close(wp.tasks)
	wp.wg.Wait()
}
