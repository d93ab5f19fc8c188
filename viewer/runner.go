package viewer

import "sync"

// FrameTask is work handed to the main thread to run between frames, such
// as attaching a texture that finished decoding on a background goroutine.
// The core render stays single-threaded: tasks never run during a frame.
type FrameTask func()

type FrameRunner struct {
	mu    sync.Mutex
	tasks []FrameTask
}

func NewFrameRunner() *FrameRunner {
	return &FrameRunner{}
}

// Schedule queues a task from any goroutine.
func (r *FrameRunner) Schedule(task FrameTask) {
	r.mu.Lock()
	r.tasks = append(r.tasks, task)
	r.mu.Unlock()
}

// Drain runs all queued tasks in FIFO order on the calling goroutine.
// The viewer calls it at the top of each frame.
func (r *FrameRunner) Drain() {
	r.mu.Lock()
	tasks := r.tasks
	r.tasks = nil
	r.mu.Unlock()
	for _, task := range tasks {
		task()
	}
}

func (r *FrameRunner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
