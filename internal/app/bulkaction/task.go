package bulkaction

import "sync"

// Task is a bulk action running in the background.
type Task struct {
	Kind Kind

	done   chan struct{}
	mu     sync.Mutex
	report Report
	err    error
}

func newTask(k Kind) *Task {
	t := &Task{Kind: k, done: make(chan struct{})}
	return t
}

func (t *Task) finish(r Report, err error) {
	t.mu.Lock()
	t.report = r
	t.err = err
	t.mu.Unlock()
	close(t.done)
}

// Done returns a channel which is closed when the task has completed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task has completed and returns its result.
func (t *Task) Wait() (Report, error) {
	<-t.done
	return t.Result()
}

// Result returns the report and error of a completed task.
// The result is empty while the task is still running.
func (t *Task) Result() (Report, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report, t.err
}
