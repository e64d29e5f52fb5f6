package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool; the site uses it to push
// lead-notification mail off the request path.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// Submitted tasks queue up to n deep before Submit blocks.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop drains queued tasks before returning.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Sync is an inline Pool for tests: Submit runs the task immediately.
type Sync struct{}

func (Sync) Submit(t Task) {
	if t != nil {
		t()
	}
}

func (Sync) Stop() {}
