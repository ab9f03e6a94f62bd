package worker

import "sync"

// Pool runs submitted jobs on a fixed number of goroutines. It bounds how
// many LLM generation calls run at once.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

// NewPool starts workerCount workers sharing a buffered job queue.
func NewPool(workerCount, bufferSize int) *Pool {
	p := &Pool{
		jobs: make(chan func(), bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Submit enqueues a job. Blocks when the queue is full.
func (p *Pool) Submit(job func()) {
	p.jobs <- job
}

// Close stops accepting jobs and waits for in-flight ones to finish.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
