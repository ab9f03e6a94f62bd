package worker_test

import (
	"sync/atomic"
	"testing"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	pool := worker.NewPool(3, 8)

	var ran atomic.Int64
	for i := 0; i < 50; i++ {
		pool.Submit(func() { ran.Add(1) })
	}
	pool.Close()

	if got := ran.Load(); got != 50 {
		t.Errorf("ran %d jobs, want 50", got)
	}
}

func TestClose_WaitsForInFlightJobs(t *testing.T) {
	pool := worker.NewPool(1, 1)

	done := false
	release := make(chan struct{})
	pool.Submit(func() {
		<-release
		done = true
	})

	close(release)
	pool.Close()

	if !done {
		t.Error("Close returned before the in-flight job finished")
	}
}
