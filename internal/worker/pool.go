package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/studyvault/backend/internal/logger"
)

// Job is a unit of background work, typically a heat-map recomputation.
type Job interface {
	Run(context.Context) error
	Name() string
}

// Pool runs jobs on a fixed number of goroutines fed from a bounded queue.
type Pool struct {
	queue   chan Job
	wg      sync.WaitGroup
	size    int
	cancel  context.CancelFunc
	log     *logger.Logger
	started bool
	mu      sync.Mutex
}

func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 32
	}
	log := logger.Default().WithPrefix("worker-pool")
	log.Debug("creating worker pool with %d workers and queue size %d", workers, queueSize)
	return &Pool{
		queue: make(chan Job, queueSize),
		size:  workers,
		log:   log,
	}
}

// Start launches the workers. Calling Start twice is a no-op.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.log.Info("starting worker pool with %d workers", p.size)

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.work(ctx, i+1)
	}
}

func (p *Pool) work(ctx context.Context, id int) {
	defer p.wg.Done()
	workerLog := p.log.WithField("worker_id", id)
	workerLog.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			workerLog.Debug("worker shutting down (context cancelled)")
			return
		case job, ok := <-p.queue:
			if !ok {
				workerLog.Debug("worker shutting down (queue closed)")
				return
			}
			p.runJob(ctx, workerLog, job)
		}
	}
}

func (p *Pool) runJob(ctx context.Context, workerLog *logger.Logger, job Job) {
	jobLog := workerLog.WithField("job", job.Name())
	jobLog.Debug("starting job")
	start := time.Now()

	// Jobs read their logger back out of the context.
	jobCtx := logger.NewContext(ctx, jobLog)

	if err := job.Run(jobCtx); err != nil {
		jobLog.Error("job failed after %v: %v", time.Since(start), err)
		return
	}
	jobLog.Info("job completed in %v", time.Since(start))
}

func (p *Pool) Stop() {
	p.log.Info("stopping worker pool")
	if p.cancel != nil {
		p.cancel()
	}
	close(p.queue)
	p.wg.Wait()
	p.log.Info("worker pool stopped")
}

// Submit enqueues a job without blocking. A full queue is an error so callers
// can decide whether dropping the job matters.
func (p *Pool) Submit(job Job) error {
	p.log.Debug("submitting job: %s", job.Name())
	select {
	case p.queue <- job:
		return nil
	default:
		return fmt.Errorf("worker queue full, dropping job %s", job.Name())
	}
}

// Pending returns the number of queued jobs that have not been picked up yet.
func (p *Pool) Pending() int {
	return len(p.queue)
}
