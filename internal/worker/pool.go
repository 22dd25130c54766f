// Package worker runs independent render jobs on a fixed number of
// goroutines. Jobs are queued through a buffered channel and Stop waits for
// the queue to drain.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// ErrPoolStopped is returned by Enqueue once the pool is shutting down.
var ErrPoolStopped = errors.New("worker pool stopped")

var (
	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_render_jobs_processed_total",
		Help: "Total number of render jobs completed",
	})

	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_render_jobs_failed_total",
		Help: "Total number of render jobs that returned an error",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roster_render_queue_depth",
		Help: "Current depth of the render queue",
	})

	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roster_render_job_duration_seconds",
		Help:    "Duration of a single render job",
		Buckets: prometheus.DefBuckets,
	})
)

// Job is a named unit of work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Logger      *zap.Logger
}

// Pool executes jobs concurrently and collects their errors.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu      sync.Mutex
	stopped bool
	errs    []error
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Debugw("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Enqueue adds a job to the queue, blocking while the queue is full.
func (p *Pool) Enqueue(job Job) error {
	p.mu.Lock()
	stopped := p.stopped
	p.mu.Unlock()
	if stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		queueDepth.Set(float64(len(p.jobQueue)))
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("%w: %v", ErrPoolStopped, p.ctx.Err())
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// Stop closes the queue, waits for queued jobs and returns their joined
// errors. Enqueue must not be called concurrently with Stop.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobQueue)
	}
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
	queueDepth.Set(0)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger.Debugw("Worker pool stopped", "failed", len(p.errs))
	return errors.Join(p.errs...)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		queueDepth.Set(float64(len(p.jobQueue)))
		if err := p.ctx.Err(); err != nil {
			p.record(fmt.Errorf("%s: %w", job.Name, err))
			continue
		}

		start := time.Now()
		err := job.Run(p.ctx)
		jobDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			jobsFailed.Inc()
			p.logger.Errorw("Job failed", "worker", id, "job", job.Name, "error", err)
			p.record(fmt.Errorf("%s: %w", job.Name, err))
			continue
		}
		jobsProcessed.Inc()
		p.logger.Debugw("Job done", "worker", id, "job", job.Name, "duration", time.Since(start))
	}
}

func (p *Pool) record(err error) {
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}
