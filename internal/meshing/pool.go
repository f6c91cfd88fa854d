package meshing

import (
	"context"
	"errors"
	"sync"

	"mini-voxel/internal/registry"
	"mini-voxel/internal/world"
)

// ErrNilChunk is reported for jobs submitted without a chunk.
var ErrNilChunk = errors.New("meshing: job has no chunk")

// MeshJob represents a meshing job request
type MeshJob struct {
	World *world.World
	Chunk *world.Chunk
	Coord world.ChunkCoord
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord world.ChunkCoord
	Mesh  Mesh
	Error error
}

// WorkerPool manages goroutines for mesh generation. All workers share one
// catalog, which must not be swapped while the pool runs; Insert on it is
// safe.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	catalog  *registry.Catalog
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(cat *registry.Catalog, workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		catalog:  cat,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool.
// Returns false if the queue is full or the pool is shut down.
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitJobBlocking waits until the job is queued, ctx is cancelled or the
// pool shuts down.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// worker is the worker goroutine that processes mesh jobs. A meshed chunk is
// marked clean before its result is sent.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := MeshResult{
				Coord: job.Coord,
				Mesh:  BuildChunkMesh(job.World, job.Chunk, p.catalog),
			}
			if job.Chunk == nil {
				result.Error = ErrNilChunk
			} else {
				job.Chunk.SetClean()
			}

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// were not picked up are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// GetQueueLength returns the current number of jobs in the queue
func (p *WorkerPool) GetQueueLength() int {
	return len(p.jobQueue)
}

// Workers returns the number of worker goroutines
func (p *WorkerPool) Workers() int {
	return p.workers
}
