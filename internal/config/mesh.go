package config

import "sync"

// MeshSettings holds chunk meshing configuration
type MeshSettings struct {
	mu        sync.RWMutex
	workers   int
	queueSize int
}

var globalMeshSettings = &MeshSettings{
	workers:   4,
	queueSize: 64,
}

// GetMeshWorkers returns the number of mesh worker goroutines
func GetMeshWorkers() int {
	globalMeshSettings.mu.RLock()
	defer globalMeshSettings.mu.RUnlock()
	return globalMeshSettings.workers
}

// SetMeshWorkers sets the number of mesh worker goroutines
func SetMeshWorkers(n int) {
	globalMeshSettings.mu.Lock()
	defer globalMeshSettings.mu.Unlock()

	// Clamp to reasonable values
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}

	globalMeshSettings.workers = n
}

// GetMeshQueueSize returns the capacity of the mesh job queue
func GetMeshQueueSize() int {
	globalMeshSettings.mu.RLock()
	defer globalMeshSettings.mu.RUnlock()
	return globalMeshSettings.queueSize
}

// SetMeshQueueSize sets the capacity of the mesh job queue
func SetMeshQueueSize(n int) {
	globalMeshSettings.mu.Lock()
	defer globalMeshSettings.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 4096 {
		n = 4096
	}

	globalMeshSettings.queueSize = n
}
