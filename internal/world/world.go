package world

import (
	"sort"
	"sync"
)

// World stores chunks by coordinate. Chunk lookup and creation are safe from
// several goroutines; block edits must not overlap meshing of the same area.
type World struct {
	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
}

// NewEmpty creates a world with no chunks.
func NewEmpty() *World {
	return &World{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// ChunkCoordOf returns the coordinate of the chunk containing a world block.
func ChunkCoordOf(x, y, z int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, ChunkSizeX),
		Y: floorDiv(y, ChunkSizeY),
		Z: floorDiv(z, ChunkSizeZ),
	}
}

// GetChunk returns the chunk at chunk coordinates. If it doesn't exist and
// create is true an empty one is added.
func (w *World) GetChunk(chunkX, chunkY, chunkZ int, create bool) *Chunk {
	coord := ChunkCoord{X: chunkX, Y: chunkY, Z: chunkZ}
	w.mu.RLock()
	c, ok := w.chunks[coord]
	w.mu.RUnlock()
	if ok || !create {
		return c
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// Another goroutine may have added it while we waited for the lock
	if existing, ok := w.chunks[coord]; ok {
		return existing
	}
	c = NewChunk(chunkX, chunkY, chunkZ)
	w.chunks[coord] = c
	return c
}

// GetChunkFromBlockCoords returns the chunk containing the given world block.
func (w *World) GetChunkFromBlockCoords(x, y, z int, create bool) *Chunk {
	cc := ChunkCoordOf(x, y, z)
	return w.GetChunk(cc.X, cc.Y, cc.Z, create)
}

// Get returns the block at world coordinates; missing chunks read as EMPTY.
func (w *World) Get(x, y, z int) BlockType {
	c := w.GetChunkFromBlockCoords(x, y, z, false)
	if c == nil {
		return BlockTypeEmpty
	}
	return c.GetBlock(floorMod(x, ChunkSizeX), floorMod(y, ChunkSizeY), floorMod(z, ChunkSizeZ))
}

// Set writes a block at world coordinates, creating the chunk when needed.
// A changed block on a chunk border also marks the chunk across that border
// dirty, since its culled faces depend on this block.
func (w *World) Set(x, y, z int, t BlockType) {
	create := t != BlockTypeEmpty
	c := w.GetChunkFromBlockCoords(x, y, z, create)
	if c == nil {
		return
	}
	lx, ly, lz := floorMod(x, ChunkSizeX), floorMod(y, ChunkSizeY), floorMod(z, ChunkSizeZ)
	if c.GetBlock(lx, ly, lz) == t {
		return
	}
	c.SetBlock(lx, ly, lz, t)

	cc := c.Coord()
	w.markNeighbour(cc, lx == 0, -1, 0, 0)
	w.markNeighbour(cc, lx == ChunkSizeX-1, 1, 0, 0)
	w.markNeighbour(cc, ly == 0, 0, -1, 0)
	w.markNeighbour(cc, ly == ChunkSizeY-1, 0, 1, 0)
	w.markNeighbour(cc, lz == 0, 0, 0, -1)
	w.markNeighbour(cc, lz == ChunkSizeZ-1, 0, 0, 1)
}

func (w *World) markNeighbour(cc ChunkCoord, onBorder bool, dx, dy, dz int) {
	if !onBorder {
		return
	}
	if n := w.GetChunk(cc.X+dx, cc.Y+dy, cc.Z+dz, false); n != nil {
		n.MarkDirty()
	}
}

// DirtyChunks returns the chunks that need remeshing, sorted by coordinate.
func (w *World) DirtyChunks() []*Chunk {
	var out []*Chunk
	for _, c := range w.Chunks() {
		if c.IsDirty() {
			out = append(out, c)
		}
	}
	return out
}

// Chunks returns all chunks sorted by coordinate.
func (w *World) Chunks() []*Chunk {
	w.mu.RLock()
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return out
}
