package world

import "sync/atomic"

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	// Section dimensions
	SectionHeight = 16
	NumSections   = ChunkSizeY / SectionHeight
	SectionVolume = ChunkSizeX * SectionHeight * ChunkSizeZ
)

// ChunkCoord addresses a chunk in chunk units.
type ChunkCoord struct {
	X, Y, Z int
}

// Section is a 16x16x16 slice of a chunk. A nil section is all EMPTY.
type Section struct {
	blocks []BlockType
	count  int // non-empty blocks
}

// Chunk is a 16x256x16 column of blocks
type Chunk struct {
	X, Y, Z  int
	sections [NumSections]*Section
	dirty    atomic.Bool
}

// NewChunk creates an empty chunk at the given chunk coordinates
func NewChunk(x, y, z int) *Chunk {
	c := &Chunk{X: x, Y: y, Z: z}
	c.dirty.Store(true)
	return c
}

// Coord returns the chunk's coordinates.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Y: c.Y, Z: c.Z}
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// indexInSection converts local section coordinates (x, localY, z) to a flat index
func indexInSection(x, localY, z int) int {
	return x*SectionHeight*ChunkSizeZ + localY*ChunkSizeZ + z
}

// GetBlock returns the block at local coordinates. Out of range reads are EMPTY.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeEmpty
	}

	sec := c.sections[y/SectionHeight]
	if sec == nil {
		return BlockTypeEmpty
	}
	return sec.blocks[indexInSection(x, y%SectionHeight, z)]
}

// SetBlock sets the block at local coordinates. Sections are allocated on the
// first non-empty write and released when their last block is cleared.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !inBounds(x, y, z) {
		return
	}

	secIdx := y / SectionHeight
	idx := indexInSection(x, y%SectionHeight, z)
	sec := c.sections[secIdx]

	if sec == nil {
		if blockType == BlockTypeEmpty {
			return
		}
		sec = &Section{blocks: make([]BlockType, SectionVolume)}
		c.sections[secIdx] = sec
	}

	old := sec.blocks[idx]
	if old == blockType {
		return
	}
	sec.blocks[idx] = blockType
	c.dirty.Store(true)

	switch {
	case old == BlockTypeEmpty:
		sec.count++
	case blockType == BlockTypeEmpty:
		sec.count--
		if sec.count == 0 {
			c.sections[secIdx] = nil
		}
	}
}

// SectionEmpty reports whether a whole section holds no blocks.
func (c *Chunk) SectionEmpty(secIdx int) bool {
	if secIdx < 0 || secIdx >= NumSections {
		return true
	}
	return c.sections[secIdx] == nil
}

// IsDirty returns whether the chunk has been modified since last mesh build
func (c *Chunk) IsDirty() bool {
	return c.dirty.Load()
}

// MarkDirty flags the chunk for remeshing, e.g. after a neighbour's border
// block changed.
func (c *Chunk) MarkDirty() {
	c.dirty.Store(true)
}

// SetClean marks the chunk as meshed
func (c *Chunk) SetClean() {
	c.dirty.Store(false)
}
