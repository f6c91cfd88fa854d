package registry

import (
	"sort"
	"sync"

	"mini-voxel/internal/world"
	"mini-voxel/pkg/blockmodel"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	animatedFlag = mgl32.Vec2{1, 1}
	staticFlag   = mgl32.Vec2{-1, -1}
)

// Catalog maps block types to their cube faces and attributes. It is built
// once at startup and handed to whoever meshes chunks. Insert may run while
// others read; the lock keeps a reload from tearing a lookup.
type Catalog struct {
	mu    sync.RWMutex
	faces map[world.BlockType]blockmodel.FaceSet
	attrs map[world.BlockType]Attributes
}

// Option configures NewCatalog.
type Option func(*Catalog)

// WithAttributes replaces the built-in attribute table, e.g. with one from
// LoadAttributes. Types missing from attrs keep their built-in record.
func WithAttributes(attrs map[world.BlockType]Attributes) Option {
	return func(c *Catalog) {
		for t, a := range attrs {
			c.attrs[t] = a
		}
	}
}

// WithDefaultFaces gives every non-empty block flat-shaded faces with all UV
// offsets at the atlas origin.
func WithDefaultFaces() Option {
	return func(c *Catalog) {
		faces := blockmodel.CreateDefaultBlockFaces()
		for _, t := range world.AllBlockTypes {
			if t != world.BlockTypeEmpty {
				c.faces[t] = faces
			}
		}
	}
}

// NewCatalog builds a catalog from the built-in attribute table and the
// given options.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		faces: make(map[world.BlockType]blockmodel.FaceSet),
		attrs: DefaultAttributes(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefaultCatalog is NewCatalog(WithDefaultFaces()).
func NewDefaultCatalog() *Catalog {
	return NewCatalog(WithDefaultFaces())
}

// Insert (re)generates the faces of a block type from six UV offsets. The
// last insert for a type wins.
func (c *Catalog) Insert(t world.BlockType, uv blockmodel.UVOffsets) {
	faces := blockmodel.CreateBlockFaces(uv)
	c.mu.Lock()
	c.faces[t] = faces
	c.mu.Unlock()
}

// Faces returns the face set of a block type.
func (c *Catalog) Faces(t world.BlockType) (blockmodel.FaceSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.faces[t]
	return f, ok
}

// Len returns the number of block types with faces.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.faces)
}

// Types returns the block types with faces, in ascending order.
func (c *Catalog) Types() []world.BlockType {
	c.mu.RLock()
	types := make([]world.BlockType, 0, len(c.faces))
	for t := range c.faces {
		types = append(types, t)
	}
	c.mu.RUnlock()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Snapshot returns an independent copy. Later inserts into either catalog
// do not show up in the other.
func (c *Catalog) Snapshot() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := &Catalog{
		faces: make(map[world.BlockType]blockmodel.FaceSet, len(c.faces)),
		attrs: make(map[world.BlockType]Attributes, len(c.attrs)),
	}
	for t, f := range c.faces {
		out.faces[t] = f
	}
	for t, a := range c.attrs {
		out.attrs[t] = a
	}
	return out
}

// Attributes returns the record for a block type. Types outside the table
// are opaque, non-liquid, static and colored DebugColor.
func (c *Catalog) Attributes(t world.BlockType) Attributes {
	c.mu.RLock()
	a, ok := c.attrs[t]
	c.mu.RUnlock()
	if !ok {
		return Attributes{Opaque: true, Color: DebugColor}
	}
	return a
}

func (c *Catalog) IsOpaque(t world.BlockType) bool {
	return c.Attributes(t).Opaque
}

func (c *Catalog) IsTransparent(t world.BlockType) bool {
	return !c.Attributes(t).Opaque
}

func (c *Catalog) IsLiquid(t world.BlockType) bool {
	return c.Attributes(t).Liquid
}

func (c *Catalog) IsAnimatable(t world.BlockType) bool {
	return c.Attributes(t).Animatable
}

// IsEmpty is an identity check, independent of the attribute table.
func (c *Catalog) IsEmpty(t world.BlockType) bool {
	return t == world.BlockTypeEmpty
}

// AnimatableFlag returns the per-vertex shader flag: (1,1) for animated
// blocks, (-1,-1) otherwise.
func (c *Catalog) AnimatableFlag(t world.BlockType) mgl32.Vec2 {
	if c.IsAnimatable(t) {
		return animatedFlag
	}
	return staticFlag
}

// Color returns the flat RGBA color (0..1) of a block type.
func (c *Catalog) Color(t world.BlockType) mgl32.Vec4 {
	return c.Attributes(t).Color
}
