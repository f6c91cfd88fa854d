package meshing

import (
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/registry"
	"mini-voxel/internal/world"
	"mini-voxel/pkg/blockmodel"
)

// VertexStride is the number of float32 per vertex:
// pos.xyzw + normal.xyzw + color.rgba + uv + animFlag.
const VertexStride = 16

const (
	verticesPerFace = 4
	indicesPerFace  = 6
)

// Buffer is an indexed triangle list ready for upload.
type Buffer struct {
	Vertices []float32
	Indices  []uint32
}

// FaceCount returns the number of quads in the buffer.
func (b *Buffer) FaceCount() int {
	return len(b.Indices) / indicesPerFace
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices) / VertexStride
}

// Mesh keeps opaque and transparent geometry apart so transparent faces can
// be drawn after everything solid.
type Mesh struct {
	Opaque      Buffer
	Transparent Buffer
}

// Empty reports whether the mesh has no faces at all.
func (m *Mesh) Empty() bool {
	return len(m.Opaque.Indices) == 0 && len(m.Transparent.Indices) == 0
}

var fallbackFaces = blockmodel.CreateDefaultBlockFaces()

// BuildChunkMesh emits every visible block face of a chunk. Neighbours are
// read through the world so faces on chunk borders are culled too.
//
// EMPTY emits nothing. An opaque block shows a face when the neighbour is
// not opaque; a transparent block shows a face only against EMPTY, so
// water next to water or ice produces no inner faces. Block types without
// faces in the catalog fall back to flat untextured faces.
func BuildChunkMesh(w *world.World, c *world.Chunk, cat *registry.Catalog) Mesh {
	defer profiling.Track("meshing.BuildChunkMesh")()

	var mesh Mesh
	if c == nil || cat == nil {
		return mesh
	}

	baseX := c.X * world.ChunkSizeX
	baseY := c.Y * world.ChunkSizeY
	baseZ := c.Z * world.ChunkSizeZ

	for sec := 0; sec < world.NumSections; sec++ {
		if c.SectionEmpty(sec) {
			continue
		}
		for x := 0; x < world.ChunkSizeX; x++ {
			for ly := 0; ly < world.SectionHeight; ly++ {
				y := sec*world.SectionHeight + ly
				for z := 0; z < world.ChunkSizeZ; z++ {
					bt := c.GetBlock(x, y, z)
					if cat.IsEmpty(bt) {
						continue
					}

					faces, ok := cat.Faces(bt)
					if !ok {
						faces = fallbackFaces
					}
					opaque := cat.IsOpaque(bt)
					dst := &mesh.Opaque
					if !opaque {
						dst = &mesh.Transparent
					}

					for _, d := range blockmodel.Directions {
						dx, dy, dz := d.Offset()
						nt := blockAt(w, c, x+dx, y+dy, z+dz)
						if !faceVisible(cat, opaque, nt) {
							continue
						}
						appendFace(dst, cat, bt, faces[d], float32(baseX+x), float32(baseY+y), float32(baseZ+z))
					}
				}
			}
		}
	}

	return mesh
}

func faceVisible(cat *registry.Catalog, opaque bool, neighbour world.BlockType) bool {
	if opaque {
		return !cat.IsOpaque(neighbour)
	}
	return cat.IsEmpty(neighbour)
}

// blockAt reads a block by chunk-local coordinates, going through the world
// when they fall outside the chunk.
func blockAt(w *world.World, c *world.Chunk, x, y, z int) world.BlockType {
	if x >= 0 && x < world.ChunkSizeX && y >= 0 && y < world.ChunkSizeY && z >= 0 && z < world.ChunkSizeZ {
		return c.GetBlock(x, y, z)
	}
	if w == nil {
		return world.BlockTypeEmpty
	}
	return w.Get(c.X*world.ChunkSizeX+x, c.Y*world.ChunkSizeY+y, c.Z*world.ChunkSizeZ+z)
}

func appendFace(b *Buffer, cat *registry.Catalog, bt world.BlockType, face blockmodel.BlockFace, x, y, z float32) {
	color := cat.Color(bt)
	flag := cat.AnimatableFlag(bt)
	base := uint32(b.VertexCount())

	for i, p := range face.Translate(x, y, z) {
		uv := face.Vertices[i].UV
		b.Vertices = append(b.Vertices,
			p[0], p[1], p[2], p[3],
			face.Normal[0], face.Normal[1], face.Normal[2], face.Normal[3],
			color[0], color[1], color[2], color[3],
			uv[0], uv[1],
			flag[0], flag[1],
		)
	}
	// Two CCW triangles: 0-1-2, 0-2-3
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
}
