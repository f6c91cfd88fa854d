package blockmodel

import "github.com/go-gl/mathgl/mgl32"

// CellSize is the width/height of one atlas cell in UV space. The atlas is a
// 16x16 grid of square cells.
const CellSize = float32(1.0 / 16.0)

// Direction identifies one of the six axis-aligned faces of a block
type Direction int

const (
	XPos Direction = iota
	XNeg
	YPos
	YNeg
	ZPos
	ZNeg
)

// NumDirections is the number of faces on a block.
const NumDirections = 6

// Directions lists every face in canonical order (XPOS, XNEG, YPOS, YNEG, ZPOS, ZNEG).
var Directions = [NumDirections]Direction{XPos, XNeg, YPos, YNeg, ZPos, ZNeg}

var directionNames = [NumDirections]string{"XPOS", "XNEG", "YPOS", "YNEG", "ZPOS", "ZNEG"}

var directionOffsets = [NumDirections][3]int{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

func (d Direction) String() string {
	if d < 0 || int(d) >= NumDirections {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// Offset returns the unit step towards the neighbour on this side.
func (d Direction) Offset() (dx, dy, dz int) {
	o := directionOffsets[d]
	return o[0], o[1], o[2]
}

// Normal returns the outward unit normal as a homogeneous direction (w = 0).
func (d Direction) Normal() mgl32.Vec4 {
	dx, dy, dz := d.Offset()
	return mgl32.Vec4{float32(dx), float32(dy), float32(dz), 0}
}

// VertexData is one corner of a face: a point in local block space and its
// atlas UV.
type VertexData struct {
	Pos mgl32.Vec4
	UV  mgl32.Vec2
}

// BlockFace is one quad of a unit cube. Vertices are counter-clockwise when
// viewed from outside along Normal.
type BlockFace struct {
	Dir      Direction
	Normal   mgl32.Vec4
	Vertices [4]VertexData
}

// Translate returns the face's vertex positions moved by (x, y, z).
func (f BlockFace) Translate(x, y, z float32) [4]mgl32.Vec4 {
	var out [4]mgl32.Vec4
	for i, v := range f.Vertices {
		out[i] = mgl32.Vec4{v.Pos[0] + x, v.Pos[1] + y, v.Pos[2] + z, v.Pos[3]}
	}
	return out
}

// FaceSet holds the six faces of a block, indexed by Direction.
type FaceSet [NumDirections]BlockFace

// Face returns the face for the given direction.
func (s *FaceSet) Face(d Direction) BlockFace {
	return s[d]
}

// UVOffsets is one atlas offset per face, ordered XPOS, XNEG, YPOS, YNEG, ZPOS, ZNEG.
type UVOffsets [NumDirections]mgl32.Vec2

// UVRecord is a block name followed by its six face offsets as read from a
// UV map file.
type UVRecord struct {
	Name    string
	Line    int
	Offsets UVOffsets
}
