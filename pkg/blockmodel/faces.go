package blockmodel

import "github.com/go-gl/mathgl/mgl32"

// cubeCorners lists the four corners of every face of the unit cube [0,1]^3,
// counter-clockwise seen from outside.
var cubeCorners = [NumDirections][4]mgl32.Vec4{
	XPos: {{1, 0, 1, 1}, {1, 0, 0, 1}, {1, 1, 0, 1}, {1, 1, 1, 1}},
	XNeg: {{0, 0, 0, 1}, {0, 0, 1, 1}, {0, 1, 1, 1}, {0, 1, 0, 1}},
	YPos: {{0, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 0, 1}, {0, 1, 0, 1}},
	YNeg: {{0, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 1, 1}, {0, 0, 1, 1}},
	ZPos: {{0, 0, 1, 1}, {1, 0, 1, 1}, {1, 1, 1, 1}, {0, 1, 1, 1}},
	ZNeg: {{1, 0, 0, 1}, {0, 0, 0, 1}, {0, 1, 0, 1}, {1, 1, 0, 1}},
}

// uvCorners pairs with cubeCorners: the i-th vertex of a face samples
// offset + uvCorners[i].
var uvCorners = [4]mgl32.Vec2{
	{0, 0},
	{CellSize, 0},
	{CellSize, CellSize},
	{0, CellSize},
}

// CreateBlockFaces builds the six faces of a unit cube. Each face samples the
// atlas cell starting at its entry in uv.
func CreateBlockFaces(uv UVOffsets) FaceSet {
	var faces FaceSet
	for _, d := range Directions {
		face := BlockFace{Dir: d, Normal: d.Normal()}
		for i, corner := range cubeCorners[d] {
			face.Vertices[i] = VertexData{
				Pos: corner,
				UV:  uv[d].Add(uvCorners[i]),
			}
		}
		faces[d] = face
	}
	return faces
}

// CreateDefaultBlockFaces builds cube faces with every UV offset at the
// origin. Used for blocks shaded purely by flat color.
func CreateDefaultBlockFaces() FaceSet {
	return CreateBlockFaces(UVOffsets{})
}
