package blockmodel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateBlockFacesCornerTable(t *testing.T) {
	want := map[Direction][4]mgl32.Vec4{
		XPos: {{1, 0, 1, 1}, {1, 0, 0, 1}, {1, 1, 0, 1}, {1, 1, 1, 1}},
		XNeg: {{0, 0, 0, 1}, {0, 0, 1, 1}, {0, 1, 1, 1}, {0, 1, 0, 1}},
		YPos: {{0, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 0, 1}, {0, 1, 0, 1}},
		YNeg: {{0, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 1, 1}, {0, 0, 1, 1}},
		ZPos: {{0, 0, 1, 1}, {1, 0, 1, 1}, {1, 1, 1, 1}, {0, 1, 1, 1}},
		ZNeg: {{1, 0, 0, 1}, {0, 0, 0, 1}, {0, 1, 0, 1}, {1, 1, 0, 1}},
	}

	faces := CreateDefaultBlockFaces()
	for i, face := range faces {
		d := Direction(i)
		if face.Dir != d {
			t.Errorf("face %d has direction %v", i, face.Dir)
		}
		for j, v := range face.Vertices {
			if v.Pos != want[d][j] {
				t.Errorf("%v vertex %d: got %v, want %v", d, j, v.Pos, want[d][j])
			}
		}
	}
}

func TestCreateBlockFacesNormals(t *testing.T) {
	want := [NumDirections]mgl32.Vec4{
		{1, 0, 0, 0},
		{-1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, -1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, -1, 0},
	}
	faces := CreateDefaultBlockFaces()
	for _, d := range Directions {
		if faces[d].Normal != want[d] {
			t.Errorf("%v normal: got %v, want %v", d, faces[d].Normal, want[d])
		}
	}
}

// Every face must wind counter-clockwise seen from outside, i.e. the cross
// product of its first two edges points along the outward normal.
func TestCreateBlockFacesWinding(t *testing.T) {
	faces := CreateDefaultBlockFaces()
	for _, d := range Directions {
		f := faces[d]
		p0 := f.Vertices[0].Pos.Vec3()
		p1 := f.Vertices[1].Pos.Vec3()
		p2 := f.Vertices[2].Pos.Vec3()
		n := p1.Sub(p0).Cross(p2.Sub(p1))
		if n.Dot(f.Normal.Vec3()) <= 0 {
			t.Errorf("%v is not counter-clockwise: cross %v, normal %v", d, n, f.Normal)
		}
	}
}

func TestCreateBlockFacesUV(t *testing.T) {
	uv := UVOffsets{
		{0, 0},
		{1.0 / 16, 0},
		{2.0 / 16, 3.0 / 16},
		{0.5, 0.5},
		{15.0 / 16, 15.0 / 16},
		{0.25, 0.75},
	}
	corners := [4]mgl32.Vec2{{0, 0}, {CellSize, 0}, {CellSize, CellSize}, {0, CellSize}}

	faces := CreateBlockFaces(uv)
	for _, d := range Directions {
		for i, v := range faces[d].Vertices {
			want := uv[d].Add(corners[i])
			if !v.UV.ApproxEqual(want) {
				t.Errorf("%v vertex %d uv: got %v, want %v", d, i, v.UV, want)
			}
		}
	}
}

func TestCreateBlockFacesDeterministic(t *testing.T) {
	uv := UVOffsets{{0.125, 0.25}, {}, {}, {}, {}, {0.5, 0}}
	a := CreateBlockFaces(uv)
	b := CreateBlockFaces(uv)
	if a != b {
		t.Fatal("same offsets produced different faces")
	}
}

func TestBlockFaceTranslate(t *testing.T) {
	faces := CreateDefaultBlockFaces()
	got := faces.Face(YPos).Translate(3, 4, 5)
	want := mgl32.Vec4{3, 5, 6, 1}
	if got[0] != want {
		t.Errorf("translated first vertex: got %v, want %v", got[0], want)
	}
}

func TestDirectionString(t *testing.T) {
	if XNeg.String() != "XNEG" {
		t.Errorf("got %q", XNeg.String())
	}
	if Direction(42).String() != "UNKNOWN" {
		t.Errorf("out of range direction: got %q", Direction(42).String())
	}
}
