package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"

	"mini-voxel/internal/registry"
	"mini-voxel/internal/world"
	"mini-voxel/pkg/blockmodel"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// LoadImage decodes an image file into RGBA
func LoadImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// CellRect returns the pixel rectangle of the atlas cell whose UV origin is
// offset. UV v grows upwards while image rows grow downwards, so v is flipped.
func CellRect(bounds image.Rectangle, offset mgl32.Vec2) image.Rectangle {
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	x0 := int(offset[0]*w + 0.5)
	x1 := int((offset[0]+blockmodel.CellSize)*w + 0.5)
	y0 := int((1-offset[1]-blockmodel.CellSize)*h + 0.5)
	y1 := int((1-offset[1])*h + 0.5)
	return image.Rect(x0, y0, x1, y1).Add(bounds.Min).Intersect(bounds)
}

func toRGBA(c mgl32.Vec4) color.RGBA {
	clamp := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: clamp(c[0]), G: clamp(c[1]), B: clamp(c[2]), A: clamp(c[3])}
}

// RenderPreview draws one row per catalog block type and one tile per face
// in XPOS..ZNEG order. Tiles are cut from src and scaled nearest-neighbour
// to tile x tile pixels; with a nil src each tile is the block's flat color.
func RenderPreview(cat *registry.Catalog, src image.Image, tile int) *image.RGBA {
	types := cat.Types()
	dst := image.NewRGBA(image.Rect(0, 0, tile*blockmodel.NumDirections, tile*len(types)))

	for row, bt := range types {
		faces, _ := cat.Faces(bt)
		for _, d := range blockmodel.Directions {
			r := image.Rect(int(d)*tile, row*tile, int(d+1)*tile, (row+1)*tile)
			drawTile(dst, r, cat, bt, faces[d], src)
		}
	}
	return dst
}

func drawTile(dst *image.RGBA, r image.Rectangle, cat *registry.Catalog, bt world.BlockType, face blockmodel.BlockFace, src image.Image) {
	if src == nil {
		draw.Draw(dst, r, image.NewUniform(toRGBA(cat.Color(bt))), image.Point{}, draw.Src)
		return
	}
	cell := CellRect(src.Bounds(), face.Vertices[0].UV)
	if cell.Empty() {
		draw.Draw(dst, r, image.NewUniform(toRGBA(registry.DebugColor)), image.Point{}, draw.Src)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, r, src, cell, xdraw.Src, nil)
}
