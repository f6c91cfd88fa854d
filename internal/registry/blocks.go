package registry

import (
	"fmt"
	"os"

	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DebugColor is returned for block types without a color of their own, so
// missing entries stand out on screen.
var DebugColor = mgl32.Vec4{1, 0, 1, 1}

// Attributes is everything the mesher needs to know about a block type
// besides its geometry.
type Attributes struct {
	Opaque     bool
	Liquid     bool
	Animatable bool
	Color      mgl32.Vec4
}

func rgba8(r, g, b, a float32) mgl32.Vec4 {
	return mgl32.Vec4{r / 255, g / 255, b / 255, a / 255}
}

// DefaultAttributes returns a fresh copy of the built-in block table.
func DefaultAttributes() map[world.BlockType]Attributes {
	attrs := make(map[world.BlockType]Attributes, len(world.AllBlockTypes))
	for _, t := range world.AllBlockTypes {
		attrs[t] = Attributes{Opaque: true, Color: DebugColor}
	}

	set := func(t world.BlockType, fn func(a *Attributes)) {
		a := attrs[t]
		fn(&a)
		attrs[t] = a
	}

	// Transparent: EMPTY, WATER, ICE
	set(world.BlockTypeEmpty, func(a *Attributes) { a.Opaque = false })
	set(world.BlockTypeIce, func(a *Attributes) { a.Opaque = false })
	set(world.BlockTypeWater, func(a *Attributes) {
		a.Opaque = false
		a.Liquid = true
		a.Animatable = true
		a.Color = mgl32.Vec4{0, 0, 0.75, 1}
	})
	set(world.BlockTypeLava, func(a *Attributes) {
		a.Liquid = true
		a.Animatable = true
	})

	set(world.BlockTypeGrass, func(a *Attributes) { a.Color = rgba8(95, 159, 53, 255) })
	set(world.BlockTypeDirt, func(a *Attributes) { a.Color = rgba8(121, 85, 58, 255) })
	set(world.BlockTypeStone, func(a *Attributes) { a.Color = mgl32.Vec4{0.5, 0.5, 0.5, 1} })
	set(world.BlockTypeSnow, func(a *Attributes) { a.Color = mgl32.Vec4{1, 1, 1, 1} })

	return attrs
}

// attributeOverride is one entry of a blocks YAML file. Unset fields keep
// the built-in value.
type attributeOverride struct {
	Opaque     *bool     `yaml:"opaque"`
	Liquid     *bool     `yaml:"liquid"`
	Animatable *bool     `yaml:"animatable"`
	Color      []float32 `yaml:"color"`
	Color8     []float32 `yaml:"color8"`
}

type blocksFile struct {
	Blocks map[string]attributeOverride `yaml:"blocks"`
}

// LoadAttributes reads a blocks YAML file and applies it on top of the
// built-in table. Unknown block names and malformed colors are errors.
func LoadAttributes(path string) (map[world.BlockType]Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read blocks file: %w", err)
	}
	return ParseAttributes(data)
}

// ParseAttributes is LoadAttributes on an in-memory document.
func ParseAttributes(data []byte) (map[world.BlockType]Attributes, error) {
	var file blocksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not unmarshal blocks yaml: %w", err)
	}

	attrs := DefaultAttributes()
	for name, o := range file.Blocks {
		t, ok := world.ParseBlockType(name)
		if !ok {
			return nil, fmt.Errorf("blocks yaml: unknown block %q", name)
		}
		a := attrs[t]
		if o.Opaque != nil {
			a.Opaque = *o.Opaque
		}
		if o.Liquid != nil {
			a.Liquid = *o.Liquid
		}
		if o.Animatable != nil {
			a.Animatable = *o.Animatable
		}
		switch {
		case o.Color != nil && o.Color8 != nil:
			return nil, fmt.Errorf("blocks yaml: %s sets both color and color8", name)
		case o.Color != nil:
			c, err := toColor(o.Color, 1)
			if err != nil {
				return nil, fmt.Errorf("blocks yaml: %s: %w", name, err)
			}
			a.Color = c
		case o.Color8 != nil:
			c, err := toColor(o.Color8, 255)
			if err != nil {
				return nil, fmt.Errorf("blocks yaml: %s: %w", name, err)
			}
			a.Color = c
		}
		attrs[t] = a
	}
	return attrs, nil
}

func toColor(v []float32, scale float32) (mgl32.Vec4, error) {
	if len(v) != 3 && len(v) != 4 {
		return mgl32.Vec4{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(v))
	}
	c := mgl32.Vec4{0, 0, 0, scale}
	copy(c[:], v)
	for _, f := range c {
		if f < 0 || f > scale {
			return mgl32.Vec4{}, fmt.Errorf("color component %v outside 0..%v", f, scale)
		}
	}
	for i := range c {
		c[i] /= scale
	}
	return c, nil
}
