package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultAttributesIsCopy(t *testing.T) {
	a := DefaultAttributes()
	a[world.BlockTypeGrass] = Attributes{}
	if b := DefaultAttributes(); !b[world.BlockTypeGrass].Opaque {
		t.Error("DefaultAttributes must hand out fresh maps")
	}
}

func TestParseAttributes(t *testing.T) {
	doc := `
blocks:
  LEAF:
    opaque: false
    color8: [64, 128, 32]
  LAVA:
    color: [1.0, 0.3, 0.0, 1.0]
  ICE:
    animatable: true
`
	attrs, err := ParseAttributes([]byte(doc))
	if err != nil {
		t.Fatalf("ParseAttributes: %v", err)
	}

	leaf := attrs[world.BlockTypeLeaf]
	if leaf.Opaque {
		t.Error("LEAF override should be transparent")
	}
	if !leaf.Color.ApproxEqual(mgl32.Vec4{64.0 / 255, 128.0 / 255, 32.0 / 255, 1}) {
		t.Errorf("LEAF color: got %v", leaf.Color)
	}

	lava := attrs[world.BlockTypeLava]
	if !lava.Liquid || !lava.Animatable || !lava.Opaque {
		t.Errorf("LAVA flags should keep built-in values, got %+v", lava)
	}
	if !lava.Color.ApproxEqual(mgl32.Vec4{1, 0.3, 0, 1}) {
		t.Errorf("LAVA color: got %v", lava.Color)
	}

	if !attrs[world.BlockTypeIce].Animatable {
		t.Error("ICE should be animatable after override")
	}
	if attrs[world.BlockTypeGrass] != DefaultAttributes()[world.BlockTypeGrass] {
		t.Error("GRASS was not in the file and must be unchanged")
	}
}

func TestParseAttributesErrors(t *testing.T) {
	tests := map[string]string{
		"unknown block":   "blocks:\n  GLASS:\n    opaque: false\n",
		"short color":     "blocks:\n  DIRT:\n    color: [1, 0]\n",
		"out of range":    "blocks:\n  DIRT:\n    color8: [300, 0, 0]\n",
		"both colors":     "blocks:\n  DIRT:\n    color: [1, 0, 0]\n    color8: [255, 0, 0]\n",
		"not yaml blocks": "blocks: [1, 2",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseAttributes([]byte(doc)); err == nil {
				t.Errorf("expected error for %q", doc)
			}
		})
	}
}

func TestLoadAttributesFeedsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte("blocks:\n  BEDROCK:\n    color: [0.1, 0.1, 0.1]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	attrs, err := LoadAttributes(path)
	if err != nil {
		t.Fatalf("LoadAttributes: %v", err)
	}
	cat := NewCatalog(WithAttributes(attrs))
	if got := cat.Color(world.BlockTypeBedrock); !got.ApproxEqual(mgl32.Vec4{0.1, 0.1, 0.1, 1}) {
		t.Errorf("BEDROCK color: got %v", got)
	}

	if _, err := LoadAttributes(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "blocks file") {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestLoadShippedAttributes(t *testing.T) {
	attrs, err := LoadAttributes(filepath.Join("..", "..", "assets", "blocks.yaml"))
	if err != nil {
		t.Fatalf("LoadAttributes: %v", err)
	}
	if len(attrs) != len(world.AllBlockTypes) {
		t.Errorf("expected a record per block type, got %d", len(attrs))
	}
}
