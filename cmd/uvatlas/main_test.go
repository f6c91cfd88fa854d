package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mini-voxel/internal/config"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/registry"
	"mini-voxel/internal/world"
)

func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	assets, err := filepath.Abs(filepath.Join("..", "..", "assets"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "assets_dir: " + assets + "\nuv_map: uv_map.txt\nblocks: blocks.yaml\n" + extra
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWithShippedAssets(t *testing.T) {
	defer config.SetAssetsDir(config.GetAssetsDir())

	out := filepath.Join(t.TempDir(), "preview.png")
	if err := run(writeConfig(t, ""), "", "", out, 4, true); err != nil {
		t.Fatalf("run: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Fatalf("preview not written: %v", err)
	}
}

func TestRunUVFlagRelativeToWorkingDir(t *testing.T) {
	defer config.SetAssetsDir(config.GetAssetsDir())
	defer config.SetUVMap("uv_map.txt")

	path := filepath.Join(t.TempDir(), "my_map.txt")
	if err := os.WriteFile(path, []byte("LEAF\n0.25 0.25\n0.25 0.25\n0.25 0.25\n0.25 0.25\n0.25 0.25\n0.25 0.25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		t.Skipf("no relative path to temp dir: %v", err)
	}

	// assets_dir points at the shipped assets, which hold no my_map.txt
	if err := run(writeConfig(t, ""), rel, "", "", 4, false); err != nil {
		t.Fatalf("run with relative -uv: %v", err)
	}
	if got := config.GetUVMap(); got != path {
		t.Errorf("uv map resolved to %q, want %q", got, path)
	}
}

func TestMeshDirtyOnlyRemeshesEditedChunks(t *testing.T) {
	w := world.NewEmpty()
	for x := 0; x < 3*world.ChunkSizeX; x++ {
		w.Set(x, 0, 0, world.BlockTypeStone)
	}
	pool := meshing.NewWorkerPool(registry.NewDefaultCatalog(), 2, 8)
	defer pool.Shutdown()

	n, err := meshDirty(pool, w)
	if err != nil || n != 3 {
		t.Fatalf("first pass: meshed %d, err %v", n, err)
	}
	if n, _ := meshDirty(pool, w); n != 0 {
		t.Errorf("nothing changed, but %d chunks were remeshed", n)
	}

	w.Set(world.ChunkSizeX, 1, 0, world.BlockTypeDirt)
	if n, _ := meshDirty(pool, w); n != 2 {
		t.Errorf("border edit should remesh 2 chunks, got %d", n)
	}
}

func TestBuildCatalogStrict(t *testing.T) {
	defer config.SetAssetsDir(config.GetAssetsDir())
	defer config.SetStrictUV(false)
	defer config.SetUVMap("uv_map.txt")

	bad := filepath.Join(t.TempDir(), "bad_uv.txt")
	if err := os.WriteFile(bad, []byte("STONE\n0 0\nnope\n0 0\n0 0\n0 0\n0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := config.Load(writeConfig(t, "strict_uv: true\n")); err != nil {
		t.Fatal(err)
	}
	config.SetUVMap(bad)

	if _, err := buildCatalog(registry.NewUVLoader(config.GetAssetsDir())); err == nil || !strings.Contains(err.Error(), "bad records") {
		t.Fatalf("expected strict failure, got %v", err)
	}

	config.SetStrictUV(false)
	cat, err := buildCatalog(registry.NewUVLoader(config.GetAssetsDir()))
	if err != nil {
		t.Fatalf("lenient load failed: %v", err)
	}
	if _, ok := cat.Faces(world.BlockTypeStone); !ok {
		t.Error("STONE should still have default faces")
	}
}

func TestPrintCatalog(t *testing.T) {
	defer config.SetAssetsDir(config.GetAssetsDir())
	if err := config.Load(writeConfig(t, "")); err != nil {
		t.Fatal(err)
	}
	cat, err := buildCatalog(registry.NewUVLoader(config.GetAssetsDir()))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printCatalog(&buf, cat)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(world.AllBlockTypes) {
		t.Fatalf("expected header + %d rows, got %d lines", len(world.AllBlockTypes)-1, len(lines))
	}
	if !strings.HasPrefix(lines[1], "GRASS") {
		t.Errorf("first row: %q", lines[1])
	}
}
