package blockmodel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUVMap(t *testing.T) {
	loader := NewLoader("assets-test", knownNames("STONE", "DIRT"))
	m, err := loader.LoadUVMap("uv_map.txt")
	if err != nil {
		t.Fatalf("Failed to load uv map: %v", err)
	}

	if len(m.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(m.Records))
	}

	if _, ok := m.Lookup("DIRT"); !ok {
		t.Errorf("Expected a DIRT record")
	}
}

func TestLoadUVMapCache(t *testing.T) {
	loader := NewLoader("assets-test", knownNames("STONE", "DIRT"))
	m1, err := loader.LoadUVMap("uv_map.txt")
	if err != nil {
		t.Fatalf("Failed to load uv map first time: %v", err)
	}

	m2, err := loader.LoadUVMap("uv_map.txt")
	if err != nil {
		t.Fatalf("Failed to load uv map second time: %v", err)
	}

	if m1 != m2 {
		t.Errorf("Expected the same map instance to be returned from cache")
	}

	loader.Forget("uv_map.txt")
	m3, err := loader.LoadUVMap("uv_map.txt")
	if err != nil {
		t.Fatalf("Failed to reload uv map: %v", err)
	}
	if m3 == m1 {
		t.Errorf("Expected a fresh map after Forget")
	}
}

func TestLoadUVMapAbsolutePath(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join("assets-test", "uv_map.txt"))
	if err != nil {
		t.Fatal(err)
	}
	loader := NewLoader("does-not-exist", knownNames("STONE", "DIRT"))
	if _, err := loader.LoadUVMap(abs); err != nil {
		t.Fatalf("Failed to load uv map by absolute path: %v", err)
	}
}

func TestLoadUVMapMissingFile(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	if _, err := loader.LoadUVMap("missing.txt"); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestMain(m *testing.M) {
	os.MkdirAll("assets-test", 0755)

	writeTestFile("assets-test/uv_map.txt", `# test table
STONE
0.0625 0
0.0625 0
0.0625 0
0.0625 0
0.0625 0
0.0625 0

DIRT
0.125 0
0.125 0
0.125 0
0.125 0
0.125 0
0.125 0
`)

	exitCode := m.Run()
	os.RemoveAll("assets-test")
	os.Exit(exitCode)
}

func writeTestFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		panic(err)
	}
}
