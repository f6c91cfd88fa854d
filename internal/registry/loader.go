package registry

import (
	"log"

	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
	"mini-voxel/pkg/blockmodel"
)

// ApplyUVMap inserts every record of m whose name is a block type and
// returns how many were applied. Records apply in file order, so a name that
// appears twice ends up with its later offsets.
func (c *Catalog) ApplyUVMap(m *blockmodel.UVMap) int {
	if m == nil {
		return 0
	}
	applied := 0
	for _, rec := range m.Records {
		t, ok := world.ParseBlockType(rec.Name)
		if !ok {
			continue
		}
		c.Insert(t, rec.Offsets)
		applied++
	}
	return applied
}

// NewUVLoader returns a loader reading UV maps from assetsDir that keeps only
// records named after block types. Hold on to it: it caches parsed files.
func NewUVLoader(assetsDir string) *blockmodel.Loader {
	return blockmodel.NewLoader(assetsDir, world.IsBlockName)
}

// LoadUVFile reads a UV map through l and applies it to the catalog.
// Relative names resolve against the loader's assets directory. Malformed
// records are skipped and logged; they are also returned in the map's
// Warnings so the caller can decide whether they are fatal.
func LoadUVFile(c *Catalog, l *blockmodel.Loader, name string) (*blockmodel.UVMap, error) {
	defer profiling.Track("registry.LoadUVFile")()

	m, err := l.LoadUVMap(name)
	if err != nil {
		return nil, err
	}

	for _, w := range m.Warnings {
		log.Printf("Warning: skipped uv record: %v", w)
	}

	applied := c.ApplyUVMap(m)
	log.Printf("Loaded %d uv records from %s", applied, name)
	return m, nil
}

// ReloadUVFile drops the cached copy of name and applies the file again,
// picking up edits made on disk since the last load.
func ReloadUVFile(c *Catalog, l *blockmodel.Loader, name string) (*blockmodel.UVMap, error) {
	l.Forget(name)
	return LoadUVFile(c, l, name)
}
