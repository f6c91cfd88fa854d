package blockmodel

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads UV map files from an assets directory and caches the parsed
// result per file name.
type Loader struct {
	assetsPath string
	known      func(name string) bool
	uvCache    map[string]*UVMap
}

func NewLoader(assetsPath string, known func(name string) bool) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		known:      known,
		uvCache:    make(map[string]*UVMap),
	}
}

func (l *Loader) LoadUVMap(name string) (*UVMap, error) {
	if m, ok := l.uvCache[name]; ok {
		return m, nil
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.assetsPath, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read uv map file: %w", err)
	}

	m, err := ParseUVMap(bytes.NewReader(data), l.known)
	if err != nil {
		return nil, fmt.Errorf("could not parse uv map %s: %w", name, err)
	}

	l.uvCache[name] = m
	return m, nil
}

// Forget drops a cached map so the next LoadUVMap re-reads the file.
func (l *Loader) Forget(name string) {
	delete(l.uvCache, name)
}
