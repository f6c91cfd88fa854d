package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// AssetSettings holds where block data is read from
type AssetSettings struct {
	mu        sync.RWMutex
	assetsDir string
	uvMap     string
	blocks    string
	strictUV  bool
}

var globalAssetSettings = &AssetSettings{
	assetsDir: "assets",
	uvMap:     "uv_map.txt",
	blocks:    "blocks.yaml",
	strictUV:  false, // skipped uv records are logged, not fatal
}

// GetAssetsDir returns the assets directory
func GetAssetsDir() string {
	globalAssetSettings.mu.RLock()
	defer globalAssetSettings.mu.RUnlock()
	return globalAssetSettings.assetsDir
}

// SetAssetsDir sets the assets directory
func SetAssetsDir(dir string) {
	globalAssetSettings.mu.Lock()
	defer globalAssetSettings.mu.Unlock()
	globalAssetSettings.assetsDir = dir
}

// GetUVMap returns the uv map file as configured. A relative name is read
// from the assets directory.
func GetUVMap() string {
	globalAssetSettings.mu.RLock()
	defer globalAssetSettings.mu.RUnlock()
	return globalAssetSettings.uvMap
}

// SetUVMap sets the uv map file name
func SetUVMap(name string) {
	globalAssetSettings.mu.Lock()
	defer globalAssetSettings.mu.Unlock()
	globalAssetSettings.uvMap = name
}

// GetBlocksPath returns the block attribute file, or "" when none is set
func GetBlocksPath() string {
	globalAssetSettings.mu.RLock()
	defer globalAssetSettings.mu.RUnlock()
	if globalAssetSettings.blocks == "" {
		return ""
	}
	return resolve(globalAssetSettings.assetsDir, globalAssetSettings.blocks)
}

// SetBlocks sets the block attribute file name; "" disables it
func SetBlocks(name string) {
	globalAssetSettings.mu.Lock()
	defer globalAssetSettings.mu.Unlock()
	globalAssetSettings.blocks = name
}

// GetStrictUV returns whether uv map warnings should fail the load
func GetStrictUV() bool {
	globalAssetSettings.mu.RLock()
	defer globalAssetSettings.mu.RUnlock()
	return globalAssetSettings.strictUV
}

// SetStrictUV sets whether uv map warnings should fail the load
func SetStrictUV(strict bool) {
	globalAssetSettings.mu.Lock()
	defer globalAssetSettings.mu.Unlock()
	globalAssetSettings.strictUV = strict
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// File is the on-disk YAML layout. Zero values leave the current setting alone.
type File struct {
	AssetsDir string   `yaml:"assets_dir"`
	UVMap     string   `yaml:"uv_map"`
	Blocks    *string  `yaml:"blocks"`
	StrictUV  *bool    `yaml:"strict_uv"`
	Mesh      MeshFile `yaml:"mesh"`
}

type MeshFile struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// Load reads a YAML config file and applies it to the global settings.
// If path == "", it falls back to the VOXEL_CONFIG environment variable and
// does nothing when that is unset too.
func Load(path string) error {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("could not unmarshal config yaml: %w", err)
	}

	Apply(f)
	return nil
}

// Apply copies every set field of f into the global settings.
func Apply(f File) {
	if f.AssetsDir != "" {
		SetAssetsDir(f.AssetsDir)
	}
	if f.UVMap != "" {
		SetUVMap(f.UVMap)
	}
	if f.Blocks != nil {
		SetBlocks(*f.Blocks)
	}
	if f.StrictUV != nil {
		SetStrictUV(*f.StrictUV)
	}
	if f.Mesh.Workers > 0 {
		SetMeshWorkers(f.Mesh.Workers)
	}
	if f.Mesh.QueueSize > 0 {
		SetMeshQueueSize(f.Mesh.QueueSize)
	}
}
