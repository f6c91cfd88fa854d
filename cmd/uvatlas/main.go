package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"mini-voxel/internal/atlas"
	"mini-voxel/internal/config"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/registry"
	"mini-voxel/internal/world"
	"mini-voxel/pkg/blockmodel"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults to $VOXEL_CONFIG)")
		uvPath     = flag.String("uv", "", "UV map file relative to the working directory, overrides the config")
		atlasPath  = flag.String("atlas", "", "atlas PNG to cut preview tiles from")
		outPath    = flag.String("out", "", "write a face preview PNG here")
		tileSize   = flag.Int("tile", 32, "preview tile size in pixels")
		demoMesh   = flag.Bool("mesh", false, "mesh a small demo world with the loaded catalog")
	)
	flag.Parse()

	if err := run(*configPath, *uvPath, *atlasPath, *outPath, *tileSize, *demoMesh); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, uvPath, atlasPath, outPath string, tileSize int, demoMesh bool) error {
	if err := config.Load(configPath); err != nil {
		return err
	}
	if uvPath != "" {
		// Flag paths are relative to the working directory, config paths to assets_dir
		abs, err := filepath.Abs(uvPath)
		if err != nil {
			return fmt.Errorf("could not resolve uv map path: %w", err)
		}
		config.SetUVMap(abs)
	}

	loader := registry.NewUVLoader(config.GetAssetsDir())
	cat, err := buildCatalog(loader)
	if err != nil {
		return err
	}
	printCatalog(os.Stdout, cat)

	if outPath != "" {
		if err := writePreview(cat, atlasPath, outPath, tileSize); err != nil {
			return err
		}
	}

	if demoMesh {
		if err := meshDemo(cat, loader); err != nil {
			return err
		}
	}

	log.Printf("timings: %s", profiling.TopN(5))
	return nil
}

func buildCatalog(loader *blockmodel.Loader) (*registry.Catalog, error) {
	var opts []registry.Option
	if path := config.GetBlocksPath(); path != "" {
		attrs, err := registry.LoadAttributes(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, registry.WithAttributes(attrs))
	}
	opts = append(opts, registry.WithDefaultFaces())
	cat := registry.NewCatalog(opts...)

	m, err := registry.LoadUVFile(cat, loader, config.GetUVMap())
	if err != nil {
		return nil, err
	}
	if config.GetStrictUV() {
		if err := m.Err(); err != nil {
			return nil, fmt.Errorf("uv map has %d bad records: %w", len(m.Warnings), err)
		}
	}
	return cat, nil
}

func printCatalog(out io.Writer, cat *registry.Catalog) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BLOCK\tOPAQUE\tLIQUID\tANIM\tCOLOR\tYPOS UV")
	for _, bt := range cat.Types() {
		a := cat.Attributes(bt)
		faces, _ := cat.Faces(bt)
		c := a.Color
		uv := faces[blockmodel.YPos].Vertices[0].UV
		fmt.Fprintf(tw, "%s\t%t\t%t\t%t\t%.2f,%.2f,%.2f,%.2f\t%.4f,%.4f\n",
			bt, a.Opaque, a.Liquid, a.Animatable, c[0], c[1], c[2], c[3], uv[0], uv[1])
	}
	tw.Flush()
}

func writePreview(cat *registry.Catalog, atlasPath, outPath string, tileSize int) error {
	var src image.Image
	if atlasPath != "" {
		img, err := atlas.LoadImage(atlasPath)
		if err != nil {
			return err
		}
		src = img
	}

	preview := atlas.RenderPreview(cat, src, tileSize)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, preview); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	log.Printf("Wrote %dx%d preview to %s", preview.Bounds().Dx(), preview.Bounds().Dy(), outPath)
	return nil
}

// meshDemo lays out a few layered columns with a pond and a frozen patch
// across chunk borders and meshes them on the worker pool. It then edits a
// border block and reloads the uv map, remeshing only what went dirty.
func meshDemo(cat *registry.Catalog, loader *blockmodel.Loader) error {
	w := world.NewEmpty()
	for x := -8; x < 24; x++ {
		for z := -8; z < 8; z++ {
			w.Set(x, 0, z, world.BlockTypeBedrock)
			w.Set(x, 1, z, world.BlockTypeStone)
			w.Set(x, 2, z, world.BlockTypeDirt)
			switch {
			case x >= 0 && x < 6 && z >= 0 && z < 4:
				w.Set(x, 3, z, world.BlockTypeWater)
			case x >= 10 && x < 14:
				w.Set(x, 3, z, world.BlockTypeIce)
			default:
				w.Set(x, 3, z, world.BlockTypeGrass)
			}
		}
	}
	w.Set(4, 4, -4, world.BlockTypeWood)
	w.Set(4, 5, -4, world.BlockTypeLeaf)
	w.Set(20, 4, 0, world.BlockTypeLava)
	w.Set(20, 5, 0, world.BlockTypeSnow)

	pool := meshing.NewWorkerPool(cat, config.GetMeshWorkers(), config.GetMeshQueueSize())
	defer pool.Shutdown()

	if _, err := meshDirty(pool, w); err != nil {
		return err
	}

	// x == 15 sits on the border with the next chunk, so both remesh
	w.Set(15, 4, 0, world.BlockTypeWood)
	n, err := meshDirty(pool, w)
	if err != nil {
		return err
	}
	log.Printf("remeshed %d chunks after a border edit", n)

	if _, err := registry.ReloadUVFile(cat, loader, config.GetUVMap()); err != nil {
		return err
	}
	for _, c := range w.Chunks() {
		c.MarkDirty()
	}
	n, err = meshDirty(pool, w)
	if err != nil {
		return err
	}
	log.Printf("remeshed %d chunks after reloading the uv map", n)
	return nil
}

// meshDirty meshes every dirty chunk of w and returns how many it meshed.
func meshDirty(pool *meshing.WorkerPool, w *world.World) (int, error) {
	chunks := w.DirtyChunks()
	results := make(chan meshing.MeshResult, len(chunks))
	ctx := context.Background()
	for _, c := range chunks {
		job := meshing.MeshJob{World: w, Chunk: c, Coord: c.Coord(), ResultChan: results}
		if err := pool.SubmitJobBlocking(ctx, job); err != nil {
			return 0, err
		}
	}

	for range chunks {
		r := <-results
		if r.Error != nil {
			return 0, fmt.Errorf("mesh %v: %w", r.Coord, r.Error)
		}
		log.Printf("chunk %v: %d opaque faces, %d transparent faces",
			r.Coord, r.Mesh.Opaque.FaceCount(), r.Mesh.Transparent.FaceCount())
	}
	return len(chunks), nil
}
