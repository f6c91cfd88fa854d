package world

type BlockType uint16

const (
	BlockTypeEmpty BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeWater
	BlockTypeSnow
	BlockTypeLava
	BlockTypeBedrock
	BlockTypeIce
	BlockTypeWood
	BlockTypeLeaf

	numBlockTypes
)

// AllBlockTypes lists every block type, EMPTY included, in declaration order.
var AllBlockTypes = func() []BlockType {
	types := make([]BlockType, 0, numBlockTypes)
	for t := BlockTypeEmpty; t < numBlockTypes; t++ {
		types = append(types, t)
	}
	return types
}()

var blockTypeNames = [numBlockTypes]string{
	BlockTypeEmpty:   "EMPTY",
	BlockTypeGrass:   "GRASS",
	BlockTypeDirt:    "DIRT",
	BlockTypeStone:   "STONE",
	BlockTypeWater:   "WATER",
	BlockTypeSnow:    "SNOW",
	BlockTypeLava:    "LAVA",
	BlockTypeBedrock: "BEDROCK",
	BlockTypeIce:     "ICE",
	BlockTypeWood:    "WOOD",
	BlockTypeLeaf:    "LEAF",
}

// blockTypeMap resolves names found in asset files. EMPTY has no entry: it
// never carries geometry.
var blockTypeMap = map[string]BlockType{
	"GRASS":   BlockTypeGrass,
	"DIRT":    BlockTypeDirt,
	"STONE":   BlockTypeStone,
	"WATER":   BlockTypeWater,
	"SNOW":    BlockTypeSnow,
	"LAVA":    BlockTypeLava,
	"BEDROCK": BlockTypeBedrock,
	"ICE":     BlockTypeIce,
	"WOOD":    BlockTypeWood,
	"LEAF":    BlockTypeLeaf,
}

func (t BlockType) String() string {
	if t < numBlockTypes {
		return blockTypeNames[t]
	}
	return "UNKNOWN"
}

// ParseBlockType looks up a block type by its asset-file name.
func ParseBlockType(name string) (BlockType, bool) {
	t, ok := blockTypeMap[name]
	return t, ok
}

// IsBlockName reports whether name is a loadable block type name.
func IsBlockName(name string) bool {
	_, ok := blockTypeMap[name]
	return ok
}

// BlockNames returns every loadable name.
func BlockNames() []string {
	names := make([]string, 0, len(blockTypeMap))
	for t := BlockTypeGrass; t < numBlockTypes; t++ {
		names = append(names, blockTypeNames[t])
	}
	return names
}
