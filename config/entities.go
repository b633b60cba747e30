package config

import "fmt"

// PartKind identifies one layer of a composite character. Parts are drawn
// in PartOrder, body first.
type PartKind int

const (
	PartBody PartKind = iota
	PartOutfit
	PartCloak
	PartFace
	PartHair
	PartHat
	PartCount // must be last
)

var partNames = map[PartKind]string{
	PartBody:   "body",
	PartOutfit: "outfit",
	PartCloak:  "cloak",
	PartFace:   "face",
	PartHair:   "hair",
	PartHat:    "hat",
}

func (p PartKind) String() string { return partNames[p] }

// PartOrder is the back-to-front draw order for character parts.
var PartOrder = []PartKind{PartBody, PartOutfit, PartCloak, PartFace, PartHair, PartHat}

// PartSheetPath returns the spritesheet image for one part variant.
func PartSheetPath(kind PartKind, variant int) string {
	return fmt.Sprintf("assets/images/character/%s/%d.png", kind, variant)
}

// EntityConfig parameterizes the generic sprite entity: which sheet to
// load, how it is sliced, and which animation plays per state tag.
type EntityConfig struct {
	Sheet       string
	Columns     int
	Rows        int
	FrameWidth  int
	FrameHeight int
	Animations  map[StateID]AnimationDef
	Default     StateID
	Bob         bool // prop drifts up and down on a tween
}

// Entities is the static catalog of spawnable entity types, keyed by the
// type tag carried in map payloads.
var Entities = map[string]EntityConfig{
	"hen": {
		Sheet:       "assets/images/entities/hen.png",
		Columns:     4,
		Rows:        4,
		FrameWidth:  32,
		FrameHeight: 32,
		Animations: map[StateID]AnimationDef{
			IdleDown:  uniform(0, 1, 500),
			WalkDown:  uniform(4, 7, 160),
			WalkLeft:  uniform(8, 11, 160),
			WalkRight: uniform(12, 15, 160),
		},
		Default: IdleDown,
	},
	"sheep": {
		Sheet:       "assets/images/entities/sheep.png",
		Columns:     4,
		Rows:        4,
		FrameWidth:  48,
		FrameHeight: 48,
		Animations: map[StateID]AnimationDef{
			IdleDown:  uniform(0, 1, 700),
			WalkDown:  uniform(4, 7, 200),
			WalkLeft:  uniform(8, 11, 200),
			WalkRight: uniform(12, 15, 200),
		},
		Default: IdleDown,
	},
	"oak": {
		Sheet:       "assets/images/props/oak.png",
		Columns:     1,
		Rows:        1,
		FrameWidth:  96,
		FrameHeight: 128,
		Animations: map[StateID]AnimationDef{
			StateLoop: {Frames: []int{0}, Timing: []float64{1000}, Loop: true},
		},
		Default: StateLoop,
	},
	"flower": {
		Sheet:       "assets/images/props/flower.png",
		Columns:     4,
		Rows:        1,
		FrameWidth:  32,
		FrameHeight: 32,
		Animations: map[StateID]AnimationDef{
			StateLoop: uniform(0, 3, 450),
		},
		Default: StateLoop,
	},
	"butterfly": {
		Sheet:       "assets/images/props/butterfly.png",
		Columns:     4,
		Rows:        1,
		FrameWidth:  16,
		FrameHeight: 16,
		Animations: map[StateID]AnimationDef{
			StateLoop: uniform(0, 3, 110),
		},
		Default: StateLoop,
		Bob:     true,
	},
	"rock": {
		Sheet:       "assets/images/props/rock.png",
		Columns:     1,
		Rows:        1,
		FrameWidth:  32,
		FrameHeight: 32,
		Animations: map[StateID]AnimationDef{
			StateLoop: {Frames: []int{0}, Timing: []float64{1000}, Loop: true},
		},
		Default: StateLoop,
	},
}

// Terrain tile sheets. Soil is a single tile; grass carries hashed
// sub-variants picked per cell.
var Terrain = struct {
	SoilSheet     string
	GrassSheet    string
	GrassColumns  int
	GrassRows     int
	GrassVariants int
}{
	SoilSheet:     "assets/images/terrain/soil.png",
	GrassSheet:    "assets/images/terrain/grass.png",
	GrassColumns:  2,
	GrassRows:     2,
	GrassVariants: 4,
}
