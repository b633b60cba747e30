package messages

// MapData is the terrain grid portion of a map payload.
type MapData struct {
	Width  int
	Height int
	Grid   [][]int
}

// EntityState is one displayed game object. Type selects the catalog entry,
// State the animation tag, Variant the sprite flavor (e.g. hair color).
type EntityState struct {
	ID      string
	Type    string
	TileX   int
	TileY   int
	State   string
	Variant int
}

// MapUpdate replaces the displayed world: terrain plus the entity list.
type MapUpdate struct {
	Map      MapData
	Entities []EntityState
}
