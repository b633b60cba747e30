package gamemath

// TileVariant deterministically picks a sub-variant for the tile at (x, y).
// The same cell always hashes to the same variant for a given seed, so grass
// patches keep their look across redraws without storing per-tile state.
func TileVariant(x, y int, seed int64, variants int) int {
	if variants <= 1 {
		return 0
	}
	h := uint64(int64(x)*374761393 + int64(y)*668265263 + seed*1442695041)
	h ^= h >> 13
	h *= 1274126177
	h ^= h >> 16
	return int(h % uint64(variants))
}
