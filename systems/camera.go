package systems

import (
	"math"

	"github.com/sablewood/sablewood/components"
	"github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, clamped to the world so
// the viewport never shows past the map edge.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	player, ok := playerEntry(e)
	if !ok {
		return
	}
	pos := components.Position.Get(player)

	half := float64(config.C.TileSize) / 2
	targetX := pos.X + half
	targetY := pos.Y + half

	if terrain, ok := GetTerrain(e); ok {
		worldW := float64(terrain.Width * config.C.TileSize)
		worldH := float64(terrain.Height * config.C.TileSize)
		screenW := float64(config.C.Width)
		screenH := float64(config.C.Height)

		minX, maxX := screenW/2, worldW-screenW/2
		minY, maxY := screenH/2, worldH-screenH/2
		if minX > maxX {
			minX, maxX = worldW/2, worldW/2
		}
		if minY > maxY {
			minY, maxY = worldH/2, worldH/2
		}
		targetX = math.Max(minX, math.Min(maxX, targetX))
		targetY = math.Max(minY, math.Min(maxY, targetY))
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera immediately, used on scene entry so the
// first frame does not sweep across the map.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	player, ok := playerEntry(e)
	if !ok {
		return
	}
	pos := components.Position.Get(player)
	half := float64(config.C.TileSize) / 2
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = pos.X + half
	camera.Position.Y = pos.Y + half
}
