package factory

import (
	"github.com/sablewood/sablewood/archetypes"
	"github.com/sablewood/sablewood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}
