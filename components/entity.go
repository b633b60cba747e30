package components

import "github.com/yohamta/donburi"

// EntityData is the plain record identifying a displayed game object.
type EntityData struct {
	ID      string
	Type    string
	State   string
	Variant int
}

var Entity = donburi.NewComponentType[EntityData]()
