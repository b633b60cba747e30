package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton runtime settings state.
type SettingsData struct {
	PlayerName  string
	VoiceVolume float64
	Muted       bool
	Debug       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
