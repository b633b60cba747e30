package components

import "github.com/yohamta/donburi"

// MainMenuOption identifies one row of the main menu
type MainMenuOption int

const (
	MainMenuExplore MainMenuOption = iota // offline world
	MainMenuConnect                       // join a server
	MainMenuExit
)

// MenuData stores main menu state (singleton component)
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()
