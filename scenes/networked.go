package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/assets"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/network"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/systems"
	"github.com/sablewood/sablewood/systems/factory"
	"github.com/sablewood/sablewood/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene runs the game against a server: the world, commands, chat,
// and voice all arrive over the wire, and local actions are mirrored back.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	dispatcher   *systems.Dispatcher
	chatUI       *ui.ChatUI
	once         sync.Once
}

func NewNetworkedScene(sc SceneChanger) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    network.NewClient(),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		if err := ns.netClient.LastError(); err != nil {
			log.Printf("[networked] leaving: %v", err)
		}
		ns.netClient.Disconnect()
		ns.sceneChanger.ChangeScene(NewMenuScene(ns.sceneChanger))
		return
	}

	ns.drainNetwork()
	ns.ecsWorld.Update()

	if systems.GetOrCreateChat(ns.ecsWorld).Open {
		ns.chatUI.Update()
	}
}

func (ns *NetworkedScene) drainNetwork() {
	if upd := ns.netClient.LatestMapUpdate(); upd != nil {
		ns.dispatcher.ApplyMapUpdate(*upd)
	}
	for _, cmd := range ns.netClient.DrainCommands() {
		ns.dispatcher.Apply(cmd)
	}
	for _, msg := range ns.netClient.DrainChat() {
		systems.ApplyChatMessage(ns.ecsWorld, msg)
	}
	for _, srvErr := range ns.netClient.DrainErrors() {
		systems.AppendSystemChat(ns.ecsWorld, srvErr.Content)
	}

	vc := systems.GetOrCreateVoice(ns.ecsWorld)
	if clips := ns.netClient.DrainAudio(vc.Assembler); len(clips) > 0 {
		vc.Pending = append(vc.Pending, clips...)
	}
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}
	ns.ecsWorld.Draw(screen)

	if systems.GetOrCreateChat(ns.ecsWorld).Open {
		ns.chatUI.UI.Draw(screen)
	}
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	ns.dispatcher = systems.NewDispatcher(ns.ecsWorld,
		func(upd messages.MapUpdate) {
			systems.ApplyMapUpdate(ns.ecsWorld, upd)
		},
		func() {
			world := assets.GenerateWorld(cfg.World.DefaultWidth, cfg.World.DefaultHeight, cfg.World.Seed)
			systems.BuildWorld(ns.ecsWorld, world)
		},
	)

	sendCommand := func(cmd messages.Command) {
		if ns.netClient.State() != network.StateJoinedGame {
			return
		}
		if err := ns.netClient.SendMessage(cmd); err != nil {
			log.Printf("[networked] send command: %v", err)
		}
	}
	sendVoice := func(blob []byte) {
		if ns.netClient.State() != network.StateJoinedGame {
			return
		}
		if err := ns.netClient.SendVoice(blob); err != nil {
			log.Printf("[networked] send voice: %v", err)
		}
	}

	ns.ecsWorld.AddSystem(systems.UpdateInput)
	ns.ecsWorld.AddSystem(systems.NewUpdateControl(ns.dispatcher, sendCommand, sendVoice))
	ns.ecsWorld.AddSystem(systems.UpdateMovement)
	ns.ecsWorld.AddSystem(systems.UpdateAnimations)
	ns.ecsWorld.AddSystem(systems.UpdateEffects)
	ns.ecsWorld.AddSystem(systems.UpdateRecording)
	ns.ecsWorld.AddSystem(systems.UpdateVoice)
	ns.ecsWorld.AddSystem(systems.UpdateDebugObjects)
	ns.ecsWorld.AddSystem(systems.UpdateCamera)

	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawWorld)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawEntities)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawDebug)

	// Start from the generated meadow; the server's first map update
	// replaces it.
	world := assets.GenerateWorld(cfg.World.DefaultWidth, cfg.World.DefaultHeight, cfg.World.Seed)
	factory.CreateSpace(ns.ecsWorld, world.Width, world.Height)
	factory.CreateCamera(ns.ecsWorld)
	systems.BuildWorld(ns.ecsWorld, world)

	settings := systems.GetOrCreateSettings(ns.ecsWorld)
	factory.CreatePlayer(ns.ecsWorld, settings.PlayerName, world.Width/2, world.Height/2, nil)
	systems.SnapCamera(ns.ecsWorld)

	chat := systems.GetOrCreateChat(ns.ecsWorld)
	ns.chatUI = ui.NewChatUI(chat,
		func(text string) {
			systems.ApplyChatMessage(ns.ecsWorld, messages.ChatMessage{From: settings.PlayerName, Text: text})
			if err := ns.netClient.SendChat(settings.PlayerName, text); err != nil {
				log.Printf("[networked] send chat: %v", err)
			}
		},
		func() { systems.StartRecording(ns.ecsWorld) },
		func() {
			if blob, ok := systems.StopRecording(ns.ecsWorld); ok {
				sendVoice(blob)
			}
		},
	)

	ns.netClient.Connect(cfg.Net.Address, cfg.Net.Version, settings.PlayerName)
}
