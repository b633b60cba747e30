package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/assets"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/systems"
	"github.com/sablewood/sablewood/systems/factory"
	"github.com/sablewood/sablewood/ui"
	"github.com/sablewood/sablewood/voice"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the game offline: the meadow comes from the TMX map (or
// the generator when the map is missing) and commands only ever originate
// locally.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	dispatcher   *systems.Dispatcher
	chatUI       *ui.ChatUI
	once         sync.Once
}

// NewWorldScene creates a new offline world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreateChat(ws.ecs).Open {
		ws.chatUI.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if systems.GetOrCreateChat(ws.ecs).Open {
		ws.chatUI.UI.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	ws.dispatcher = systems.NewDispatcher(ws.ecs,
		func(upd messages.MapUpdate) {
			systems.ApplyMapUpdate(ws.ecs, upd)
		},
		func() {
			world := assets.GenerateWorld(cfg.World.DefaultWidth, cfg.World.DefaultHeight, cfg.World.Seed)
			systems.BuildWorld(ws.ecs, world)
		},
	)

	// Offline: loop recordings straight back into playback, through the
	// same sentinel-terminated path a server stream would take.
	loopback := func(blob []byte) {
		vc := systems.GetOrCreateVoice(ws.ecs)
		vc.Assembler.Start()
		if clip := vc.Assembler.Chunk(append(blob, []byte(voice.Sentinel)...)); clip != nil {
			vc.Pending = append(vc.Pending, clip)
		}
	}

	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.NewUpdateControl(ws.dispatcher, nil, loopback))
	ws.ecs.AddSystem(systems.UpdateMovement)
	ws.ecs.AddSystem(systems.UpdateAnimations)
	ws.ecs.AddSystem(systems.UpdateEffects)
	ws.ecs.AddSystem(systems.UpdateRecording)
	ws.ecs.AddSystem(systems.UpdateVoice)
	ws.ecs.AddSystem(systems.UpdateDebugObjects)
	ws.ecs.AddSystem(systems.UpdateCamera)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	// World first, then the space sized from it, then everything living in it.
	world, err := assets.LoadWorld(cfg.World.MapPath)
	if err != nil {
		log.Printf("[world] %v, generating instead", err)
		world = assets.GenerateWorld(cfg.World.DefaultWidth, cfg.World.DefaultHeight, cfg.World.Seed)
	}

	factory.CreateSpace(ws.ecs, world.Width, world.Height)
	factory.CreateCamera(ws.ecs)
	systems.BuildWorld(ws.ecs, world)

	settings := systems.GetOrCreateSettings(ws.ecs)
	factory.CreatePlayer(ws.ecs, settings.PlayerName, world.Width/2, world.Height/2, nil)
	systems.SnapCamera(ws.ecs)

	chat := systems.GetOrCreateChat(ws.ecs)
	ws.chatUI = ui.NewChatUI(chat,
		func(text string) {
			systems.ApplyChatMessage(ws.ecs, messages.ChatMessage{From: settings.PlayerName, Text: text})
		},
		func() { systems.StartRecording(ws.ecs) },
		func() {
			if blob, ok := systems.StopRecording(ws.ecs); ok {
				loopback(blob)
			}
		},
	)
}
