package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/entity"
	"github.com/milk9111/doorway/ecs/system"
	"github.com/milk9111/doorway/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickSeconds = 1.0 / 60
)

type doorInstance struct {
	prefab string
	pos    mgl64.Vec3
	ent    ecs.Entity
}

type Game struct {
	frames int

	world   *ecs.World
	render  *system.RenderSystem
	scripts *system.ScriptSystem
	watcher *prefabs.Watcher
	doors   []doorInstance
}

func NewGame() *Game {
	w := ecs.NewWorld()
	w.SetTriggerWorld(ecs.NewTriggerWorld())

	scripts := system.NewScriptSystem()
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerSystem())
	w.AddSystem(system.NewTriggerSystem())
	w.AddSystem(system.NewDoorSystem())
	w.AddSystem(system.NewHandleSystem())
	w.AddSystem(system.NewAudioSystem())
	w.AddSystem(scripts)

	g := &Game{
		world:   w,
		render:  system.NewRenderSystem(),
		scripts: scripts,
		doors: []doorInstance{
			{prefab: "door.yaml", pos: mgl64.Vec3{420, 280, 0}},
			{prefab: "door_keypad.yaml", pos: mgl64.Vec3{860, 280, 0}},
		},
	}

	if _, err := entity.BuildPlayer(w, baseWidth/2, baseHeight-140); err != nil {
		log.Printf("build player: %v", err)
	}
	g.buildDoors()

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("prefab hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g
}

func (g *Game) buildDoors() {
	for i := range g.doors {
		d := &g.doors[i]
		spec, err := prefabs.LoadDoorSpec(d.prefab)
		if err != nil {
			log.Printf("load door %s: %v", d.prefab, err)
			continue
		}
		ent, err := entity.BuildDoor(g.world, spec, d.pos)
		if err != nil {
			log.Printf("build door %s: %v", d.prefab, err)
			continue
		}
		d.ent = ent
	}
}

func (g *Game) reloadDoors() {
	for i := range g.doors {
		d := &g.doors[i]
		if d.ent != 0 {
			g.scripts.Invalidate(d.ent)
			entity.DestroyDoor(g.world, d.ent)
			d.ent = 0
		}
	}
	g.buildDoors()
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		reload := false
	drain:
		for {
			select {
			case name, ok := <-g.watcher.Events:
				if !ok {
					g.watcher = nil
					break drain
				}
				log.Printf("prefab changed: %s", name)
				reload = true
			case err, ok := <-g.watcher.Errors:
				if ok && err != nil {
					log.Printf("prefab watch: %v", err)
				}
			default:
				break drain
			}
		}
		if reload {
			g.reloadDoors()
		}
	}

	g.world.Update(tickSeconds)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
