package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
	"github.com/milk9111/doorway/prefabs"
)

const doorDispatchScript = `
if __event == "opened" {
	onOpen(__door)
} else if __event == "closed" {
	onClose(__door)
}
`

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
}

// ScriptSystem runs per-door tengo hooks on open/close edges. Scripts must
// define onOpen(door) and onClose(door); compiled scripts are cached per
// entity and invalidated when the path changes.
type ScriptSystem struct {
	cache map[ecs.Entity]*scriptRuntime
}

func NewScriptSystem() *ScriptSystem {
	return &ScriptSystem{cache: map[ecs.Entity]*scriptRuntime{}}
}

func (s *ScriptSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventDoor {
			continue
		}
		de, ok := evt.Data.(ecs.DoorEvent)
		if !ok {
			continue
		}
		sc, ok := ecs.Get(w, de.Entity, component.ScriptComponent.Kind())
		if !ok || strings.TrimSpace(sc.Path) == "" {
			continue
		}

		rt, err := s.runtime(de.Entity, sc.Path)
		if err != nil {
			fmt.Printf("door: entity=%s load script error: %v\n", de.Entity, err)
			continue
		}

		door := map[string]any{
			"open":   de.Kind == ecs.DoorEventOpened,
			"travel": de.Travel,
		}
		_ = rt.compiled.Set("__event", string(de.Kind))
		_ = rt.compiled.Set("__door", door)
		if err := rt.compiled.Run(); err != nil {
			fmt.Printf("door: entity=%s script error: %v\n", de.Entity, err)
		}
	}
}

// Invalidate drops the cached script for an entity, forcing a recompile on
// the next event. Used by prefab hot reload.
func (s *ScriptSystem) Invalidate(e ecs.Entity) {
	delete(s.cache, e)
}

func (s *ScriptSystem) runtime(e ecs.Entity, path string) (*scriptRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt != nil && rt.path == path {
		return rt, nil
	}

	scriptBytes, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + doorDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__event", "")
	_ = script.Add("__door", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &scriptRuntime{path: path, compiled: compiled}
	s.cache[e] = rt
	return rt, nil
}
