package component

import "github.com/jakecoffman/cp"

// PlayerTag marks the demo player entity.
type PlayerTag struct{}

// Probe binds an entity to its body in the trigger space.
type Probe struct {
	Body      *cp.Body
	MoveSpeed float64
}

var PlayerTagComponent = NewComponent[PlayerTag]()
var ProbeComponent = NewComponent[Probe]()
