package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space position and orientation. Rendering projects
// it however it likes; the door systems only ever compose rotations into
// it incrementally.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns a transform at p with identity orientation.
func NewTransform(p mgl64.Vec3) Transform {
	return Transform{Position: p, Rotation: mgl64.QuatIdent()}
}

var TransformComponent = NewComponent[Transform]()
