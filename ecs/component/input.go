package component

// Input carries the per-tick toggle edge for doors with a configured key.
type Input struct {
	TogglePressed bool
}

var InputComponent = NewComponent[Input]()
