package component

// Script attaches a tengo behavior script to a door. The script may define
// onOpen(door) and onClose(door); either may be omitted.
type Script struct {
	Path string
}

var ScriptComponent = NewComponent[Script]()
