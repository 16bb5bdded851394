package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio is a bank of named one-shot clips. Systems request playback by
// setting Play flags; the audio system consumes them each tick.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Trigger requests playback of the named clip. Unknown names are ignored.
func (a *Audio) Trigger(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return
		}
	}
}

var AudioComponent = NewComponent[Audio]()
