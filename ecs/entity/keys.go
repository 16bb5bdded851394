package entity

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyFromName resolves an authored key name. Empty and "none" are the
// no-key sentinel: the bool result is false and callers must not register
// any key handling for the door.
func keyFromName(name string) (ebiten.Key, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "", "none":
		return 0, false
	case "space":
		return ebiten.KeySpace, true
	case "enter":
		return ebiten.KeyEnter, true
	case "tab":
		return ebiten.KeyTab, true
	case "up":
		return ebiten.KeyArrowUp, true
	case "down":
		return ebiten.KeyArrowDown, true
	case "left":
		return ebiten.KeyArrowLeft, true
	case "right":
		return ebiten.KeyArrowRight, true
	}
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			return ebiten.KeyA + ebiten.Key(c-'a'), true
		}
		if c >= '0' && c <= '9' {
			return ebiten.KeyDigit0 + ebiten.Key(c-'0'), true
		}
	}
	return 0, false
}
