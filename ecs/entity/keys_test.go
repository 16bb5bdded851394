package entity

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  ebiten.Key
		ok   bool
	}{
		{"empty_sentinel", "", 0, false},
		{"none_sentinel", "none", 0, false},
		{"none_mixed_case", " None ", 0, false},
		{"letter", "e", ebiten.KeyE, true},
		{"letter_upper", "Q", ebiten.KeyQ, true},
		{"digit", "7", ebiten.KeyDigit7, true},
		{"space", "space", ebiten.KeySpace, true},
		{"enter", "enter", ebiten.KeyEnter, true},
		{"arrow", "up", ebiten.KeyArrowUp, true},
		{"unknown", "super+hyper", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := keyFromName(tc.in)
			if ok != tc.ok || key != tc.key {
				t.Fatalf("keyFromName(%q) = (%v, %v), want (%v, %v)", tc.in, key, ok, tc.key, tc.ok)
			}
		})
	}
}
