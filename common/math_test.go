package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 2, 10, 0, 2},
		{"end", 2, 10, 1, 10},
		{"mid", 2, 10, 0.5, 6},
		{"extrapolate", 0, 1, 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v,%v,%v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"below", -0.5, 0},
		{"inside", 0.25, 0.25},
		{"above", 3, 1},
		{"zero", 0, 0},
		{"one", 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp01(c.in); got != c.want {
				t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
