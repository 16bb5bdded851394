package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DoorSpec is the authored configuration for one door prefab.
type DoorSpec struct {
	Name    string            `yaml:"name"`
	Door    DoorBehaviorSpec  `yaml:"door"`
	Trigger TriggerSpec       `yaml:"trigger"`
	Handle  *HandleSpec       `yaml:"handle"`
	Audio   []AudioSpec       `yaml:"audio"`
	Script  string            `yaml:"script"`
}

type DoorBehaviorSpec struct {
	SwingAngle  float64  `yaml:"swing_angle"` // degrees
	SwingSpeed  float64  `yaml:"swing_speed"` // travel units per second
	Axis        Vec3Spec `yaml:"axis"`
	HingeOffset Vec3Spec `yaml:"hinge_offset"`
	StartOpen   bool     `yaml:"start_open"`
	KeepOpen    bool     `yaml:"keep_open"`
	// ToggleKey empty or "none" means proximity-only.
	ToggleKey   string `yaml:"toggle_key"`
	TurnOnClose bool   `yaml:"turn_on_close"`
}

type TriggerSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HandleSpec struct {
	Target       Vec3Spec `yaml:"target"` // degrees triple, converted once
	TurnSpeed    float64  `yaml:"turn_speed"`
	ReleaseSpeed float64  `yaml:"release_speed"`
	Offset       Vec3Spec `yaml:"offset"` // position relative to the leaf
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadDoorSpec(name string) (*DoorSpec, error) {
	spec, err := LoadSpec[DoorSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
