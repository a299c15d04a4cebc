package shader

import "github.com/df07/raito/pkg/core"

// Light is the emissive shader attached to light objects
type Light struct {
	Color     core.Color
	Intensity float64
}

// NewLight creates a new emissive shader
func NewLight(color core.Color, intensity float64) *Light {
	return &Light{Color: color, Intensity: intensity}
}

// Evaluate implements core.Shader; lights never spawn rays
func (l *Light) Evaluate(_ core.Tracer, _ core.ShadingPoint, _ core.Sampler) core.Color {
	return l.Color.Scale(l.Intensity)
}
