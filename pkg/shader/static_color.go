package shader

import "github.com/df07/raito/pkg/core"

// StaticColor returns the same colour for every shading point
type StaticColor struct {
	Color core.Color
}

// NewStaticColor creates a constant colour shader
func NewStaticColor(color core.Color) *StaticColor {
	return &StaticColor{Color: color}
}

// Evaluate implements core.Shader
func (s *StaticColor) Evaluate(_ core.Tracer, _ core.ShadingPoint, _ core.Sampler) core.Color {
	return s.Color
}
