package shader

import (
	"fmt"
	"strings"

	"github.com/df07/raito/pkg/core"
)

// Channels a DebugNormal shader can display
const (
	DebugChannelNormal   = "N"
	DebugChannelPosition = "P"
)

// DebugNormal visualises a shading point attribute as a colour by mapping
// each component from [-1,1] to [0,1].
type DebugNormal struct {
	Channel string
}

// NewDebugNormal creates a debug shader. An empty channel shows the normal.
func NewDebugNormal(channel string) (*DebugNormal, error) {
	switch strings.ToUpper(channel) {
	case "", DebugChannelNormal:
		return &DebugNormal{Channel: DebugChannelNormal}, nil
	case DebugChannelPosition:
		return &DebugNormal{Channel: DebugChannelPosition}, nil
	}
	return nil, fmt.Errorf("unknown debug channel %q", channel)
}

// Evaluate implements core.Shader
func (d *DebugNormal) Evaluate(_ core.Tracer, sp core.ShadingPoint, _ core.Sampler) core.Color {
	v := sp.N
	if d.Channel == DebugChannelPosition {
		v = sp.P
	}
	return core.ColorFromVec3(v.Add(core.NewVec3(1, 1, 1)).Multiply(0.5))
}
