package slider

import "math"

// Position is a mapped slider state: a quantized value and the knot offset
// along the track that represents it.
type Position struct {
	Value      float64
	KnotOffset float64
}

// PositionToValue maps a pixel offset along the track to a value. Without
// snapping the knot follows the raw (clamped) offset while the value is still
// quantized.
func PositionToValue(offset float64, g Geometry, c Config) Position {
	valuable := g.Valuable()
	offset = clamp(offset, 0, valuable)
	if g.StepCount == 0 || g.SnapGap <= 0 {
		return Position{Value: c.Min}
	}
	steps := math.Round(offset / g.SnapGap)
	p := Position{
		Value:      clamp(steps*c.Step+c.Min, c.Min, c.Max),
		KnotOffset: offset,
	}
	if c.Snapping {
		p.KnotOffset = clamp(steps*g.SnapGap, 0, valuable)
	}
	return p
}

// ValueToPosition quantizes value to the step grid and returns the knot
// offset of that grid point.
func ValueToPosition(value float64, g Geometry, c Config) Position {
	value = clamp(value, c.Min, c.Max)
	if c.Step <= 0 {
		return Position{Value: value}
	}
	steps := math.Round((value - c.Min) / c.Step)
	return Position{
		Value:      clamp(steps*c.Step+c.Min, c.Min, c.Max),
		KnotOffset: clamp(steps*g.SnapGap, 0, g.Valuable()),
	}
}
