package slider

import (
	"errors"
	"math"
)

// ErrDegenerateRange is returned by Resolve when min equals max, leaving no
// step to map positions onto.
var ErrDegenerateRange = errors.New("range has no steps")

// Geometry caches the pixel layout of a track along its active axis.
type Geometry struct {
	TrackLength  float64
	KnotLength   float64
	OriginOffset float64
	StepCount    int
	SnapGap      float64
}

// Resolve computes the drag geometry for a track. On ErrDegenerateRange the
// returned Geometry is still usable: it has zero steps and maps everything to
// the start of the track.
func Resolve(trackLength, knotLength, step, min, max float64) (Geometry, error) {
	g := Geometry{TrackLength: trackLength, KnotLength: knotLength}
	if step <= 0 || !isFinite(step) {
		return g, ErrInvalidStep
	}
	g.StepCount = int(math.Ceil((max - min) / step))
	if g.StepCount <= 0 {
		g.StepCount = 0
		return g, ErrDegenerateRange
	}
	g.SnapGap = g.Valuable() / float64(g.StepCount)
	return g, nil
}

// Valuable is the distance the knot can travel: the track minus the knot.
func (g Geometry) Valuable() float64 {
	v := g.TrackLength - g.KnotLength
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// KnotHalf is half the knot length, the distance from the knot's leading
// edge to its centre.
func (g Geometry) KnotHalf() float64 {
	if g.KnotLength <= 0 {
		return 0
	}
	return g.KnotLength / 2
}
