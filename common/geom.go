package common

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// ErrOutOfRange is returned when a RangeMapper receives a value outside its
// input domain.
var ErrOutOfRange = errors.New("common: value out of range")

// Distance returns the euclidean distance between two points.
func Distance(p1, p2 cp.Vector) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// Angle returns the angle of the vector pointing from p2 to p1.
func Angle(p1, p2 cp.Vector) float64 {
	return math.Atan2(p1.Y-p2.Y, p1.X-p2.X)
}

func AngleToVector(angle, magnitude float64) cp.Vector {
	return cp.Vector{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

func AngleFromVector(v cp.Vector) float64 {
	return math.Atan2(v.Y, v.X)
}

func Speed(v cp.Vector) float64 {
	return math.Abs(math.Hypot(v.X, v.Y))
}

// DistanceToSurface is the gap between two circles. It goes negative once
// they overlap.
func DistanceToSurface(p1 cp.Vector, r1 float64, p2 cp.Vector, r2 float64) float64 {
	return Distance(p1, p2) - (r1 + r2)
}

type Range struct {
	Min float64
	Max float64
}

// RangeMapper linearly remaps values from one range onto another.
type RangeMapper struct {
	In  Range
	Out Range
}

func MapToRange(in, out Range) RangeMapper {
	return RangeMapper{In: in, Out: out}
}

// Map remaps v. Values outside the input range are rejected rather than
// clamped.
func (m RangeMapper) Map(v float64) (float64, error) {
	if v < m.In.Min || v > m.In.Max || math.IsNaN(v) {
		return 0, fmt.Errorf("map %v in [%v..%v]: %w", v, m.In.Min, m.In.Max, ErrOutOfRange)
	}
	span := m.In.Max - m.In.Min
	if span == 0 {
		return m.Out.Min, nil
	}
	return (v-m.In.Min)*(m.Out.Max-m.Out.Min)/span + m.Out.Min, nil
}

// MustMap is Map for callers that guarantee v is in range. It panics
// otherwise.
func (m RangeMapper) MustMap(v float64) float64 {
	out, err := m.Map(v)
	if err != nil {
		panic(err)
	}
	return out
}
