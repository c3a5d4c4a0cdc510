package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Clamp limits v to [lo, hi]. lo wins when the range is empty.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
