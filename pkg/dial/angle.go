package dial

import (
	"fmt"
	"math"
)

// The usable arc spans 270 degrees. Angles follow screen coordinates, so the
// dead gap sits around ±π.
const (
	MinAngle = -math.Pi * 0.75
	MaxAngle = math.Pi * 0.75
)

// Mapper converts between values in [Min, Max] and angles on the arc.
type Mapper struct {
	min, max int
}

// NewMapper returns a Mapper for the inclusive range [min, max].
func NewMapper(min, max int) (Mapper, error) {
	if err := checkRange(min, max); err != nil {
		return Mapper{}, fmt.Errorf("mapper [%d, %d]: %w", min, max, err)
	}
	return Mapper{min: min, max: max}, nil
}

// Bounds returns the value range.
func (m Mapper) Bounds() (int, int) { return m.min, m.max }

// ValueToAngle interpolates v onto [MinAngle, MaxAngle]. The endpoints map
// exactly.
func (m Mapper) ValueToAngle(v int) float64 {
	t := float64(v-m.min) / float64(m.max-m.min)
	return MinAngle*(1-t) + MaxAngle*t
}

// PointerToValue returns the value whose direction is nearest to (x, y) in
// the dial's local frame. Only the direction matters; the origin maps through
// angle 0.
func (m Mapper) PointerToValue(x, y float64) int {
	angle := clamp(math.Atan2(y, x), MinAngle, MaxAngle)
	t := (angle - MinAngle) / (MaxAngle - MinAngle)
	span := m.max - m.min
	// Round the offset from min so large bounds keep integer precision.
	off := int(math.Floor(t*float64(span) + 0.5))
	if off < 0 {
		off = 0
	}
	if off > span {
		off = span
	}
	return m.min + off
}

// Point returns the position of v on a circle of radius r.
func (m Mapper) Point(v int, r float64) (float64, float64) {
	a := m.ValueToAngle(v)
	return r * math.Cos(a), r * math.Sin(a)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
