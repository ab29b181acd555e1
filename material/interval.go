package material

import "math"

// Time is a position on the host animation timeline, expressed in ticks.
type Time int64

const (
	timeNegInf Time = math.MinInt64
	timePosInf Time = math.MaxInt64
)

// Interval is a closed validity range on the animation timeline. The zero
// value is the empty interval.
type Interval struct {
	start Time
	end   Time
	valid bool
}

// Forever returns an interval covering the entire timeline.
func Forever() Interval {
	return Interval{start: timeNegInf, end: timePosInf, valid: true}
}

// EmptyInterval returns an interval containing no time values.
func EmptyInterval() Interval {
	return Interval{}
}

// NewInterval returns the closed interval [start, end]; the empty interval
// if start > end.
func NewInterval(start, end Time) Interval {
	if start > end {
		return Interval{}
	}
	return Interval{start: start, end: end, valid: true}
}

func (iv Interval) IsEmpty() bool {
	return !iv.valid
}

func (iv Interval) Start() Time { return iv.start }
func (iv Interval) End() Time   { return iv.end }

// InInterval reports whether t falls inside the interval.
func (iv Interval) InInterval(t Time) bool {
	return iv.valid && iv.start <= t && t <= iv.end
}

// SetEmpty resets the interval so that it contains no time values.
func (iv *Interval) SetEmpty() {
	*iv = Interval{}
}

// SetInfinite widens the interval to cover the entire timeline.
func (iv *Interval) SetInfinite() {
	*iv = Forever()
}

// Intersect narrows the interval to the overlap with other.
func (iv *Interval) Intersect(other Interval) {
	if !iv.valid || !other.valid {
		iv.SetEmpty()
		return
	}
	if other.start > iv.start {
		iv.start = other.start
	}
	if other.end < iv.end {
		iv.end = other.end
	}
	if iv.start > iv.end {
		iv.SetEmpty()
	}
}
