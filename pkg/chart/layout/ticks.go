package layout

import "math"

// Tick increment thresholds. An increment is bumped to the next 1/2/5/10
// multiple when the raw step crosses the geometric midpoint between two
// candidates.
const (
	e10 = 7.0710678118654755 // sqrt(50)
	e5  = 3.1622776601683795 // sqrt(10)
	e2  = 1.4142135623730951 // sqrt(2)
)

// TickValues returns approximately count evenly spaced, round values
// covering [start, stop]. Values are multiples of a power of ten times
// 1, 2 or 5. Returns nil for an empty or inverted interval or a
// non-positive count; ticks are display-only and carry no invariant
// beyond even spacing.
func TickValues(start, stop float64, count int) []float64 {
	if count <= 0 || stop <= start {
		return nil
	}

	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) {
		return nil
	}

	var first, last float64
	if inc > 0 {
		first = math.Ceil(start / inc)
		last = math.Floor(stop / inc)
	} else {
		// Sub-unit steps carry the reciprocal to keep tick values exact:
		// dividing by an integer avoids accumulating binary fractions like
		// 0.2 that would drop the final tick.
		first = math.Ceil(start * -inc)
		last = math.Floor(stop * -inc)
	}

	n := int(last-first) + 1
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		if inc > 0 {
			out[i] = (first + float64(i)) * inc
		} else {
			out[i] = (first + float64(i)) / -inc
		}
	}
	return out
}

// tickIncrement picks the rounded step size for roughly count ticks over
// [start, stop]. For steps below 1 it returns the negated reciprocal.
func tickIncrement(start, stop float64, count int) float64 {
	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	factor := 1.0
	switch ratio := raw / math.Pow(10, power); {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}
