package layout

// LinearScale maps a continuous numeric domain onto a pixel range.
// The zero value maps everything to 0.
type LinearScale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// NewLinear builds a linear scale from [domainMin, domainMax] to
// [rangeMin, rangeMax].
func NewLinear(domainMin, domainMax, rangeMin, rangeMax float64) LinearScale {
	return LinearScale{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}
}

// Map converts a domain value to its pixel position. A degenerate domain
// (min == max, e.g. every value in the dataset is zero) maps everything to
// the range start, which collapses bar widths to zero without failing.
func (s LinearScale) Map(v float64) float64 {
	if s.DomainMax == s.DomainMin {
		return s.RangeMin
	}
	t := (v - s.DomainMin) / (s.DomainMax - s.DomainMin)
	return s.RangeMin + t*(s.RangeMax-s.RangeMin)
}

// BandScale maps record positions to equal-sized contiguous vertical bands.
// Bands are keyed by index, not by label text, so duplicate categories each
// occupy their own band. Padding is the fraction of one step left as gap,
// split evenly between the two outer edges; interior gaps are uniform.
type BandScale struct {
	Start, End float64
	Count      int
	Padding    float64
}

// NewBand partitions [start, end] into count equal steps with the given
// padding fraction.
func NewBand(count int, start, end, padding float64) BandScale {
	return BandScale{Start: start, End: end, Count: count, Padding: padding}
}

// Step returns the full height of one band including its share of padding.
func (s BandScale) Step() float64 {
	if s.Count <= 0 {
		return 0
	}
	return (s.End - s.Start) / float64(s.Count)
}

// Bandwidth returns the painted height of one band.
func (s BandScale) Bandwidth() float64 {
	return s.Step() * (1 - s.Padding)
}

// Position returns the top edge of band i in dataset order, top-to-bottom.
func (s BandScale) Position(i int) float64 {
	step := s.Step()
	return s.Start + float64(i)*step + step*s.Padding/2
}
