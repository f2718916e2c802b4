package layout

import "testing"

func TestLinearScaleMap(t *testing.T) {
	tests := []struct {
		name  string
		scale LinearScale
		value float64
		want  float64
	}{
		{
			name:  "domain start maps to range start",
			scale: NewLinear(0, 100, 90, 570),
			value: 0,
			want:  90,
		},
		{
			name:  "domain end maps to range end",
			scale: NewLinear(0, 100, 90, 570),
			value: 100,
			want:  570,
		},
		{
			name:  "midpoint",
			scale: NewLinear(0, 100, 90, 570),
			value: 50,
			want:  330,
		},
		{
			name:  "degenerate domain maps to range start",
			scale: NewLinear(0, 0, 90, 570),
			value: 0,
			want:  90,
		},
		{
			name:  "zero value scale",
			scale: LinearScale{},
			value: 42,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scale.Map(tt.value); !almostEqual(got, tt.want) {
				t.Errorf("Map(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestBandScale(t *testing.T) {
	// Three bands over [20, 260] with 10% padding: step 80, bandwidth 72,
	// each band offset 4 from its step boundary.
	s := NewBand(3, 20, 260, 0.1)

	if !almostEqual(s.Step(), 80) {
		t.Errorf("Step() = %v, want 80", s.Step())
	}
	if !almostEqual(s.Bandwidth(), 72) {
		t.Errorf("Bandwidth() = %v, want 72", s.Bandwidth())
	}

	wantPositions := []float64{24, 104, 184}
	for i, want := range wantPositions {
		if got := s.Position(i); !almostEqual(got, want) {
			t.Errorf("Position(%d) = %v, want %v", i, got, want)
		}
	}

	// Interior gaps are uniform: distance between consecutive bands equals
	// one step, and the gap between a band's bottom and the next band's top
	// is step*padding.
	gap := s.Position(1) - (s.Position(0) + s.Bandwidth())
	if !almostEqual(gap, 8) {
		t.Errorf("inter-band gap = %v, want 8", gap)
	}
}

func TestBandScaleSingleBand(t *testing.T) {
	s := NewBand(1, 20, 260, 0.1)

	if !almostEqual(s.Step(), 240) {
		t.Errorf("Step() = %v, want 240", s.Step())
	}
	if !almostEqual(s.Bandwidth(), 216) {
		t.Errorf("Bandwidth() = %v, want 216", s.Bandwidth())
	}
	if !almostEqual(s.Position(0), 32) {
		t.Errorf("Position(0) = %v, want 32", s.Position(0))
	}
}

func TestBandScaleEmpty(t *testing.T) {
	s := NewBand(0, 20, 260, 0.1)

	if s.Step() != 0 {
		t.Errorf("Step() = %v, want 0", s.Step())
	}
	if s.Bandwidth() != 0 {
		t.Errorf("Bandwidth() = %v, want 0", s.Bandwidth())
	}
}
