package controller

import "testing"

func TestFacingTracker(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []float64
		wantRight bool
	}{
		{"starts_right", nil, true},
		{"positive_sets_right", []float64{-1, 0.3}, true},
		{"negative_sets_left", []float64{-0.01}, false},
		{"zero_keeps_left", []float64{-1, 0, 0, 0}, false},
		{"zero_keeps_right", []float64{1, 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f FacingTracker
			for _, x := range tc.inputs {
				f.Update(x)
			}
			if f.FacingRight() != tc.wantRight {
				t.Fatalf("FacingRight = %v, want %v", f.FacingRight(), tc.wantRight)
			}
			wantX := 1.0
			if !tc.wantRight {
				wantX = -1
			}
			if d := f.Direction(); d.X != wantX || d.Y != 0 {
				t.Fatalf("Direction = %v, want (%v, 0)", d, wantX)
			}
		})
	}
}
