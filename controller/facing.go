package controller

import "github.com/jakecoffman/cp"

// FacingTracker keeps the left/right orientation. Zero input holds the
// previous facing.
type FacingTracker struct {
	left bool
}

func (f *FacingTracker) Update(x float64) {
	if x > 0 {
		f.left = false
	} else if x < 0 {
		f.left = true
	}
}

func (f *FacingTracker) FacingRight() bool {
	return !f.left
}

// Direction is the unit vector the wall probe is cast along.
func (f *FacingTracker) Direction() cp.Vector {
	if f.left {
		return cp.Vector{X: -1}
	}
	return cp.Vector{X: 1}
}

func (f *FacingTracker) Reset() {
	f.left = false
}
