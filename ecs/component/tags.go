package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Solid marks static level geometry, stored as its world-space box.
type Solid struct {
	X, Y, W, H float64
}

var SolidComponent = NewComponent[Solid]()
