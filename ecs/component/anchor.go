package component

import "github.com/jakecoffman/cp"

// ProbeAnchors are the ground-check and wall-check points, as offsets from
// the body centre in world units.
type ProbeAnchors struct {
	Ground cp.Vector
	Wall   cp.Vector
}

var ProbeAnchorsComponent = NewComponent[ProbeAnchors]()
