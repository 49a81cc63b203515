package component

import "github.com/milk9111/warrior/controller"

// Player stores the live controller and the last tick it produced.
type Player struct {
	Controller *controller.Controller
	Last       controller.TickReport
	Ticks      int
}

var PlayerComponent = NewComponent[Player]()
