package component

// Collision layer bits shared by level geometry, the player and the probes.
const (
	LayerGround uint32 = 1 << iota
	LayerPlayer
)

// CollisionLayer declares a collision category and mask so the physics world
// can filter contacts and probes between groups of shapes.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics world treats it as LayerGround.
	Category uint32 `yaml:"category"`
	// Mask is a bitmask of categories this entity collides with. If zero,
	// it collides with everything.
	Mask uint32 `yaml:"mask"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
