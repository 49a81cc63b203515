package common

const (
	// TPS is the fixed simulation rate.
	TPS = 60
	// FixedDelta is the seconds advanced by one simulation tick.
	FixedDelta = 1.0 / TPS

	// Gravity is world gravity in units per second squared, before any body
	// gravity scale. Units are metres, +Y up.
	Gravity = 9.81

	// TileSize is the world size of one level tile.
	TileSize = 1.0
	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit = 32.0

	ScreenWidth  = 960
	ScreenHeight = 540
)
