package geo

// Canvas dimensions. Every BoundedPoint lives inside [0,Width]x[0,Height].
const (
	Width  = 800
	Height = 600
)
