package components

import "fmt"

// CameraComponent tracks the map viewport. X and Z are the world point at
// the centre of the viewport, Zoom is pixels per world unit and Tilt is how
// far walls are pushed down the screen per unit of depth.
type CameraComponent struct {
	X, Z float64
	Zoom float64
	Tilt float64
}

// NewCameraComponent creates a camera looking at the origin
func NewCameraComponent(zoom float64) *CameraComponent {
	return &CameraComponent{
		Zoom: zoom,
		Tilt: 0.5,
	}
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{
		Name: name,
	}
}

func fmtSummary(seed string, rooms, passages, vertices, triangles, outlines int) string {
	return fmt.Sprintf("seed %q: %d rooms, %d passages, %d vertices, %d triangles, %d outlines",
		seed, rooms, passages, vertices, triangles, outlines)
}
