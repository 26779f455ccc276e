// Package stagedata provides TMX stage parsing shared between the viewer
// client and the director server. It has no dependencies on ebitengine,
// donburi, or resolv — pure data only.
package stagedata

// Stage holds everything parsed from a TMX stage file: the stage bounds in
// pixels, the props placed on it, and any pre-placed camera spots.
type Stage struct {
	Name    string
	Width   int
	Height  int
	Props   []Prop
	Cameras []CameraSpot
}

// Prop is a named rectangle on the stage. Depth is how far the prop sits from
// the camera plane when viewed through a perspective camera; 0 means it was
// not set.
type Prop struct {
	Name       string
	X, Y, W, H float64
	Depth      float64
}

// CameraSpot is a camera pre-placed in the stage file. A spot with a
// rectangle describes an orthographic view covering it; a spot with an "fov"
// property describes a perspective camera instead.
type CameraSpot struct {
	Name       string
	X, Y, W, H float64
	Fov        float64 // degrees; > 0 means perspective
	Aspect     float64 // only meaningful when Fov > 0
}

// IsPerspective reports whether the spot describes a perspective camera.
func (c CameraSpot) IsPerspective() bool {
	return c.Fov > 0
}
