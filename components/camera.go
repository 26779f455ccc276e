package components

import (
	"github.com/softlock-games/viewfinder/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData holds a camera's baked projection matrix. The matrix is produced
// once from a ProjectionData and keeps no link back to it; changing projection
// parameters later means rebuilding the camera with CameraFrom.
type CameraData struct {
	Proj gamemath.Mat4 `json:"proj"`
}

var Camera = donburi.NewComponentType[CameraData]()

// CameraFrom bakes a projection into a camera. One-way: the projection
// parameters are not recoverable from the matrix.
func CameraFrom(p ProjectionData) CameraData {
	return CameraData{Proj: p.Matrix()}
}

// NewStandard2D returns a camera for a [-1, 1] viewport in both axes with an
// identity view, the usual setup for screen-space 2D rendering.
func NewStandard2D() CameraData {
	return CameraFrom(NewOrthographic(-1, 1, 1, -1))
}

// NewStandard3D returns a 60 degree perspective camera for the given screen
// dimensions. The width/height division is not guarded: a zero height yields
// a matrix with Inf/NaN entries.
func NewStandard3D(width, height float32) CameraData {
	return CameraFrom(NewPerspective(width/height, 60))
}
