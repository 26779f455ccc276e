package netcomponents

import (
	"github.com/softlock-games/viewfinder/components"
	"github.com/yohamta/donburi"
)

// NetProjectionData is the wire form of a camera's projection. Fields are
// flattened to float64 for msgpack; Kind mirrors components.ProjectionKind.
type NetProjectionData struct {
	Kind                     int
	Left, Right, Top, Bottom float64
	FovY, Aspect             float64
	Near, Far                float64
}

var NetProjection = donburi.NewComponentType[NetProjectionData]()

// LerpNetProjection interpolates between two projections for smooth remote
// transitions. When the kind changes there is nothing sensible to blend, so
// the target wins outright.
func LerpNetProjection(from, to NetProjectionData, t float64) *NetProjectionData {
	if from.Kind != to.Kind {
		out := to
		return &out
	}
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return &NetProjectionData{
		Kind:   to.Kind,
		Left:   lerp(from.Left, to.Left),
		Right:  lerp(from.Right, to.Right),
		Top:    lerp(from.Top, to.Top),
		Bottom: lerp(from.Bottom, to.Bottom),
		FovY:   lerp(from.FovY, to.FovY),
		Aspect: lerp(from.Aspect, to.Aspect),
		Near:   lerp(from.Near, to.Near),
		Far:    lerp(from.Far, to.Far),
	}
}

// FromProjection flattens a ProjectionData for the wire.
func FromProjection(p components.ProjectionData) NetProjectionData {
	return NetProjectionData{
		Kind:   int(p.Kind),
		Left:   float64(p.Left),
		Right:  float64(p.Right),
		Top:    float64(p.Top),
		Bottom: float64(p.Bottom),
		FovY:   float64(p.FovY),
		Aspect: float64(p.Aspect),
		Near:   float64(p.Near),
		Far:    float64(p.Far),
	}
}

// Projection rebuilds the ProjectionData this wire form was flattened from.
func (n NetProjectionData) Projection() components.ProjectionData {
	return components.ProjectionData{
		Kind:   components.ProjectionKind(n.Kind),
		Left:   float32(n.Left),
		Right:  float32(n.Right),
		Top:    float32(n.Top),
		Bottom: float32(n.Bottom),
		FovY:   float32(n.FovY),
		Aspect: float32(n.Aspect),
		Near:   float32(n.Near),
		Far:    float32(n.Far),
	}
}

// NetCameraInfoData carries a camera's slot and label. No interpolation —
// discrete values.
type NetCameraInfoData struct {
	Slot  int
	Label string
}

var NetCameraInfo = donburi.NewComponentType[NetCameraInfoData]()

// NetRigData is the rig-wide state broadcast alongside the cameras: which
// slot is live and how many cameras the rig holds. No interpolation.
type NetRigData struct {
	ActiveSlot  int
	CameraCount int
}

var NetRig = donburi.NewComponentType[NetRigData]()
