package components

import (
	"encoding/json"
	"fmt"

	"github.com/softlock-games/viewfinder/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Default clipping planes used by the standard constructors.
const (
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 2000.0
)

// ProjectionKind selects which parameter set of ProjectionData is active.
type ProjectionKind int

const (
	Orthographic ProjectionKind = iota
	Perspective
)

func (k ProjectionKind) String() string {
	switch k {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	}
	return "unknown"
}

// ProjectionData describes how a camera maps view space to clip space. It is
// a tagged union over the two projection kinds, stored as a flat value struct
// so it stays copyable and msgpack/JSON friendly. Only the fields of the
// active Kind are meaningful; the constructors leave the rest zeroed.
//
// None of the parameters are validated. Degenerate input (left == right,
// zero aspect, fov outside (0, π)) flows through Matrix as Inf/NaN entries
// rather than an error; downstream rendering is expected to cope.
type ProjectionData struct {
	Kind ProjectionKind

	// Orthographic clipping planes.
	Left, Right, Top, Bottom float32

	// Perspective parameters. FovY is the vertical field of view in radians.
	FovY   float32
	Aspect float32

	// Near/far planes, shared by both kinds.
	Near, Far float32
}

var Projection = donburi.NewComponentType[ProjectionData]()

// NewOrthographic builds an orthographic projection with the standard
// near/far planes.
func NewOrthographic(left, right, top, bottom float32) ProjectionData {
	return NewOrthographicWithPlanes(left, right, top, bottom, DefaultNear, DefaultFar)
}

// NewOrthographicWithPlanes builds an orthographic projection with explicit
// near/far planes.
func NewOrthographicWithPlanes(left, right, top, bottom, near, far float32) ProjectionData {
	return ProjectionData{
		Kind:   Orthographic,
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
		Near:   near,
		Far:    far,
	}
}

// NewPerspective builds a perspective projection from an aspect ratio and a
// vertical field of view in degrees, with the standard near/far planes.
func NewPerspective(aspect, fovDegrees float32) ProjectionData {
	return NewPerspectiveWithPlanes(aspect, fovDegrees, DefaultNear, DefaultFar)
}

// NewPerspectiveWithPlanes builds a perspective projection with explicit
// near/far planes. The field of view is given in degrees and stored in
// radians.
func NewPerspectiveWithPlanes(aspect, fovDegrees, near, far float32) ProjectionData {
	return ProjectionData{
		Kind:   Perspective,
		FovY:   gamemath.DegToRad(fovDegrees),
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// Matrix bakes the projection into a 4x4 matrix. It is total over all stored
// scalar values; degenerate parameters produce a degenerate matrix, never an
// error. A Kind outside the two known variants is a programmer error and
// panics.
func (p ProjectionData) Matrix() gamemath.Mat4 {
	switch p.Kind {
	case Orthographic:
		return gamemath.Ortho(p.Left, p.Right, p.Top, p.Bottom, p.Near, p.Far)
	case Perspective:
		return gamemath.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
	}
	panic(fmt.Sprintf("components: unknown projection kind %d", p.Kind))
}

// Zoomed returns a copy of p scaled by the given zoom factor: orthographic
// bounds shrink around their center, perspective field of view narrows. The
// receiver is left untouched so the original parameters survive round trips
// through zoom.
func (p ProjectionData) Zoomed(factor float32) ProjectionData {
	out := p
	switch p.Kind {
	case Orthographic:
		cx := (p.Left + p.Right) / 2
		cy := (p.Top + p.Bottom) / 2
		halfW := (p.Right - p.Left) / 2 / factor
		halfH := (p.Bottom - p.Top) / 2 / factor
		out.Left = cx - halfW
		out.Right = cx + halfW
		out.Top = cy - halfH
		out.Bottom = cy + halfH
	case Perspective:
		out.FovY = p.FovY / factor
	}
	return out
}

// orthoWire and perspectiveWire are the serialized forms of the two variants.
// Only the active variant's parameters hit the wire, keyed by a kind tag.
type orthoWire struct {
	Kind   string  `json:"kind"`
	Left   float32 `json:"left"`
	Right  float32 `json:"right"`
	Top    float32 `json:"top"`
	Bottom float32 `json:"bottom"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

type perspectiveWire struct {
	Kind   string  `json:"kind"`
	FovY   float32 `json:"fovy"`
	Aspect float32 `json:"aspect"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

func (p ProjectionData) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case Orthographic:
		return json.Marshal(orthoWire{
			Kind:   p.Kind.String(),
			Left:   p.Left,
			Right:  p.Right,
			Top:    p.Top,
			Bottom: p.Bottom,
			Near:   p.Near,
			Far:    p.Far,
		})
	case Perspective:
		return json.Marshal(perspectiveWire{
			Kind:   p.Kind.String(),
			FovY:   p.FovY,
			Aspect: p.Aspect,
			Near:   p.Near,
			Far:    p.Far,
		})
	}
	return nil, fmt.Errorf("marshal projection: unknown kind %d", p.Kind)
}

func (p *ProjectionData) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("unmarshal projection: %w", err)
	}

	switch probe.Kind {
	case Orthographic.String():
		var w orthoWire
		if err := json.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("unmarshal orthographic projection: %w", err)
		}
		*p = ProjectionData{
			Kind:   Orthographic,
			Left:   w.Left,
			Right:  w.Right,
			Top:    w.Top,
			Bottom: w.Bottom,
			Near:   w.Near,
			Far:    w.Far,
		}
		return nil
	case Perspective.String():
		var w perspectiveWire
		if err := json.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("unmarshal perspective projection: %w", err)
		}
		*p = ProjectionData{
			Kind:   Perspective,
			FovY:   w.FovY,
			Aspect: w.Aspect,
			Near:   w.Near,
			Far:    w.Far,
		}
		return nil
	}
	return fmt.Errorf("unmarshal projection: unknown kind %q", probe.Kind)
}
