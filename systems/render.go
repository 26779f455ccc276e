package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/shared/gamemath"
	"github.com/softlock-games/viewfinder/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stageZ is the view-space depth props sit at in the orthographic view. Any
// value inside the standard near/far range works; the x/y mapping is what
// matters.
const stageZ float32 = -1

// worldToScreen projects a world-space stage point through the camera matrix
// and maps the normalized device coordinates onto the screen. ok is false for
// points on or behind the projection plane.
func worldToScreen(m gamemath.Mat4, x, y, dollyX, dollyY float64, sw, sh int) (sx, sy float32, ok bool) {
	nx, ny, _, ok := gamemath.Project(m, float32(x-dollyX), float32(y-dollyY), stageZ)
	if !ok {
		return 0, 0, false
	}
	return (nx + 1) / 2 * float32(sw), (1 - ny) / 2 * float32(sh), true
}

func activeDolly(world donburi.World) (x, y float64) {
	if entry, ok := components.Dolly.First(world); ok {
		dolly := components.Dolly.Get(entry)
		return dolly.X, dolly.Y
	}
	return 0, 0
}

// DrawStageView renders the flat stage through the active orthographic
// camera: every prop rectangle projected to the screen, with culled props
// drawn dimmed. Does nothing while a perspective camera is live.
func DrawStageView(e *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := ResolveActiveCamera(e.World)
	if !ok || !camEntry.HasComponent(components.Projection) {
		return
	}
	if components.Projection.Get(camEntry).Kind != components.Orthographic {
		return
	}

	m := components.Camera.Get(camEntry).Proj
	dollyX, dollyY := activeDolly(e.World)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Stage outline, when a stage is loaded.
	if stageEntry, ok := components.Stage.First(e.World); ok {
		if stage := components.Stage.Get(stageEntry).Current; stage != nil {
			drawWorldRect(screen, m, 0, 0, float64(stage.Width), float64(stage.Height),
				dollyX, dollyY, sw, sh, cfg.Render.ViewColor)
		}
	}

	tags.Prop.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry)

		c := cfg.Render.PropColor
		if entry.HasComponent(components.Visible) && !components.Visible.Get(entry).OnScreen {
			c = cfg.Render.CulledColor
		}
		drawWorldRect(screen, m, obj.X, obj.Y, obj.W, obj.H, dollyX, dollyY, sw, sh, c)
	})
}

// drawWorldRect outlines an axis-aligned world rectangle on screen. In an
// orthographic projection the corners stay axis aligned, so two projected
// corners are enough.
func drawWorldRect(screen *ebiten.Image, m gamemath.Mat4, x, y, w, h, dollyX, dollyY float64, sw, sh int, c color.RGBA) {
	x0, y0, ok0 := worldToScreen(m, x, y, dollyX, dollyY, sw, sh)
	x1, y1, ok1 := worldToScreen(m, x+w, y+h, dollyX, dollyY, sw, sh)
	if !ok0 || !ok1 {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, c, false)
}

// DrawLensView renders the perspective debug view: a floor grid plus a marker
// per prop placed by its stage position and depth. Does nothing while an
// orthographic camera is live.
func DrawLensView(e *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := ResolveActiveCamera(e.World)
	if !ok || !camEntry.HasComponent(components.Projection) {
		return
	}
	if components.Projection.Get(camEntry).Kind != components.Perspective {
		return
	}

	m := components.Camera.Get(camEntry).Proj
	dollyX, dollyY := activeDolly(e.World)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawFloorGrid(screen, m, sw, sh)

	var stageW, stageH float64
	if stageEntry, ok := components.Stage.First(e.World); ok {
		if stage := components.Stage.Get(stageEntry).Current; stage != nil {
			stageW, stageH = float64(stage.Width), float64(stage.Height)
		}
	}

	tags.Prop.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) || !entry.HasComponent(components.Prop) {
			return
		}
		obj := components.Object.Get(entry)
		prop := components.Prop.Get(entry)

		depth := prop.Depth
		if depth <= 0 {
			depth = 8
		}

		// Map stage pixels to view space: stage center at the origin, the
		// dolly panning the whole scene, depth pushing the prop away.
		scale := cfg.Render.WorldScale
		cx := (obj.X + obj.W/2 - stageW/2 - dollyX) / scale
		cy := (stageH/2 - (obj.Y + obj.H/2) + dollyY) / scale

		px, py, pz, pw := gamemath.TransformPoint(m, float32(cx), float32(cy), float32(-depth))
		if pw <= 0 || pz < -pw || pz > pw {
			return // behind the camera or outside the depth range
		}
		sx := (px/pw + 1) / 2 * float32(sw)
		sy := (1 - py/pw) / 2 * float32(sh)

		// Marker size falls off with distance.
		size := float32(math.Max(2, 48/float64(pw)/depth*8))
		vector.DrawFilledRect(screen, sx-size/2, sy-size/2, size, size, cfg.Render.MarkerColor, false)
	})
}

func drawFloorGrid(screen *ebiten.Image, m gamemath.Mat4, sw, sh int) {
	extent := cfg.Render.GridExtent
	cell := float32(cfg.Render.GridCell)
	const floorY, nearZ = float32(-1), float32(-2)
	farZ := nearZ - float32(2*extent)*cell

	projectGround := func(x, z float32) (float32, float32, bool) {
		px, py, _, pw := gamemath.TransformPoint(m, x, floorY, z)
		if pw <= 1e-4 {
			return 0, 0, false
		}
		return (px/pw + 1) / 2 * float32(sw), (1 - py/pw) / 2 * float32(sh), true
	}

	for i := -extent; i <= extent; i++ {
		x := float32(i) * cell

		// Lines running away from the camera.
		x0, y0, ok0 := projectGround(x, nearZ)
		x1, y1, ok1 := projectGround(x, farZ)
		if ok0 && ok1 {
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Render.GridColor, false)
		}

		// Cross lines at each depth step.
		z := nearZ - float32(i+extent)*cell
		lx0, ly0, okl := projectGround(-float32(extent)*cell, z)
		lx1, ly1, okr := projectGround(float32(extent)*cell, z)
		if okl && okr {
			vector.StrokeLine(screen, lx0, ly0, lx1, ly1, 1, cfg.Render.GridColor, false)
		}
	}
}
