package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDolly is the viewer's camera operator: arrow keys / WASD move the
// dolly, Tab cycles the active camera, +/- glide the zoom, and P toggles the
// selected camera between its two projection kinds.
func UpdateDolly(e *ecs.ECS) {
	dollyEntry, ok := components.Dolly.First(e.World)
	if !ok {
		return
	}
	dolly := components.Dolly.Get(dollyEntry)

	speed := cfg.Cam.DollySpeed
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		speed *= 3
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dolly.X -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dolly.X += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dolly.Y -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dolly.Y += speed
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		CycleActiveCamera(e.World)
	}

	camEntry, ok := ResolveActiveCamera(e.World)
	if !ok {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		nudgeZoom(camEntry, cfg.Cam.ZoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		nudgeZoom(camEntry, 1/cfg.Cam.ZoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ToggleProjection(e.World, camEntry)
	}
}

func nudgeZoom(camEntry *donburi.Entry, step float32) {
	if !camEntry.HasComponent(components.Zoom) {
		return
	}
	zoom := components.Zoom.Get(camEntry)
	target := zoom.Factor * step
	if zoom.Tween != nil {
		// Chain off the in-flight target instead of the current factor so
		// rapid presses accumulate.
		if v, _ := zoom.Tween.Set(cfg.Cam.TweenSeconds); v > 0 {
			target = v * step
		}
	}
	StartZoomTween(camEntry, target)
}

// CycleActiveCamera activates the camera in the next slot, wrapping around.
func CycleActiveCamera(world donburi.World) {
	slots := cameraSlots(world)
	if len(slots) == 0 {
		return
	}

	current := ActiveCameraSlot(world)
	next := slots[0]
	for i, s := range slots {
		if s == current {
			next = slots[(i+1)%len(slots)]
			break
		}
	}

	if entry, ok := CameraBySlot(world, next); ok {
		SetActiveCamera(world, entry.Entity())
	}
}

// ToggleProjection switches a camera between orthographic and perspective,
// deriving the replacement's parameters from the viewport, then rebakes.
func ToggleProjection(world donburi.World, camEntry *donburi.Entry) {
	if !camEntry.HasComponent(components.Projection) {
		return
	}

	width, height := float32(cfg.C.Width), float32(cfg.C.Height)
	if vpEntry, ok := components.Viewport.First(world); ok {
		vp := components.Viewport.Get(vpEntry)
		if vp.Width > 0 && vp.Height > 0 {
			width, height = float32(vp.Width), float32(vp.Height)
		}
	}

	proj := components.Projection.Get(camEntry)
	var replacement components.ProjectionData
	if proj.Kind == components.Orthographic {
		replacement = components.NewPerspective(width/height, 60)
	} else {
		replacement = components.NewOrthographic(-width/2, width/2, -height/2, height/2)
	}

	components.Projection.SetValue(camEntry, replacement)
	RebakeCamera(camEntry)
}

func cameraSlots(world donburi.World) []int {
	var slots []int
	components.Label.Each(world, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Camera) {
			slots = append(slots, components.Label.Get(entry).Slot)
		}
	})
	sort.Ints(slots)
	return slots
}
