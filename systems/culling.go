package systems

import (
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewObject is the resolv object tracking the active camera's view
// rectangle inside the shared space. Created lazily on first update and
// recreated whenever the space changes (e.g. a new scene).
var (
	viewObject *resolv.Object
	viewSpace  *resolv.Space
)

// ActiveViewRect returns the world-space rectangle covered by the active
// camera, valid only for orthographic cameras. ok is false when no
// orthographic camera is active.
func ActiveViewRect(world donburi.World) (x, y, w, h float64, ok bool) {
	camEntry, found := ResolveActiveCamera(world)
	if !found || !camEntry.HasComponent(components.Projection) {
		return 0, 0, 0, 0, false
	}
	proj := components.Projection.Get(camEntry)
	if proj.Kind != components.Orthographic {
		return 0, 0, 0, 0, false
	}

	zoomed := *proj
	if camEntry.HasComponent(components.Zoom) {
		zoom := components.Zoom.Get(camEntry)
		if zoom.Factor > 0 {
			zoomed = proj.Zoomed(zoom.Factor)
		}
	}

	var dollyX, dollyY float64
	if dollyEntry, found := components.Dolly.First(world); found {
		dolly := components.Dolly.Get(dollyEntry)
		dollyX, dollyY = dolly.X, dolly.Y
	}

	left := float64(zoomed.Left) + dollyX
	right := float64(zoomed.Right) + dollyX
	top := float64(zoomed.Top) + dollyY
	bottom := float64(zoomed.Bottom) + dollyY

	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return left, top, right - left, bottom - top, true
}

// UpdateVisibility marks each prop's Visible component according to whether
// it intersects the active orthographic camera's view rectangle. The view
// rect is tracked as a resolv object so the space's cell grid does the broad
// phase; exact overlap refines the candidates. A perspective active camera
// leaves everything visible.
func UpdateVisibility(e *ecs.ECS) {
	viewX, viewY, viewW, viewH, ok := ActiveViewRect(e.World)
	if !ok {
		tags.Prop.Each(e.World, func(entry *donburi.Entry) {
			if entry.HasComponent(components.Visible) {
				components.Visible.Get(entry).OnScreen = true
			}
		})
		return
	}

	pad := cfg.Cam.CullPadding
	viewX -= pad
	viewY -= pad
	viewW += 2 * pad
	viewH += 2 * pad

	spaceEntry, hasSpace := components.Space.First(e.World)

	// Broad phase through the resolv space when one exists.
	candidates := map[*donburi.Entry]bool{}
	if hasSpace && viewW > 0 && viewH > 0 {
		space := components.Space.Get(spaceEntry)
		if viewObject == nil || viewSpace != space {
			if viewObject != nil && viewSpace != nil {
				viewSpace.Remove(viewObject)
			}
			viewObject = resolv.NewObject(viewX, viewY, viewW, viewH, tags.ResolvView)
			space.Add(viewObject)
			viewSpace = space
		}
		viewObject.X, viewObject.Y = viewX, viewY
		viewObject.W, viewObject.H = viewW, viewH
		viewObject.Update()

		if collision := viewObject.Check(0, 0, tags.ResolvProp); collision != nil {
			for _, obj := range collision.Objects {
				if entry, isEntry := obj.Data.(*donburi.Entry); isEntry {
					candidates[entry] = true
				}
			}
		}
	}

	tags.Prop.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Visible) || !entry.HasComponent(components.Object) {
			return
		}
		visible := components.Visible.Get(entry)

		if hasSpace && !candidates[entry] {
			visible.OnScreen = false
			return
		}

		obj := components.Object.Get(entry)
		visible.OnScreen = obj.X < viewX+viewW && obj.X+obj.W > viewX &&
			obj.Y < viewY+viewH && obj.Y+obj.H > viewY
	})
}

// CountVisible returns how many props are currently on screen and the total
// prop count, for the HUD.
func CountVisible(world donburi.World) (visible, total int) {
	tags.Prop.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Visible) {
			return
		}
		total++
		if components.Visible.Get(entry).OnScreen {
			visible++
		}
	})
	return visible, total
}
