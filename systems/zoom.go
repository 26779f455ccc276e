package systems

import (
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// zoomTickSeconds is the fixed timestep fed to zoom tweens, matching
// ebitengine's 60 updates per second.
const zoomTickSeconds float32 = 1.0 / 60.0

// StartZoomTween begins gliding the entity's zoom factor toward target. The
// target is clamped to the configured zoom range. An in-flight tween is
// replaced, restarting the glide from the current factor.
func StartZoomTween(entry *donburi.Entry, target float32) {
	if !entry.HasComponent(components.Zoom) {
		return
	}
	if target < cfg.Cam.MinZoom {
		target = cfg.Cam.MinZoom
	}
	if target > cfg.Cam.MaxZoom {
		target = cfg.Cam.MaxZoom
	}

	zoom := components.Zoom.Get(entry)
	current := zoom.Factor
	if current == 0 {
		current = 1
	}
	zoom.Tween = gween.New(current, target, cfg.Cam.TweenSeconds, ease.OutQuad)
}

// UpdateZoomTweens advances every in-flight zoom tween one tick and rebakes
// the affected cameras. Each step rebuilds the matrix from the stored base
// projection; the baked matrix is never scaled in place.
func UpdateZoomTweens(e *ecs.ECS) {
	components.Zoom.Each(e.World, func(entry *donburi.Entry) {
		zoom := components.Zoom.Get(entry)
		if zoom.Tween == nil {
			return
		}

		value, done := zoom.Tween.Update(zoomTickSeconds)
		zoom.Factor = value
		if done {
			zoom.Tween = nil
		}

		if entry.HasComponent(components.Projection) && entry.HasComponent(components.Camera) {
			RebakeCamera(entry)
		}
	})
}
