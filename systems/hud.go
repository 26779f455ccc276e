package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/fonts"
	"github.com/softlock-games/viewfinder/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
)

// DrawHUD renders the camera readout in the top-left corner: the active
// camera's label and projection parameters, the zoom factor, and the culling
// counts.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()

	camEntry, ok := ResolveActiveCamera(e.World)
	if !ok {
		text.Draw(screen, "no cameras", face, hudMargin, hudMargin+hudLineHeight, cfg.Red)
		return
	}

	y := hudMargin + hudLineHeight

	name, slot := "camera", -1
	if camEntry.HasComponent(components.Label) {
		label := components.Label.Get(camEntry)
		name, slot = label.Name, label.Slot
	}
	text.Draw(screen, fmt.Sprintf("[%d] %s", slot, name), face, hudMargin, y, cfg.White)
	y += hudLineHeight

	if camEntry.HasComponent(components.Projection) {
		proj := components.Projection.Get(camEntry)
		var line string
		switch proj.Kind {
		case components.Orthographic:
			line = fmt.Sprintf("ortho l=%.0f r=%.0f t=%.0f b=%.0f", proj.Left, proj.Right, proj.Top, proj.Bottom)
		case components.Perspective:
			line = fmt.Sprintf("persp fov=%.1f deg aspect=%.3f", gamemath.RadToDeg(proj.FovY), proj.Aspect)
		}
		text.Draw(screen, line, face, hudMargin, y, cfg.White)
		y += hudLineHeight

		if !gamemath.IsFinite(components.Camera.Get(camEntry).Proj) {
			text.Draw(screen, "degenerate matrix (NaN/Inf)", face, hudMargin, y, cfg.Red)
			y += hudLineHeight
		}
	}

	if camEntry.HasComponent(components.Zoom) {
		zoom := components.Zoom.Get(camEntry)
		text.Draw(screen, fmt.Sprintf("zoom %.2fx", zoom.Factor), face, hudMargin, y, cfg.White)
		y += hudLineHeight
	}

	visible, total := CountVisible(e.World)
	if total > 0 {
		text.Draw(screen, fmt.Sprintf("props %d/%d in view", visible, total), face, hudMargin, y, cfg.White)
		y += hudLineHeight
	}

	hint := "move: WASD  cut: Tab  zoom: +/-  kind: P"
	text.Draw(screen, hint, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.Grey)
}
