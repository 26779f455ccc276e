package systems

import (
	"testing"

	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newStageECS builds a world with a 640x368 space, a dolly at the origin and
// two props at opposite ends of the stage.
func newStageECS(t *testing.T) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	e := newTestECS()
	factory.CreateSpace(e, 640, 368, 16, 16)
	factory.CreateDolly(e, 0, 0)
	crate := factory.CreateProp(e, "crate", 96, 240, 32, 32, 6)
	lamp := factory.CreateProp(e, "lamp", 320, 180, 16, 48, 3)
	return e, crate, lamp
}

func TestActiveViewRectOrthographic(t *testing.T) {
	e := newTestECS()
	factory.CreateDolly(e, 10, -20)
	cam := factory.CreateCamera(e, "wide", 0, components.NewOrthographic(0, 640, 0, 368))
	SetActiveCamera(e.World, cam.Entity())

	x, y, w, h, ok := ActiveViewRect(e.World)
	require.True(t, ok)
	assert.InDelta(t, 10, x, 1e-6)
	assert.InDelta(t, -20, y, 1e-6)
	assert.InDelta(t, 640, w, 1e-6)
	assert.InDelta(t, 368, h, 1e-6)
}

func TestActiveViewRectShrinksWithZoom(t *testing.T) {
	e := newTestECS()
	cam := factory.CreateCamera(e, "wide", 0, components.NewOrthographic(0, 640, 0, 368))
	components.Zoom.SetValue(cam, components.ZoomData{Factor: 2})
	SetActiveCamera(e.World, cam.Entity())

	x, y, w, h, ok := ActiveViewRect(e.World)
	require.True(t, ok)
	assert.InDelta(t, 160, x, 1e-4)
	assert.InDelta(t, 92, y, 1e-4)
	assert.InDelta(t, 320, w, 1e-4)
	assert.InDelta(t, 184, h, 1e-4)
}

func TestActiveViewRectPerspectiveNotOk(t *testing.T) {
	e := newTestECS()
	cam := factory.CreateStandard3D(e, "lens", 0, 640, 368)
	SetActiveCamera(e.World, cam.Entity())

	_, _, _, _, ok := ActiveViewRect(e.World)
	assert.False(t, ok)
}

func TestUpdateVisibilityCullsOffscreenProps(t *testing.T) {
	e, crate, lamp := newStageECS(t)
	cam := factory.CreateCamera(e, "closeup", 0, components.NewOrthographic(240, 400, 160, 252))
	SetActiveCamera(e.World, cam.Entity())

	UpdateVisibility(e)

	assert.True(t, components.Visible.Get(lamp).OnScreen)
	assert.False(t, components.Visible.Get(crate).OnScreen)

	visible, total := CountVisible(e.World)
	assert.Equal(t, 1, visible)
	assert.Equal(t, 2, total)
}

func TestUpdateVisibilityTracksDolly(t *testing.T) {
	e, crate, lamp := newStageECS(t)
	cam := factory.CreateCamera(e, "closeup", 0, components.NewOrthographic(240, 400, 160, 252))
	SetActiveCamera(e.World, cam.Entity())

	UpdateVisibility(e)
	require.False(t, components.Visible.Get(crate).OnScreen)

	// Dolly left so the view rect covers the crate instead of the lamp.
	dollyEntry, ok := components.Dolly.First(e.World)
	require.True(t, ok)
	components.Dolly.Get(dollyEntry).X = -200
	UpdateVisibility(e)

	assert.True(t, components.Visible.Get(crate).OnScreen)
	assert.False(t, components.Visible.Get(lamp).OnScreen)
}

func TestUpdateVisibilityPerspectiveShowsEverything(t *testing.T) {
	e, crate, lamp := newStageECS(t)
	cam := factory.CreateStandard3D(e, "lens", 0, 640, 368)
	SetActiveCamera(e.World, cam.Entity())

	UpdateVisibility(e)

	assert.True(t, components.Visible.Get(crate).OnScreen)
	assert.True(t, components.Visible.Get(lamp).OnScreen)
}

func TestUpdateObjectsRefreshesBroadPhase(t *testing.T) {
	e, crate, _ := newStageECS(t)
	cam := factory.CreateCamera(e, "closeup", 0, components.NewOrthographic(240, 400, 160, 252))
	SetActiveCamera(e.World, cam.Entity())

	UpdateVisibility(e)
	require.False(t, components.Visible.Get(crate).OnScreen)

	// Move the crate into view. Until UpdateObjects runs, the space's cell
	// grid still holds the old position and the broad phase misses it.
	obj := components.Object.Get(crate)
	obj.X, obj.Y = 300, 200
	UpdateVisibility(e)
	assert.False(t, components.Visible.Get(crate).OnScreen)

	UpdateObjects(e)
	UpdateVisibility(e)
	assert.True(t, components.Visible.Get(crate).OnScreen)
}

func TestUpdateVisibilityZoomNarrowsView(t *testing.T) {
	e, crate, lamp := newStageECS(t)
	cam := factory.CreateCamera(e, "wide", 0, components.NewOrthographic(0, 640, 0, 368))
	SetActiveCamera(e.World, cam.Entity())

	UpdateVisibility(e)
	require.True(t, components.Visible.Get(crate).OnScreen)

	// Zoomed 4x the view covers x in [240, 400]: the crate at x=96 drops out,
	// the lamp at x=320 stays.
	components.Zoom.SetValue(cam, components.ZoomData{Factor: 4})
	UpdateVisibility(e)

	assert.False(t, components.Visible.Get(crate).OnScreen)
	assert.True(t, components.Visible.Get(lamp).OnScreen)
}
