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

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestResolveActiveCameraNoneExists(t *testing.T) {
	e := newTestECS()
	_, ok := ResolveActiveCamera(e.World)
	assert.False(t, ok)
	assert.Equal(t, -1, ActiveCameraSlot(e.World))
}

func TestResolveActiveCameraDesignatedWins(t *testing.T) {
	e := newTestECS()
	factory.CreateStandard2D(e, "flat", 0)
	second := factory.CreateCamera(e, "closeup", 1, components.NewOrthographic(240, 400, 160, 252))

	SetActiveCamera(e.World, second.Entity())

	entry, ok := ResolveActiveCamera(e.World)
	require.True(t, ok)
	assert.Equal(t, second.Entity(), entry.Entity())
	assert.Equal(t, 1, ActiveCameraSlot(e.World))
}

func TestResolveActiveCameraFallsBackWhenStale(t *testing.T) {
	e := newTestECS()
	first := factory.CreateStandard2D(e, "flat", 0)
	doomed := factory.CreateCamera(e, "temp", 1, components.NewOrthographic(-1, 1, 1, -1))

	SetActiveCamera(e.World, doomed.Entity())
	doomed.Remove()

	entry, ok := ResolveActiveCamera(e.World)
	require.True(t, ok)
	assert.Equal(t, first.Entity(), entry.Entity())
}

func TestResolveActiveCameraIgnoresNonCameraTarget(t *testing.T) {
	e := newTestECS()
	first := factory.CreateStandard2D(e, "flat", 0)

	// Point the designation at an entity that is not a camera.
	notACamera := e.World.Create(components.Label)
	SetActiveCamera(e.World, notACamera)

	entry, ok := ResolveActiveCamera(e.World)
	require.True(t, ok)
	assert.Equal(t, first.Entity(), entry.Entity())
}

func TestClearActiveCamera(t *testing.T) {
	e := newTestECS()
	factory.CreateStandard2D(e, "flat", 0)
	second := factory.CreateCamera(e, "closeup", 1, components.NewOrthographic(-1, 1, 1, -1))

	SetActiveCamera(e.World, second.Entity())
	ClearActiveCamera(e.World)

	_, ok := components.ActiveCamera.First(e.World)
	assert.False(t, ok)

	// Resolution falls back to the first camera.
	assert.Equal(t, 0, ActiveCameraSlot(e.World))
}

func TestSetActiveCameraReusesSingleton(t *testing.T) {
	e := newTestECS()
	a := factory.CreateStandard2D(e, "a", 0)
	b := factory.CreateCamera(e, "b", 1, components.NewOrthographic(-1, 1, 1, -1))

	SetActiveCamera(e.World, a.Entity())
	SetActiveCamera(e.World, b.Entity())

	count := 0
	components.ActiveCamera.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, ActiveCameraSlot(e.World))
}

func TestCameraBySlot(t *testing.T) {
	e := newTestECS()
	factory.CreateStandard2D(e, "flat", 0)
	lens := factory.CreateStandard3D(e, "lens", 1, 640, 368)

	entry, ok := CameraBySlot(e.World, 1)
	require.True(t, ok)
	assert.Equal(t, lens.Entity(), entry.Entity())

	_, ok = CameraBySlot(e.World, 7)
	assert.False(t, ok)
}

func TestCycleActiveCameraWraps(t *testing.T) {
	e := newTestECS()
	factory.CreateStandard2D(e, "flat", 0)
	factory.CreateCamera(e, "mid", 3, components.NewOrthographic(-1, 1, 1, -1))
	factory.CreateCamera(e, "far", 5, components.NewOrthographic(-1, 1, 1, -1))

	first, _ := CameraBySlot(e.World, 0)
	SetActiveCamera(e.World, first.Entity())

	CycleActiveCamera(e.World)
	assert.Equal(t, 3, ActiveCameraSlot(e.World))

	CycleActiveCamera(e.World)
	assert.Equal(t, 5, ActiveCameraSlot(e.World))

	CycleActiveCamera(e.World)
	assert.Equal(t, 0, ActiveCameraSlot(e.World))
}
