package systems

import (
	"testing"

	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureRigRecordsCameras(t *testing.T) {
	e := newTestECS()
	factory.CreateStandard2D(e, "flat", 0)
	lens := factory.CreateStandard3D(e, "lens", 1, 640, 368)
	components.Zoom.SetValue(lens, components.ZoomData{Factor: 2.5})
	SetActiveCamera(e.World, lens.Entity())

	rig := CaptureRig(e.World)

	require.Len(t, rig.Cameras, 2)
	assert.Equal(t, rigFileVersion, rig.Version)
	assert.Equal(t, 1, rig.ActiveSlot)

	bySlot := map[int]RigCamera{}
	for _, cam := range rig.Cameras {
		bySlot[cam.Slot] = cam
	}
	assert.Equal(t, "flat", bySlot[0].Name)
	assert.Equal(t, float32(1), bySlot[0].Zoom)
	assert.Equal(t, "lens", bySlot[1].Name)
	assert.Equal(t, float32(2.5), bySlot[1].Zoom)
	assert.Equal(t, components.Perspective, bySlot[1].Projection.Kind)
}

func TestRigFileCodecRoundTrip(t *testing.T) {
	rig := &RigFile{
		Version:    rigFileVersion,
		ActiveSlot: 2,
		Cameras: []RigCamera{
			{Name: "wide", Slot: 0, Projection: components.NewOrthographic(0, 640, 0, 368), Zoom: 1},
			{Name: "lens", Slot: 2, Projection: components.NewPerspective(1.7777778, 45), Zoom: 2},
		},
	}

	data, err := EncodeRigFile(rig)
	require.NoError(t, err)

	got, err := DecodeRigFile(data)
	require.NoError(t, err)
	assert.Equal(t, rig, got)
}

func TestApplyRigRebuildsWorld(t *testing.T) {
	source := newTestECS()
	factory.CreateStandard2D(source, "flat", 0)
	closeup := factory.CreateCamera(source, "closeup", 1, components.NewOrthographic(240, 400, 160, 252))
	components.Zoom.SetValue(closeup, components.ZoomData{Factor: 2})
	RebakeCamera(closeup)
	SetActiveCamera(source.World, closeup.Entity())

	rig := CaptureRig(source.World)

	// Apply into a fresh world carrying an unrelated camera that must go.
	target := newTestECS()
	factory.CreateCamera(target, "leftover", 9, components.NewOrthographic(-1, 1, 1, -1))
	require.NoError(t, ApplyRig(target, rig))

	_, ok := CameraBySlot(target.World, 9)
	assert.False(t, ok, "pre-existing cameras are replaced")

	entry, ok := CameraBySlot(target.World, 1)
	require.True(t, ok)
	assert.Equal(t, "closeup", components.Label.Get(entry).Name)
	assert.Equal(t, float32(2), components.Zoom.Get(entry).Factor)

	// The matrix is rebaked from the saved projection with the saved zoom.
	base := components.NewOrthographic(240, 400, 160, 252)
	assert.Equal(t, components.CameraFrom(base.Zoomed(2)), *components.Camera.Get(entry))

	assert.Equal(t, 1, ActiveCameraSlot(target.World))
}

func TestApplyRigUnknownActiveSlotClearsDesignation(t *testing.T) {
	rig := &RigFile{
		Version:    rigFileVersion,
		ActiveSlot: 42,
		Cameras: []RigCamera{
			{Name: "flat", Slot: 0, Projection: components.NewOrthographic(-1, 1, 1, -1), Zoom: 1},
		},
	}

	e := newTestECS()
	require.NoError(t, ApplyRig(e, rig))

	_, ok := components.ActiveCamera.First(e.World)
	assert.False(t, ok)
	// Resolution still falls back to the restored camera.
	assert.Equal(t, 0, ActiveCameraSlot(e.World))
}

func TestApplyRigRejectsUnknownVersion(t *testing.T) {
	e := newTestECS()
	err := ApplyRig(e, &RigFile{Version: rigFileVersion + 1})
	assert.Error(t, err)
}

func TestApplyRigNilIsNoop(t *testing.T) {
	e := newTestECS()
	factory.CreateStandard2D(e, "flat", 0)
	require.NoError(t, ApplyRig(e, nil))

	_, ok := CameraBySlot(e.World, 0)
	assert.True(t, ok)
}
