package stagedata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStage(t *testing.T) {
	stage, err := LoadStage(os.DirFS("testdata"), "studio.tmx")
	require.NoError(t, err)

	assert.Equal(t, "studio", stage.Name)
	assert.Equal(t, 640, stage.Width)
	assert.Equal(t, 368, stage.Height)

	require.Len(t, stage.Props, 5)
	require.Len(t, stage.Cameras, 3)
}

func TestLoadStagePropsSortedByX(t *testing.T) {
	stage, err := LoadStage(os.DirFS("testdata"), "studio.tmx")
	require.NoError(t, err)

	for i := 1; i < len(stage.Props); i++ {
		assert.LessOrEqual(t, stage.Props[i-1].X, stage.Props[i].X,
			"props %q and %q out of order", stage.Props[i-1].Name, stage.Props[i].Name)
	}

	byName := map[string]Prop{}
	for _, p := range stage.Props {
		byName[p.Name] = p
	}

	crate := byName["crate"]
	assert.Equal(t, 96.0, crate.X)
	assert.Equal(t, 240.0, crate.Y)
	assert.Equal(t, 32.0, crate.W)
	assert.Equal(t, 6.0, crate.Depth)

	// No depth property means zero; callers default it.
	assert.Equal(t, 0.0, byName["backdrop"].Depth)
}

func TestLoadStageCameraSpots(t *testing.T) {
	stage, err := LoadStage(os.DirFS("testdata"), "studio.tmx")
	require.NoError(t, err)

	byName := map[string]CameraSpot{}
	for _, c := range stage.Cameras {
		byName[c.Name] = c
	}

	wide := byName["wide"]
	assert.False(t, wide.IsPerspective())
	assert.Equal(t, 640.0, wide.W)
	assert.Equal(t, 368.0, wide.H)

	lens := byName["lens"]
	assert.True(t, lens.IsPerspective())
	assert.Equal(t, 45.0, lens.Fov)
	assert.InDelta(t, 16.0/9.0, lens.Aspect, 1e-4)
}

func TestLoadStageMissingFile(t *testing.T) {
	_, err := LoadStage(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestListStages(t *testing.T) {
	names, err := ListStages(os.DirFS("."), "testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"studio"}, names)
}

func TestListStagesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	_, err := ListStages(os.DirFS(dir), ".")
	assert.Error(t, err)
}
