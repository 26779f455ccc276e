package components

import (
	"encoding/json"
	"testing"

	"github.com/softlock-games/viewfinder/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandard2DMatchesOrthoBake(t *testing.T) {
	assert.Equal(t, CameraFrom(NewOrthographic(-1, 1, 1, -1)), NewStandard2D())
}

func TestNewStandard3DMatchesPerspectiveBake(t *testing.T) {
	assert.Equal(t, CameraFrom(NewPerspective(800.0/600.0, 60)), NewStandard3D(800, 600))
}

func TestNewStandard3DZeroHeightIsDegenerate(t *testing.T) {
	// Division by zero flows into the matrix rather than erroring.
	cam := NewStandard3D(640, 0)
	assert.False(t, gamemath.IsFinite(cam.Proj))
}

func TestCameraBakeIsOneWay(t *testing.T) {
	proj := NewOrthographic(0, 640, 0, 368)
	cam := CameraFrom(proj)

	// Rebaking the same projection is deterministic.
	assert.Equal(t, cam, CameraFrom(proj))
	assert.Equal(t, proj.Matrix(), cam.Proj)
}

func TestCameraJSONRoundTrip(t *testing.T) {
	cam := NewStandard3D(640, 368)

	data, err := json.Marshal(cam)
	require.NoError(t, err)

	var got CameraData
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, cam, got)
}
