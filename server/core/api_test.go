package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/softlock-games/viewfinder/shared/protocol"
	"github.com/softlock-games/viewfinder/shared/stagedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registerOnce sync.Once

func newTestServer(t *testing.T, stage *stagedata.Stage, autoCycleSeconds float64) *Server {
	t.Helper()
	registerOnce.Do(func() {
		require.NoError(t, protocol.RegisterComponents())
	})

	s, err := NewServer(20, "test director", "", stage, autoCycleSeconds)
	require.NoError(t, err)
	return s
}

func testStage() *stagedata.Stage {
	return &stagedata.Stage{
		Name:   "studio",
		Width:  640,
		Height: 368,
		Cameras: []stagedata.CameraSpot{
			{Name: "closeup", X: 240, Y: 160, W: 160, H: 92},
			{Name: "spot-lens", X: 320, Y: 184, Fov: 45, Aspect: 16.0 / 9.0},
		},
	}
}

func TestBuildRigStandardPair(t *testing.T) {
	s := newTestServer(t, nil, 0)

	require.Len(t, s.cameras, 2)
	assert.Equal(t, "flat", s.cameras[0].label)
	assert.Equal(t, "lens", s.cameras[1].label)
	assert.Equal(t, 0, s.ActiveSlot())
}

func TestBuildRigAppendsStageSpots(t *testing.T) {
	s := newTestServer(t, testStage(), 0)

	require.Len(t, s.cameras, 4)
	assert.Equal(t, "closeup", s.cameras[2].label)
	assert.Equal(t, "spot-lens", s.cameras[3].label)
}

func TestSetActiveSlotRejectsUnknown(t *testing.T) {
	s := newTestServer(t, nil, 0)

	assert.Error(t, s.SetActiveSlot(-1))
	assert.Error(t, s.SetActiveSlot(99))
	require.NoError(t, s.SetActiveSlot(1))
	assert.Equal(t, 1, s.ActiveSlot())
}

func TestZoomGlideReachesTarget(t *testing.T) {
	s := newTestServer(t, nil, 0)

	require.NoError(t, s.SetZoomTarget(0, 2))

	// One full glide duration worth of ticks lands on the target exactly.
	for i := 0; i < 12; i++ {
		s.stepRig(0.05)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.InDelta(t, 2, s.cameras[0].zoom, 1e-4)
	assert.Nil(t, s.cameras[0].tween)
}

func TestZoomTargetValidation(t *testing.T) {
	s := newTestServer(t, nil, 0)

	assert.Error(t, s.SetZoomTarget(99, 2))
	assert.Error(t, s.SetZoomTarget(0, 0))
	assert.Error(t, s.SetZoomTarget(0, -1))
}

func TestAutoCycleAdvancesSlots(t *testing.T) {
	s := newTestServer(t, nil, 1)

	s.stepRig(0.6)
	assert.Equal(t, 0, s.ActiveSlot())
	s.stepRig(0.6)
	assert.Equal(t, 1, s.ActiveSlot())
	s.stepRig(0.6)
	s.stepRig(0.6)
	assert.Equal(t, 0, s.ActiveSlot(), "cycle wraps around")
}

func TestAutoCyclePausedByManualControl(t *testing.T) {
	s := newTestServer(t, nil, 1)

	s.mu.Lock()
	s.manualControl = true
	s.mu.Unlock()

	s.stepRig(5)
	assert.Equal(t, 0, s.ActiveSlot())
}

func TestRigStatusEndpoint(t *testing.T) {
	s := newTestServer(t, testStage(), 0)
	require.NoError(t, s.SetActiveSlot(2))

	rec := httptest.NewRecorder()
	RigStatus(s)(rec, httptest.NewRequest(http.MethodGet, "/rig", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var status RigInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "test director", status.Name)
	assert.Equal(t, "studio", status.Stage)
	assert.Equal(t, 2, status.ActiveSlot)
	require.Len(t, status.Cameras, 4)
	assert.Equal(t, "orthographic", status.Cameras[0].Kind)
	assert.Equal(t, "perspective", status.Cameras[1].Kind)
	assert.InDelta(t, 60, status.Cameras[1].FovDegrees, 1e-3)
}

func TestActivateEndpoint(t *testing.T) {
	s := newTestServer(t, nil, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rig/activate", strings.NewReader(`{"slot":1}`))
	ActivateCamera(s)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, s.ActiveSlot())

	s.mu.RLock()
	manual := s.manualControl
	s.mu.RUnlock()
	assert.True(t, manual, "API cuts pause the auto-cycle")
}

func TestActivateEndpointRejectsBadInput(t *testing.T) {
	s := newTestServer(t, nil, 0)

	rec := httptest.NewRecorder()
	ActivateCamera(s)(rec, httptest.NewRequest(http.MethodPost, "/rig/activate", strings.NewReader(`{"slot":42}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	ActivateCamera(s)(rec, httptest.NewRequest(http.MethodPost, "/rig/activate", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestZoomEndpoint(t *testing.T) {
	s := newTestServer(t, nil, 0)

	rec := httptest.NewRecorder()
	ZoomCamera(s)(rec, httptest.NewRequest(http.MethodPost, "/rig/zoom", strings.NewReader(`{"slot":0,"target":2}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	s.mu.RLock()
	tween := s.cameras[0].tween
	s.mu.RUnlock()
	assert.NotNil(t, tween)

	rec = httptest.NewRecorder()
	ZoomCamera(s)(rec, httptest.NewRequest(http.MethodPost, "/rig/zoom", strings.NewReader(`{"slot":0,"target":-1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	Health()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
