package core

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/shared/gamemath"
)

const maxRequestBody = 1 << 16 // 64 KB

type RigInfo struct {
	Name       string       `json:"name"`
	Stage      string       `json:"stage,omitempty"`
	ActiveSlot int          `json:"activeSlot"`
	Viewers    int          `json:"viewers"`
	Cameras    []CameraInfo `json:"cameras"`
}

type CameraInfo struct {
	Slot       int     `json:"slot"`
	Label      string  `json:"label"`
	Kind       string  `json:"kind"`
	Zoom       float32 `json:"zoom"`
	FovDegrees float32 `json:"fovDegrees,omitempty"`
}

type activateRequest struct {
	Slot int `json:"slot"`
}

type zoomRequest struct {
	Slot   int     `json:"slot"`
	Target float32 `json:"target"`
}

// RigSnapshot reports the current rig state for the control API.
func (s *Server) RigSnapshot() RigInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := RigInfo{
		Name:       s.name,
		Stage:      s.stageName,
		ActiveSlot: s.activeSlot,
		Viewers:    len(s.clients),
	}
	for _, cam := range s.cameras {
		cs := CameraInfo{
			Slot:  cam.slot,
			Label: cam.label,
			Kind:  cam.base.Kind.String(),
			Zoom:  cam.zoom,
		}
		if cam.base.Kind == components.Perspective {
			cs.FovDegrees = gamemath.RadToDeg(cam.base.FovY)
		}
		status.Cameras = append(status.Cameras, cs)
	}
	return status
}

func RigStatus(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(s.RigSnapshot()); err != nil {
			log.Printf("[director] status encode error: %v", err)
		}
	}
}

func ActivateCamera(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req activateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.manualControl = true
		err := s.setActiveSlotLocked(req.Slot)
		s.mu.Unlock()
		if err != nil {
			http.Error(w, `{"error":"unknown slot"}`, http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func ZoomCamera(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req zoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}

		if err := s.SetZoomTarget(req.Slot, req.Target); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
