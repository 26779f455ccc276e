package core

import (
	"fmt"
	"log"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/shared/netcomponents"
	"github.com/softlock-games/viewfinder/shared/stagedata"
	"github.com/softlock-games/viewfinder/systems/factory"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// rigCamera is the server-side record of one camera in the rig: the synced
// entity, its base projection, and the current zoom glide state.
type rigCamera struct {
	entity donburi.Entity
	slot   int
	label  string
	base   components.ProjectionData
	zoom   float32
	tween  *gween.Tween
}

// buildRig populates the world with the rig's camera entities and the rig
// state entity, all marked for network sync. With no stage the rig is the
// standard pair: a flat 2D camera and a 16:9 perspective lens.
func (s *Server) buildRig(stage *stagedata.Stage) error {
	defs := []struct {
		label string
		proj  components.ProjectionData
	}{
		{label: "flat", proj: components.NewOrthographic(-1, 1, 1, -1)},
		{label: "lens", proj: components.NewPerspective(16.0/9.0, 60)},
	}
	for _, spot := range stageCameraSpots(stage) {
		defs = append(defs, struct {
			label string
			proj  components.ProjectionData
		}{label: spot.Name, proj: factory.CameraSpotProjection(spot)})
	}

	for slot, def := range defs {
		cam := &rigCamera{
			slot:  slot,
			label: def.label,
			base:  def.proj,
			zoom:  1,
		}

		entity := s.world.Create(
			netcomponents.NetProjection,
			netcomponents.NetCameraInfo,
		)
		cam.entity = entity

		entry := s.world.Entry(entity)
		netcomponents.NetProjection.SetValue(entry, netcomponents.FromProjection(def.proj))
		netcomponents.NetCameraInfo.SetValue(entry, netcomponents.NetCameraInfoData{
			Slot:  slot,
			Label: def.label,
		})

		if err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetProjection),
			netcomponents.NetCameraInfo,
		); err != nil {
			return fmt.Errorf("network sync for camera %q: %w", def.label, err)
		}

		s.cameras = append(s.cameras, cam)
	}

	rigEntity := s.world.Create(netcomponents.NetRig)
	s.rigEntity = rigEntity
	netcomponents.NetRig.SetValue(s.world.Entry(rigEntity), netcomponents.NetRigData{
		ActiveSlot:  0,
		CameraCount: len(s.cameras),
	})
	if err := srvsync.NetworkSync(s.world, &rigEntity, netcomponents.NetRig); err != nil {
		return fmt.Errorf("network sync for rig state: %w", err)
	}

	return nil
}

func stageCameraSpots(stage *stagedata.Stage) []stagedata.CameraSpot {
	if stage == nil {
		return nil
	}
	return stage.Cameras
}

// SetActiveSlot cuts the rig to the given slot. Unknown slots are rejected.
func (s *Server) SetActiveSlot(slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setActiveSlotLocked(slot)
}

func (s *Server) setActiveSlotLocked(slot int) error {
	if slot < 0 || slot >= len(s.cameras) {
		return fmt.Errorf("no camera in slot %d", slot)
	}
	s.activeSlot = slot

	entry := s.world.Entry(s.rigEntity)
	netcomponents.NetRig.SetValue(entry, netcomponents.NetRigData{
		ActiveSlot:  slot,
		CameraCount: len(s.cameras),
	})
	log.Printf("[director] live: slot %d (%s)", slot, s.cameras[slot].label)
	return nil
}

// SetZoomTarget starts gliding a camera's zoom toward target. The glide is
// advanced by the rig loop each tick.
func (s *Server) SetZoomTarget(slot int, target float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot < 0 || slot >= len(s.cameras) {
		return fmt.Errorf("no camera in slot %d", slot)
	}
	if target <= 0 {
		return fmt.Errorf("zoom target must be positive, got %v", target)
	}

	cam := s.cameras[slot]
	cam.tween = gween.New(cam.zoom, target, zoomGlideSeconds, easeOutQuad)
	return nil
}

// stepRig advances zoom glides and the auto-cycle. Called from the rig loop
// once per tick with the tick duration in seconds.
func (s *Server) stepRig(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cam := range s.cameras {
		if cam.tween == nil {
			continue
		}
		value, done := cam.tween.Update(dt)
		cam.zoom = value
		if done {
			cam.tween = nil
		}

		// Rebake the wire projection from the base parameters; the base is
		// never mutated so zoom round-trips cleanly.
		entry := s.world.Entry(cam.entity)
		netcomponents.NetProjection.SetValue(entry,
			netcomponents.FromProjection(cam.base.Zoomed(cam.zoom)))
	}

	s.stepAutoCycleLocked(dt)
}

func (s *Server) stepAutoCycleLocked(dt float32) {
	if s.autoCycleSeconds <= 0 || s.manualControl || len(s.cameras) < 2 {
		return
	}
	s.sinceCut += float64(dt)
	if s.sinceCut < s.autoCycleSeconds {
		return
	}
	s.sinceCut = 0
	_ = s.setActiveSlotLocked((s.activeSlot + 1) % len(s.cameras))
}
