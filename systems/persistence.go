package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/shared/netconfig"
	"github.com/softlock-games/viewfinder/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rigFileVersion guards the saved rig schema.
const rigFileVersion = 1

// RigFile is the serialized form of a camera rig: every camera's label, slot,
// base projection and zoom factor, plus which slot was live.
type RigFile struct {
	Version    int         `json:"version"`
	ActiveSlot int         `json:"activeSlot"`
	Cameras    []RigCamera `json:"cameras"`
}

type RigCamera struct {
	Name       string                    `json:"name"`
	Slot       int                       `json:"slot"`
	Projection components.ProjectionData `json:"projection"`
	Zoom       float32                   `json:"zoom"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for rig storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: netconfig.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// CaptureRig snapshots the world's cameras into a RigFile. Zoom tweens are
// runtime state and are not captured; only the current factor is.
func CaptureRig(world donburi.World) *RigFile {
	rig := &RigFile{
		Version:    rigFileVersion,
		ActiveSlot: ActiveCameraSlot(world),
	}

	components.Label.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Camera) || !entry.HasComponent(components.Projection) {
			return
		}
		label := components.Label.Get(entry)
		cam := RigCamera{
			Name:       label.Name,
			Slot:       label.Slot,
			Projection: *components.Projection.Get(entry),
			Zoom:       1,
		}
		if entry.HasComponent(components.Zoom) {
			cam.Zoom = components.Zoom.Get(entry).Factor
		}
		rig.Cameras = append(rig.Cameras, cam)
	})

	return rig
}

// ApplyRig rebuilds the world's cameras from a rig file. Existing cameras are
// removed and every saved camera is baked fresh from its projection; the
// saved zoom factor is applied as part of the bake.
func ApplyRig(e *ecs.ECS, rig *RigFile) error {
	if rig == nil {
		return nil
	}
	if rig.Version != rigFileVersion {
		return fmt.Errorf("unsupported rig version %d", rig.Version)
	}

	var stale []*donburi.Entry
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		entry.Remove()
	}

	for _, saved := range rig.Cameras {
		entry := factory.CreateCamera(e, saved.Name, saved.Slot, saved.Projection)
		if saved.Zoom > 0 && saved.Zoom != 1 {
			components.Zoom.SetValue(entry, components.ZoomData{Factor: saved.Zoom})
			RebakeCamera(entry)
		}
	}

	if entry, ok := CameraBySlot(e.World, rig.ActiveSlot); ok {
		SetActiveCamera(e.World, entry.Entity())
	} else {
		ClearActiveCamera(e.World)
	}

	return nil
}

// EncodeRigFile serializes a rig to JSON.
func EncodeRigFile(rig *RigFile) ([]byte, error) {
	data, err := json.Marshal(rig)
	if err != nil {
		return nil, fmt.Errorf("serialize rig: %w", err)
	}
	return data, nil
}

// DecodeRigFile parses a JSON rig document.
func DecodeRigFile(data []byte) (*RigFile, error) {
	var rig RigFile
	if err := json.Unmarshal(data, &rig); err != nil {
		return nil, fmt.Errorf("parse rig: %w", err)
	}
	return &rig, nil
}

// SaveRig persists the world's current rig to disk.
func SaveRig(world donburi.World) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := EncodeRigFile(CaptureRig(world))
	if err != nil {
		log.Printf("Warning: Could not serialize rig: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("rig", data); err != nil {
		log.Printf("Warning: Could not save rig: %v", err)
		return err
	}
	return nil
}

// LoadRig loads the saved rig from disk. Returns (nil, nil) when persistence
// is unavailable or no rig has been saved yet.
func LoadRig() (*RigFile, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("rig")
	if err != nil {
		log.Printf("Warning: Could not load rig: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved rig yet
		return nil, nil
	}

	rig, err := DecodeRigFile(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved rig: %v", err)
		return nil, err
	}
	return rig, nil
}

// HasSavedRig returns true if a saved rig exists
func HasSavedRig() bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem("rig")
	return err == nil && len(data) > 0
}
