package protocol

import (
	"github.com/leap-fish/necs/esync"
	"github.com/softlock-games/viewfinder/shared/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetProjection uint = 10
	SyncIDNetCameraInfo uint = 11
	SyncIDNetRig        uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetProjection uint8 = 10
)

// RegisterComponents registers all network components with necs for
// serialization. This must be called by both server and client before any
// network operations.
func RegisterComponents() error {
	// Projection interpolates so remote zoom/fov glides render smoothly.
	if err := esync.RegisterComponent(
		SyncIDNetProjection,
		netcomponents.NetProjectionData{},
		netcomponents.NetProjection,
		esync.WithInterpFn(InterpIDNetProjection, netcomponents.LerpNetProjection),
	); err != nil {
		return err
	}

	// CameraInfo: no interpolation (discrete slot/label)
	if err := esync.RegisterComponent(
		SyncIDNetCameraInfo,
		netcomponents.NetCameraInfoData{},
		netcomponents.NetCameraInfo,
	); err != nil {
		return err
	}

	// Rig state: no interpolation (discrete active slot)
	if err := esync.RegisterComponent(
		SyncIDNetRig,
		netcomponents.NetRigData{},
		netcomponents.NetRig,
	); err != nil {
		return err
	}

	return nil
}
