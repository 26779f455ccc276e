package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leap-fish/necs/esync"
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/network"
	"github.com/softlock-games/viewfinder/shared/messages"
	"github.com/softlock-games/viewfinder/shared/netcomponents"
	"github.com/softlock-games/viewfinder/systems"
	"github.com/softlock-games/viewfinder/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene mirrors a director's rig: camera entities arrive over the
// wire and are rebuilt as local cameras, while cut and zoom requests go back
// to the director.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	once         sync.Once
	presentIDs   map[esync.NetworkId]bool
	zoomTargets  map[int]float64
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		presentIDs:   make(map[esync.NetworkId]bool),
		zoomTargets:  make(map[int]float64),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Println("[networked] disconnected, returning to local viewer")
		ns.netClient.Disconnect()
		ns.sceneChanger.ChangeScene(NewViewerScene(ns.sceneChanger, ""))
		return
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}

	ns.handleInput()

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}

	bounds := screen.Bounds()
	if vpEntry, ok := components.Viewport.First(ns.ecsWorld.World); ok {
		components.Viewport.SetValue(vpEntry, components.ViewportData{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
	}

	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	ns.ecsWorld.AddSystem(systems.UpdateDolly)
	ns.ecsWorld.AddSystem(systems.UpdateObjects)
	ns.ecsWorld.AddSystem(systems.UpdateVisibility)

	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawStageView)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawLensView)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateViewport(ns.ecsWorld, cfg.C.Width, cfg.C.Height)
	factory.CreateDolly(ns.ecsWorld, 0, 0)

	// Rebuild the director's stage locally for prop display and culling. The
	// stage's camera spots are skipped: the director owns the rig and its
	// cameras arrive over the wire.
	if name := ns.netClient.Stage(); name != "" {
		stage, err := stageByName(name)
		if err != nil {
			log.Printf("[networked] stage %q not available locally: %v", name, err)
		} else {
			factory.CreateSpace(ns.ecsWorld, stage.Width, stage.Height, 16, 16)
			for _, p := range stage.Props {
				factory.CreateProp(ns.ecsWorld, p.Name, p.X, p.Y, p.W, p.H, p.Depth)
			}
		}
	}
}

func (ns *NetworkedScene) handleInput() {
	// Number keys cut the rig remotely.
	for slot := 0; slot <= 9; slot++ {
		key := ebiten.KeyDigit0 + ebiten.Key(slot)
		if inpututil.IsKeyJustPressed(key) {
			if err := ns.netClient.SendMessage(messages.ActivateCamera{Slot: slot}); err != nil {
				log.Printf("[networked] cut request failed: %v", err)
			}
		}
	}

	slot := systems.ActiveCameraSlot(ns.ecsWorld.World)
	if slot < 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		ns.requestZoom(slot, float64(cfg.Cam.ZoomStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		ns.requestZoom(slot, 1/float64(cfg.Cam.ZoomStep))
	}
}

func (ns *NetworkedScene) requestZoom(slot int, step float64) {
	target, ok := ns.zoomTargets[slot]
	if !ok {
		target = 1
	}
	target *= step
	if target < float64(cfg.Cam.MinZoom) {
		target = float64(cfg.Cam.MinZoom)
	}
	if target > float64(cfg.Cam.MaxZoom) {
		target = float64(cfg.Cam.MaxZoom)
	}
	ns.zoomTargets[slot] = target

	if err := ns.netClient.SendMessage(messages.SetZoom{Slot: slot, Target: target}); err != nil {
		log.Printf("[networked] zoom request failed: %v", err)
	}
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.ecsWorld.World

	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			ctypes := componentTypesFromInstances(compData)
			entity = world.Create(ctypes...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}

		entry := world.Entry(entity)
		for _, data := range compData {
			applyComponentToEntry(entry, data)
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ns.presentIDs[*id] {
			entry.Remove()
		}
	})

	ns.syncLocalRig()
}

// syncLocalRig rebuilds the local camera entities from the wire state: one
// local camera per synced rig camera, each rebaked from the projection the
// director computed (zoom included), plus the live slot.
func (ns *NetworkedScene) syncLocalRig() {
	world := ns.ecsWorld.World

	present := make(map[int]bool)
	netcomponents.NetCameraInfo.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetProjection) {
			return
		}
		info := netcomponents.NetCameraInfo.Get(entry)
		proj := netcomponents.NetProjection.Get(entry).Projection()
		present[info.Slot] = true

		local, ok := systems.CameraBySlot(world, info.Slot)
		if !ok {
			factory.CreateCamera(ns.ecsWorld, info.Label, info.Slot, proj)
			return
		}
		components.Label.SetValue(local, components.LabelData{Name: info.Label, Slot: info.Slot})
		components.Projection.SetValue(local, proj)
		components.Camera.SetValue(local, components.CameraFrom(proj))
	})

	// Drop local cameras whose wire counterpart is gone.
	var stale []*donburi.Entry
	components.Label.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Camera) || entry.HasComponent(esync.NetworkIdComponent) {
			return
		}
		if !present[components.Label.Get(entry).Slot] {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}

	if rigEntry, ok := netcomponents.NetRig.First(world); ok {
		rig := netcomponents.NetRig.Get(rigEntry)
		if camEntry, ok := systems.CameraBySlot(world, rig.ActiveSlot); ok {
			systems.SetActiveCamera(world, camEntry.Entity())
		}
	}
}

func componentTypesFromInstances(compData []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range compData {
		switch data.(type) {
		case netcomponents.NetProjectionData:
			ctypes = append(ctypes, netcomponents.NetProjection)
		case netcomponents.NetCameraInfoData:
			ctypes = append(ctypes, netcomponents.NetCameraInfo)
		case netcomponents.NetRigData:
			ctypes = append(ctypes, netcomponents.NetRig)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetProjectionData:
		if !entry.HasComponent(netcomponents.NetProjection) {
			entry.AddComponent(netcomponents.NetProjection)
		}
		netcomponents.NetProjection.SetValue(entry, v)
	case netcomponents.NetCameraInfoData:
		if !entry.HasComponent(netcomponents.NetCameraInfo) {
			entry.AddComponent(netcomponents.NetCameraInfo)
		}
		netcomponents.NetCameraInfo.SetValue(entry, v)
	case netcomponents.NetRigData:
		if !entry.HasComponent(netcomponents.NetRig) {
			entry.AddComponent(netcomponents.NetRig)
		}
		netcomponents.NetRig.SetValue(entry, v)
	}
}
