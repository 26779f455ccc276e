package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/softlock-games/viewfinder/assets"
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/shared/stagedata"
	"github.com/softlock-games/viewfinder/systems"
	"github.com/softlock-games/viewfinder/systems/factory"
	"github.com/softlock-games/viewfinder/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ViewerScene is the local camera workbench: a stage, a rig of cameras, and
// the dolly controls, all running in-process with no director.
type ViewerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stageName    string
	panel        *ui.RigPanel
	once         sync.Once
}

func NewViewerScene(sc SceneChanger, stageName string) *ViewerScene {
	return &ViewerScene{sceneChanger: sc, stageName: stageName}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)

	if vs.panel != nil {
		vs.panel.Update()
	}
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}

	// Track the real screen size so aspect-following cameras stay correct.
	bounds := screen.Bounds()
	if vpEntry, ok := components.Viewport.First(vs.ecs.World); ok {
		components.Viewport.SetValue(vpEntry, components.ViewportData{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
	}

	vs.ecs.Draw(screen)

	if vs.panel != nil {
		vs.panel.Draw(screen)
	}
}

func (vs *ViewerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateDolly)
	e.AddSystem(systems.UpdateAutoAspect)
	e.AddSystem(systems.UpdateZoomTweens)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateVisibility)

	e.AddRenderer(cfg.Default, systems.DrawStageView)
	e.AddRenderer(cfg.Default, systems.DrawLensView)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	vs.ecs = e

	factory.CreateViewport(e, cfg.C.Width, cfg.C.Height)
	factory.CreateDolly(e, 0, 0)

	// The standard pair always occupies the first two slots.
	flat := factory.CreateStandard2D(e, "flat", 0)
	factory.CreateStandard3D(e, "lens", 1, float32(cfg.C.Width), float32(cfg.C.Height))

	stage, err := stageByName(vs.stageName)
	if err != nil {
		log.Printf("[viewer] no stage %q: %v", vs.stageName, err)
	} else {
		factory.CreateStage(e, stage, 2)
	}

	systems.SetActiveCamera(e.World, flat.Entity())

	vs.buildPanel()
}

func (vs *ViewerScene) buildPanel() {
	var cameras []ui.PanelCamera
	components.Label.Each(vs.ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Camera) {
			return
		}
		label := components.Label.Get(entry)
		cameras = append(cameras, ui.PanelCamera{Slot: label.Slot, Label: label.Name})
	})

	vs.panel = ui.NewRigPanel(cameras,
		func(slot int) {
			if entry, ok := systems.CameraBySlot(vs.ecs.World, slot); ok {
				systems.SetActiveCamera(vs.ecs.World, entry.Entity())
				vs.panel.SetStatus("live: " + components.Label.Get(entry).Name)
			}
		},
		func() {
			if entry, ok := systems.ResolveActiveCamera(vs.ecs.World); ok {
				systems.ToggleProjection(vs.ecs.World, entry)
			}
		},
		func() {
			if entry, ok := systems.ResolveActiveCamera(vs.ecs.World); ok {
				systems.StartZoomTween(entry, cfg.Cam.CloseupZoomFactor)
			}
		},
		func() {
			if err := systems.SaveRig(vs.ecs.World); err != nil {
				vs.panel.SetStatus("save failed")
				return
			}
			vs.panel.SetStatus("rig saved")
		},
		func() {
			rig, err := systems.LoadRig()
			if err != nil || rig == nil {
				vs.panel.SetStatus("no saved rig")
				return
			}
			if err := systems.ApplyRig(vs.ecs, rig); err != nil {
				log.Printf("[viewer] rig load failed: %v", err)
				vs.panel.SetStatus("rig load failed")
				return
			}
			vs.panel.SetStatus("rig loaded")
		},
	)
}

// stageByName loads a stage from the embedded assets, falling back to the
// first stage found when name is empty.
func stageByName(name string) (*stagedata.Stage, error) {
	fsys := assets.Stages()
	if name == "" {
		names, err := stagedata.ListStages(fsys, assets.StagesDir)
		if err != nil {
			return nil, err
		}
		name = names[0]
	}
	return stagedata.LoadStage(fsys, assets.StagesDir+"/"+name+".tmx")
}
