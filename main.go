package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/fonts"
	"github.com/softlock-games/viewfinder/network"
	"github.com/softlock-games/viewfinder/scenes"
	"github.com/softlock-games/viewfinder/shared/netconfig"
	"github.com/softlock-games/viewfinder/shared/protocol"
	"github.com/softlock-games/viewfinder/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(connect, stage, name string) *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 10)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 20)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if connect != "" {
		client := network.NewClient()
		client.Connect(connect, netconfig.ProtocolVersion, name)
		g.scene = scenes.NewNetworkedScene(g, client)
	} else {
		g.scene = scenes.NewViewerScene(g, stage)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	connect := flag.String("connect", "", "Director address to mirror (host:port, empty = local viewer)")
	stage := flag.String("stage", "", "Embedded stage name for the local viewer (empty = first found)")
	name := flag.String("name", "viewer", "Viewer display name")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*connect, *stage, *name)); err != nil {
		log.Fatal(err)
	}
}
