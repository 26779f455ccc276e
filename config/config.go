package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CamConfig contains camera operation tunables for the viewer
type CamConfig struct {
	ZoomStep          float32 // Multiplier applied per zoom key press
	MinZoom           float32
	MaxZoom           float32
	TweenSeconds      float32 // Duration of a zoom glide
	DollySpeed        float64 // Pixels per tick of dolly movement
	CullPadding       float64 // Extra margin around the view rect when culling
	AutoCycleSeconds  float64 // Director: seconds between automatic camera switches
	CloseupZoomFactor float32 // Zoom applied by the panel's punch-in button
}

// RenderConfig contains debug-view rendering tunables
type RenderConfig struct {
	GridExtent   int     // Half-extent of the perspective floor grid, in cells
	GridCell     float64 // World units per grid cell
	WorldScale   float64 // Pixels per world unit when mapping props into the 3D view
	PropColor    color.RGBA
	CulledColor  color.RGBA
	ViewColor    color.RGBA
	GridColor    color.RGBA
	MarkerColor  color.RGBA
	BackdropFill color.RGBA
}

// Global configuration instances
var C *Config
var Cam CamConfig
var Render RenderConfig

// Default is the render layer all entities spawn on.
var Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 368,
		Title:  "viewfinder",
	}

	Cam = CamConfig{
		ZoomStep:          1.25,
		MinZoom:           0.25,
		MaxZoom:           8.0,
		TweenSeconds:      0.4,
		DollySpeed:        3.0,
		CullPadding:       0.0,
		AutoCycleSeconds:  5.0,
		CloseupZoomFactor: 2.0,
	}

	Render = RenderConfig{
		GridExtent:   12,
		GridCell:     1.0,
		WorldScale:   32.0,
		PropColor:    Green,
		CulledColor:  Grey,
		ViewColor:    Cyan,
		GridColor:    DarkGrey,
		MarkerColor:  Orange,
		BackdropFill: color.RGBA{R: 12, G: 14, B: 22, A: 255},
	}
}
