// Package assets embeds the stage files shipped with the viewer. The headless
// director server loads stages from disk instead and never imports this
// package.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed stages/*.tmx
var stageFS embed.FS

// StagesDir is the directory inside Stages holding the .tmx files.
const StagesDir = "stages"

// Stages returns the embedded stage filesystem.
func Stages() fs.FS {
	return stageFS
}
