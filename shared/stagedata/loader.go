package stagedata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadStage parses a TMX file and returns the stage layout. It takes an fs.FS
// so callers can pass embed.FS (client) or os.DirFS (server).
func LoadStage(fsys fs.FS, tmxPath string) (*Stage, error) {
	stageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  stageMap.Width * stageMap.TileWidth,
		Height: stageMap.Height * stageMap.TileHeight,
	}

	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case "props":
			for _, o := range og.Objects {
				stage.Props = append(stage.Props, Prop{
					Name:  o.Name,
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Depth: o.Properties.GetFloat("depth"),
				})
			}
		case "cameras":
			for _, o := range og.Objects {
				stage.Cameras = append(stage.Cameras, CameraSpot{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Fov:    o.Properties.GetFloat("fov"),
					Aspect: o.Properties.GetFloat("aspect"),
				})
			}
		}
	}

	// Sort props left-to-right so visibility output is stable across loads.
	sort.Slice(stage.Props, func(i, j int) bool {
		return stage.Props[i].X < stage.Props[j].X
	})

	return stage, nil
}

// ListStages discovers all .tmx files in stagesDir within fsys and returns
// their stem names, sorted.
func ListStages(fsys fs.FS, stagesDir string) ([]string, error) {
	pattern := stagesDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", stagesDir)
	}

	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
