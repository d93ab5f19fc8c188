package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"gocanvas/canvas"
	"gocanvas/server"
	"gocanvas/texture"
	"gocanvas/viewer"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		srv := server.NewServer(buildScene(nil))
		if err := srv.ListenAndServe(":8090"); err != nil {
			fmt.Println("Server failed:", err)
			os.Exit(1)
		}
		return
	}

	err := sdl.Init(sdl.INIT_EVENTS)
	if err != nil {
		panic("Could not init sdl")
	}

	v := viewer.NewViewer("gocanvas", viewer.DefaultWidth, viewer.DefaultHeight)
	if len(os.Args) > 1 {
		v.LoadTextures([]texture.Source{{Name: "photo", Path: os.Args[1]}})
	}
	v.Run(buildScene(v))
	sdl.Quit()
}

// buildScene rebuilds the renderable tree each frame; the wrapped paragraph
// converges over the first few frames as measurements come back.
func buildScene(v *viewer.Viewer) func(frame int) []canvas.Renderable {
	return func(frame int) []canvas.Renderable {
		scene := []canvas.Renderable{
			canvas.NewClear(canvas.NewPoint(0, 0), viewer.DefaultWidth, viewer.DefaultHeight),
			canvas.NewShapes(
				[]canvas.Setting{canvas.WithFill("white")},
				canvas.Rect{Point: canvas.NewPoint(0, 0), Width: viewer.DefaultWidth, Height: viewer.DefaultHeight},
			),
			canvas.NewGroup(
				[]canvas.Setting{canvas.WithFillAndStroke("#204060", "#9ab"), canvas.WithLineWidth(2)},
				canvas.NewShapes(nil,
					canvas.Rect{Point: canvas.NewPoint(40, 40), Width: 180, Height: 110},
					canvas.Circle{Center: canvas.NewPoint(320, 95), Radius: 55},
				),
				canvas.NewShapes(
					[]canvas.Setting{canvas.WithStroke("crimson"), canvas.WithLineWidth(3)},
					canvas.Path{
						Start: canvas.NewPoint(430, 40),
						Segments: []canvas.PathSegment{
							canvas.LineTo{To: canvas.NewPoint(540, 40)},
							canvas.QuadraticCurveTo{Control: canvas.NewPoint(560, 95), To: canvas.NewPoint(540, 150)},
							canvas.LineTo{To: canvas.NewPoint(430, 150)},
						},
					},
				),
				canvas.NewShapes(
					[]canvas.Setting{canvas.WithFill("#e0b040")},
					canvas.RoundRect{Point: canvas.NewPoint(590, 40), Width: 150, Height: 110, Radii: []float64{12}},
				),
			),
			canvas.NewText(
				[]canvas.Setting{
					canvas.WithFill("black"),
					canvas.WithAutoSwap(canvas.Word{Label: "intro", LineWidth: 300, LineSpace: 22}),
				},
				canvas.NewPoint(40, 220),
				"The quick brown fox jumps over the lazy dog near the riverbank while the sun sets slowly",
			),
		}
		if v != nil {
			if t := v.TextureNamed("photo"); t != nil {
				scene = append(scene, canvas.NewTexture(nil, canvas.NewPoint(40, 360), t))
			}
		}
		return scene
	}
}
