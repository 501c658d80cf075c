package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelcam/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log every camera rescale")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefabDir := flag.String("prefabs", "prefabs", "directory with camera and scene prefab overrides")
	watch := flag.Bool("watch", true, "reload camera prefabs when they change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	prefabs.SetDir(*prefabDir)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowSizeLimits(1, 1, -1, -1)
	ebiten.SetWindowTitle("pixelcam")

	game, err := NewGame(GameOptions{Debug: *debug, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
