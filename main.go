package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/scenekit/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlays")
	sceneName := flag.String("scene", "arena", "scene name in prefabs/scenes/ (basename, .yaml optional)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("scenekit")

	game := NewGame(*debug)
	if err := game.LoadScene(*sceneName); err != nil {
		log.Fatalf("load scene %s: %v", *sceneName, err)
	}
	key := strings.TrimSuffix(strings.TrimSuffix(*sceneName, ".yaml"), ".yml")
	if err := game.UseScene(key); err != nil {
		log.Fatal(err)
	}
	game.Start()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
